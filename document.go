package main

import "time"

// ImageUnresolved is the sentinel the scrapers emit when no product image
// could be extracted. It is data, not an error, and flows through to the
// stored document untouched.
const ImageUnresolved = "N/A"

// RawObservation is one scrape result for one product on one platform,
// before normalization. Immutable once received.
type RawObservation struct {
	Title        string    `json:"title"`
	QuantityText string    `json:"quantity"`
	Price        string    `json:"price"`
	BrandHint    string    `json:"brand,omitempty"`
	Platform     string    `json:"platform"`
	DeepLink     string    `json:"deepLink"`
	Image        string    `json:"image"`
	Category     string    `json:"category"`
	ObservedAt   time.Time `json:"observedAt"`
}

// PlatformEntry is one source platform's price/availability observation
// for a canonical product.
type PlatformEntry struct {
	Platform string `json:"platform"`
	Price    string `json:"price"`
	Brand    string `json:"brand,omitempty"`
	URL      string `json:"url,omitempty"`
	Image    string `json:"image,omitempty"`
}

// DocumentFields are the document-level display fields carried by every
// merge. They are overwritten unconditionally: whichever platform merged
// most recently wins.
type DocumentFields struct {
	Name     string
	Quantity string
	Category string
}

// ProductDocument is the shared document for one logical product: one
// entry per platform, keyed by platform name.
type ProductDocument struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	Quantity  string                   `json:"quantity"`
	Category  string                   `json:"category"`
	UpdatedAt time.Time                `json:"updatedAt"`
	Entries   map[string]PlatformEntry `json:"entries"`
}

// mergeDocument is the portable merge rule: given the existing document
// (nil when none) and one platform's entry, produce the new document.
// Storage adapters must execute this rule atomically; the Postgres store
// expresses the identical rule in a single conditional upsert statement.
func mergeDocument(existing *ProductDocument, id string, entry PlatformEntry, fields DocumentFields, now time.Time) *ProductDocument {
	doc := &ProductDocument{
		ID:        id,
		Name:      fields.Name,
		Quantity:  fields.Quantity,
		Category:  fields.Category,
		UpdatedAt: now,
		Entries:   map[string]PlatformEntry{entry.Platform: entry},
	}
	if existing == nil {
		return doc
	}

	merged := make(map[string]PlatformEntry, len(existing.Entries)+1)
	for platform, e := range existing.Entries {
		merged[platform] = e
	}
	merged[entry.Platform] = entry
	doc.Entries = merged
	return doc
}
