package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDocumentCreates(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entry := PlatformEntry{Platform: "blinkit", Price: "₹52", URL: "https://blinkit.com/prn/x/prid/1", Image: "img.jpg"}
	fields := DocumentFields{Name: "Lays Magic Masala", Quantity: "52 g", Category: "Snacks"}

	doc := mergeDocument(nil, "lays-magic-masala-52g", entry, fields, now)

	require.NotNil(t, doc)
	assert.Equal(t, "lays-magic-masala-52g", doc.ID)
	assert.Equal(t, "Lays Magic Masala", doc.Name)
	assert.Equal(t, "52 g", doc.Quantity)
	assert.Equal(t, "Snacks", doc.Category)
	assert.Equal(t, now, doc.UpdatedAt)
	require.Len(t, doc.Entries, 1)
	assert.Equal(t, entry, doc.Entries["blinkit"])
}

func TestMergeDocumentAppendsNewPlatform(t *testing.T) {
	now := time.Now()
	blinkit := PlatformEntry{Platform: "blinkit", Price: "₹52"}
	zepto := PlatformEntry{Platform: "zepto", Price: "₹49"}

	doc := mergeDocument(nil, "id", blinkit, DocumentFields{Name: "A"}, now)
	doc = mergeDocument(doc, "id", zepto, DocumentFields{Name: "B"}, now.Add(time.Minute))

	require.Len(t, doc.Entries, 2)
	assert.Equal(t, blinkit, doc.Entries["blinkit"])
	assert.Equal(t, zepto, doc.Entries["zepto"])
}

func TestMergeDocumentReplacesSamePlatform(t *testing.T) {
	now := time.Now()
	first := PlatformEntry{Platform: "zepto", Price: "₹49", Image: "old.jpg"}
	second := PlatformEntry{Platform: "zepto", Price: "₹55", Image: "new.jpg"}

	doc := mergeDocument(nil, "id", first, DocumentFields{}, now)
	doc = mergeDocument(doc, "id", second, DocumentFields{}, now.Add(time.Hour))

	require.Len(t, doc.Entries, 1)
	assert.Equal(t, second, doc.Entries["zepto"])
}

func TestMergeDocumentFieldsLastWriteWins(t *testing.T) {
	now := time.Now()
	doc := mergeDocument(nil, "id",
		PlatformEntry{Platform: "blinkit"},
		DocumentFields{Name: "Old Name", Quantity: "1 kg", Category: "Staples"}, now)
	doc = mergeDocument(doc, "id",
		PlatformEntry{Platform: "zepto"},
		DocumentFields{Name: "New Name", Quantity: "1kg", Category: "Atta & Flours"}, now.Add(time.Minute))

	assert.Equal(t, "New Name", doc.Name)
	assert.Equal(t, "1kg", doc.Quantity)
	assert.Equal(t, "Atta & Flours", doc.Category)
	assert.Equal(t, now.Add(time.Minute), doc.UpdatedAt)
}

func TestMergeDocumentIdempotent(t *testing.T) {
	now := time.Now()
	entry := PlatformEntry{Platform: "blinkit", Price: "₹30"}
	fields := DocumentFields{Name: "Amul Taaza", Quantity: "500 ml"}

	once := mergeDocument(nil, "id", entry, fields, now)
	twice := mergeDocument(once, "id", entry, fields, now)

	assert.Equal(t, once, twice)
}

func TestMergeDocumentDoesNotMutateExisting(t *testing.T) {
	now := time.Now()
	existing := mergeDocument(nil, "id", PlatformEntry{Platform: "blinkit", Price: "₹10"}, DocumentFields{}, now)

	mergeDocument(existing, "id", PlatformEntry{Platform: "blinkit", Price: "₹99"}, DocumentFields{}, now)

	assert.Equal(t, "₹10", existing.Entries["blinkit"].Price)
}
