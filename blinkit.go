package main

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const blinkitBaseURL = "https://blinkit.com"

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

type blinkitScraper struct {
	cfg    ScrapeConfig
	logger *zap.Logger
}

// NewBlinkitScraper scrapes Blinkit category listing pages.
func NewBlinkitScraper(cfg ScrapeConfig, logger *zap.Logger) Scraper {
	return &blinkitScraper{cfg: cfg, logger: logger}
}

func (b *blinkitScraper) Name() string { return "blinkit" }

type scrapedCategory struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type blinkitCard struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
	Image    string `json:"image"`
}

// category links sit in the footer as /cn/<slug> anchors
const blinkitCategoriesJS = `
Array.from(document.querySelectorAll("footer a[href^='/cn/']")).map(el => ({
	name: el.innerText.trim(),
	url: el.getAttribute("href"),
}))`

// Product cards are the role=button tiles inside the PLP container. Tile
// ids are Blinkit product ids; the tailwind text classes are stable across
// categories. Icon and svg urls are rejected when picking the image.
const blinkitCardsJS = `
Array.from(document.querySelectorAll('#plpContainer div[role="button"]')).map(card => {
	const text = sel => {
		const el = card.querySelector(sel);
		return el ? el.textContent.trim() : "";
	};
	let image = "";
	for (const img of card.querySelectorAll("img")) {
		const src = img.src || img.getAttribute("data-src") || "";
		if (!src || src.includes("icons") || src.endsWith(".svg")) continue;
		if (src.includes("cloudinary") || src.includes("grofers") ||
			src.includes("cms-assets") || src.includes("blinkit") ||
			/\.(jpg|jpeg|png)$/.test(src)) {
			image = src;
			break;
		}
	}
	return {
		id: card.id || "",
		name: text(".tw-text-300.tw-font-semibold"),
		quantity: text(".tw-text-200.tw-font-medium"),
		price: text(".tw-text-200.tw-font-semibold"),
		image: image,
	};
})`

func (b *blinkitScraper) Scrape(ctx context.Context) ([]RawObservation, error) {
	browserCtx, cancel := newBrowserContext(ctx, b.cfg)
	defer cancel()

	var rawCats []scrapedCategory
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(blinkitBaseURL),
		chromedp.Sleep(2*time.Second),
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
		chromedp.Sleep(time.Second),
		chromedp.Evaluate(blinkitCategoriesJS, &rawCats),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load blinkit categories: %w", err)
	}

	categories := make([]scrapedCategory, 0, len(rawCats))
	for _, cat := range rawCats {
		if strings.HasPrefix(cat.URL, "/cn/") {
			categories = append(categories, cat)
		}
	}
	b.logger.Info("blinkit categories discovered", zap.Int("count", len(categories)))

	var observations []RawObservation
	for _, cat := range categories {
		if browserCtx.Err() != nil {
			break
		}
		obs, err := b.scrapeCategory(browserCtx, cat)
		if err != nil {
			b.logger.Warn("skipping blinkit category",
				zap.String("category", cat.Name), zap.Error(err))
			continue
		}
		b.logger.Info("blinkit category scraped",
			zap.String("category", cat.Name), zap.Int("products", len(obs)))
		observations = append(observations, obs...)
	}
	return observations, nil
}

func (b *blinkitScraper) scrapeCategory(ctx context.Context, cat scrapedCategory) ([]RawObservation, error) {
	if err := chromedp.Run(ctx,
		chromedp.Navigate(blinkitBaseURL+cat.URL),
		chromedp.Sleep(time.Second),
	); err != nil {
		return nil, fmt.Errorf("failed to open category page: %w", err)
	}
	if err := gradualScroll(ctx, 12, 350*time.Millisecond); err != nil {
		return nil, err
	}
	if err := forceLazyImages(ctx); err != nil {
		return nil, err
	}

	var cards []blinkitCard
	if err := chromedp.Run(ctx, chromedp.Evaluate(blinkitCardsJS, &cards)); err != nil {
		return nil, fmt.Errorf("failed to extract product cards: %w", err)
	}

	now := time.Now()
	observations := make([]RawObservation, 0, len(cards))
	for _, card := range cards {
		if card.ID == "" || card.Name == "" || card.Price == "" {
			continue
		}
		image := card.Image
		if image == "" {
			image = ImageUnresolved
		}
		observations = append(observations, RawObservation{
			Title:        card.Name,
			QuantityText: card.Quantity,
			Price:        card.Price,
			Platform:     b.Name(),
			DeepLink:     blinkitDeepLink(card.Name, card.ID),
			Image:        image,
			Category:     cat.Name,
			ObservedAt:   now,
		})
	}
	return observations, nil
}

// blinkitDeepLink rebuilds the canonical PDP url from the listing title
// and the tile's product id.
func blinkitDeepLink(name, id string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(name), "-")
	return fmt.Sprintf("%s/prn/%s/prid/%s", blinkitBaseURL, slug, id)
}
