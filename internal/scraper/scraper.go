// Package scraper is the upstream review provider: it downloads a
// product page and extracts candidate review strings for the engine.
// The engine itself never fetches; callers that already have review
// text can skip this package entirely.
package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/shopverdict/shopverdict/internal/config"
	"github.com/shopverdict/shopverdict/pkg/logger"
)

// Selectors tried in order for review blocks. Site-specific selectors
// first, generic class-name guesses after.
var reviewSelectors = []string{
	`[data-hook="review-body"]`,
	`div.t-ZTKy`, // flipkart review body
	`.review-text`,
	`.review-content`,
	`.review-body`,
	`[class*="review"] p`,
	`.review`,
}

// Words that suggest a text block is actually customer feedback rather
// than navigation or boilerplate.
var reviewCues = []string{
	"product", "good", "bad", "excellent", "poor", "love", "hate",
	"recommend", "quality", "works", "buy", "purchase",
}

const (
	minReviewLen = 20
	maxReviewLen = 2000
)

type Scraper struct {
	client *http.Client
	cfg    config.ScraperConfig
	log    *logger.Logger
}

func New(cfg config.ScraperConfig) *Scraper {
	return &Scraper{
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		cfg:    cfg,
		log:    logger.New(),
	}
}

// FetchReviews downloads the product page at url and returns the
// review strings found on it, capped at the configured maximum.
func (s *Scraper) FetchReviews(ctx context.Context, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	reviews, err := s.ExtractFromHTML(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", url, err)
	}
	s.log.Infof("extracted %d review candidates from %s", len(reviews), url)
	return reviews, nil
}

// ExtractFromHTML pulls review candidates out of an HTML document.
// Site-specific selectors are tried first; when none match, paragraphs
// that look like customer feedback are used instead.
func (s *Scraper) ExtractFromHTML(r io.Reader, contentType string) ([]string, error) {
	buf := new(bytes.Buffer)
	_, _ = io.Copy(buf, r)
	data := buf.Bytes()

	enc, _, _ := charset.DetermineEncoding(data, contentType)
	utf8data, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		// fallback: if already utf-8, continue
		if !utf8.Valid(data) {
			return nil, err
		}
		utf8data = data
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(utf8data))
	if err != nil {
		return nil, err
	}

	doc.Find("script,noscript,style").Each(func(i int, sel *goquery.Selection) {
		sel.Remove()
	})

	var reviews []string
	for _, selector := range reviewSelectors {
		doc.Find(selector).Each(func(i int, sel *goquery.Selection) {
			if text := cleanBlock(sel.Text()); text != "" {
				reviews = append(reviews, text)
			}
		})
		if len(reviews) > 0 {
			break
		}
	}

	if len(reviews) == 0 {
		doc.Find("p,li").Each(func(i int, sel *goquery.Selection) {
			text := cleanBlock(sel.Text())
			if text != "" && looksLikeReview(text) {
				reviews = append(reviews, text)
			}
		})
	}

	if s.cfg.MaxReviews > 0 && len(reviews) > s.cfg.MaxReviews {
		reviews = reviews[:s.cfg.MaxReviews]
	}
	return reviews, nil
}

func cleanBlock(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) < minReviewLen || len(text) > maxReviewLen {
		return ""
	}
	return text
}

func looksLikeReview(text string) bool {
	lower := strings.ToLower(text)
	for _, cue := range reviewCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}
