package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/nkhandel/bharat-terminal/internal/models"
)

const defaultRefreshInterval = 3 * time.Minute

// Store is the slice of store behaviour the fetcher needs.
type Store interface {
	Instruments() []models.Instrument
	ReplaceNews(articles []models.NewsArticle, fetchedAt time.Time)
}

// Fetcher polls a prioritized list of news feed URLs and replaces the
// store's article set with the first non-empty response.
type Fetcher struct {
	urls     []string
	store    Store
	client   *http.Client
	interval time.Duration
}

func NewFetcher(urls []string, store Store) *Fetcher {
	return &Fetcher{
		urls:     urls,
		store:    store,
		client:   &http.Client{Timeout: 10 * time.Second},
		interval: defaultRefreshInterval,
	}
}

type feedResponse struct {
	Articles []feedArticle `json:"articles"`
}

type feedArticle struct {
	Category string   `json:"cat"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Impact   string   `json:"impact"`
	Time     string   `json:"time"`
	Source   string   `json:"source"`
	Affected []string `json:"affected"`
}

// Run polls the feed URLs until ctx is cancelled. One refresh is attempted
// immediately on start.
func (f *Fetcher) Run(ctx context.Context) {
	f.refresh(ctx)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.refresh(ctx)
		}
	}
}

func (f *Fetcher) refresh(ctx context.Context) {
	articles, err := f.Fetch(ctx)
	if err != nil {
		log.Printf("News refresh failed, keeping current articles: %v", err)
		return
	}
	f.store.ReplaceNews(articles, time.Now())
	log.Printf("News refreshed: %d articles", len(articles))
}

// Fetch tries each feed URL in priority order and returns the articles from
// the first non-empty response. Empty or failed sources are skipped.
func (f *Fetcher) Fetch(ctx context.Context) ([]models.NewsArticle, error) {
	universe := f.store.Instruments()

	for _, url := range f.urls {
		raw, err := f.fetchFeed(ctx, url)
		if err != nil {
			log.Printf("News source %s failed: %v", url, err)
			continue
		}
		if len(raw) == 0 {
			continue
		}
		return f.classify(raw, universe), nil
	}
	return nil, fmt.Errorf("all news sources failed or returned no articles")
}

func (f *Fetcher) fetchFeed(ctx context.Context, url string) ([]feedArticle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	var feed feedResponse
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}
	return feed.Articles, nil
}

// classify fills in impact, category and affected symbols for articles the
// feed left unlabeled, and assigns sequential IDs.
func (f *Fetcher) classify(raw []feedArticle, universe []models.Instrument) []models.NewsArticle {
	articles := make([]models.NewsArticle, 0, len(raw))
	for i, a := range raw {
		art := models.NewsArticle{
			ID:       i + 1,
			Category: a.Category,
			Title:    a.Title,
			Summary:  a.Summary,
			Impact:   a.Impact,
			Time:     a.Time,
			Source:   a.Source,
			Affected: a.Affected,
		}
		if art.Impact == "" {
			art.Impact = ClassifyImpact(art.Title, art.Summary)
		}
		if art.Category == "" {
			art.Category = ClassifyCategory(art.Title, art.Summary, a.Category)
		}
		if len(art.Affected) == 0 {
			art.Affected = DetectAffected(art.Title, art.Summary, universe)
		}
		articles = append(articles, art)
	}
	return articles
}
