// Package source implements the two content fetchers: Hacker News top
// stories and recent arXiv papers. Both map provider responses to the
// model types and report failures as model.FetchError so the pipeline
// can carry on with whatever the other source returned.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/huha-yy/ai-news-bot/internal/model"
)

const (
	hnDefaultBaseURL   = "https://hacker-news.firebaseio.com/v0"
	hnListTimeout      = 10 * time.Second
	hnItemTimeout      = 5 * time.Second
	hnMaxResponseBytes = 1 << 20
)

type HackerNews struct {
	baseURL    string
	listClient *http.Client
	itemClient *http.Client
}

// NewHackerNews creates a fetcher for the Firebase API. An empty baseURL
// selects the official endpoint; tests point it at a local server.
func NewHackerNews(baseURL string) *HackerNews {
	if baseURL == "" {
		baseURL = hnDefaultBaseURL
	}
	return &HackerNews{
		baseURL:    baseURL,
		listClient: &http.Client{Timeout: hnListTimeout},
		itemClient: &http.Client{Timeout: hnItemTimeout},
	}
}

type hnItem struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Score       int    `json:"score"`
	Descendants int    `json:"descendants"`
	Type        string `json:"type"`
}

// TopStories returns up to n front-page stories sorted by descending
// score, front-page order breaking ties. Rank is assigned after sorting.
// A failed item fetch skips that item; a failed list fetch returns an
// empty slice and a FetchError.
func (h *HackerNews) TopStories(ctx context.Context, n int) ([]model.Story, error) {
	var ids []int
	if err := getJSON(ctx, h.listClient, h.baseURL+"/topstories.json", &ids); err != nil {
		return nil, &model.FetchError{Source: "hackernews", Err: err}
	}

	if len(ids) > n {
		ids = ids[:n]
	}

	items := make([]hnItem, 0, len(ids))
	for _, id := range ids {
		var it hnItem
		url := fmt.Sprintf("%s/item/%d.json", h.baseURL, id)
		if err := getJSON(ctx, h.itemClient, url, &it); err != nil {
			log.Printf("[ERROR] hackernews: fetch item %d: %v", id, err)
			continue
		}
		if it.Title == "" || it.Type != "story" {
			continue
		}
		if it.URL == "" {
			it.URL = fmt.Sprintf("https://news.ycombinator.com/item?id=%d", it.ID)
		}
		items = append(items, it)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})

	return lo.Map(items, func(it hnItem, i int) model.Story {
		return model.Story{
			Title:    it.Title,
			URL:      it.URL,
			Score:    it.Score,
			Comments: it.Descendants,
			Rank:     i + 1,
		}
	}), nil
}

func getJSON(ctx context.Context, client *http.Client, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(io.LimitReader(resp.Body, hnMaxResponseBytes)).Decode(v)
}
