package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/samber/lo"

	"github.com/huha-yy/ai-news-bot/internal/model"
)

const (
	arxivDefaultBaseURL = "http://export.arxiv.org/api/query"
	arxivTimeout        = 15 * time.Second
)

type Arxiv struct {
	baseURL    string
	categories []string
	client     *http.Client
	parser     *gofeed.Parser
}

// NewArxiv creates a fetcher for the arXiv export API, filtered to the
// given subject categories (e.g. cs.AI). The API answers in Atom, which
// gofeed parses including authors and category terms.
func NewArxiv(baseURL string, categories []string) *Arxiv {
	if baseURL == "" {
		baseURL = arxivDefaultBaseURL
	}
	return &Arxiv{
		baseURL:    baseURL,
		categories: categories,
		client:     &http.Client{Timeout: arxivTimeout},
		parser:     gofeed.NewParser(),
	}
}

// LatestPapers returns up to n papers in the configured categories,
// most recently submitted first.
func (a *Arxiv) LatestPapers(ctx context.Context, n int) ([]model.Paper, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.queryURL(n), nil)
	if err != nil {
		return nil, &model.FetchError{Source: "arxiv", Err: err}
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &model.FetchError{Source: "arxiv", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.FetchError{Source: "arxiv", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	feed, err := a.parser.Parse(resp.Body)
	if err != nil {
		return nil, &model.FetchError{Source: "arxiv", Err: fmt.Errorf("parse feed: %w", err)}
	}

	papers := make([]model.Paper, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Title == "" {
			continue
		}

		category := ""
		if len(item.Categories) > 0 {
			category = item.Categories[0]
		}

		papers = append(papers, model.Paper{
			Category: category,
			Title:    collapseWhitespace(item.Title),
			Authors: lo.Map(item.Authors, func(p *gofeed.Person, _ int) string {
				return p.Name
			}),
			Summary: collapseWhitespace(item.Description),
			URL:     item.Link,
		})
	}

	return papers, nil
}

func (a *Arxiv) queryURL(n int) string {
	cats := lo.Map(a.categories, func(c string, _ int) string {
		return "cat:" + c
	})

	q := url.Values{}
	q.Set("search_query", strings.Join(cats, " OR "))
	q.Set("start", "0")
	q.Set("max_results", strconv.Itoa(n))
	q.Set("sortBy", "submittedDate")
	q.Set("sortOrder", "descending")

	return a.baseURL + "?" + q.Encode()
}

// arXiv wraps titles and abstracts with newlines and padding.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
