// Package pipeline drives one run: fetch both sources, optionally
// enrich, render the digest, deliver to every configured channel.
// Fetch and delivery failures are isolated; only a render failure is
// fatal for the run.
package pipeline

import (
	"context"
	"log"
	"time"

	"github.com/huha-yy/ai-news-bot/internal/digest"
	"github.com/huha-yy/ai-news-bot/internal/model"
	"github.com/huha-yy/ai-news-bot/internal/notifier"
)

type StoryFetcher interface {
	TopStories(ctx context.Context, n int) ([]model.Story, error)
}

type PaperFetcher interface {
	LatestPapers(ctx context.Context, n int) ([]model.Paper, error)
}

type Enricher interface {
	EnrichStories(ctx context.Context, stories []model.Story) []model.Story
	Papers(ctx context.Context, papers []model.Paper) []model.Paper
}

type Pipeline struct {
	stories  StoryFetcher
	papers   PaperFetcher
	enricher Enricher

	notifiers []notifier.Notifier

	storyCount int
	paperCount int
	now        func() time.Time
}

// New assembles a pipeline. enricher may be nil when no LLM provider is
// configured; an empty notifiers slice is a valid, deliverless run.
func New(
	stories StoryFetcher,
	papers PaperFetcher,
	enricher Enricher,
	notifiers []notifier.Notifier,
	storyCount int,
	paperCount int,
) *Pipeline {
	return &Pipeline{
		stories:    stories,
		papers:     papers,
		enricher:   enricher,
		notifiers:  notifiers,
		storyCount: storyCount,
		paperCount: paperCount,
		now:        time.Now,
	}
}

// Result collects per-stage outcomes of one run.
type Result struct {
	Digest         *digest.Digest
	FetchErrors    []error
	DeliveryErrors []error
}

// Run executes one fetch-render-deliver sequence. The returned error is
// non-nil only when rendering failed; everything else is recorded in
// the Result and logged.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	res := &Result{}

	log.Printf("[INFO] fetching Hacker News top %d", p.storyCount)
	stories, err := p.stories.TopStories(ctx, p.storyCount)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		res.FetchErrors = append(res.FetchErrors, err)
	}
	log.Printf("[INFO] got %d stories", len(stories))

	log.Printf("[INFO] fetching arXiv papers, top %d", p.paperCount)
	papers, err := p.papers.LatestPapers(ctx, p.paperCount)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		res.FetchErrors = append(res.FetchErrors, err)
	}
	log.Printf("[INFO] got %d papers", len(papers))

	if p.enricher != nil {
		log.Printf("[INFO] enriching items")
		stories = p.enricher.EnrichStories(ctx, stories)
		papers = p.enricher.Papers(ctx, papers)
	}

	d, err := digest.Render(stories, papers, p.now())
	if err != nil {
		return res, err
	}
	res.Digest = d

	// The digest is never lost once rendered, even if every delivery fails.
	log.Printf("[INFO] digest generated:\n%s", d.Plain)

	for _, n := range p.notifiers {
		if err := n.Push(ctx, d); err != nil {
			log.Printf("[ERROR] %v", err)
			res.DeliveryErrors = append(res.DeliveryErrors, err)
			continue
		}
		log.Printf("[INFO] delivered via %s", n.Name())
	}

	return res, nil
}
