package digest

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/huha-yy/ai-news-bot/internal/model"
)

var fixedNow = time.Date(2026, 8, 30, 8, 15, 0, 0, time.UTC)

func sampleStories() []model.Story {
	return []model.Story{
		{Title: "A", URL: "https://a.example/a", Score: 900, Comments: 12, Rank: 1},
		{Title: "B", URL: "https://a.example/b", Score: 10, Comments: 3, Rank: 2},
	}
}

func samplePapers() []model.Paper {
	return []model.Paper{
		{Category: "cs.AI", Title: "X", Authors: []string{"Y"}, Summary: "Z...", URL: "http://arxiv.org/abs/1"},
	}
}

func TestRenderDeterministic(t *testing.T) {
	d1, err := Render(sampleStories(), samplePapers(), fixedNow)
	require.NoError(t, err)
	d2, err := Render(sampleStories(), samplePapers(), fixedNow)
	require.NoError(t, err)

	require.Equal(t, d1.Plain, d2.Plain)
	require.Equal(t, d1.Markdown, d2.Markdown)
	require.Equal(t, d1.Title, d2.Title)
}

func TestRenderScenario(t *testing.T) {
	d, err := Render(sampleStories(), samplePapers(), fixedNow)
	require.NoError(t, err)

	require.Contains(t, d.Plain, "📰 AI Daily Digest (2026-08-30)")
	require.Contains(t, d.Plain, "🔥 Hacker News Top 2")
	require.Contains(t, d.Plain, "📚 ArXiv AI papers")
	require.Contains(t, d.Plain, "⏰ Generated at 08:15")

	// stories in rank order, news section before papers section
	hn := strings.Index(d.Plain, "🔥 Hacker News")
	ax := strings.Index(d.Plain, "📚 ArXiv AI papers")
	require.Less(t, hn, ax)

	a := strings.Index(d.Plain, "1. 🔗 [900↑] A")
	b := strings.Index(d.Plain, "2. 🔗 [10↑] B")
	require.NotEqual(t, -1, a)
	require.NotEqual(t, -1, b)
	require.Less(t, a, b)

	require.Contains(t, d.Plain, "1. [cs.AI] X")
	require.Contains(t, d.Plain, "   Authors: Y")
	require.Contains(t, d.Plain, "   Z...")
}

func TestRenderEmptySectionsKeepHeaders(t *testing.T) {
	d, err := Render(nil, samplePapers(), fixedNow)
	require.NoError(t, err)
	require.Contains(t, d.Plain, "🔥 Hacker News Top 0")
	require.Contains(t, d.Plain, "(no data)")
	require.Contains(t, d.Plain, "1. [cs.AI] X")

	d, err = Render(sampleStories(), nil, fixedNow)
	require.NoError(t, err)
	require.Contains(t, d.Plain, "📚 ArXiv AI papers")
	require.Contains(t, d.Plain, "(no data)")
	require.Contains(t, d.Plain, "1. 🔗 [900↑] A")

	d, err = Render(nil, nil, fixedNow)
	require.NoError(t, err)
	require.Contains(t, d.Plain, "🔥 Hacker News Top 0")
	require.Contains(t, d.Plain, "📚 ArXiv AI papers")
	require.Equal(t, 2, strings.Count(d.Plain, "(no data)"))
}

func TestRenderEmptyTitleIsRenderError(t *testing.T) {
	stories := []model.Story{{Title: "", URL: "https://a.example", Score: 1, Rank: 1}}

	d, err := Render(stories, nil, fixedNow)
	require.Error(t, err)
	require.Nil(t, d)

	var renderErr *model.RenderError
	require.True(t, errors.As(err, &renderErr))

	papers := []model.Paper{{Category: "cs.AI", Title: ""}}
	_, err = Render(nil, papers, fixedNow)
	require.Error(t, err)
	require.True(t, errors.As(err, &renderErr))
}

func TestRenderTruncatesLongSummaries(t *testing.T) {
	papers := []model.Paper{{
		Category: "cs.LG",
		Title:    "Long",
		Authors:  []string{"A"},
		Summary:  strings.Repeat("x", 500),
	}}

	d, err := Render(nil, papers, fixedNow)
	require.NoError(t, err)
	require.Contains(t, d.Plain, strings.Repeat("x", 200)+"...")
	require.NotContains(t, d.Plain, strings.Repeat("x", 201))
}

func TestRenderPrefersTranslations(t *testing.T) {
	stories := []model.Story{{
		Title: "English", TitleCN: "中文标题", Intro: "一句话简介",
		URL: "https://a.example", Score: 5, Rank: 1,
	}}
	papers := []model.Paper{{
		Category: "cs.AI", Title: "Paper", TitleCN: "论文标题",
		Summary: "abstract", SummaryCN: "中文摘要", Authors: []string{"A"},
	}}

	d, err := Render(stories, papers, fixedNow)
	require.NoError(t, err)
	require.Contains(t, d.Plain, "中文标题")
	require.Contains(t, d.Plain, "📝 一句话简介")
	require.Contains(t, d.Plain, "论文标题")
	require.Contains(t, d.Plain, "中文摘要")
	require.NotContains(t, d.Plain, "[5↑] English")
}

func TestRenderMarkdownVariant(t *testing.T) {
	d, err := Render(sampleStories(), samplePapers(), fixedNow)
	require.NoError(t, err)

	require.Contains(t, d.Markdown, "# 📰 AI Daily Digest (2026-08-30)")
	require.Contains(t, d.Markdown, "**1. [A](https://a.example/a)**")
	require.Contains(t, d.Markdown, "👍 900 upvotes | 💬 12 comments")
	require.Contains(t, d.Markdown, "🔗 [Read paper](http://arxiv.org/abs/1)")
	require.Contains(t, d.Markdown, "📌 Sources: Hacker News + arXiv")
}
