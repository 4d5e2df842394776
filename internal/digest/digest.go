// Package digest renders the collected stories and papers into the text
// documents the notifiers deliver: a plain variant for Telegram and a
// Markdown variant for PushPlus. Rendering is a pure function of its
// inputs and the supplied timestamp, byte-for-byte reproducible.
package digest

import (
	"fmt"
	"strings"
	"time"

	"github.com/huha-yy/ai-news-bot/internal/model"
)

const summaryMaxRunes = 200

// Digest is the finished document pair for one run.
type Digest struct {
	Title    string
	Plain    string
	Markdown string
}

// Render validates the inputs and produces both variants. A story or
// paper with an empty title is malformed input and yields a RenderError.
// An empty source still gets its section header, followed by a single
// "no data" line; the section is never silently omitted.
func Render(stories []model.Story, papers []model.Paper, now time.Time) (*Digest, error) {
	for i, s := range stories {
		if s.Title == "" {
			return nil, &model.RenderError{Err: fmt.Errorf("story %d has empty title", i)}
		}
	}
	for i, p := range papers {
		if p.Title == "" {
			return nil, &model.RenderError{Err: fmt.Errorf("paper %d has empty title", i)}
		}
	}

	date := now.Format("2006-01-02")
	clock := now.Format("15:04")

	return &Digest{
		Title:    fmt.Sprintf("AI Daily Digest (%s)", date),
		Plain:    renderPlain(stories, papers, date, clock),
		Markdown: renderMarkdown(stories, papers, date, clock),
	}, nil
}

func renderPlain(stories []model.Story, papers []model.Paper, date, clock string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📰 AI Daily Digest (%s)\n\n", date)

	fmt.Fprintf(&b, "🔥 Hacker News Top %d\n\n", len(stories))
	if len(stories) == 0 {
		b.WriteString("   (no data)\n\n")
	}
	for _, s := range stories {
		fmt.Fprintf(&b, "%d. 🔗 [%d↑] %s\n", s.Rank, s.Score, s.DisplayTitle())
		if s.Intro != "" {
			fmt.Fprintf(&b, "   📝 %s\n", s.Intro)
		}
		fmt.Fprintf(&b, "   %s\n\n", s.URL)
	}

	fmt.Fprintf(&b, "📚 ArXiv AI papers\n\n")
	if len(papers) == 0 {
		b.WriteString("   (no data)\n\n")
	}
	for i, p := range papers {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, p.Category, p.DisplayTitle())
		fmt.Fprintf(&b, "   Authors: %s\n", strings.Join(p.Authors, ", "))
		fmt.Fprintf(&b, "   %s\n\n", truncateRunes(p.DisplaySummary(), summaryMaxRunes))
	}

	fmt.Fprintf(&b, "⏰ Generated at %s", clock)

	return b.String()
}

func renderMarkdown(stories []model.Story, papers []model.Paper, date, clock string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# 📰 AI Daily Digest (%s)\n\n", date)

	fmt.Fprintf(&b, "## 🔥 Hacker News Top %d\n\n", len(stories))
	if len(stories) == 0 {
		b.WriteString("(no data)\n\n")
	}
	for _, s := range stories {
		fmt.Fprintf(&b, "**%d. [%s](%s)**\n", s.Rank, s.DisplayTitle(), s.URL)
		if s.Intro != "" {
			fmt.Fprintf(&b, "   📝 %s\n", s.Intro)
		}
		fmt.Fprintf(&b, "   👍 %d upvotes | 💬 %d comments\n\n", s.Score, s.Comments)
	}

	fmt.Fprintf(&b, "## 📚 ArXiv AI papers\n\n")
	if len(papers) == 0 {
		b.WriteString("(no data)\n\n")
	}
	for i, p := range papers {
		fmt.Fprintf(&b, "**%d. [%s] %s**\n", i+1, p.Category, p.DisplayTitle())
		fmt.Fprintf(&b, "   %s\n", truncateRunes(p.DisplaySummary(), summaryMaxRunes))
		fmt.Fprintf(&b, "   🔗 [Read paper](%s)\n\n", p.URL)
	}

	b.WriteString("---\n")
	b.WriteString("📌 Sources: Hacker News + arXiv\n\n")
	fmt.Fprintf(&b, "⏰ Generated at %s", clock)

	return b.String()
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
