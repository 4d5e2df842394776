// Package model defines the data structures passed through the digest
// pipeline: stories from Hacker News, papers from arXiv, and the error
// kinds each stage may report. All values live for a single run.
package model

// Story is one ranked Hacker News item. TitleCN and Intro are filled by
// the optional LLM enrichment step and stay empty otherwise.
type Story struct {
	Title    string
	URL      string
	Score    int
	Comments int
	Rank     int

	TitleCN string
	Intro   string
}

// DisplayTitle prefers the translated title when enrichment produced one.
func (s Story) DisplayTitle() string {
	if s.TitleCN != "" {
		return s.TitleCN
	}
	return s.Title
}

// Paper is one arXiv preprint. Authors keep the source order.
type Paper struct {
	Category string
	Title    string
	Authors  []string
	Summary  string
	URL      string

	TitleCN   string
	SummaryCN string
}

func (p Paper) DisplayTitle() string {
	if p.TitleCN != "" {
		return p.TitleCN
	}
	return p.Title
}

func (p Paper) DisplaySummary() string {
	if p.SummaryCN != "" {
		return p.SummaryCN
	}
	return p.Summary
}
