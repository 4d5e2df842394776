// Package translate enriches fetched items with Chinese titles, one-line
// intros and translated abstracts through an LLM provider. Everything
// here is best-effort: a failed or mismatched completion leaves the
// original English text in place and never fails the run.
package translate

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"

	"github.com/huha-yy/ai-news-bot/internal/model"
)

type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const (
	translatePrompt = "请将以下英文文本逐条翻译为简洁的中文，保持编号格式。" +
		"只输出翻译结果，不要加任何解释。" +
		"专有名词（如公司名、产品名、人名）保留英文原文。\n\n"

	introPrompt = "以下是技术社区的热门文章标题（部分附正文节选）。" +
		"请根据每条内容，用中文写一句话简介（30-60字），帮助读者快速了解文章的核心内容。" +
		"保持编号格式，每行一条。只输出简介，不要重复标题。\n\n"

	pageExcerptTimeout = 10 * time.Second
	pageExcerptRunes   = 300
)

type Translator struct {
	completer  Completer
	pageClient *http.Client
}

func New(completer Completer) *Translator {
	return &Translator{
		completer:  completer,
		pageClient: &http.Client{Timeout: pageExcerptTimeout},
	}
}

// Texts batch-translates texts with a numbered-list prompt. On any
// failure, or when the model returns a different number of lines, the
// originals are returned unchanged.
func (t *Translator) Texts(ctx context.Context, texts []string) []string {
	if len(texts) == 0 {
		return texts
	}

	var b strings.Builder
	for i, text := range texts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, text)
	}

	result, err := t.completer.Complete(ctx, translatePrompt+b.String())
	if err != nil {
		log.Printf("[ERROR] translate: %v", err)
		return texts
	}

	translated, ok := parseNumbered(result, len(texts))
	if !ok {
		log.Printf("[ERROR] translate: result count mismatch, keeping originals")
		return texts
	}

	return translated
}

// EnrichStories fills TitleCN for every story and generates one-line
// intros, grounding each intro in an extracted page excerpt when the
// story page is reachable.
func (t *Translator) EnrichStories(ctx context.Context, stories []model.Story) []model.Story {
	if len(stories) == 0 {
		return stories
	}

	titles := make([]string, len(stories))
	for i, s := range stories {
		titles[i] = s.Title
	}

	translated := t.Texts(ctx, titles)
	for i := range stories {
		stories[i].TitleCN = translated[i]
	}

	var b strings.Builder
	for i, s := range stories {
		fmt.Fprintf(&b, "%d. %s", i+1, s.Title)
		if excerpt := t.pageExcerpt(ctx, s.URL); excerpt != "" {
			fmt.Fprintf(&b, "（正文节选：%s）", excerpt)
		}
		b.WriteByte('\n')
	}

	result, err := t.completer.Complete(ctx, introPrompt+b.String())
	if err != nil {
		log.Printf("[ERROR] generate intros: %v", err)
		return stories
	}

	intros, ok := parseNumbered(result, len(stories))
	if !ok {
		log.Printf("[ERROR] generate intros: result count mismatch, skipping")
		return stories
	}

	for i := range stories {
		stories[i].Intro = intros[i]
	}

	return stories
}

// Papers translates titles and abstracts in one interleaved batch.
func (t *Translator) Papers(ctx context.Context, papers []model.Paper) []model.Paper {
	if len(papers) == 0 {
		return papers
	}

	texts := make([]string, 0, 2*len(papers))
	for _, p := range papers {
		texts = append(texts, p.Title, p.Summary)
	}

	translated := t.Texts(ctx, texts)
	if len(translated) != len(texts) {
		return papers
	}

	for i := range papers {
		papers[i].TitleCN = translated[i*2]
		papers[i].SummaryCN = translated[i*2+1]
	}

	return papers
}

var (
	thinkBlock        = regexp.MustCompile(`(?s)<think>.*?</think>`)
	redundantNewLines = regexp.MustCompile(`\n{3,}`)
)

// stripThinking drops <think>...</think> blocks emitted by reasoning
// models before their answer.
func stripThinking(s string) string {
	return strings.TrimSpace(thinkBlock.ReplaceAllString(s, ""))
}

// parseNumbered extracts the payload of a numbered result list,
// tolerating "1.", "1、" and "1." prefixes. It reports false when the
// line count does not match want.
func parseNumbered(result string, want int) ([]string, bool) {
	var out []string
	for _, line := range strings.Split(stripThinking(result), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, stripNumberPrefix(line))
	}

	if len(out) != want {
		return nil, false
	}
	return out, true
}

func stripNumberPrefix(line string) string {
	runes := []rune(line)
	for l := 1; l <= 4 && l < len(runes); l++ {
		sep := runes[l]
		if sep != '.' && sep != '、' && sep != '．' {
			continue
		}
		if !allDigits(runes[:l]) {
			break
		}
		return strings.TrimSpace(string(runes[l+1:]))
	}
	return line
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// pageExcerpt fetches a story page and extracts a short readable-text
// excerpt to ground intro generation. Best-effort: any failure yields "".
func (t *Translator) pageExcerpt(ctx context.Context, pageURL string) string {
	if pageURL == "" {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return ""
	}

	resp, err := t.pageClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	doc, err := readability.FromReader(resp.Body, nil)
	if err != nil {
		return ""
	}

	text := redundantNewLines.ReplaceAllString(doc.TextContent, "\n")
	text = strings.Join(strings.Fields(text), " ")

	runes := []rune(text)
	if len(runes) > pageExcerptRunes {
		text = string(runes[:pageExcerptRunes])
	}
	return text
}
