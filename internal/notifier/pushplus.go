package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/huha-yy/ai-news-bot/internal/digest"
	"github.com/huha-yy/ai-news-bot/internal/model"
)

const (
	pushPlusDefaultEndpoint = "https://www.pushplus.plus/send"
	pushPlusTimeout         = 10 * time.Second
)

// PushPlus delivers the Markdown digest to WeChat through the PushPlus
// relay. The API answers 200 at the HTTP level and signals errors in a
// JSON code field.
type PushPlus struct {
	endpoint string
	token    string
	client   *http.Client
}

func NewPushPlus(endpoint, token string) *PushPlus {
	if endpoint == "" {
		endpoint = pushPlusDefaultEndpoint
	}
	return &PushPlus{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: pushPlusTimeout},
	}
}

func (p *PushPlus) Name() string { return "pushplus" }

func (p *PushPlus) Push(ctx context.Context, d *digest.Digest) error {
	payload, err := json.Marshal(map[string]string{
		"token":    p.token,
		"title":    d.Title,
		"content":  d.Markdown,
		"template": "markdown",
	})
	if err != nil {
		return &model.DeliveryError{Channel: p.Name(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return &model.DeliveryError{Channel: p.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return &model.DeliveryError{Channel: p.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &model.DeliveryError{Channel: p.Name(), Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var result struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return &model.DeliveryError{Channel: p.Name(), Err: fmt.Errorf("decode response: %w", err)}
	}

	if result.Code != 200 {
		return &model.DeliveryError{Channel: p.Name(), Err: fmt.Errorf("api code %d: %s", result.Code, result.Msg)}
	}

	return nil
}
