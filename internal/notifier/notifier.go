// Package notifier implements the delivery channels. A Notifier is
// constructed only when its credentials are configured, so the pipeline
// can iterate the set uniformly without per-channel branching.
package notifier

import (
	"context"

	"github.com/huha-yy/ai-news-bot/internal/digest"
)

type Notifier interface {
	Name() string
	Push(ctx context.Context, d *digest.Digest) error
}
