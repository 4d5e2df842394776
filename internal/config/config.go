package config

import (
	"log/slog"
	"sync"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
)

type Config struct {
	PushPlusToken    string `hcl:"pushplus_token" env:"PUSHPLUS_TOKEN"`
	TelegramBotToken string `hcl:"telegram_bot_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64  `hcl:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`

	HNTopN          int      `hcl:"hn_top_n" env:"HN_TOP_N" default:"10"`
	ArxivTopN       int      `hcl:"arxiv_top_n" env:"ARXIV_TOP_N" default:"5"`
	ArxivCategories []string `hcl:"arxiv_categories" env:"ARXIV_CATEGORIES" default:"cs.AI,cs.LG,cs.CL"`

	AIType    string        `hcl:"ai_type" env:"AI_TYPE" default:"openai"`
	AIBaseURL string        `hcl:"ai_base_url" env:"AI_BASE_URL" default:"https://integrate.api.nvidia.com/v1"`
	AIKey     string        `hcl:"ai_key" env:"AI_KEY"`
	AIModel   string        `hcl:"ai_model" env:"AI_MODEL" default:"moonshotai/kimi-k2.5"`
	AITimeout time.Duration `hcl:"ai_timeout" env:"AI_TIMEOUT" default:"90s"`
}

var (
	cfg  Config
	once sync.Once
)

func Get() Config {
	once.Do(func() {
		loader := aconfig.LoaderFor(&cfg, aconfig.Config{
			EnvPrefix: "ANB",
			Files:     []string{"./config.hcl", "./config.local.hcl", "$HOME/.config/ai-news-bot/config.hcl"},
			FileDecoders: map[string]aconfig.FileDecoder{
				".hcl": aconfighcl.New(),
			},
		})

		if err := loader.Load(); err != nil {
			slog.Error("failed to load config", "err", err)
		}
	})

	return cfg
}

// AIEnabled reports whether the configured provider has what it needs:
// an API key for OpenAI-compatible endpoints, a base URL for Ollama.
func (c Config) AIEnabled() bool {
	if c.AIType == "ollama" {
		return c.AIBaseURL != ""
	}
	return c.AIKey != ""
}
