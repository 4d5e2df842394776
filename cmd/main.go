package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/huha-yy/ai-news-bot/internal/config"
	"github.com/huha-yy/ai-news-bot/internal/notifier"
	"github.com/huha-yy/ai-news-bot/internal/pipeline"
	"github.com/huha-yy/ai-news-bot/internal/source"
	"github.com/huha-yy/ai-news-bot/internal/summary"
	"github.com/huha-yy/ai-news-bot/internal/translate"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Get()

	var enricher pipeline.Enricher
	if cfg.AIEnabled() {
		var completer translate.Completer
		switch cfg.AIType {
		case "ollama":
			completer = summary.NewOllamaCompleter(cfg.AIBaseURL, cfg.AIModel, cfg.AITimeout)
			log.Printf("[INFO] using Ollama completer (model: %s)", cfg.AIModel)
		default:
			completer = summary.NewOpenAICompleter(cfg.AIBaseURL, cfg.AIKey, cfg.AIModel, cfg.AITimeout)
			log.Printf("[INFO] using OpenAI-compatible completer (model: %s)", cfg.AIModel)
		}
		enricher = translate.New(completer)
	} else {
		log.Printf("[INFO] no LLM provider configured, skipping translation")
	}

	var notifiers []notifier.Notifier

	if cfg.PushPlusToken != "" {
		notifiers = append(notifiers, notifier.NewPushPlus("", cfg.PushPlusToken))
	} else {
		log.Printf("[INFO] PushPlus token not set, channel disabled")
	}

	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
		if err != nil {
			log.Printf("[ERROR] failed to create botAPI: %v", err)
		} else {
			notifiers = append(notifiers, notifier.NewTelegram(botAPI, cfg.TelegramChatID))
		}
	} else {
		log.Printf("[INFO] Telegram credentials not set, channel disabled")
	}

	p := pipeline.New(
		source.NewHackerNews(""),
		source.NewArxiv("", cfg.ArxivCategories),
		enricher,
		notifiers,
		cfg.HNTopN,
		cfg.ArxivTopN,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if _, err := p.Run(ctx); err != nil {
		log.Printf("[ERROR] run failed: %v", err)
		return 1
	}

	return 0
}
