package main

import (
	"context"
	"fmt"

	"github.com/nejkit/linear-tracker-bot/config"
	"github.com/nejkit/linear-tracker-bot/provider"
	"github.com/nejkit/linear-tracker-bot/storage"
	log "github.com/sirupsen/logrus"
)

// endpoints lets tests point the connectors at fakes.
type endpoints struct {
	telegram string
	openAI   string
}

type check struct {
	component string
	run       func(ctx context.Context) (log.Fields, error)
}

func runPreflight(ctx context.Context, logger *log.Entry, cfg config.AppConfig) bool {
	return runPreflightWith(ctx, logger, cfg, endpoints{})
}

func runPreflightWith(ctx context.Context, logger *log.Entry, cfg config.AppConfig, ep endpoints) bool {
	var tgCli *provider.TelegramClient

	checks := []check{
		{component: "redis", run: func(ctx context.Context) (log.Fields, error) {
			redisCli, err := storage.NewRedisClient(cfg.RedisConfig.URL)

			if err != nil {
				return nil, err
			}

			defer redisCli.Close()

			return log.Fields{"addr": redisCli.Options().Addr}, redisCli.Ping()
		}},
		{component: "linear", run: func(ctx context.Context) (log.Fields, error) {
			viewer, err := provider.NewLinearClient(cfg.APIURL, cfg.APIKey).Viewer(ctx)

			if err != nil {
				return nil, err
			}

			return log.Fields{"viewer": viewer.Name, "team_id": cfg.TeamID}, nil
		}},
		{component: "openai", run: func(ctx context.Context) (log.Fields, error) {
			count, err := provider.NewOpenAIFromKey(cfg.AiConfig.Token, ep.openAI).Check(ctx)

			return log.Fields{"models": count}, err
		}},
		{component: "telegram", run: func(ctx context.Context) (log.Fields, error) {
			api, err := provider.NewBotAPI(cfg.TelegramConfig.Token, ep.telegram)

			if err != nil {
				return nil, err
			}

			tgCli = provider.NewTelegramClient(api)

			return log.Fields{"username": tgCli.Username()}, nil
		}},
	}

	ok := true

	for _, c := range checks {
		entry := logger.WithField("component", c.component)
		fields, err := c.run(ctx)

		if err != nil {
			entry.WithError(err).Error("Preflight check failed")
			ok = false
			continue
		}

		entry.WithFields(fields).Info("Preflight check passed")
	}

	if tgCli != nil {
		notifyAdmin(logger, tgCli, cfg)
	}

	return ok
}

func notifyAdmin(logger *log.Entry, tgCli *provider.TelegramClient, cfg config.AppConfig) {
	chatId, ok := cfg.AdminChat()

	if !ok {
		if cfg.AdminChatID != "" {
			logger.WithField("chat_id", cfg.AdminChatID).Warn("Admin chat id is not numeric, skipping startup notice")
		}

		return
	}

	if _, err := tgCli.SendMessageForChatId(chatId, fmt.Sprintf("%s started", cfg.BotBrandName)); err != nil {
		logger.WithError(err).Warn("Failed to notify admin chat")
	}
}
