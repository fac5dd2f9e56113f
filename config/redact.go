package config

import (
	"net/url"

	log "github.com/sirupsen/logrus"
)

// LogFields returns every setting keyed by its variable name with secrets masked.
func (c AppConfig) LogFields() log.Fields {
	return log.Fields{
		"TELEGRAM_BOT_TOKEN":         maskSecret(c.TelegramConfig.Token),
		"TELEGRAM_ALLOWED_USERNAMES": c.AllowedUsernames,
		"TELEGRAM_ADMIN_USERNAME":    c.AdminUsername,
		"TELEGRAM_ADMIN_CHAT_ID":     c.AdminChatID,
		"LINEAR_API_KEY":             maskSecret(c.APIKey),
		"LINEAR_TEAM_ID":             c.TeamID,
		"LINEAR_WORKSPACE_SLUG":      c.WorkspaceSlug,
		"LINEAR_TICKET_PREFIX":       c.TicketPrefix,
		"LINEAR_WEBHOOK":             c.Webhook,
		"LINEAR_SIGNING_SECRETS":     maskSecret(c.SigningSecrets),
		"LINEAR_API_URL":             c.APIURL,
		"REDIS_URL":                  maskURLPassword(c.RedisConfig.URL),
		"OPENAI_API_KEY":             maskSecret(c.AiConfig.Token),
		"BOT_BRAND_NAME":             c.BotBrandName,
	}
}

func maskSecret(value string) string {
	if value == "" {
		return ""
	}

	if len(value) > 8 {
		return value[:4] + "..." + value[len(value)-4:]
	}

	return "***masked***"
}

func maskURLPassword(raw string) string {
	parsed, err := url.Parse(raw)

	if err != nil {
		return "***masked***"
	}

	return parsed.Redacted()
}
