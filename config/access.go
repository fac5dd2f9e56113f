package config

import (
	"slices"
	"strconv"
	"strings"
)

// AllowedUsernameList splits TELEGRAM_ALLOWED_USERNAMES into normalized names.
func (t TelegramConfig) AllowedUsernameList() []string {
	result := make([]string, 0)

	for _, entry := range strings.Split(t.AllowedUsernames, ",") {
		name := normalizeUsername(entry)

		if name == "" {
			continue
		}

		result = append(result, name)
	}

	return result
}

// IsAllowedUsername reports whether a Telegram user may talk to the bot.
// The admin is always allowed.
func (t TelegramConfig) IsAllowedUsername(username string) bool {
	name := strings.ToLower(normalizeUsername(username))

	if name == "" {
		return false
	}

	if t.IsAdmin(username) {
		return true
	}

	return slices.ContainsFunc(t.AllowedUsernameList(), func(allowed string) bool {
		return strings.ToLower(allowed) == name
	})
}

func (t TelegramConfig) IsAdmin(username string) bool {
	admin := normalizeUsername(t.AdminUsername)

	if admin == "" {
		return false
	}

	return strings.EqualFold(admin, normalizeUsername(username))
}

// AdminChat parses TELEGRAM_ADMIN_CHAT_ID. The raw field is left untouched.
func (t TelegramConfig) AdminChat() (int64, bool) {
	if t.AdminChatID == "" {
		return 0, false
	}

	chatId, err := strconv.ParseInt(strings.TrimSpace(t.AdminChatID), 10, 64)

	if err != nil {
		return 0, false
	}

	return chatId, true
}

func normalizeUsername(username string) string {
	return strings.TrimPrefix(strings.TrimSpace(username), "@")
}
