package provider

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramClient struct {
	api *tgbotapi.BotAPI
}

func NewTelegramClient(api *tgbotapi.BotAPI) *TelegramClient {
	return &TelegramClient{api: api}
}

// NewBotAPI authenticates the token with getMe. An empty endpoint means the
// public Bot API.
func NewBotAPI(token string, endpoint string) (*tgbotapi.BotAPI, error) {
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)

	if err != nil {
		return nil, fmt.Errorf("telegram getMe: %w", err)
	}

	return api, nil
}

func (t *TelegramClient) Username() string {
	return t.api.Self.UserName
}

func (t *TelegramClient) SendMessageForChatId(chatId int64, text string) (int, error) {
	response, err := t.api.Send(tgbotapi.NewMessage(chatId, text))

	if err != nil {
		return 0, fmt.Errorf("telegram sendMessage to %d: %w", chatId, err)
	}

	return response.MessageID, nil
}
