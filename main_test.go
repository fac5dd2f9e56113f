package main

import (
	"testing"

	"github.com/nejkit/linear-tracker-bot/config"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogging(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	setupLogging("debug")
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	setupLogging("nonsense")
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}

func TestLogConfigErrorListsEveryField(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	_, err := config.Load(map[string]string{"LINEAR_TEAM_ID": "TEAM1"})
	logConfigError(err)

	var fields []string
	for _, entry := range hook.AllEntries() {
		if field, ok := entry.Data["field"].(string); ok {
			fields = append(fields, field)
		}
	}

	assert.Equal(t, []string{"TELEGRAM_BOT_TOKEN", "LINEAR_API_KEY", "OPENAI_API_KEY"}, fields)
	assert.Contains(t, hook.LastEntry().Message, "invalid configuration")
}
