package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffaiyaz23/antisell/internal/filter"
)

func setCredentials(t *testing.T) {
	t.Setenv("GROUPME_BOT_TOKEN", "bot-token")
	t.Setenv("GROUPME_GROUP_ID", "12345")
	t.Setenv("GROUPME_ACCESS_TOKEN", "access-token")
}

func TestLoad_Defaults(t *testing.T) {
	setCredentials(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "bot-token", cfg.BotToken)
	assert.Equal(t, "12345", cfg.GroupID)
	assert.Equal(t, "access-token", cfg.AccessToken)
	assert.Equal(t, "https://api.groupme.com/v3", cfg.APIURL)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	assert.False(t, cfg.NotifyOnDelete)
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
	assert.Equal(t, filter.DefaultBannedWords, cfg.Words())
	assert.Empty(t, cfg.Placeholders())
	assert.Equal(t, Presence{BotToken: true, GroupID: true, AccessToken: true}, cfg.Presence())
}

func TestLoad_Overrides(t *testing.T) {
	setCredentials(t)
	t.Setenv("PORT", "8081")
	t.Setenv("BANNED_WORDS", "zelle, obo")
	t.Setenv("NOTIFY_ON_DELETE", "true")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, []string{"zelle", " obo"}, cfg.Words())
	assert.True(t, cfg.NotifyOnDelete)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_Placeholders(t *testing.T) {
	t.Setenv("GROUPME_BOT_TOKEN", PlaceholderBotToken)
	t.Setenv("GROUPME_GROUP_ID", "12345")
	t.Setenv("GROUPME_ACCESS_TOKEN", PlaceholderAccessToken)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"GROUPME_BOT_TOKEN", "GROUPME_ACCESS_TOKEN"}, cfg.Placeholders())
	assert.Equal(t, Presence{GroupID: true}, cfg.Presence())
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name, key, value string
	}{
		{"port out of range", "PORT", "70000"},
		{"port not a number", "PORT", "abc"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"unknown log format", "LOG_FORMAT", "xml"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setCredentials(t)
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestSetupInstructions(t *testing.T) {
	out := SetupInstructions([]string{"GROUPME_ACCESS_TOKEN"})

	assert.Contains(t, out, "https://dev.groupme.com/bots")
	assert.Contains(t, out, "GROUPME_BOT_TOKEN\n")
	assert.Contains(t, out, "GROUPME_ACCESS_TOKEN  (missing)")
	assert.Contains(t, out, "/webhook")
}
