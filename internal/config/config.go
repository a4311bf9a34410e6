// internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/ffaiyaz23/antisell/internal/filter"
)

// Placeholder values shipped as defaults; a credential still equal to
// one of these has not been configured.
const (
	PlaceholderBotToken    = "YOUR_BOT_TOKEN_HERE"
	PlaceholderGroupID     = "YOUR_GROUP_ID_HERE"
	PlaceholderAccessToken = "YOUR_ACCESS_TOKEN_HERE"
)

// MockAPIURL selects the in-process fake GroupMe API.
const MockAPIURL = "mock"

type Config struct {
	BotToken    string `env:"GROUPME_BOT_TOKEN,default=YOUR_BOT_TOKEN_HERE" validate:"required"`
	GroupID     string `env:"GROUPME_GROUP_ID,default=YOUR_GROUP_ID_HERE" validate:"required"`
	AccessToken string `env:"GROUPME_ACCESS_TOKEN,default=YOUR_ACCESS_TOKEN_HERE" validate:"required"`
	APIURL      string `env:"GROUPME_API_URL,default=https://api.groupme.com/v3" validate:"required"`

	Host string `env:"HOST,default=0.0.0.0"`
	Port int    `env:"PORT,default=5000" validate:"min=1,max=65535"`

	BannedWords     string        `env:"BANNED_WORDS"` // comma separated; empty keeps the defaults
	NotifyOnDelete  bool          `env:"NOTIFY_ON_DELETE,default=false"`
	WarningTemplate string        `env:"WARNING_TEMPLATE,default=@%s Selling messages are not allowed in this group! 🚫"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT,default=0s"`

	LogLevel     string `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
	LogFormat    string `env:"LOG_FORMAT,default=json" validate:"oneof=json console"`
	ServiceName  string `env:"SERVICE_NAME,default=antisell" validate:"required"`
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

var validate = validator.New()

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Words returns the banned word list, falling back to filter.DefaultBannedWords.
func (c Config) Words() []string {
	if strings.TrimSpace(c.BannedWords) == "" {
		return filter.DefaultBannedWords
	}
	return strings.Split(c.BannedWords, ",")
}

// Placeholders lists the env vars whose value is still the shipped placeholder.
func (c Config) Placeholders() []string {
	var out []string
	if c.BotToken == PlaceholderBotToken {
		out = append(out, "GROUPME_BOT_TOKEN")
	}
	if c.GroupID == PlaceholderGroupID {
		out = append(out, "GROUPME_GROUP_ID")
	}
	if c.AccessToken == PlaceholderAccessToken {
		out = append(out, "GROUPME_ACCESS_TOKEN")
	}
	return out
}

// Presence reports which credentials are configured, never their values.
type Presence struct {
	BotToken    bool `json:"bot_token"`
	GroupID     bool `json:"group_id"`
	AccessToken bool `json:"access_token"`
}

func (c Config) Presence() Presence {
	return Presence{
		BotToken:    c.BotToken != "" && c.BotToken != PlaceholderBotToken,
		GroupID:     c.GroupID != "" && c.GroupID != PlaceholderGroupID,
		AccessToken: c.AccessToken != "" && c.AccessToken != PlaceholderAccessToken,
	}
}

// SetupInstructions is printed instead of starting the server while
// credentials are missing.
func SetupInstructions(missing []string) string {
	var b strings.Builder
	b.WriteString("⚠️  Please set your bot configuration!\n\n")
	b.WriteString("1. Create a bot at: https://dev.groupme.com/bots\n")
	b.WriteString("2. Set environment variables (or a .env file):\n")
	for _, name := range []string{"GROUPME_BOT_TOKEN", "GROUPME_GROUP_ID", "GROUPME_ACCESS_TOKEN"} {
		marker := ""
		for _, m := range missing {
			if m == name {
				marker = "  (missing)"
			}
		}
		fmt.Fprintf(&b, "   - %s%s\n", name, marker)
	}
	b.WriteString("\n3. Set the bot's callback URL to: http://your-server.com/webhook\n")
	return b.String()
}
