package config

// AppConfig is the validated bot configuration. It is built once by Load and
// passed by value; nothing mutates it afterwards.
type AppConfig struct {
	TelegramConfig
	LinearConfig
	RedisConfig
	AiConfig

	BotBrandName string `env:"BOT_BRAND_NAME"`
}

type TelegramConfig struct {
	Token string `env:"TELEGRAM_BOT_TOKEN,required,notEmpty"`

	// comma-separated, see AllowedUsernameList
	AllowedUsernames string `env:"TELEGRAM_ALLOWED_USERNAMES"`
	AdminUsername    string `env:"TELEGRAM_ADMIN_USERNAME"`
	AdminChatID      string `env:"TELEGRAM_ADMIN_CHAT_ID"`
}

type LinearConfig struct {
	APIKey        string `env:"LINEAR_API_KEY,required,notEmpty"`
	TeamID        string `env:"LINEAR_TEAM_ID,required,notEmpty"`
	WorkspaceSlug string `env:"LINEAR_WORKSPACE_SLUG"`
	TicketPrefix  string `env:"LINEAR_TICKET_PREFIX"`

	// Webhook and SigningSecrets are kept opaque.
	Webhook        string `env:"LINEAR_WEBHOOK"`
	SigningSecrets string `env:"LINEAR_SIGNING_SECRETS"`

	APIURL string `env:"LINEAR_API_URL"`
}

type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

type AiConfig struct {
	Token string `env:"OPENAI_API_KEY,required,notEmpty"`
}

const (
	DefaultTicketPrefix = "TEAM"
	DefaultLinearAPIURL = "https://api.linear.app/graphql"
	DefaultRedisURL     = "redis://localhost:6379"
	DefaultBrandName    = "Linear Tracker"
)

// defaults apply only when a key is absent. Optional keys missing from this
// map default to "".
var defaults = map[string]string{
	"LINEAR_TICKET_PREFIX": DefaultTicketPrefix,
	"LINEAR_API_URL":       DefaultLinearAPIURL,
	"REDIS_URL":            DefaultRedisURL,
	"BOT_BRAND_NAME":       DefaultBrandName,
}

// RequiredKeys lists the variables that must be set and non-empty.
var RequiredKeys = []string{
	"TELEGRAM_BOT_TOKEN",
	"LINEAR_API_KEY",
	"LINEAR_TEAM_ID",
	"OPENAI_API_KEY",
}
