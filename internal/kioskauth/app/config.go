package app

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full service configuration, loaded from the environment.
type Config struct {
	Env                 string        `env:"ENV" envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	DatabaseFile string `env:"DATABASE_FILE" envDefault:"kioskauth.db"`

	// Token signing
	JWTSecret  string        `env:"JWT_SECRET,required"`
	JWTIssuer  string        `env:"JWT_ISSUER" envDefault:"kioskauth"`
	AccessTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"30m"`
	RefreshTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"336h"`

	// DefaultPassword is hashed into guest accounts provisioned during the
	// mobile token exchange.
	DefaultPassword string `env:"DEFAULT_PASSWORD" envDefault:"kiosk-guest"`

	// SMS-gateway mailbox (IMAPS)
	MailAddress        string        `env:"MAIL_ADDRESS"`
	MailUsername       string        `env:"MAIL_USERNAME"`
	MailPassword       string        `env:"MAIL_PASSWORD"`
	MailAllowedDomains []string      `env:"MAIL_ALLOWED_DOMAINS" envSeparator:"," envDefault:"vmms.nate.com,ktfmms.magicn.com,mmsmail.uplus.co.kr,lguplus.com"`
	MailCheckInterval  time.Duration `env:"MAIL_CHECK_INTERVAL" envDefault:"2s"`
	MailSearchWindow   time.Duration `env:"MAIL_SEARCH_WINDOW" envDefault:"1m"`
	VerifyTimeout      time.Duration `env:"VERIFY_TIMEOUT" envDefault:"30s"`

	// Session housekeeping
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"24h"`
	SessionRetention     time.Duration `env:"SESSION_RETENTION" envDefault:"720h"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
