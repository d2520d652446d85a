// Package config loads service configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/heroforge/heroforge-api/internal/errors"
)

// Config holds every tunable the service reads from the environment.
type Config struct {
	// Generation
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string        `env:"OPENAI_BASE_URL"`
	ChatModel     string        `env:"CHAT_MODEL"`
	ImageModel    string        `env:"IMAGE_MODEL"`
	GenTimeout    time.Duration `env:"GENERATION_TIMEOUT" envDefault:"120s"`

	// Content publishing
	PinningEndpoint string        `env:"PINNING_ENDPOINT"`
	PinningToken    string        `env:"PINNING_TOKEN"`
	PinTimeout      time.Duration `env:"PIN_TIMEOUT" envDefault:"60s"`

	// Ledger
	LedgerEndpoint string        `env:"LEDGER_ENDPOINT"`
	LedgerAPIKey   string        `env:"LEDGER_API_KEY"`
	LedgerTimeout  time.Duration `env:"LEDGER_TIMEOUT" envDefault:"30s"`

	// DevMode swaps the RPC ledger for an in-process one and stubs nothing
	// else; generation and publishing still need real endpoints.
	DevMode bool `env:"DEV_MODE" envDefault:"false"`

	// Owner index. Empty disables the index; the registry then scans.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Progression tunables
	XPPerLevel     uint64 `env:"XP_PER_LEVEL" envDefault:"1000"`
	EvolutionLevel uint32 `env:"EVOLUTION_LEVEL" envDefault:"5"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return &cfg, nil
}

// Validate checks the combinations a running service needs. DevMode drops
// the ledger endpoint requirement.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.OpenAIAPIKey == "" {
		vb.RequiredField("OPENAI_API_KEY")
	}
	if c.PinningEndpoint == "" {
		vb.RequiredField("PINNING_ENDPOINT")
	}
	if !c.DevMode && c.LedgerEndpoint == "" {
		vb.RequiredField("LEDGER_ENDPOINT")
	}

	return vb.Build()
}
