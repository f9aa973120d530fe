package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port         string
	MetricsAddr  string
	PprofAddr    string
	PprofEnabled bool
}

type ObservabilityConfig struct {
	ServiceName  string
	OTLPEndpoint string
	LogLevel     string
}

// ViewConfig controls the per-page state every full render owns.
type ViewConfig struct {
	TokenSecret []byte
	TTL         time.Duration
}

type SiteConfig struct {
	ResendCooldown  time.Duration
	BackToTopOffset int
}

type Config struct {
	Server        ServerConfig
	Observability ObservabilityConfig
	View          ViewConfig
	Site          SiteConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8091")
	v.SetDefault("METRICS_ADDR", ":9092")
	v.SetDefault("PPROF_ADDR", ":6060")
	v.SetDefault("PPROF_ENABLED", false)
	v.SetDefault("SERVICE_NAME", "eonics-site")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "otel-collector:4318")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VIEW_TOKEN_SECRET", "")
	v.SetDefault("VIEW_TTL", "30m")
	v.SetDefault("RECOVERY_RESEND_COOLDOWN", "30s")
	v.SetDefault("BACK_TO_TOP_OFFSET", 500)
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	viewTTL, err := time.ParseDuration(v.GetString("VIEW_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid VIEW_TTL: %w", err)
	}
	if viewTTL <= 0 {
		return nil, fmt.Errorf("VIEW_TTL must be positive, got %s", viewTTL)
	}

	cooldown, err := time.ParseDuration(v.GetString("RECOVERY_RESEND_COOLDOWN"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECOVERY_RESEND_COOLDOWN: %w", err)
	}
	if cooldown < 0 {
		return nil, fmt.Errorf("RECOVERY_RESEND_COOLDOWN must not be negative, got %s", cooldown)
	}

	secret := []byte(v.GetString("VIEW_TOKEN_SECRET"))
	if len(secret) == 0 {
		// Tokens only need to outlive the process, so a random key is enough.
		secret, err = randomSecret()
		if err != nil {
			return nil, fmt.Errorf("failed to generate view token secret: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("SERVER_PORT"),
			MetricsAddr:  v.GetString("METRICS_ADDR"),
			PprofAddr:    v.GetString("PPROF_ADDR"),
			PprofEnabled: v.GetBool("PPROF_ENABLED"),
		},
		Observability: ObservabilityConfig{
			ServiceName:  v.GetString("SERVICE_NAME"),
			OTLPEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
			LogLevel:     v.GetString("LOG_LEVEL"),
		},
		View: ViewConfig{
			TokenSecret: secret,
			TTL:         viewTTL,
		},
		Site: SiteConfig{
			ResendCooldown:  cooldown,
			BackToTopOffset: v.GetInt("BACK_TO_TOP_OFFSET"),
		},
	}

	return cfg, nil
}

func randomSecret() ([]byte, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return []byte(hex.EncodeToString(b)), nil
}
