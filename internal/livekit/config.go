package livekit

import (
	"github.com/spf13/viper"

	"github.com/tutorlink/session-gateway/internal/log"
	"github.com/tutorlink/session-gateway/internal/token"
)

type Config struct {
	Host      string `mapstructure:"host"`
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("host"), "")
	v.SetDefault(p("api_key"), "")
	v.SetDefault(p("api_secret"), "")
}

// Missing lists the config keys still unset. A non-empty result means the
// registry must run in dummy mode.
func (c *Config) Missing() []string {
	var keys []string
	if c.Host == "" {
		keys = append(keys, "host")
	}
	if c.APIKey == "" {
		keys = append(keys, "api_key")
	}
	if c.APISecret == "" {
		keys = append(keys, "api_secret")
	}
	return keys
}

// NewClient picks the backend once at startup: a live registry client when
// host and key pair are all present, otherwise the dummy backend. The
// choice never changes at runtime.
func NewClient(cfg *Config, issuer token.Issuer, logger *log.Logger) Client {
	if missing := cfg.Missing(); len(missing) > 0 {
		logger.Warn("registry not fully configured, using dummy room service",
			log.Strings("missing", missing))
		return newDummyClient(logger)
	}
	return newClient(cfg.Host, issuer, logger)
}
