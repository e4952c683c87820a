package livekit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tutorlink/session-gateway/internal/log"
	"github.com/tutorlink/session-gateway/internal/token"
)

func TestNewClientSelectsBackend(t *testing.T) {
	issuer := token.New("", "", log.NewNop())

	tests := []struct {
		name string
		cfg  Config
		kind ServiceKind
	}{
		{"all set", Config{Host: "ws://localhost:7880", APIKey: "k", APISecret: "s"}, ServiceKindLive},
		{"nothing set", Config{}, ServiceKindDummy},
		{"missing secret", Config{Host: "ws://localhost:7880", APIKey: "k"}, ServiceKindDummy},
		{"missing host", Config{APIKey: "k", APISecret: "s"}, ServiceKindDummy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(&tt.cfg, issuer, log.NewNop())
			assert.Equal(t, tt.kind, c.Kind())
		})
	}
}

func TestConfigMissing(t *testing.T) {
	cfg := Config{APIKey: "k"}
	assert.Equal(t, []string{"host", "api_secret"}, cfg.Missing())

	full := Config{Host: "h", APIKey: "k", APISecret: "s"}
	assert.Empty(t, full.Missing())
}
