package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func withEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	orig := envFunc
	envFunc = func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
	t.Cleanup(func() { envFunc = orig })
}

func TestParseLevel(t *testing.T) {
	lv, ok := parseLevel("DEBUG")
	assert.True(t, ok)
	assert.Equal(t, zapcore.DebugLevel, lv)

	_, ok = parseLevel("nonsense")
	assert.False(t, ok)
}

func TestModuleLevelFallback(t *testing.T) {
	withEnv(t, map[string]string{
		"LOG_LEVEL": "warn",
	})

	assert.Equal(t, zapcore.WarnLevel, moduleLevel([]string{"Broker"}))
}

func TestModuleLevelMostSpecificWins(t *testing.T) {
	withEnv(t, map[string]string{
		"LOG_LEVEL":                     "warn",
		"LOG_LEVEL__ROUTER":             "info",
		"LOG_LEVEL__ROUTER__RATE_LIMIT": "debug",
	})

	assert.Equal(t, zapcore.DebugLevel, moduleLevel([]string{"Router", "RateLimit"}))
	assert.Equal(t, zapcore.InfoLevel, moduleLevel([]string{"Router", "Other"}))
	assert.Equal(t, zapcore.WarnLevel, moduleLevel([]string{"Broker"}))
}

func TestModuleLevelDefault(t *testing.T) {
	withEnv(t, map[string]string{})

	assert.Equal(t, zapcore.InfoLevel, moduleLevel([]string{"Anything"}))
}
