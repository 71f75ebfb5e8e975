package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 8, cfg.SequenceLength)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.VerifyCertificates)
	assert.Equal(t, "Clyde", cfg.ElevenLabsVoiceID)
	assert.Equal(t, "https://api.elevenlabs.io", cfg.ElevenLabsBaseURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SEQUENCE_LENGTH", "16")
	t.Setenv("VERIFY_CERTIFICATES", "false")
	t.Setenv("REQUEST_TIMEOUT", "15s")
	t.Setenv("MESSAGE_SEED", "12345")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 16, cfg.SequenceLength)
	assert.False(t, cfg.VerifyCertificates)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, int64(12345), cfg.MessageSeed)
}
