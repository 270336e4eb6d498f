package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000/graphql", c.APIEndpointURL)
	assert.Equal(t, "http://127.0.0.1:8000", c.SiteBaseURL)
	assert.Equal(t, "ourganize.db", c.DatabasePath)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8000/graphql", cfg.APIEndpointURL)
	assert.Equal(t, "ourganize.db", cfg.DatabasePath)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
