package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/docck/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.False(t, cfg.Offline)
	assert.Equal(t, "src/site", cfg.SiteDirectory)
	assert.Equal(t, 1, cfg.Concurrency)
	assert.Equal(t, 5*time.Second, cfg.Timeouts.Connect)
	assert.True(t, cfg.Supports(domain.PackagingPlugin))
	assert.False(t, cfg.Supports(domain.PackagingLibrary))
	assert.True(t, cfg.HistoryEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestRunConfig_WithDefaults(t *testing.T) {
	cfg := domain.RunConfig{Proxy: domain.ProxyConfig{Host: "proxy", Port: 80}}.WithDefaults()
	assert.Equal(t, 1, cfg.Concurrency)
	assert.Equal(t, domain.DefaultSiteDirectory, cfg.SiteDirectory)
	assert.Equal(t, "http", cfg.Proxy.Protocol)
	assert.Equal(t, []domain.PackagingKind{domain.PackagingPlugin}, cfg.SupportedPackaging)

	kept := domain.RunConfig{Concurrency: 3, SiteDirectory: "docs"}.WithDefaults()
	assert.Equal(t, 3, kept.Concurrency)
	assert.Equal(t, "docs", kept.SiteDirectory)
	assert.Empty(t, kept.Proxy.Protocol, "no protocol without a proxy")
}

func TestRunConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.RunConfig)
		errMsg string
	}{
		{"negative concurrency", func(c *domain.RunConfig) { c.Concurrency = -2 }, "concurrency must be >= 0"},
		{"negative timeout", func(c *domain.RunConfig) { c.Timeouts.Response = -time.Second }, "timeouts must not be negative"},
		{"unknown packaging", func(c *domain.RunConfig) { c.SupportedPackaging = []domain.PackagingKind{"ear"} }, `unknown packaging "ear"`},
		{"port out of range", func(c *domain.RunConfig) { c.Proxy = domain.ProxyConfig{Host: "p", Port: 70000} }, "proxy.port must be between 1 and 65535"},
		{"bad protocol", func(c *domain.RunConfig) { c.Proxy = domain.ProxyConfig{Host: "p", Port: 1, Protocol: "ftp"} }, `unknown proxy.protocol "ftp"`},
		{"user without host", func(c *domain.RunConfig) { c.Proxy = domain.ProxyConfig{Username: "u"} }, "proxy.host is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestRunConfig_HistoryEnabled(t *testing.T) {
	off := false
	assert.False(t, domain.RunConfig{RecordHistory: &off}.HistoryEnabled())
}
