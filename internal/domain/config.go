package domain

import (
	"fmt"
	"time"
)

const (
	DefaultSiteDirectory   = "src/site"
	DefaultConnectTimeout  = 5 * time.Second
	DefaultResponseTimeout = 5 * time.Second
)

// RunConfig holds the settings of one run, loaded from .docck.yaml and
// overridden by flags. It is not modified once the run starts.
type RunConfig struct {
	Offline            bool            `yaml:"offline"             json:"offline"`
	Output             string          `yaml:"output"              json:"output,omitempty"`
	SiteDirectory      string          `yaml:"site_directory"      json:"site_directory,omitempty"`
	Concurrency        int             `yaml:"concurrency"         json:"concurrency,omitempty"`
	UserAgent          string          `yaml:"user_agent"          json:"user_agent,omitempty"`
	Timeouts           TimeoutConfig   `yaml:"timeouts"            json:"timeouts"`
	Proxy              ProxyConfig     `yaml:"proxy"               json:"proxy"`
	SupportedPackaging []PackagingKind `yaml:"supported_packaging" json:"supported_packaging,omitempty"`
	RecordHistory      *bool           `yaml:"record_history"      json:"record_history,omitempty"`
}

type TimeoutConfig struct {
	Connect  time.Duration `yaml:"connect"  json:"connect"`
	Response time.Duration `yaml:"response" json:"response"`
}

// ProxyConfig describes the HTTP proxy used for reachability probes. An empty
// Host disables the proxy.
type ProxyConfig struct {
	Protocol      string   `yaml:"protocol"        json:"protocol,omitempty"`
	Host          string   `yaml:"host"            json:"host,omitempty"`
	Port          int      `yaml:"port"            json:"port,omitempty"`
	Username      string   `yaml:"username"        json:"username,omitempty"`
	Password      string   `yaml:"password"        json:"-"`
	NonProxyHosts []string `yaml:"non_proxy_hosts" json:"non_proxy_hosts,omitempty"`
}

func (p ProxyConfig) Enabled() bool { return p.Host != "" }

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() RunConfig {
	return RunConfig{
		SiteDirectory: DefaultSiteDirectory,
		Concurrency:   1,
		Timeouts: TimeoutConfig{
			Connect:  DefaultConnectTimeout,
			Response: DefaultResponseTimeout,
		},
		SupportedPackaging: []PackagingKind{PackagingPlugin},
	}
}

// WithDefaults fills every zero field from DefaultConfig.
func (c RunConfig) WithDefaults() RunConfig {
	d := DefaultConfig()
	if c.SiteDirectory == "" {
		c.SiteDirectory = d.SiteDirectory
	}
	if c.Concurrency == 0 {
		c.Concurrency = d.Concurrency
	}
	if c.Timeouts.Connect == 0 {
		c.Timeouts.Connect = d.Timeouts.Connect
	}
	if c.Timeouts.Response == 0 {
		c.Timeouts.Response = d.Timeouts.Response
	}
	if len(c.SupportedPackaging) == 0 {
		c.SupportedPackaging = d.SupportedPackaging
	}
	if c.Proxy.Enabled() && c.Proxy.Protocol == "" {
		c.Proxy.Protocol = "http"
	}
	return c
}

// Supports reports whether projects of the given packaging are validated.
func (c RunConfig) Supports(kind PackagingKind) bool {
	for _, k := range c.SupportedPackaging {
		if k == kind {
			return true
		}
	}
	return false
}

// HistoryEnabled defaults to true when record_history is not set.
func (c RunConfig) HistoryEnabled() bool {
	return c.RecordHistory == nil || *c.RecordHistory
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c RunConfig) Validate() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must be >= 0 (got %d)", c.Concurrency)
	}
	if c.Timeouts.Connect < 0 || c.Timeouts.Response < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}

	for _, k := range c.SupportedPackaging {
		if _, ok := PolicyFor(k); !ok {
			return fmt.Errorf("unknown packaging %q in supported_packaging (valid: %v)", k, KnownPackagingKinds())
		}
	}

	if c.Proxy.Enabled() {
		if c.Proxy.Port <= 0 || c.Proxy.Port > 65535 {
			return fmt.Errorf("proxy.port must be between 1 and 65535 (got %d)", c.Proxy.Port)
		}
		switch c.Proxy.Protocol {
		case "", "http", "https":
		default:
			return fmt.Errorf("unknown proxy.protocol %q (valid: http, https)", c.Proxy.Protocol)
		}
	} else if c.Proxy.Username != "" {
		return fmt.Errorf("proxy.username is set but proxy.host is empty")
	}

	return nil
}
