package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abdidvp/docck/internal/domain"
)

// FileName is the run configuration file looked up in the project root.
const FileName = ".docck.yaml"

// PasswordEnv overrides proxy.password so it can stay out of the file.
const PasswordEnv = "DOCCK_PROXY_PASSWORD"

// YAMLLoader implements domain.ConfigLoader by reading .docck.yaml.
type YAMLLoader struct {
	lookupEnv func(string) (string, bool)
}

// New creates a YAMLLoader that reads the process environment.
func New() *YAMLLoader { return &YAMLLoader{lookupEnv: os.LookupEnv} }

// Load reads .docck.yaml from projectPath. Values in the file are laid over
// DefaultConfig; a missing file returns DefaultConfig.
func (l *YAMLLoader) Load(projectPath string) (domain.RunConfig, error) {
	return l.load(filepath.Join(projectPath, FileName), true)
}

// LoadFile reads the configuration from an explicit path, which must exist.
func (l *YAMLLoader) LoadFile(path string) (domain.RunConfig, error) {
	return l.load(path, false)
}

func (l *YAMLLoader) load(path string, missingOK bool) (domain.RunConfig, error) {
	cfg := domain.DefaultConfig()
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist) && missingOK:
	case err != nil:
		return domain.RunConfig{}, fmt.Errorf("reading %s: %w", name, err)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return domain.RunConfig{}, fmt.Errorf("parsing %s: %w", name, err)
		}
	}

	if pw, ok := l.lookupEnv(PasswordEnv); ok && pw != "" {
		cfg.Proxy.Password = pw
	}

	if err := cfg.Validate(); err != nil {
		return domain.RunConfig{}, fmt.Errorf("invalid %s: %w", name, err)
	}
	return cfg.WithDefaults(), nil
}

// WithEnv replaces the environment lookup, for tests.
func (l *YAMLLoader) WithEnv(lookup func(string) (string, bool)) *YAMLLoader {
	l.lookupEnv = lookup
	return l
}
