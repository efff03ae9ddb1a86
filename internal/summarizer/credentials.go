package summarizer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// CredentialProvider yields an API key from one source. Providers are
// consulted in order, once, before the pass begins; the first hit wins.
type CredentialProvider interface {
	Name() string
	APIKey() (string, bool)
}

// StaticProvider returns a key given directly (e.g. from the config file)
type StaticProvider struct {
	Key string
}

func (p StaticProvider) Name() string { return "config" }

func (p StaticProvider) APIKey() (string, bool) {
	key := strings.TrimSpace(p.Key)
	return key, key != ""
}

// EnvProvider reads the first non-empty environment variable of Vars
type EnvProvider struct {
	Vars []string
}

func (p EnvProvider) Name() string { return "environment" }

func (p EnvProvider) APIKey() (string, bool) {
	for _, v := range p.Vars {
		if key := strings.TrimSpace(os.Getenv(v)); key != "" {
			return key, true
		}
	}
	return "", false
}

// FileProvider reads a JSON key file of the form {"api_key": "..."}
type FileProvider struct {
	Path string
}

func (p FileProvider) Name() string { return "key file" }

func (p FileProvider) APIKey() (string, bool) {
	if p.Path == "" {
		return "", false
	}
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return "", false
	}
	var parsed struct {
		APIKey string `json:"api_key"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", false
	}
	key := strings.TrimSpace(parsed.APIKey)
	return key, key != ""
}

// ResolveAPIKey walks the provider chain and returns the first key found
func ResolveAPIKey(providers ...CredentialProvider) (string, error) {
	for _, p := range providers {
		if key, ok := p.APIKey(); ok {
			return key, nil
		}
	}
	return "", fmt.Errorf("no API key found in any credential provider")
}

// DefaultProviders is the standard resolution order: explicit config
// value, then environment, then a JSON key file.
func DefaultProviders(configKey, keyFile string) []CredentialProvider {
	return []CredentialProvider{
		StaticProvider{Key: configKey},
		EnvProvider{Vars: []string{"GEMINI_API_KEY", "API_KEY"}},
		FileProvider{Path: keyFile},
	}
}
