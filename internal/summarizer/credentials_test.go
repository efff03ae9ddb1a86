package summarizer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveAPIKeyOrder(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	key, err := ResolveAPIKey(DefaultProviders("config-key", "")...)
	if err != nil {
		t.Fatalf("ResolveAPIKey() error = %v", err)
	}
	if key != "config-key" {
		t.Errorf("key = %q, want config value to win", key)
	}

	key, err = ResolveAPIKey(DefaultProviders("", "")...)
	if err != nil {
		t.Fatalf("ResolveAPIKey() error = %v", err)
	}
	if key != "env-key" {
		t.Errorf("key = %q, want environment fallback", key)
	}
}

func TestFileProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.json")
	if err := os.WriteFile(path, []byte(`{"api_key": "file-key"}`), 0600); err != nil {
		t.Fatal(err)
	}

	key, ok := FileProvider{Path: path}.APIKey()
	if !ok || key != "file-key" {
		t.Errorf("APIKey() = %q, %v", key, ok)
	}

	if _, ok := (FileProvider{Path: "/nonexistent/key.json"}).APIKey(); ok {
		t.Error("missing file should yield no key")
	}
	if _, ok := (FileProvider{}).APIKey(); ok {
		t.Error("empty path should yield no key")
	}
}

func TestResolveAPIKeyNoneFound(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	if _, err := ResolveAPIKey(DefaultProviders("", "")...); err == nil {
		t.Error("ResolveAPIKey() should fail when no provider has a key")
	}
}
