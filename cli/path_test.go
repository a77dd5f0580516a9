package cli

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestBasePrefix(t *testing.T) {
	id := basePrefix()
	if id == "" {
		t.Fatal("basePrefix is empty")
	}

	if strings.HasPrefix(id, ".") || strings.ContainsRune(id, filepath.Separator) {
		t.Errorf("basePrefix = %q", id)
	}
}

func TestConfigPath(t *testing.T) {
	if got := configPath(); got != configDir() {
		t.Errorf("configPath() = %q, want %q", got, configDir())
	}

	got := configPath(baseConfig + ".yaml")
	if filepath.Dir(got) != configDir() || filepath.Base(got) != "config.yaml" {
		t.Errorf("configPath = %q", got)
	}

	if filepath.Base(configDir()) != basePrefix() || filepath.Base(cacheDir()) != basePrefix() {
		t.Errorf("config %q and cache %q must end in %q", configDir(), cacheDir(), basePrefix())
	}
}
