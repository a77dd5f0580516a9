package cli

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/jan/cli/cmd"
)

func TestResolve_Flatten(t *testing.T) {
	src := `
log-level: debug
log:
  format: text
  caller: true
max_depth: 42
ratio: 1.5
expect:
  - total == 3
  - 7
`

	r, err := resolve(strings.NewReader(src))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	c, ok := r.(config)
	if !ok {
		t.Fatalf("resolver is %T, want config", r)
	}

	want := []string{"expect", "log-caller", "log-format", "log-level", "max-depth", "ratio"}
	if got := c.keys(); !slices.Equal(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}

	tests := map[string]any{
		"log-level":  "debug",
		"log-format": "text",
		"log-caller": true,
		"max-depth":  "42",
		"ratio":      "1.5",
	}

	for name, want := range tests {
		if got := c[name]; got != want {
			t.Errorf("%s = %#v, want %#v", name, got, want)
		}
	}

	list, ok := c["expect"].([]any)
	if !ok || len(list) != 2 || list[0] != "total == 3" || list[1] != "7" {
		t.Errorf("expect = %#v", c["expect"])
	}
}

func TestResolve_Empty(t *testing.T) {
	r, err := resolve(strings.NewReader(""))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if n := len(r.(config)); n != 0 {
		t.Errorf("expected empty config, got %d keys", n)
	}
}

func TestResolve_Invalid(t *testing.T) {
	_, err := resolve(strings.NewReader("log: [unterminated"))
	if !errors.Is(err, cmd.ErrLoadConfig) {
		t.Errorf("expected ErrLoadConfig, got %v", err)
	}
}

func TestResolve_Kong(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	err := os.WriteFile(path, []byte("level: debug\nmax_depth: 42\nlog:\n  format: text\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	type logFlags struct {
		Format string `default:"json"`
	}

	tests := []struct {
		name      string
		args      []string
		wantLevel string
		wantDepth int
	}{
		{"from_file", nil, "debug", 42},
		{"flag_overrides", []string{"--level=warn", "--max-depth=7"}, "warn", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cli struct {
				Level    string   `default:"info"`
				MaxDepth int      `default:"0"`
				Log      logFlags `embed:"" prefix:"log-"`
			}

			parser, err := kong.New(&cli,
				kong.Exit(func(int) { t.Fatal("unexpected exit") }),
				kong.Configuration(resolve, path),
			)
			if err != nil {
				t.Fatal(err)
			}

			if _, err := parser.Parse(tt.args); err != nil {
				t.Fatal(err)
			}

			if cli.Level != tt.wantLevel || cli.MaxDepth != tt.wantDepth {
				t.Errorf("got level=%q depth=%d, want level=%q depth=%d",
					cli.Level, cli.MaxDepth, tt.wantLevel, tt.wantDepth)
			}

			if cli.Log.Format != "text" {
				t.Errorf("log format = %q, want text", cli.Log.Format)
			}
		})
	}
}
