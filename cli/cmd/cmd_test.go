package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/ardnew/jan/pkg"
)

// writeScript writes a script into dir and returns its path.
func writeScript(t *testing.T, dir, name, src string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

// withStdio returns a context whose commands read stdin and write to the
// returned buffer.
func withStdio(t *testing.T, stdin string) (context.Context, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	ctx := WithStdio(t.Context(), Stdio{
		In:  strings.NewReader(stdin),
		Out: &out,
		Err: io.Discard,
	})

	return ctx, &out
}

func TestStdioFrom_Defaults(t *testing.T) {
	s := stdioFrom(t.Context())
	if s.In != os.Stdin || s.Out != os.Stdout || s.Err != os.Stderr {
		t.Error("missing streams must default to the process streams")
	}

	var buf bytes.Buffer

	s = stdioFrom(WithStdio(t.Context(), Stdio{Out: &buf}))
	if s.Out != &buf || s.In != os.Stdin {
		t.Error("given streams must be kept and others defaulted")
	}
}

func TestFindScript(t *testing.T) {
	dir := t.TempDir()
	lib := writeScript(t, dir, "lib"+pkg.Extension, "x = 1;")
	raw := writeScript(t, dir, "raw", "x = 2;")

	tests := []struct {
		name   string
		script string
		dirs   []string
		want   string
		found  bool
	}{
		{"existing_path", raw, nil, raw, true},
		{"existing_path_adds_extension", strings.TrimSuffix(lib, pkg.Extension), nil, lib, true},
		{"searched", "lib", []string{t.TempDir(), dir}, lib, true},
		{"searched_with_extension", "lib" + pkg.Extension, []string{dir}, lib, true},
		{"not_searched_without_dirs", "lib", nil, "", false},
		{"absolute_not_searched", filepath.Join(t.TempDir(), "lib"), []string{dir}, "", false},
		{"directory_is_not_a_script", dir, nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := findScript(tt.script, tt.dirs)
			if got != tt.want || ok != tt.found {
				t.Errorf("findScript(%q) = %q, %v, want %q, %v",
					tt.script, got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestSearchPath(t *testing.T) {
	extra := t.TempDir()
	env := t.TempDir()
	missing := filepath.Join(t.TempDir(), "missing")

	t.Setenv(pkg.PathEnv, env)

	got := searchPath(extra, missing, extra)

	if !slices.Contains(got, extra) || !slices.Contains(got, env) {
		t.Errorf("searchPath() = %v, want %q and %q", got, extra, env)
	}

	if slices.Contains(got, missing) {
		t.Errorf("searchPath() = %v must skip missing dir %q", got, missing)
	}

	if i, j := slices.Index(got, extra), slices.Index(got, env); i > j {
		t.Errorf("searchPath() = %v: extra dirs must precede %s", got, pkg.PathEnv)
	}
}

func TestResolveSources(t *testing.T) {
	dir := t.TempDir()
	a := writeScript(t, dir, "a.jan", "")
	b := writeScript(t, dir, "b.jan", "")

	link := filepath.Join(dir, "link.jan")
	if err := os.Symlink(a, link); err != nil {
		t.Skip("symlinks unsupported:", err)
	}

	srcs, err := resolveSources([]string{a, "-", b, link, "-", "a"}, []string{dir})
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, s := range srcs {
		names = append(names, s.name)
	}

	if want := []string{a, "-", b}; !slices.Equal(names, want) {
		t.Errorf("sources = %v, want %v", names, want)
	}

	_, err = resolveSources([]string{"nope"}, []string{dir})
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestSourceOpen(t *testing.T) {
	rc, err := source{name: "-"}.open(strings.NewReader("stdin text"))
	if err != nil {
		t.Fatal(err)
	}

	data, _ := io.ReadAll(rc)
	rc.Close()

	if string(data) != "stdin text" {
		t.Errorf("stdin source read %q", data)
	}

	_, err = source{name: "gone", path: filepath.Join(t.TempDir(), "gone")}.open(nil)
	if !errors.Is(err, ErrOpenSource) {
		t.Errorf("expected ErrOpenSource, got %v", err)
	}
}

func TestError(t *testing.T) {
	cause := errors.New("boom")
	err := ErrWriteConfig.Wrap(cause)

	if !errors.Is(err, ErrWriteConfig) || !errors.Is(err, cause) {
		t.Errorf("%v must match its sentinel and its cause", err)
	}

	if errors.Is(err, ErrLoadConfig) {
		t.Error("must not match another sentinel")
	}

	if got, want := err.Error(), "write configuration file: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	v := ErrFileExists.With().LogValue()
	if len(v.Group()) != 1 {
		t.Errorf("LogValue() = %v", v)
	}
}
