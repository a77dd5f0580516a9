package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ardnew/mung"

	"github.com/ardnew/jan/pkg"
)

type (
	contextKey struct{}
	stdioKey   struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, _ := ctx.Value(contextKey{}).(*kong.Context)

	return ktx
}

// kongVar returns the kong variable named id, or "" if there is none.
func kongVar(ctx context.Context, id string) string {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ""
	}

	return ktx.Model.Vars()[id]
}

// Stdio holds the standard streams of a command.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// WithStdio returns a new context.Context whose commands use the given
// streams instead of the process's. Nil fields keep the process default.
func WithStdio(ctx context.Context, stdio Stdio) context.Context {
	return context.WithValue(ctx, stdioKey{}, stdio)
}

func stdioFrom(ctx context.Context) Stdio {
	s, _ := ctx.Value(stdioKey{}).(Stdio)

	if s.In == nil {
		s.In = os.Stdin
	}

	if s.Out == nil {
		s.Out = os.Stdout
	}

	if s.Err == nil {
		s.Err = os.Stderr
	}

	return s
}

// stdinSource is the special source name for reading from stdin.
const stdinSource = "-"

// fileKey identifies a file by device and inode, so the same file reached
// through a symlink or a different relative path is only read once.
type fileKey struct {
	dev uint64
	ino uint64
}

func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}

// source is one resolved script input.
type source struct {
	name string // as given on the command line
	path string // resolved file path; empty for stdin
}

// open returns a reader over the source. The caller closes it.
func (s source) open(stdin io.Reader) (io.ReadCloser, error) {
	if s.path == "" {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, ErrOpenSource.Wrap(err).With(slog.String("source", s.name))
	}

	return f, nil
}

// resolveSources maps each name to a readable source, searching dirs for
// names that are not existing paths. Stdin is read at most once and files
// reached more than once are skipped after their first occurrence.
func resolveSources(names []string, dirs []string) ([]source, error) {
	seen := make(map[fileKey]struct{})
	stdin := false

	out := make([]source, 0, len(names))

	for _, name := range names {
		if name == stdinSource {
			if !stdin {
				out = append(out, source{name: name})
			}

			stdin = true

			continue
		}

		path, ok := findScript(name, dirs)
		if !ok {
			return nil, ErrSourceNotFound.With(
				slog.String("source", name),
				slog.Any("search", dirs),
			)
		}

		if resolved, err := filepath.EvalSymlinks(path); err == nil {
			path = resolved
		}

		if info, err := os.Stat(path); err == nil {
			if key, ok := makeFileKey(info); ok {
				if _, dup := seen[key]; dup {
					continue
				}

				seen[key] = struct{}{}
			}
		}

		out = append(out, source{name: name, path: path})
	}

	return out, nil
}

// findScript returns the path of the script called name: name itself if it
// is a regular file, otherwise the first dir containing name or name plus
// [pkg.Extension]. Absolute names are never searched for.
func findScript(name string, dirs []string) (string, bool) {
	candidates := []string{name}
	if filepath.Ext(name) != pkg.Extension {
		candidates = append(candidates, name+pkg.Extension)
	}

	for _, c := range candidates {
		if isFile(c) {
			return c, true
		}
	}

	if filepath.IsAbs(name) {
		return "", false
	}

	for _, dir := range dirs {
		for _, c := range candidates {
			if p := filepath.Join(dir, c); isFile(p) {
				return p, true
			}
		}
	}

	return "", false
}

// searchPath returns the script search directories: extra followed by the
// entries of $JAN_PATH, without duplicates, keeping only directories that
// exist.
func searchPath(extra ...string) []string {
	joined := mung.Make(
		mung.WithSubjectItems(os.Getenv(pkg.PathEnv)),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(extra...),
		mung.WithFilter(isDir),
	).String()

	return filepath.SplitList(joined)
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}
