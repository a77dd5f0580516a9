package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/jan/log"
	"github.com/ardnew/jan/profile"
)

const defaultConfigIndent = 2

// Init writes the current flag values to the configuration file.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	confPath := kongVar(ctx, ConfigIdentifier)
	if confPath == "" {
		panic("internal error: config path undefined")
	}

	if _, err := os.Stat(confPath); err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath), slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	data, err := yaml.MarshalWithOptions(
		i.settings(kongContextFrom(ctx)),
		yaml.Indent(defaultConfigIndent),
	)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	if err := os.WriteFile(confPath, data, 0o600); err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath))

	return nil
}

// ignoredFlags are flag name prefixes never written to the config file.
var ignoredFlags = []string{"help", "force", profile.Tag}

// settings collects the value of every flag in the application that has
// one, in the order kong declares them. A flag shared by several commands
// is written once.
func (i *Init) settings(ktx *kong.Context) yaml.MapSlice {
	var (
		out  yaml.MapSlice
		seen = make(map[string]bool)
	)

	var walk func(n *kong.Node)

	walk = func(n *kong.Node) {
		for _, flag := range n.Flags {
			if flag.Hidden || seen[flag.Name] ||
				slices.ContainsFunc(ignoredFlags, func(p string) bool {
					return strings.HasPrefix(flag.Name, p)
				}) {
				continue
			}

			seen[flag.Name] = true

			if v, ok := configValue(ktx.FlagValue(flag)); ok {
				out = append(out, yaml.MapItem{Key: flag.Name, Value: v})
			}
		}

		for _, child := range n.Children {
			walk(child)
		}
	}

	walk(ktx.Model.Node)

	return out
}

// configValue converts a flag value to its YAML form. Empty strings and
// empty lists are omitted.
func configValue(v any) (any, bool) {
	switch v := v.(type) {
	case nil:
		return nil, false

	case time.Duration:
		return v.String(), true

	case bool, int, int64, float64:
		return v, true

	case []string:
		return v, len(v) > 0
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), rv.Len() > 0

	case reflect.Slice:
		if rv.Len() == 0 {
			return nil, false
		}

		items := make([]string, rv.Len())
		for i := range items {
			items[i] = fmt.Sprint(rv.Index(i).Interface())
		}

		return items, true

	default:
		return fmt.Sprint(v), true
	}
}
