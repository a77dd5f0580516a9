// Package cmd implements the jan subcommands: run, repl, fmt and init.
//
// Each command is a kong command struct whose Run method receives the
// [context.Context] bound by the cli package. Commands read their standard
// streams from that context (see [WithStdio]), so tests can drive them with
// buffers.
package cmd

import (
	"strconv"

	"github.com/alecthomas/kong"
)

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path
	// to the YAML configuration file.
	ConfigIdentifier = "config"
)

// DefaultMaxDepth is the call depth limit of scripts run from the command
// line. It keeps runaway recursion from exhausting the goroutine stack.
const DefaultMaxDepth = 10000

// Vars returns the kong variables referenced by command flag defaults.
func Vars() kong.Vars {
	return kong.Vars{
		"maxDepth": strconv.Itoa(DefaultMaxDepth),
	}
}
