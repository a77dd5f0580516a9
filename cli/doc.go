// Package cli wires the jan command line together.
//
// [Run] builds a kong parser over [CLI], loads configuration from
// config.json and config.yaml in the user configuration directory, applies
// logging and profiling flags, and dispatches to one of the commands in
// package [github.com/ardnew/jan/cli/cmd]:
//
//	jan [flags] [run] [SOURCE ...]
//	jan repl [--load FILE] [--plain]
//	jan fmt native|json|yaml|ast|tokens [SOURCE]
//	jan init [--force]
//
// Flags given on the command line override values from either file.
package cli
