//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version returns the semantic version of the jan module embedded at build
// time, trimmed of surrounding whitespace.
func Version() string { return strings.TrimSpace(version) }

const (
	// Name is the canonical command identifier. It appears in help text, the
	// default config and cache paths, and temporary file names.
	Name = "jan"
	// Description is the one-line summary shown in help output.
	Description = "Interpreter for the Jan scripting language"
	// Extension is the conventional file extension of Jan scripts.
	Extension = ".jan"
	// PathEnv names the environment variable holding additional script
	// search directories.
	PathEnv = "JAN_PATH"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the primary author(s) of the project.
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
