//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of the procfile module embedded at build
// time, without surrounding whitespace.
var Version = strings.TrimSpace(version)

const (
	// Name is the command name. It appears in help text and default config
	// paths.
	Name = "procfile"
	// Description is a short summary used in help output.
	Description = "Parse, validate and query Procfiles"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	Name  string
	Email string
}

// String formats the author as "Name <Email>".
func (a AuthorInfo) String() string {
	if a.Email == "" {
		return a.Name
	}

	return a.Name + " <" + a.Email + ">"
}

// Author lists the primary author(s) of the project.
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
