package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/procfile/pkg"
)

// Version prints the program version.
type Version struct {
	Authors bool `help:"Also print the authors." short:"a"`
}

// Run executes the version command.
func (v *Version) Run(ctx context.Context) error {
	w := Output(ctx)

	if _, err := fmt.Fprintln(w, pkg.Name, pkg.Version); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	if !v.Authors {
		return nil
	}

	for _, a := range pkg.Author {
		if _, err := fmt.Fprintln(w, a); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}
