package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/procfile/log"
	"github.com/ardnew/procfile/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// configFileMode is the permission mode of a created configuration file.
const configFileMode fs.FileMode = 0o600

// Init writes the current global flag values to the YAML configuration file.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) error {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ErrWriteConfig.Wrap(errors.New("no command context"))
	}

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok || confPath == "" {
		return ErrWriteConfig.Wrap(errors.New("configuration path undefined"))
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !i.Force {
		flags |= os.O_EXCL
	}

	data, err := i.marshal(ctx, ktx)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(confPath, flags, configFileMode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			err = ErrFileExists
		}

		return ErrWriteConfig.Wrap(err).With(slog.String("file", confPath))
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return ErrWriteConfig.Wrap(err).With(slog.String("file", confPath))
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// marshal renders the global flags of ktx as a YAML mapping, in flag
// declaration order.
func (i *Init) marshal(ctx context.Context, ktx *kong.Context) ([]byte, error) {
	data, err := yaml.MarshalContext(ctx, configValues(ktx), yaml.Indent(defaultConfigIndent))
	if err != nil {
		return nil, ErrYAMLMarshal.Wrap(err)
	}

	return data, nil
}

// configValues collects the value of every visible global flag, skipping
// help and profiling flags and flags without a meaningful value.
func configValues(ktx *kong.Context) yaml.MapSlice {
	skip := []string{"help", profile.Tag}

	var ms yaml.MapSlice

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(skip, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		if v, ok := configValue(ktx.FlagValue(flag)); ok {
			ms = append(ms, yaml.MapItem{Key: flag.Name, Value: v})
		}
	}

	return ms
}

// configValue converts a flag value into a YAML scalar or list. Named string
// types, such as enum flags, become plain strings.
func configValue(val any) (any, bool) {
	switch v := val.(type) {
	case nil:
		return nil, false

	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return v, true

	case string:
		return v, v != ""

	case []string:
		return v, len(v) > 0

	default:
		s := fmt.Sprint(v)

		return s, s != ""
	}
}
