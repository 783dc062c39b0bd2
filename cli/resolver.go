package cli

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/procfile/log"
)

// resolve returns a [kong.ConfigurationLoader] for YAML configuration files,
// such as the one written by the init command.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx), "/path/to/config.yaml")
//
// The document is a flat mapping from flag name to value. Keys may use
// hyphens or underscores:
//
//	log-level: debug
//	log_format: json
//	log-pretty: false
//	indent: 4
//
// A document that cannot be decoded is logged and ignored. Command-line flags
// override configuration values.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		err := yaml.NewDecoder(r).DecodeContext(ctx, &doc)
		if err != nil && err != io.EOF {
			log.WarnContext(ctx, "ignoring configuration file",
				slog.Any("error", err),
			)

			return config{}, nil
		}

		cfg := make(config, len(doc))
		for key, value := range doc {
			cfg[key] = scalar(value)
		}

		return cfg, nil
	}
}

// config implements [kong.Resolver] over a decoded configuration file.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	if value, ok := c[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil //nolint:nilnil
}

// scalar converts decoded YAML numbers to strings, which kong parses with
// the flag's own mapper. Lists are converted element-wise.
func scalar(value any) any {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = scalar(e)
		}

		return out
	default:
		return v
	}
}
