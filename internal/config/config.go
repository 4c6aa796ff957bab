// Package config holds the run-wide settings. They are unmarshalled by
// Viper from flags, SEQMATCH_* environment variables, an optional YAML
// file and the defaults below, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"seqmatch-core/alphabet"
)

// ErrInvalid marks a setting that failed validation.
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix is prepended to every environment override, e.g.
// SEQMATCH_PALINDROME_MIN_LENGTH.
const EnvPrefix = "SEQMATCH"

// PalindromeConfig bounds the lengths reported by revp.
type PalindromeConfig struct {
	// shortest palindrome reported
	MinLength int `mapstructure:"min-length"`

	// longest palindrome reported
	MaxLength int `mapstructure:"max-length"`
}

// LCSConfig controls the lcs command.
type LCSConfig struct {
	// recover the witness in linear memory
	LinearSpace bool `mapstructure:"linear-space"`

	// print an alignment view under the result (text output only)
	Diff bool `mapstructure:"diff"`

	// wrap the alignment view at this many columns; 0 disables wrapping
	DiffWidth int `mapstructure:"diff-width"`
}

// Config is the root-level settings struct.
type Config struct {
	Alphabet        string `mapstructure:"alphabet"`
	Output          string `mapstructure:"output"`
	OneBased        bool   `mapstructure:"one-based"`
	NoHeader        bool   `mapstructure:"no-header"`
	Threads         int    `mapstructure:"threads"`
	LogLevel        string `mapstructure:"log-level"`
	LogFormat       string `mapstructure:"log-format"`
	Quiet           bool   `mapstructure:"quiet"`
	NoMatchExitCode int    `mapstructure:"no-match-exit-code"`

	Palindrome PalindromeConfig `mapstructure:"palindrome"`
	LCS        LCSConfig        `mapstructure:"lcs"`
}

// Defaults is the configuration used when nothing overrides a key.
var Defaults = map[string]any{
	"alphabet":              "dna",
	"output":                "text",
	"one-based":             false,
	"no-header":             false,
	"threads":               0,
	"log-level":             "warn",
	"log-format":            "text",
	"quiet":                 false,
	"no-match-exit-code":    1,
	"palindrome.min-length": 4,
	"palindrome.max-length": 12,
	"lcs.linear-space":      false,
	"lcs.diff":              false,
	"lcs.diff-width":        60,
}

// SetDefaults registers Defaults on v. Registering every key also lets
// AutomaticEnv see the nested ones during Unmarshal.
func SetDefaults(v *viper.Viper) {
	for k, val := range Defaults {
		v.SetDefault(k, val)
	}
}

// Load reads the configuration into a Config. An explicit file must exist;
// otherwise "seqmatch.yaml" is looked up in searchPaths and may be absent.
func Load(v *viper.Viper, file string, searchPaths ...string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", file, err)
		}
	} else if len(searchPaths) > 0 {
		v.SetConfigName("seqmatch")
		v.SetConfigType("yaml")
		for _, p := range searchPaths {
			v.AddConfigPath(p)
		}
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return Config{}, fmt.Errorf("config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	c.Alphabet = strings.ToLower(c.Alphabet)
	return c, c.Validate()
}

// Validate checks every setting that has a closed set of values or a range.
func (c Config) Validate() error {
	if _, err := alphabet.Lookup(c.Alphabet); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.LogFormat)
	}
	if c.Threads < 0 {
		return fmt.Errorf("%w: threads must be >= 0, got %d", ErrInvalid, c.Threads)
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return fmt.Errorf("%w: no-match-exit-code must be in 0..255, got %d", ErrInvalid, c.NoMatchExitCode)
	}
	if c.Palindrome.MinLength < 1 || c.Palindrome.MinLength > c.Palindrome.MaxLength {
		return fmt.Errorf("%w: palindrome length range [%d, %d]",
			ErrInvalid, c.Palindrome.MinLength, c.Palindrome.MaxLength)
	}
	if c.LCS.DiffWidth < 0 {
		return fmt.Errorf("%w: diff-width must be >= 0, got %d", ErrInvalid, c.LCS.DiffWidth)
	}
	return nil
}
