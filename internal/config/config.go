// Package config parses the numsep command line into an AppConfig and
// resolves it to a numsep.SeparatorPolicy.
//
// Resolution chain (highest priority first):
//  1. CLI flags (-policy, -sep, -groups, ...)
//  2. Environment variables (NUMSEP_POLICY, NUMSEP_SEP, ...)
//  3. Built-in defaults (the comma policy)
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pboivin/numsep"
	"github.com/pboivin/numsep/internal/apperrors"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "NUMSEP_"

// AppConfig holds the parsed command-line configuration.
type AppConfig struct {
	// Policy names the preset to start from: comma, space, underscore,
	// dot, hex, or none.
	Policy string
	// Separator overrides the preset's group separator when SeparatorSet.
	Separator string
	// SeparatorSet records whether -sep was given; an empty string is a
	// meaningful value (it disables separation), so presence matters.
	SeparatorSet bool
	// Groups overrides the preset's group sizes, as a comma-separated
	// list such as "3" or "3,2". Empty means keep the preset's sizes.
	Groups string
	// DecimalSeparator overrides the output decimal separator when
	// DecimalSet.
	DecimalSeparator string
	// DecimalSet records whether -decimal was given.
	DecimalSet bool
	// FractionalGroups configures grouping after the decimal separator,
	// same syntax as Groups. Empty means no fractional grouping.
	FractionalGroups string
	// FractionalSeparator is the separator within fractional groups.
	FractionalSeparator string
	// FractionalSepSet records whether -frac-sep was given.
	FractionalSepSet bool
	// Digits selects the digit alphabet: "dec" or "hex". Empty keeps the
	// preset's alphabet.
	Digits string
	// Verbose enables diagnostic logging on stderr.
	Verbose bool
	// Args holds the positional arguments: the values to format. Empty
	// means read values from stdin, one per line.
	Args []string
}

// DefaultConfig returns the configuration used when no flags and no
// environment variables are set.
func DefaultConfig() AppConfig {
	return AppConfig{Policy: "comma"}
}

// presets maps preset names to their separator policies.
var presets = map[string]numsep.SeparatorPolicy{
	"comma":      numsep.Commas,
	"space":      numsep.Spaces,
	"underscore": numsep.Underscores,
	"dot":        numsep.Dots,
	"hex":        numsep.Hexadecimal,
	"none":       {},
}

// PresetNames returns the accepted -policy values in a stable order.
func PresetNames() []string {
	return []string{"comma", "space", "underscore", "dot", "hex", "none"}
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment variable overrides for any flag not set explicitly. It returns
// flag.ErrHelp when -h or --help was requested.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] [value ...]\n", programName)
		fmt.Fprintf(errWriter, "Formats numbers with digit-group separators. ")
		fmt.Fprintf(errWriter, "Values are taken from the arguments, or from stdin one per line.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.Policy, "policy", cfg.Policy,
		fmt.Sprintf("separator preset: %s", strings.Join(PresetNames(), ", ")))
	fs.StringVar(&cfg.Separator, "sep", "", "group separator string (overrides the preset)")
	fs.StringVar(&cfg.Groups, "groups", "", `group sizes, rightmost first, e.g. "3" or "3,2"`)
	fs.StringVar(&cfg.DecimalSeparator, "decimal", "", "output decimal separator (overrides the scanned point)")
	fs.StringVar(&cfg.FractionalGroups, "frac-groups", "", "group sizes for digits after the decimal separator")
	fs.StringVar(&cfg.FractionalSeparator, "frac-sep", "", "separator within fractional groups")
	fs.StringVar(&cfg.Digits, "digits", "", `digit alphabet: "dec" or "hex"`)
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose diagnostic logging (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "verbose diagnostic logging")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.SeparatorSet = isFlagSet(fs, "sep")
	cfg.DecimalSet = isFlagSet(fs, "decimal")
	cfg.FractionalSepSet = isFlagSet(fs, "frac-sep")
	cfg.Args = fs.Args()

	applyEnvOverrides(&cfg, fs)

	if _, ok := presets[cfg.Policy]; !ok {
		return cfg, apperrors.NewConfigError("unknown policy %q, want one of: %s",
			cfg.Policy, strings.Join(PresetNames(), ", "))
	}
	switch cfg.Digits {
	case "", "dec", "hex":
	default:
		return cfg, apperrors.NewConfigError("unknown digit alphabet %q, want dec or hex", cfg.Digits)
	}

	return cfg, nil
}

// BuildPolicy resolves the configuration to a separator policy: the named
// preset with any explicit flag overrides applied, validated.
func BuildPolicy(cfg AppConfig) (numsep.SeparatorPolicy, error) {
	policy, ok := presets[cfg.Policy]
	if !ok {
		return policy, apperrors.NewConfigError("unknown policy %q", cfg.Policy)
	}

	if cfg.SeparatorSet {
		policy.Separator = cfg.Separator
	}
	if cfg.Groups != "" {
		groups, err := parseGroupList("groups", cfg.Groups)
		if err != nil {
			return policy, err
		}
		policy.Groups = groups
	}
	if cfg.DecimalSet {
		policy.DecimalSeparator = cfg.DecimalSeparator
	}
	if cfg.FractionalGroups != "" {
		groups, err := parseGroupList("frac-groups", cfg.FractionalGroups)
		if err != nil {
			return policy, err
		}
		policy.FractionalGroups = groups
	}
	if cfg.FractionalSepSet {
		policy.FractionalSeparator = cfg.FractionalSeparator
	}
	switch cfg.Digits {
	case "dec":
		policy.Digits = numsep.DigitsDecimal
	case "hex":
		policy.Digits = numsep.DigitsHex
	}

	// Non-positive group sizes are reported by the library with the
	// offending field attached, not silently accepted here.
	if err := policy.Validate(); err != nil {
		return policy, err
	}
	return policy, nil
}

// parseGroupList parses a comma-separated list of integers such as "3,2".
// Syntax errors are configuration errors; range checking (positive sizes) is
// left to policy validation.
func parseGroupList(flagName, value string) ([]int, error) {
	parts := strings.Split(value, ",")
	groups := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, apperrors.NewConfigError("invalid -%s value %q: %q is not an integer",
				flagName, value, part)
		}
		groups = append(groups, n)
	}
	return groups, nil
}
