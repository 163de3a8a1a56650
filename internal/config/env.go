// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strings"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the NUMSEP_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"POLICY", []string{"policy"}, func(c *AppConfig, v string) {
		c.Policy = v
	}},
	{"SEP", []string{"sep"}, func(c *AppConfig, v string) {
		c.Separator = v
		c.SeparatorSet = true
	}},
	{"GROUPS", []string{"groups"}, func(c *AppConfig, v string) {
		c.Groups = v
	}},
	{"DECIMAL", []string{"decimal"}, func(c *AppConfig, v string) {
		c.DecimalSeparator = v
		c.DecimalSet = true
	}},
	{"FRAC_GROUPS", []string{"frac-groups"}, func(c *AppConfig, v string) {
		c.FractionalGroups = v
	}},
	{"FRAC_SEP", []string{"frac-sep"}, func(c *AppConfig, v string) {
		c.FractionalSeparator = v
		c.FractionalSepSet = true
	}},
	{"DIGITS", []string{"digits"}, func(c *AppConfig, v string) {
		c.Digits = v
	}},
	{"VERBOSE", []string{"v", "verbose"}, func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with NUMSEP_):
//   - POLICY, SEP, GROUPS, DECIMAL, FRAC_GROUPS, FRAC_SEP, DIGITS, VERBOSE
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
