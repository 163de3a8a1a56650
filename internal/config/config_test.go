package config

import (
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/pboivin/numsep"
	"github.com/pboivin/numsep/internal/apperrors"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig("numsep", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.Policy != "comma" {
		t.Errorf("default Policy = %q, want %q", cfg.Policy, "comma")
	}
	if cfg.SeparatorSet || cfg.DecimalSet || cfg.FractionalSepSet {
		t.Error("no Set markers should be true without flags")
	}
	if len(cfg.Args) != 0 {
		t.Errorf("Args = %v, want empty", cfg.Args)
	}
}

func TestParseConfigFlags(t *testing.T) {
	args := []string{"-policy", "space", "-sep", "", "-groups", "3,2", "-v", "12345", "678"}
	cfg, err := ParseConfig("numsep", args, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}

	if cfg.Policy != "space" {
		t.Errorf("Policy = %q, want %q", cfg.Policy, "space")
	}
	if !cfg.SeparatorSet {
		t.Error("SeparatorSet = false, want true for an explicit empty -sep")
	}
	if cfg.Groups != "3,2" {
		t.Errorf("Groups = %q, want %q", cfg.Groups, "3,2")
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
	if want := []string{"12345", "678"}; !reflect.DeepEqual(cfg.Args, want) {
		t.Errorf("Args = %v, want %v", cfg.Args, want)
	}
}

func TestParseConfigUnknownPolicy(t *testing.T) {
	_, err := ParseConfig("numsep", []string{"-policy", "fancy"}, io.Discard)
	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("ParseConfig error = %v, want apperrors.ConfigError", err)
	}
}

func TestParseConfigUnknownDigits(t *testing.T) {
	_, err := ParseConfig("numsep", []string{"-digits", "roman"}, io.Discard)
	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("ParseConfig error = %v, want apperrors.ConfigError", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("NUMSEP_POLICY", "underscore")
	t.Setenv("NUMSEP_SEP", "~")
	t.Setenv("NUMSEP_VERBOSE", "yes")

	cfg, err := ParseConfig("numsep", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.Policy != "underscore" {
		t.Errorf("Policy = %q, want env override %q", cfg.Policy, "underscore")
	}
	if !cfg.SeparatorSet || cfg.Separator != "~" {
		t.Errorf("Separator = %q (set=%v), want env override %q", cfg.Separator, cfg.SeparatorSet, "~")
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want env override true")
	}
}

func TestEnvOverridePrecedence(t *testing.T) {
	t.Setenv("NUMSEP_POLICY", "underscore")

	// The explicit flag wins over the environment.
	cfg, err := ParseConfig("numsep", []string{"-policy", "dot"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.Policy != "dot" {
		t.Errorf("Policy = %q, want flag value %q", cfg.Policy, "dot")
	}
}

func TestBuildPolicy(t *testing.T) {
	tests := []struct {
		name string
		cfg  AppConfig
		want numsep.SeparatorPolicy
	}{
		{
			name: "comma preset",
			cfg:  AppConfig{Policy: "comma"},
			want: numsep.Commas,
		},
		{
			name: "none preset",
			cfg:  AppConfig{Policy: "none"},
			want: numsep.SeparatorPolicy{},
		},
		{
			name: "separator override",
			cfg:  AppConfig{Policy: "comma", Separator: " · ", SeparatorSet: true},
			want: numsep.SeparatorPolicy{Separator: " · ", Groups: []int{3}},
		},
		{
			name: "groups override",
			cfg:  AppConfig{Policy: "comma", Groups: "3,2"},
			want: numsep.SeparatorPolicy{Separator: ",", Groups: []int{3, 2}},
		},
		{
			name: "fractional configuration",
			cfg: AppConfig{
				Policy:              "space",
				DecimalSeparator:    ",",
				DecimalSet:          true,
				FractionalGroups:    "2",
				FractionalSeparator: " ",
				FractionalSepSet:    true,
			},
			want: numsep.SeparatorPolicy{
				Separator:           " ",
				Groups:              []int{3},
				DecimalSeparator:    ",",
				FractionalGroups:    []int{2},
				FractionalSeparator: " ",
			},
		},
		{
			name: "hex digits override",
			cfg:  AppConfig{Policy: "comma", Digits: "hex"},
			want: numsep.SeparatorPolicy{Separator: ",", Groups: []int{3}, Digits: numsep.DigitsHex},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildPolicy(tt.cfg)
			if err != nil {
				t.Fatalf("BuildPolicy error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildPolicy = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBuildPolicyErrors(t *testing.T) {
	t.Run("group list syntax error", func(t *testing.T) {
		_, err := BuildPolicy(AppConfig{Policy: "comma", Groups: "3,x"})
		var cfgErr apperrors.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("error = %v, want apperrors.ConfigError", err)
		}
	})

	t.Run("non-positive group size surfaces the library error", func(t *testing.T) {
		_, err := BuildPolicy(AppConfig{Policy: "comma", Groups: "0"})
		var policyErr numsep.ConfigError
		if !errors.As(err, &policyErr) {
			t.Fatalf("error = %v, want numsep.ConfigError", err)
		}
		if policyErr.Field != "Groups" {
			t.Errorf("ConfigError.Field = %q, want %q", policyErr.Field, "Groups")
		}
	})
}
