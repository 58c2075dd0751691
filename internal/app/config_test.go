package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plating.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("plating", nil, map[string]string{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != 120 || cfg.Height != 40 {
		t.Fatalf("board %dx%d, expected 120x40", cfg.Width, cfg.Height)
	}
	if cfg.Frames != 1000 || cfg.Delay != 100*time.Millisecond {
		t.Fatalf("frames=%d delay=%s, expected 1000 and 100ms", cfg.Frames, cfg.Delay)
	}
	if cfg.Sim != "plating" || cfg.Rule != "reference" || cfg.Neighborhood != "moore" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadLayersFileEnvFlags(t *testing.T) {
	path := writeConfig(t, "width: 50\nheight: 20\nseed: 3\ndelay: 250ms\nrule: bands\n")
	environ := map[string]string{
		EnvConfigFile:      path,
		"PLATING_CA_HEIGHT": "25",
		"PLATING_CA_FRAMES": "10",
	}
	cfg, err := Load("plating", []string{"-frames", "7", "-seed", "9"}, environ)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != 50 {
		t.Fatalf("width %d, expected file value 50", cfg.Width)
	}
	if cfg.Height != 25 {
		t.Fatalf("height %d, expected env value 25", cfg.Height)
	}
	if cfg.Frames != 7 || cfg.Seed != 9 {
		t.Fatalf("frames=%d seed=%d, expected flag values 7 and 9", cfg.Frames, cfg.Seed)
	}
	if cfg.Delay != 250*time.Millisecond || cfg.Rule != "bands" {
		t.Fatalf("delay=%s rule=%s, expected file values", cfg.Delay, cfg.Rule)
	}
	if cfg.File != path {
		t.Fatalf("file %q, expected %q", cfg.File, path)
	}
}

func TestLoadConfigFlagWinsOverEnvPath(t *testing.T) {
	flagPath := writeConfig(t, "width: 33\n")
	environ := map[string]string{EnvConfigFile: filepath.Join(t.TempDir(), "missing.yaml")}
	cfg, err := Load("plating", []string{"-config", flagPath}, environ)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != 33 {
		t.Fatalf("width %d, expected 33", cfg.Width)
	}
}

func TestLoadErrors(t *testing.T) {
	typo := writeConfig(t, "colour: blue\n")
	tests := []struct {
		name    string
		args    []string
		environ map[string]string
		want    string
	}{
		{name: "missing file", args: []string{"-config", "/nonexistent/plating.yaml"}, want: "read config"},
		{name: "unknown yaml key", args: []string{"-config", typo}, want: "decode config"},
		{name: "bad env", environ: map[string]string{"PLATING_CA_WIDTH": "wide"}, want: "parse env"},
		{name: "too small", args: []string{"-w", "2"}, want: "too small"},
		{name: "unknown rule", args: []string{"-rule", "conway"}, want: "unknown rule"},
		{name: "negative delay", args: []string{"-delay", "-1s"}, want: "delay"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			environ := tc.environ
			if environ == nil {
				environ = map[string]string{}
			}
			_, err := Load("plating", tc.args, environ)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %v, expected it to mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadHelp(t *testing.T) {
	_, err := Load("plating", []string{"-help"}, map[string]string{})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("error %v, expected flag.ErrHelp", err)
	}
}

func TestSimOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.Width = 64
	cfg.Seed = -4
	opts := cfg.SimOptions()
	if opts["w"] != "64" || opts["h"] != "40" || opts["seed"] != "-4" || opts["rule"] != "reference" {
		t.Fatalf("unexpected options %v", opts)
	}
}
