package app

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"plating-ca/internal/sims/plating"
)

// EnvConfigFile names the environment variable holding a config file path.
const EnvConfigFile = "PLATING_CA_CONFIG"

// Config represents the runtime parameters of the application. Values are
// layered: defaults, then the YAML file, then the environment, then flags.
type Config struct {
	File string `yaml:"-" env:"PLATING_CA_CONFIG"`

	Sim          string `yaml:"sim" env:"PLATING_CA_SIM"`
	Width        int    `yaml:"width" env:"PLATING_CA_WIDTH"`
	Height       int    `yaml:"height" env:"PLATING_CA_HEIGHT"`
	Seed         int64  `yaml:"seed" env:"PLATING_CA_SEED"`
	Rule         string `yaml:"rule" env:"PLATING_CA_RULE"`
	Neighborhood string `yaml:"neighborhood" env:"PLATING_CA_NEIGHBORHOOD"`

	Frames int           `yaml:"frames" env:"PLATING_CA_FRAMES"`
	Delay  time.Duration `yaml:"delay" env:"PLATING_CA_DELAY"`

	Scale    int `yaml:"scale" env:"PLATING_CA_SCALE"`
	HUDWidth int `yaml:"hud_width" env:"PLATING_CA_HUD_WIDTH"`
}

// NewConfig returns a Config populated with the reference defaults.
func NewConfig() *Config {
	sim := plating.DefaultConfig()
	return &Config{
		Sim:          "plating",
		Width:        sim.Width,
		Height:       sim.Height,
		Seed:         sim.Seed,
		Rule:         string(sim.Params.Rule),
		Neighborhood: string(sim.Params.Neighborhood),
		Frames:       1000,
		Delay:        100 * time.Millisecond,
		Scale:        6,
		HUDWidth:     220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "YAML config file (also "+EnvConfigFile+")")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Rule, "rule", c.Rule, "survival rule: reference or bands")
	fs.StringVar(&c.Neighborhood, "neighborhood", c.Neighborhood, "activation neighborhood: moore or vonneumann")
	fs.IntVar(&c.Frames, "frames", c.Frames, "frames to run, 0 runs until interrupted")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "delay between frames")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels, 0 hides it (GUI)")
}

// LoadFile overlays the YAML document at path onto c. Unknown keys are
// rejected.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Width < 3 || c.Height < 3 {
		return fmt.Errorf("board %dx%d too small: both dimensions must be at least 3", c.Width, c.Height)
	}
	if _, ok := plating.ParseRule(c.Rule); !ok {
		return fmt.Errorf("unknown rule %q", c.Rule)
	}
	if _, ok := plating.ParseNeighborhood(c.Neighborhood); !ok {
		return fmt.Errorf("unknown neighborhood %q", c.Neighborhood)
	}
	if c.Frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", c.Frames)
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", c.Delay)
	}
	if c.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", c.Scale)
	}
	if c.HUDWidth < 0 {
		return fmt.Errorf("hud width must not be negative, got %d", c.HUDWidth)
	}
	return nil
}

// SimOptions converts the config into the key/value form consumed by the
// sim registry factories.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":            strconv.Itoa(c.Width),
		"h":            strconv.Itoa(c.Height),
		"seed":         strconv.FormatInt(c.Seed, 10),
		"rule":         c.Rule,
		"neighborhood": c.Neighborhood,
	}
}

// Load builds a Config from defaults, the optional YAML file, the provided
// environment and the command-line args, in increasing precedence.
func Load(name string, args []string, environ map[string]string) (*Config, error) {
	// A first quiet pass only discovers -config; the real parse below
	// reports flag errors.
	probe := NewConfig()
	pfs := flag.NewFlagSet(name, flag.ContinueOnError)
	pfs.SetOutput(io.Discard)
	probe.Bind(pfs)
	_ = pfs.Parse(args)

	cfg := NewConfig()
	path := probe.File
	if path == "" {
		path = environ[EnvConfigFile]
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.File = path
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
