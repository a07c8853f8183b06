package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridtour/tsp"
)

const envPrefix = "GRIDTOUR"

var (
	errNoSource   = errors.New("no input: set --map, --costs and --objectives, or --db and --name")
	errNeedsFiles = errors.New("import needs --map, --costs and --objectives")
	errNeedsStore = errors.New("import needs --db and --name")
)

// config is the resolved settings of one command run.
type config struct {
	Map           string `mapstructure:"map"`
	Costs         string `mapstructure:"costs"`
	Objectives    string `mapstructure:"objectives"`
	DB            string `mapstructure:"db"`
	Name          string `mapstructure:"name"`
	Out           string `mapstructure:"out"`
	PNG           string `mapstructure:"png"`
	CellSize      int    `mapstructure:"cell-size"`
	Mirror        bool   `mapstructure:"mirror"`
	MaxObjectives int    `mapstructure:"max-objectives"`
	LogLevel      string `mapstructure:"log-level"`
}

// hasFiles reports whether any text input was named.
func (c config) hasFiles() bool {
	return c.Map != "" || c.Costs != "" || c.Objectives != ""
}

func (c config) filesComplete() bool {
	return c.Map != "" && c.Costs != "" && c.Objectives != ""
}

// registerFlags declares every setting on fs.
func registerFlags(fs *pflag.FlagSet) {
	fs.String("map", "", "map file: width height, then x y terrain per cell")
	fs.String("costs", "", "travel cost file: x1 y1 x2 y2 cost per line")
	fs.String("objectives", "", "objectives file: origin x y, then one x y per objective")
	fs.String("db", "", "SQLite scenario database")
	fs.String("name", "", "scenario name inside --db")
	fs.StringP("out", "o", "", "report file (default stdout)")
	fs.String("png", "", "also render the route to this PNG file")
	fs.Int("cell-size", 32, "PNG pixels per cell")
	fs.Bool("mirror", true, "apply each travel cost in both directions")
	fs.Int("max-objectives", tsp.DefaultMaxObjectives, fmt.Sprintf("objective limit for the optimal tour (at most %d)", tsp.MaxObjectivesLimit))
	fs.String("log-level", "info", "log level: debug, info, warn or error")
}

// newViper binds fs and the GRIDTOUR_* environment.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	return v, nil
}

// loadDotEnv loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}

// decodeConfig resolves v into a config and validates it.
func decodeConfig(v *viper.Viper) (config, error) {
	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("decode config: %w", err)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return config{}, err
	}

	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}

	return lvl, nil
}
