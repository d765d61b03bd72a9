// Package config assembles a breakout.Config from defaults, a TOML file, a .env file, BREAKOUT_*
// environment variables and command-line flags, in that order of increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/plus3/breakout/internal/breakout"
)

const envPrefix = "BREAKOUT_"

// Settings is everything a frontend needs to start.
type Settings struct {
	Game     breakout.Config
	Debug    bool
	LogLevel slog.Level
}

type fileConfig struct {
	Debug    bool            `toml:"debug"`
	LogLevel string          `toml:"log_level"`
	Game     breakout.Config `toml:"game"`
}

type flagValues struct {
	config   string
	env      string
	variant  string
	seed     uint64
	debug    bool
	logLevel string
}

// Load parses args with a new flag set named name and layers the result over the other sources.
// lookup reads the process environment; nil means os.LookupEnv.
func Load(name string, args []string, lookup func(string) (string, bool)) (*Settings, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var fv flagValues
	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.StringVar(&fv.config, "config", "", "Path to a TOML config file.")
	fset.StringVar(&fv.env, "env", ".env", "Path to a dotenv file with BREAKOUT_* overrides. Missing files are ignored.")
	fset.StringVar(&fv.variant, "variant", "", "Rule set: classic or extended.")
	fset.Uint64Var(&fv.seed, "seed", 0, "Serve RNG seed. 0 picks one from the clock.")
	fset.BoolVar(&fv.debug, "debug", false, "Show the debug overlay.")
	fset.StringVar(&fv.logLevel, "log-level", "", "Log level: debug, info, warn or error.")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	settings := &Settings{Game: breakout.DefaultConfig(), LogLevel: slog.LevelInfo}

	if fv.config != "" {
		if err := settings.loadFile(fv.config); err != nil {
			return nil, err
		}
	}

	env, err := readEnv(fv.env, lookup)
	if err != nil {
		return nil, err
	}
	if err := settings.applyEnv(env); err != nil {
		return nil, err
	}

	var flagErr error
	fset.Visit(func(f *flag.Flag) {
		if flagErr != nil {
			return
		}
		switch f.Name {
		case "variant":
			settings.Game.Variant, flagErr = breakout.ParseVariant(fv.variant)
		case "seed":
			settings.Game.Seed = fv.seed
		case "debug":
			settings.Debug = fv.debug
		case "log-level":
			flagErr = settings.LogLevel.UnmarshalText([]byte(fv.logLevel))
		}
	})
	if flagErr != nil {
		return nil, fmt.Errorf("flags: %w", flagErr)
	}

	if err := settings.Game.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *Settings) loadFile(path string) error {
	fc := fileConfig{Debug: s.Debug, Game: s.Game}
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("reading config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	s.Debug = fc.Debug
	s.Game = fc.Game
	if fc.LogLevel != "" {
		if err := s.LogLevel.UnmarshalText([]byte(fc.LogLevel)); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return nil
}

// readEnv merges the dotenv file under the process environment, keeping only BREAKOUT_* keys.
func readEnv(path string, lookup func(string) (string, bool)) (map[string]string, error) {
	env := map[string]string{}
	if path != "" {
		file, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading env file %s: %w", path, err)
		}
		for k, v := range file {
			if strings.HasPrefix(k, envPrefix) {
				env[k] = v
			}
		}
	}
	for _, key := range envKeys {
		if v, ok := lookup(envPrefix + key); ok {
			env[envPrefix+key] = v
		}
	}
	return env, nil
}

var envKeys = []string{
	"VARIANT", "SEED", "LIVES", "TICK_RATE", "BAT_SPEED_THRESHOLD",
	"WINDOW_WIDTH", "WINDOW_HEIGHT", "DEBUG", "LOG_LEVEL",
}

func (s *Settings) applyEnv(env map[string]string) error {
	for _, key := range envKeys {
		raw, ok := env[envPrefix+key]
		if !ok {
			continue
		}
		if err := s.setEnv(key, raw); err != nil {
			return fmt.Errorf("%s%s=%q: %w", envPrefix, key, raw, err)
		}
	}
	return nil
}

func (s *Settings) setEnv(key, raw string) error {
	var err error
	switch key {
	case "VARIANT":
		s.Game.Variant, err = breakout.ParseVariant(raw)
	case "SEED":
		s.Game.Seed, err = strconv.ParseUint(raw, 10, 64)
	case "LIVES":
		s.Game.Lives, err = strconv.Atoi(raw)
	case "TICK_RATE":
		s.Game.TickRate, err = strconv.Atoi(raw)
	case "BAT_SPEED_THRESHOLD":
		s.Game.BatSpeedThreshold, err = strconv.ParseFloat(raw, 64)
	case "WINDOW_WIDTH":
		s.Game.WindowWidth, err = strconv.ParseFloat(raw, 64)
	case "WINDOW_HEIGHT":
		s.Game.WindowHeight, err = strconv.ParseFloat(raw, 64)
	case "DEBUG":
		s.Debug, err = strconv.ParseBool(raw)
	case "LOG_LEVEL":
		err = s.LogLevel.UnmarshalText([]byte(raw))
	}
	return err
}

// NewLogger returns a text logger writing records at level or above to w.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
