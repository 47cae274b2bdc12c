package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cbodonnell/pong/client/assets"
)

const envPrefix = "PONG_"

// Config is the client configuration. Flags take precedence over PONG_*
// environment variables, which take precedence over defaults.
type Config struct {
	LogLevel   string
	Debug      bool
	AssetsDir  string
	BallPath   string
	LogoPath   string
	FontPath   string
	Seed       int64
	Scale      float64
	Fullscreen bool
}

func defaultConfig() Config {
	return Config{
		LogLevel:  "info",
		AssetsDir: "assets",
		BallPath:  "ball.png",
		LogoPath:  "logo.png",
		FontPath:  "font.ttf",
		Scale:     1,
	}
}

// parseConfig reads args (without the program name) and falls back to getenv
// for flags that were not set.
func parseConfig(args []string, getenv func(string) string, output io.Writer) (Config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("pong", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (error, warn, info, debug, trace)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Draw the FPS/TPS debug overlay")
	fs.StringVar(&cfg.AssetsDir, "assets", cfg.AssetsDir, "Assets directory")
	fs.StringVar(&cfg.BallPath, "ball", cfg.BallPath, "Ball image, relative to the assets directory")
	fs.StringVar(&cfg.LogoPath, "logo", cfg.LogoPath, "Title logo image, relative to the assets directory. Empty disables the logo")
	fs.StringVar(&cfg.FontPath, "font", cfg.FontPath, "TrueType font, relative to the assets directory")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Serve direction seed. 0 seeds from the clock")
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "Window scale")
	fs.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen, "Start in fullscreen mode")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	var err error
	fs.VisitAll(func(f *flag.Flag) {
		if err != nil || set[f.Name] {
			return
		}
		key := envName(f.Name)
		v := getenv(key)
		if v == "" {
			return
		}
		if setErr := f.Value.Set(v); setErr != nil {
			err = fmt.Errorf("invalid value %q for %s: %w", v, key, setErr)
		}
	})
	if err != nil {
		return Config{}, err
	}

	if cfg.Scale <= 0 {
		return Config{}, fmt.Errorf("scale must be positive, got %g", cfg.Scale)
	}

	return cfg, nil
}

// envName maps a flag name like log-level to PONG_LOG_LEVEL.
func envName(flagName string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// AssetPaths resolves the asset paths against the assets directory.
func (c Config) AssetPaths() assets.Paths {
	return assets.Paths{
		Ball: c.resolve(c.BallPath),
		Logo: c.resolve(c.LogoPath),
		Font: c.resolve(c.FontPath),
	}
}

func (c Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.AssetsDir, p)
}
