package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/cbodonnell/pong/client/assets"
	"github.com/cbodonnell/pong/client/game"
	"github.com/cbodonnell/pong/client/input"
	"github.com/cbodonnell/pong/client/scenes"
	gamemanager "github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := parseConfig(args, os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Failed to parse configuration: %v\n", err)
		return 2
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse log level: %v\n", err)
		return 2
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting pong version %s", version.Get())
	log.Debug("Configuration: %+v", cfg)

	loaded, err := assets.Load(assets.FileLoader{}, cfg.AssetPaths())
	if err != nil {
		log.Error("Failed to load assets: %v", err)
		return 1
	}
	defer loaded.Release()

	gameManagerOpts := gamemanager.NewGameManagerOptions{}
	if cfg.Seed != 0 {
		log.Info("Using serve seed %d", cfg.Seed)
		gameManagerOpts.Rand = rand.New(rand.NewSource(cfg.Seed))
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:       cfg.Debug,
		Sampler:     input.NewEbitenSampler(),
		GameManager: gamemanager.NewGameManager(gameManagerOpts),
		Scenes: scenes.NewSet(scenes.NewSetOptions{
			Ball: loaded.Ball,
			Logo: loaded.Logo,
		}),
		Fonts: loaded.Font,
	})
	if err != nil {
		log.Error("Failed to create game: %v", err)
		return 1
	}

	ebiten.SetWindowSize(int(float64(constants.ScreenWidth)*cfg.Scale), int(float64(constants.ScreenHeight)*cfg.Scale))
	ebiten.SetWindowTitle("Pong")
	ebiten.SetFullscreen(cfg.Fullscreen)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("Failed to run game: %v", err)
		return 1
	}

	log.Info("Shutting down")
	return 0
}
