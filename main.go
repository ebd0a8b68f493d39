package main

import (
	"flag"
	"image"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/linkhub-particles/internal/config"
	"github.com/olivierh59500/linkhub-particles/internal/game"
)

func main() {
	var (
		preset     = flag.String("preset", "molten", "Particle preset: "+strings.Join(config.Presets(), ", "))
		configPath = flag.String("config", "config.json", "Config file for the S/L keys; loaded at startup if -load is set")
		load       = flag.Bool("load", false, "Load -config at startup instead of -preset")
		particles  = flag.Int("particles", 0, "Override the particle count")
		noiseKind  = flag.String("noise", "", "Noise field: simplex, perlin or opensimplex")
		seed       = flag.Int64("seed", 0, "Random seed (0 uses the clock)")
		avatarPath = flag.String("avatar", "", "Avatar image (PNG, JPEG or GIF)")
		theme      = flag.String("theme", "", "Start theme: dark or light")
		width      = flag.Int("width", 1280, "Window width")
		height     = flag.Int("height", 800, "Window height")
		debug      = flag.Bool("debug", false, "Show the debug overlay")
	)
	flag.Parse()

	cfg, err := loadConfig(*load, *configPath, *preset)
	if err != nil {
		log.Fatal(err)
	}
	if *particles > 0 {
		cfg.Particles = *particles
	}
	if *noiseKind != "" {
		cfg.Noise = *noiseKind
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *theme != "" {
		cfg.Theme = config.Theme(*theme)
	}
	if *avatarPath != "" {
		cfg.Profile.Avatar = *avatarPath
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// A missing avatar is not fatal; hovering it shows the silhouette
	var avatar image.Image
	if cfg.Profile.Avatar != "" {
		if avatar, err = game.LoadAvatar(cfg.Profile.Avatar); err != nil {
			log.Printf("avatar: %v", err)
		}
	}

	g, err := game.New(cfg, game.Options{ConfigPath: *configPath, Avatar: avatar, Debug: *debug})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("preset %s, %d particles, %s noise", cfg.Preset, cfg.Particles, cfg.Noise)

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Link Hub")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(fromFile bool, path, preset string) (config.Config, error) {
	if fromFile {
		return config.Load(path)
	}
	return config.Preset(preset)
}
