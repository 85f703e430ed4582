package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/eurekaP/snake.io/internal/game"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment as-is")
	}

	cfg := game.Config{
		Seed: uint64(time.Now().UnixNano()),
		Name: "you",
		Bots: game.NumBots,
	}
	if s := os.Getenv("SNAKEIO_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			cfg.Seed = v
		} else {
			log.Printf("ignoring SNAKEIO_SEED %q: %v", s, err)
		}
	}
	if s := os.Getenv("SNAKEIO_NAME"); s != "" {
		cfg.Name = s
	}
	if s := os.Getenv("SNAKEIO_BOTS"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			cfg.Bots = v
		} else {
			log.Printf("ignoring SNAKEIO_BOTS %q", s)
		}
	}
	cfg.Debug = os.Getenv("SNAKEIO_DEBUG") == "1"

	if err := game.InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}
	if s := os.Getenv("SNAKEIO_VOLUME"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			game.SetSFXVolume(v)
		}
	}

	ebiten.SetWindowSize(game.WindowWidth, game.WindowHeight)
	ebiten.SetWindowTitle("snake.io")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(game.TicksPerSec)

	if err := ebiten.RunGame(game.New(cfg)); err != nil {
		log.Fatal(err)
	}
}
