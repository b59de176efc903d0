package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/drills/internal/config"
	"github.com/robalobadob/drills/internal/guess"
)

func main() {
	cfg := config.Load()
	cfg.SetupLogging(os.Stderr)

	src := guess.RandomSource()
	if cfg.Seed != "" {
		src = guess.SeededSource(cfg.Seed)
	}
	g := guess.New(src)
	log.Debug().Str("game", g.ID).Bool("seeded", cfg.Seed != "").Msg("new game")

	if err := guess.Play(g, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Str("game", g.ID).Msg("Failed to read line")
	}
}
