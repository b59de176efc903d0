package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/drills/internal/config"
	"github.com/robalobadob/drills/internal/demo"
)

func main() {
	cfg := config.Load()
	cfg.SetupLogging(os.Stderr)

	if err := demo.Run(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("demo failed")
	}
}
