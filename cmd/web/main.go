package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/minaorangina/matatu/config"
	"github.com/minaorangina/matatu/internal/logging"
	"github.com/minaorangina/matatu/server"
	"github.com/minaorangina/matatu/store"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(os.Stdout, cfg.Level(), cfg.ColorLog)

	delays, err := cfg.Delays()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load delays")
	}

	s := server.NewServer(store.NewInMemoryGameStore(), delays)
	go s.StartSweeper(context.Background(), cfg.SweepInterval, cfg.IdleTimeout)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Msgf("Listening on port %d...", cfg.Port)
	log.Fatal().Err(http.ListenAndServe(addr, s)).Msg("server stopped")
}
