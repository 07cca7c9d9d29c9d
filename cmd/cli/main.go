package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/minaorangina/matatu/config"
	"github.com/minaorangina/matatu/deck"
	"github.com/minaorangina/matatu/engine"
	"github.com/minaorangina/matatu/game"
	"github.com/minaorangina/matatu/internal/logging"
	"github.com/minaorangina/matatu/store"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	// the table is drawn on stdout, so keep logs quiet and out of the way
	level := cfg.Level()
	if level < zerolog.WarnLevel {
		level = zerolog.WarnLevel
	}
	logging.Setup(os.Stderr, level, cfg.ColorLog)

	delays, err := cfg.Delays()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load delays")
	}

	session := engine.NewSession(engine.SessionOpts{
		GameID:   store.NewID(),
		Notifier: engine.TextNotifier{Out: os.Stdout},
		Delays:   delays,
	})

	engine.SendText(os.Stdout, "%s", engine.HelpText())
	if err := session.StartGame(); err != nil {
		log.Error().Err(err).Msg("could not start")
	}

	run(session, os.Stdin, os.Stdout)
}

func run(session *engine.Session, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "p":
			if len(fields) != 2 {
				engine.SendText(out, "Usage: p <card number>\n")
				continue
			}
			idx, convErr := strconv.Atoi(fields[1])
			if convErr != nil {
				engine.SendText(out, "Usage: p <card number>\n")
				continue
			}
			err = session.PlayerPlaysCard(idx)
		case "d":
			err = session.PlayerDrawsFromDeck()
		case "s":
			if len(fields) != 2 {
				engine.SendText(out, "Usage: s <hearts|diamonds|clubs|spades>\n")
				continue
			}
			suit, parseErr := deck.ParseSuit(fields[1])
			if parseErr != nil {
				engine.SendText(out, "%s\n", parseErr)
				continue
			}
			err = session.PlayerChoosesSuit(suit)
		case "k":
			err = session.PlayerSkipsTurn()
		case "n":
			err = session.StartGame()
		case "q":
			return
		default:
			engine.SendText(out, "%s", engine.HelpText())
			continue
		}

		switch {
		case err == nil:
		case errors.Is(err, engine.ErrCannotSkip), errors.Is(err, engine.ErrNoSuitRequested), errors.Is(err, game.ErrInvalidCardIndex):
			engine.SendText(out, "! %s\n", err)
		default:
			log.Debug().Err(err).Msg(fields[0])
		}
	}
}
