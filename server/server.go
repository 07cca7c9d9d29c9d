package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/matatu/config"
	"github.com/minaorangina/matatu/engine"
	"github.com/minaorangina/matatu/internal/logging"
	"github.com/minaorangina/matatu/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewGameRes struct {
	GameID string `json:"game_id"`
}

// GameServer is a game server
type GameServer struct {
	store  store.GameStore
	delays config.Delays
	logger zerolog.Logger
	http.Server
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// recoveryLogger lets handlers.RecoveryHandler report through zerolog
type recoveryLogger struct {
	logger zerolog.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.logger.Error().Msg(fmt.Sprint(v...))
}

// NewServer creates a new GameServer
func NewServer(gameStore store.GameStore, delays config.Delays) *GameServer {
	s := &GameServer{
		store:  gameStore,
		delays: delays,
		logger: logging.Named("server::server"),
	}

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleFindGame))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))
	router.Handle("/metrics", promhttp.Handler())

	var handler http.Handler = router
	handler = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(handler)
	handler = handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{s.logger}))(handler)
	handler = handlers.CombinedLoggingHandler(s.logger, handler)

	s.Handler = handler

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewGame creates a session. The game is dealt when the client
// sends Start over the websocket.
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := store.NewID()
	session := engine.NewSession(engine.SessionOpts{
		GameID: gameID,
		Delays: g.delays,
		Logger: &g.logger,
	})

	if err := g.store.AddGame(session); err != nil {
		g.logger.Error().Err(err).Msg("could not store new game")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	g.logger.Info().Str(logging.GameIDKey, gameID).Msg("new game")
	g.writeJSON(w, http.StatusCreated, NewGameRes{GameID: gameID})
}

func (g *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := strings.TrimPrefix(r.URL.Path, "/game/")
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	session := g.store.FindGame(gameID)
	if session == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	g.writeJSON(w, http.StatusOK, session.Snapshot())
}

func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	session := g.store.FindGame(gameID)
	if session == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	rawConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied
		g.logger.Warn().Err(err).Msg("could not upgrade to websocket")
		return
	}

	logger := g.logger.With().Str(logging.GameIDKey, gameID).Logger()
	c := newClient(rawConn, session, logger)
	session.Attach(c)

	go c.writePump()
	c.readPump()

	if session.Over() {
		g.removeGame(gameID)
	}
}

// Sweep removes every game no client has watched for ttl
func (g *GameServer) Sweep(now time.Time, ttl time.Duration) int {
	removed := g.store.RemoveGames(func(session *engine.Session) bool {
		return session.Abandoned(now, ttl)
	})
	for _, gameID := range removed {
		g.logger.Info().Str(logging.GameIDKey, gameID).Msg("removed idle game")
	}
	return len(removed)
}

// StartSweeper runs Sweep every interval until ctx is done
func (g *GameServer) StartSweeper(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			g.Sweep(now, ttl)
		}
	}
}

func (g *GameServer) removeGame(gameID string) {
	if err := g.store.RemoveGame(gameID); err != nil {
		g.logger.Debug().Err(err).Msg("game already removed")
		return
	}
	g.logger.Info().Str(logging.GameIDKey, gameID).Msg("removed finished game")
}

func (g *GameServer) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		g.logger.Error().Err(err).Msg("could not encode response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}
