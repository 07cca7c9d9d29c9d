package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	gamesStartedCounter      prometheus.Counter
	gamesFinishedCounter     *prometheus.CounterVec
	cardsPlayedCounter       *prometheus.CounterVec
	penaltyCardsDrawnCounter *prometheus.CounterVec
	opponentDecisionCounter  *prometheus.CounterVec
	activeSessionsGauge      prometheus.Gauge
}

func (m *metrics) GameStarted() {
	m.gamesStartedCounter.Inc()
}

func (m *metrics) GameFinished(status string) {
	m.gamesFinishedCounter.WithLabelValues(status).Inc()
}

func (m *metrics) CardPlayed(seat string) {
	m.cardsPlayedCounter.WithLabelValues(seat).Inc()
}

func (m *metrics) PenaltyCardsDrawn(seat string, n int) {
	m.penaltyCardsDrawnCounter.WithLabelValues(seat).Add(float64(n))
}

func (m *metrics) OpponentDecision(decision string) {
	m.opponentDecisionCounter.WithLabelValues(decision).Inc()
}

func (m *metrics) SetActiveSessions(count int) {
	m.activeSessionsGauge.Set(float64(count))
}

var Metrics = &metrics{
	gamesStartedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "matatu_games_started_total",
		Help: "Total number of games dealt",
	}),
	gamesFinishedCounter: promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "matatu_games_finished_total",
		Help: "Total number of finished games by result",
	}, []string{"result"}),
	cardsPlayedCounter: promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "matatu_cards_played_total",
		Help: "Total number of cards played by seat",
	}, []string{"seat"}),
	penaltyCardsDrawnCounter: promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "matatu_penalty_cards_drawn_total",
		Help: "Total number of cards drawn to absorb penalties, by seat",
	}, []string{"seat"}),
	opponentDecisionCounter: promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "matatu_opponent_decisions_total",
		Help: "Total number of opponent turns by decision",
	}, []string{"decision"}),
	activeSessionsGauge: promauto.NewGauge(prometheus.GaugeOpts{
		Name: "matatu_active_sessions_count",
		Help: "Count of the sessions held by the session store",
	}),
}
