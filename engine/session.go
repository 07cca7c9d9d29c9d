package engine

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/minaorangina/matatu/config"
	"github.com/minaorangina/matatu/deck"
	"github.com/minaorangina/matatu/game"
	"github.com/minaorangina/matatu/internal/logging"
	"github.com/minaorangina/matatu/protocol"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	ErrNoSuitRequested = errors.New("no suit has been requested")
	ErrInvalidSuit     = errors.New("invalid suit")
	ErrAlreadyDrawn    = errors.New("already drawn this turn")
	ErrCannotSkip      = errors.New("can only skip after drawing")
	ErrUnknownCommand  = errors.New("unknown command")
)

// Notifier receives every notification a session produces. Notify is
// called with the session locked and must not call back into it.
type Notifier interface {
	Notify(msg protocol.OutboundMessage)
}

type discard struct{}

func (discard) Notify(protocol.OutboundMessage) {}

// Session drives one game between a person and the computer opponent.
// Every exported method is safe to call from any goroutine.
type Session struct {
	ID string

	mu         sync.Mutex
	generation uint64
	table      *game.Table
	pendingAce int
	notifier   Notifier
	scheduler  Scheduler
	delays     config.Delays
	rng        *rand.Rand
	logger     zerolog.Logger

	attached  bool
	idleSince time.Time
}

type SessionOpts struct {
	GameID    string
	Notifier  Notifier
	Scheduler Scheduler
	Delays    config.Delays
	Rand      *rand.Rand
	Logger    *zerolog.Logger
	// Table resumes a game already under way
	Table *game.Table
}

func NewSession(opts SessionOpts) *Session {
	logger := logging.Named("engine::session")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	logger = logger.With().Str(logging.GameIDKey, opts.GameID).Logger()

	s := &Session{
		ID:         opts.GameID,
		table:      opts.Table,
		pendingAce: -1,
		notifier:   opts.Notifier,
		scheduler:  opts.Scheduler,
		delays:     opts.Delays,
		rng:        opts.Rand,
		logger:     logger,
	}

	if s.notifier == nil {
		s.notifier = discard{}
		s.idleSince = time.Now()
	} else {
		s.attached = true
	}
	if s.scheduler == nil {
		s.scheduler = TimerScheduler{}
	}
	if s.rng == nil {
		s.rng = deck.NewRand()
	}
	if s.table == nil {
		s.table = game.NewTable(s.rng, &s.logger)
	}

	return s
}

// Attach swaps the notifier and sends it the current table
func (s *Session) Attach(n Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n == nil {
		n = discard{}
	}
	s.notifier = n
	s.attached = true
	s.idleSince = time.Time{}

	if s.table.Status != game.NotStarted {
		s.notifyState()
	}
	if s.table.Status.Terminal() {
		n.Notify(s.buildGameOverMessage())
	}
}

// Detach stops sending to n, unless another notifier has replaced it
func (s *Session) Detach(n Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.notifier == n {
		s.notifier = discard{}
		s.attached = false
		s.idleSince = time.Now()
	}
}

// Over reports whether the game has a result
func (s *Session) Over() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.table.Status.Terminal()
}

// Abandoned reports whether no client has been attached for at least ttl
func (s *Session) Abandoned(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return !s.attached && now.Sub(s.idleSince) >= ttl
}

// Receive dispatches an inbound message to the matching intent
func (s *Session) Receive(msg protocol.InboundMessage) error {
	s.logger.Debug().Str(logging.CmdKey, msg.Command.String()).Msg("received")

	switch msg.Command {
	case protocol.Start:
		return s.StartGame()
	case protocol.PlayCard:
		if len(msg.Decision) != 1 {
			s.logger.Error().Msgf("play needs one card, got %v", msg.Decision)
			return game.ErrInvalidCardIndex
		}
		return s.PlayerPlaysCard(msg.Decision[0])
	case protocol.DrawCard:
		return s.PlayerDrawsFromDeck()
	case protocol.ChooseSuit:
		return s.PlayerChoosesSuit(msg.Suit)
	case protocol.SkipTurn:
		return s.PlayerSkipsTurn()
	}

	return errors.Wrapf(ErrUnknownCommand, "%s", msg.Command)
}

// StartGame deals a new game, abandoning any game in progress
func (s *Session) StartGame() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.pendingAce = -1
	s.table = game.NewTable(s.rng, &s.logger)

	if err := s.table.Start(); err != nil {
		s.logger.Error().Err(err).Msg("could not start game")
		s.notify(s.buildErrorMessage("Error: Could not find valid starting card. Try again."))
		s.status("Could not find valid starting card. Start a new game.", true)
		return err
	}

	Metrics.GameStarted()
	s.logger.Info().
		Str(logging.SeatKey, s.table.CurrentPlayer.String()).
		Str("reference", s.table.ReferenceSuit.String()).
		Msg("game started")

	s.notifyState()

	if s.table.CurrentPlayer == game.Opponent {
		s.status("AI starts the game.", false)
		s.scheduleOpponent(s.delays.AIStart)
		return nil
	}

	s.status("Your turn to start.", false)
	return nil
}

// PlayerPlaysCard plays the card at idx of the person's hand. An ace that
// sets the suit is held back until PlayerChoosesSuit.
func (s *Session) PlayerPlaysCard(idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkHumanTurn(); err != nil {
		return err
	}

	s.pendingAce = -1
	return s.playHuman(idx, deck.NullSuit)
}

// PlayerChoosesSuit completes a held-back ace
func (s *Session) PlayerChoosesSuit(suit deck.Suit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingAce < 0 {
		return ErrNoSuitRequested
	}
	if err := s.checkHumanTurn(); err != nil {
		return err
	}
	if suit == deck.NullSuit || suit.Symbol() == "" {
		s.notify(s.buildErrorMessage("Choose hearts, diamonds, clubs or spades."))
		return ErrInvalidSuit
	}

	idx := s.pendingAce
	s.pendingAce = -1
	return s.playHuman(idx, suit)
}

// PlayerDrawsFromDeck takes the pending penalty, or draws a single card
func (s *Session) PlayerDrawsFromDeck() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkHumanTurn(); err != nil {
		return err
	}
	s.pendingAce = -1
	t := s.table

	if t.Pending.Active() && t.Pending.Target() == game.Human {
		amount := t.Pending.Amount
		drawn, err := t.AbsorbPenalty()
		Metrics.PenaltyCardsDrawn(game.Human.String(), drawn)
		s.notifyState()
		if err != nil {
			s.logger.Warn().Err(err).Msgf("drew %d of %d penalty cards", drawn, amount)
			s.status(fmt.Sprintf("Drew %d of %d penalty cards. No cards left to draw!", drawn, amount), false)
		} else {
			s.status(fmt.Sprintf("Drawing %d penalty cards.", amount), false)
		}
		s.scheduleOpponent(s.delays.AIThink)
		return nil
	}

	if t.HasDrawn {
		s.status("Already drawn. Play or allow AI.", false)
		return ErrAlreadyDrawn
	}

	if _, err := t.Draw(game.Human); err != nil {
		if !t.CanPlay(game.Human) {
			t.EndTurn()
			s.notifyState()
			s.status("No cards & no play. AI's turn.", false)
			s.scheduleOpponent(s.delays.AIThink)
			return nil
		}
		s.status("No cards to draw.", false)
		return err
	}
	t.HasDrawn = true
	s.notifyState()

	if t.CanPlay(game.Human) {
		s.status("Drew. Play or allow AI.", false)
		return nil
	}

	s.status("Drew. No playable cards. AI's turn.", false)
	gen := s.generation
	s.scheduler.Schedule(config.Millis(s.delays.DrawnNoPlay), func() {
		s.passAfterDraw(gen)
	})
	return nil
}

// PlayerSkipsTurn passes the turn after a voluntary draw
func (s *Session) PlayerSkipsTurn() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkHumanTurn(); err != nil {
		return err
	}
	if !s.table.HasDrawn {
		return ErrCannotSkip
	}

	s.pendingAce = -1
	s.table.EndTurn()
	s.notifyState()
	s.status("You chose not to play. AI's turn.", false)
	s.scheduleOpponent(s.delays.AIThink)
	return nil
}

// Snapshot is a read-only view of a session
type Snapshot struct {
	GameID           string                `json:"game_id"`
	Status           string                `json:"status"`
	Reason           string                `json:"reason,omitempty"`
	Turn             string                `json:"turn"`
	Top              *deck.Card            `json:"top,omitempty"`
	ReferenceSuit    deck.Suit             `json:"referenceSuit,omitempty"`
	DeckCount        int                   `json:"deckCount"`
	Hand             []deck.Card           `json:"hand"`
	Moves            []int                 `json:"moves"`
	OpponentHandSize int                   `json:"opponentHandSize"`
	Penalty          *protocol.Penalty     `json:"penalty,omitempty"`
	Requirement      *protocol.Requirement `json:"requirement,omitempty"`
	Recent           []deck.Card           `json:"recent"`
	AwaitingSuit     bool                  `json:"awaitingSuit,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.table
	snap := Snapshot{
		GameID:           s.ID,
		Status:           t.Status.String(),
		Reason:           t.Reason,
		Turn:             t.CurrentPlayer.String(),
		ReferenceSuit:    t.ReferenceSuit,
		DeckCount:        len(t.Deck),
		Hand:             t.Hand(game.Human),
		Moves:            []int{},
		OpponentHandSize: len(t.Hands[game.Opponent]),
		Recent:           append([]deck.Card{}, t.RecentCards...),
		AwaitingSuit:     s.pendingAce >= 0,
	}
	if top, ok := t.Top(); ok {
		snap.Top = &top
	}
	if s.humanToAct() {
		snap.Moves = t.LegalMoves(game.Human)
	}
	if t.Pending.Active() {
		snap.Penalty = s.buildPenaltyMessage().Penalty
	}
	if req := s.buildRequirementMessage().Requirement; !req.Cleared() {
		snap.Requirement = req
	}

	return snap
}

func (s *Session) passAfterDraw(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stale(gen) || s.table.CurrentPlayer != game.Human || !s.table.HasDrawn {
		return
	}

	s.table.EndTurn()
	s.notifyState()
	s.scheduleOpponent(s.delays.AIThink)
}

func (s *Session) checkHumanTurn() error {
	if s.table.Status != game.InProgress {
		return game.ErrGameNotInProgress
	}
	if s.table.CurrentPlayer != game.Human {
		s.notify(s.buildErrorMessage("Wait for your turn."))
		return game.ErrNotYourTurn
	}
	return nil
}

func (s *Session) playHuman(idx int, suit deck.Suit) error {
	hand := s.table.Hands[game.Human]
	if idx < 0 || idx >= len(hand) {
		s.logger.Error().Msgf("no card %d in a hand of %d", idx, len(hand))
		return game.ErrInvalidCardIndex
	}
	card := hand[idx]

	outcome, err := s.table.Play(game.Human, idx, suit)
	switch {
	case err == nil:
	case errors.Is(err, game.ErrSuitRequired):
		s.pendingAce = idx
		s.notify(s.buildRequestSuitMessage(idx))
		return nil
	case errors.Is(err, game.ErrIllegalMove):
		s.notify(s.buildErrorMessage("This card is not playable."))
		return err
	case errors.Is(err, game.ErrReferenceSevenBlocked):
		s.notify(s.buildErrorMessage("Cannot play ref 7 when sum >= 30!"))
		return err
	default:
		return err
	}

	Metrics.CardPlayed(game.Human.String())
	s.afterPlay(game.Human, card, outcome, "")
	return nil
}

// afterPlay publishes a play and hands the turn on
func (s *Session) afterPlay(seat game.Seat, card deck.Card, outcome game.Outcome, note string) {
	t := s.table
	s.logger.Debug().
		Str(logging.SeatKey, seat.String()).
		Str("card", card.Short()).
		Str("outcome", outcome.String()).
		Msg("played")

	if t.Status.Terminal() {
		s.notifyState()
		s.gameOver()
		return
	}
	if t.Status == game.Counting {
		s.notifyState()
		s.startCounting()
		return
	}

	next, forfeited := t.ResolveTurn(card, outcome)
	s.notifyState()

	delay := s.delays.AIThink
	switch outcome {
	case game.PlayAgain:
		delay = s.delays.AIPlayAgain
		switch {
		case forfeited:
			note = join(note, "AI limit. Your turn.")
		case seat == game.Human:
			note = join(note, "You play again!")
		default:
			note = join(note, "AI plays again!")
		}
	case game.PassBack:
		note = join(note, fmt.Sprintf("Penalty passed back to %s!", seatLabel(t.Pending.Target())))
	case game.BlockedPenalty:
		if next == game.Human {
			note = join(note, "You play next (any card).")
		} else {
			note = join(note, "AI plays next (any card).")
		}
	case game.Normal:
		if card.IsJoker() && t.JokerFollowUp {
			note = join(note, fmt.Sprintf("Joker! %s play a %s card.", seatLabel(seat), t.RequiredColor))
		}
	}

	s.handOver(next, delay, note)
}

func (s *Session) handOver(next game.Seat, delay uint32, note string) {
	if next == game.Opponent {
		s.status(join(note, "AI is thinking..."), false)
		s.scheduleOpponent(delay)
		return
	}
	s.status(s.humanPrompt(note), false)
}

func (s *Session) humanPrompt(note string) string {
	t := s.table
	switch {
	case t.Pending.Active() && t.Pending.Target() == game.Human:
		return join(note, fmt.Sprintf("Your turn. Counter %d or draw.", t.Pending.Amount))
	case note != "":
		return note
	case t.PlayAnyCardNext:
		return "Your turn (any card)."
	}
	return "Your turn."
}

func (s *Session) scheduleOpponent(delay uint32) {
	gen := s.generation
	s.scheduler.Schedule(config.Millis(delay), func() {
		s.opponentTurn(gen)
	})
}

func (s *Session) opponentTurn(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.table
	if s.stale(gen) || t.Status != game.InProgress || t.CurrentPlayer != game.Opponent {
		return
	}

	if t.Pending.Active() && t.Pending.Target() == game.Opponent {
		if idx := game.FindCounterCard(t, game.Opponent); idx >= 0 {
			Metrics.OpponentDecision("counter")
			note := fmt.Sprintf("AI counters w/ %s.", t.Hands[game.Opponent][idx].Short())
			if err := s.playOpponent(idx, note); err == nil {
				return
			}
		}

		Metrics.OpponentDecision("absorb")
		amount := t.Pending.Amount
		drawn, err := t.AbsorbPenalty()
		Metrics.PenaltyCardsDrawn(game.Opponent.String(), drawn)
		if err != nil {
			s.logger.Warn().Err(err).Msgf("ai drew %d of %d penalty cards", drawn, amount)
		}
		s.notifyState()
		s.handOver(t.CurrentPlayer, s.delays.AIThink, fmt.Sprintf("AI draws %d.", drawn))
		return
	}

	if idx := game.ChooseMove(t, game.Opponent); idx >= 0 {
		Metrics.OpponentDecision("play")
		if err := s.playOpponent(idx, ""); err == nil {
			return
		}
		s.endOpponentTurn("AI passes.")
		return
	}

	Metrics.OpponentDecision("draw")
	card, err := t.Draw(game.Opponent)
	if err != nil {
		s.endOpponentTurn("No cards left to draw!")
		return
	}
	t.HasDrawn = true
	s.notifyState()

	if !t.IsPlayable(card, game.Opponent) {
		s.endOpponentTurn("AI drew & ends turn.")
		return
	}

	s.status("AI drew a card.", false)
	s.scheduler.Schedule(config.Millis(s.delays.AIDrawnCardPlay), func() {
		s.opponentPlaysDrawn(gen)
	})
}

func (s *Session) opponentPlaysDrawn(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.table
	if s.stale(gen) || t.Status != game.InProgress || t.CurrentPlayer != game.Opponent {
		return
	}

	idx := len(t.Hands[game.Opponent]) - 1
	if err := s.playOpponent(idx, ""); err != nil {
		s.endOpponentTurn("AI drew & ends turn.")
	}
}

func (s *Session) playOpponent(idx int, note string) error {
	t := s.table
	hand := t.Hands[game.Opponent]
	if idx < 0 || idx >= len(hand) {
		return game.ErrInvalidCardIndex
	}
	card := hand[idx]

	suit := deck.NullSuit
	if t.NeedsSuit(game.Opponent, idx) {
		suit = game.SelectSuitForAce(hand, s.rng)
	}

	outcome, err := t.Play(game.Opponent, idx, suit)
	if err != nil {
		s.logger.Error().Err(err).Msgf("ai could not play %s", card.Short())
		return err
	}

	Metrics.CardPlayed(game.Opponent.String())
	if suit != deck.NullSuit {
		note = join(note, fmt.Sprintf("AI asks for %s.", strings.ToLower(suit.String())))
	}
	s.afterPlay(game.Opponent, card, outcome, note)
	return nil
}

func (s *Session) endOpponentTurn(note string) {
	s.table.EndTurn()
	s.notifyState()
	s.handOver(s.table.CurrentPlayer, s.delays.AIThink, note)
}

func (s *Session) startCounting() {
	s.status("Ref 7! Counting...", true)

	gen := s.generation
	s.scheduler.Schedule(config.Millis(s.delays.Counting), func() {
		s.count(gen)
	})
}

func (s *Session) count(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stale(gen) || s.table.Status != game.Counting {
		return
	}

	result := s.table.Count()
	s.notify(s.buildCountMessage(result))

	s.scheduler.Schedule(config.Millis(s.delays.CountReveal), func() {
		s.revealCount(gen)
	})
}

func (s *Session) revealCount(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stale(gen) || !s.table.Status.Terminal() {
		return
	}
	s.notifyState()
	s.gameOver()
}

func (s *Session) gameOver() {
	t := s.table
	Metrics.GameFinished(t.Status.String())
	s.logger.Info().Str("result", t.Status.String()).Msg(t.Reason)

	if err := t.CheckIntegrity(); err != nil {
		s.logger.Error().Err(err).Msg("finished with a broken deck")
	}

	s.notify(s.buildGameOverMessage())
	s.status(fmt.Sprintf("%s %s", resultTitle(t.Status), t.Reason), true)
}

func (s *Session) stale(gen uint64) bool {
	if gen != s.generation {
		s.logger.Debug().Msgf("dropping task from game %d", gen)
		return true
	}
	return false
}

// humanToAct reports whether the person may play right now
func (s *Session) humanToAct() bool {
	return s.table.Status == game.InProgress && s.table.CurrentPlayer == game.Human
}

func (s *Session) notify(msg protocol.OutboundMessage) {
	s.notifier.Notify(msg)
}

func (s *Session) notifyState() {
	for _, msg := range s.buildStateMessages() {
		s.notify(msg)
	}
}

func (s *Session) status(text string, persistent bool) {
	s.notify(s.buildStatusMessage(text, persistent))
}

func join(note, text string) string {
	if note == "" {
		return text
	}
	return note + " " + text
}
