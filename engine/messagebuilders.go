package engine

import (
	"fmt"

	"github.com/minaorangina/matatu/game"
	"github.com/minaorangina/matatu/protocol"
)

var resultTitles = map[game.Status]string{
	game.HumanWin:    "You Win!",
	game.OpponentWin: "AI Wins!",
	game.Draw:        "It's a Draw!",
}

func resultTitle(status game.Status) string {
	if title, ok := resultTitles[status]; ok {
		return title
	}
	return "Game Over"
}

func seatLabel(seat game.Seat) string {
	if seat == game.Human {
		return "You"
	}
	return "AI"
}

func (s *Session) buildBaseMessage(cmd protocol.Cmd) protocol.OutboundMessage {
	return protocol.OutboundMessage{
		Command:   cmd,
		DeckCount: len(s.table.Deck),
		Reference: s.table.ReferenceSuit,
	}
}

func (s *Session) buildHandMessage(seat game.Seat) protocol.OutboundMessage {
	msg := s.buildBaseMessage(protocol.HandChanged)
	msg.Seat = seat.String()
	msg.HandSize = len(s.table.Hands[seat])

	if seat == game.Human {
		msg.Hand = s.table.Hand(game.Human)
		if s.humanToAct() {
			msg.Moves = s.table.LegalMoves(game.Human)
		}
	}

	return msg
}

func (s *Session) buildDiscardMessage() protocol.OutboundMessage {
	msg := s.buildBaseMessage(protocol.DiscardChanged)
	if top, ok := s.table.Top(); ok {
		msg.Card = &top
	}

	return msg
}

func (s *Session) buildPenaltyMessage() protocol.OutboundMessage {
	msg := s.buildBaseMessage(protocol.PenaltyChanged)
	p := s.table.Pending
	msg.Penalty = &protocol.Penalty{
		Kind:   p.Kind.String(),
		Amount: p.Amount,
	}
	if p.Active() {
		msg.Penalty.Target = p.Target().String()
	}

	return msg
}

func (s *Session) buildRequirementMessage() protocol.OutboundMessage {
	msg := s.buildBaseMessage(protocol.RequirementChanged)
	req := protocol.Requirement{
		Color:   s.table.RequiredColor,
		AnyCard: s.table.PlayAnyCardNext,
	}
	if top, ok := s.table.Top(); ok && top.IsAce() {
		req.Suit = s.table.CurrentSuit
	}
	msg.Requirement = &req

	return msg
}

func (s *Session) buildTurnMessage() protocol.OutboundMessage {
	msg := s.buildBaseMessage(protocol.TurnChanged)
	msg.Seat = s.table.CurrentPlayer.String()
	if s.table.CurrentPlayer == game.Human {
		msg.Message = "Your turn"
	} else {
		msg.Message = "AI's turn"
	}

	return msg
}

func (s *Session) buildRecentMessage() protocol.OutboundMessage {
	msg := s.buildBaseMessage(protocol.RecentPlays)
	msg.Recent = append(msg.Recent, s.table.RecentCards...)

	return msg
}

// buildStateMessages is everything a client needs to redraw the table
func (s *Session) buildStateMessages() []protocol.OutboundMessage {
	return []protocol.OutboundMessage{
		s.buildHandMessage(game.Human),
		s.buildHandMessage(game.Opponent),
		s.buildDiscardMessage(),
		s.buildBaseMessage(protocol.DeckCountChanged),
		s.buildPenaltyMessage(),
		s.buildRequirementMessage(),
		s.buildTurnMessage(),
		s.buildRecentMessage(),
	}
}

func (s *Session) buildStatusMessage(text string, persistent bool) protocol.OutboundMessage {
	msg := s.buildBaseMessage(protocol.Status)
	msg.Message = text
	msg.Persistent = persistent

	return msg
}

func (s *Session) buildRequestSuitMessage(idx int) protocol.OutboundMessage {
	msg := s.buildBaseMessage(protocol.RequestSuit)
	msg.Seat = game.Human.String()
	card := s.table.Hands[game.Human][idx]
	msg.Card = &card
	msg.Message = fmt.Sprintf("Choose a suit for %s.", card.Short())

	return msg
}

func (s *Session) buildCountMessage(result game.CountResult) protocol.OutboundMessage {
	msg := s.buildStatusMessage(result.Reason, true)
	msg.Counts = []protocol.Count{
		{Sum: result.Human.Sum, Eliminated: result.Human.Eliminated, Reason: result.Human.Reason},
		{Sum: result.Opponent.Sum, Eliminated: result.Opponent.Eliminated, Reason: result.Opponent.Reason},
	}

	return msg
}

func (s *Session) buildGameOverMessage() protocol.OutboundMessage {
	msg := s.buildBaseMessage(protocol.GameOver)
	msg.Seat = game.Opponent.String()
	msg.Hand = s.table.Hand(game.Opponent)
	msg.HandSize = len(msg.Hand)
	msg.Result = &protocol.Result{
		Status: s.table.Status.String(),
		Title:  resultTitle(s.table.Status),
		Reason: s.table.Reason,
	}

	return msg
}

func (s *Session) buildErrorMessage(text string) protocol.OutboundMessage {
	msg := s.buildBaseMessage(protocol.Error)
	msg.Error = text

	return msg
}
