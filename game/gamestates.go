package game

import "fmt"

// Seat identifies one of the two players at the table
type Seat int

const (
	Human Seat = iota
	Opponent
)

var seatNames = map[Seat]string{
	Human:    "player",
	Opponent: "ai",
}

func (s Seat) String() string {
	if name, ok := seatNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Seat(%d)", int(s))
}

// Other returns the seat across the table
func (s Seat) Other() Seat {
	if s == Human {
		return Opponent
	}
	return Human
}

// Status is the lifecycle of a game.
// notStarted -> inProgress -> (counting ->) one of the terminal statuses
type Status int

const (
	NotStarted Status = iota
	InProgress
	Counting
	HumanWin
	OpponentWin
	Draw
	Errored
)

var statusNames = map[Status]string{
	NotStarted:  "notStarted",
	InProgress:  "inProgress",
	Counting:    "counting",
	HumanWin:    "playerWin",
	OpponentWin: "aiWin",
	Draw:        "draw",
	Errored:     "error",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Terminal reports whether the game is over
func (s Status) Terminal() bool {
	return s == HumanWin || s == OpponentWin || s == Draw || s == Errored
}

func winFor(seat Seat) Status {
	if seat == Human {
		return HumanWin
	}
	return OpponentWin
}

// Outcome is what a played card means for the next turn
type Outcome int

const (
	Normal Outcome = iota
	PlayAgain
	PassBack
	BlockedPenalty
)

var outcomeNames = map[Outcome]string{
	Normal:         "normal",
	PlayAgain:      "playAgain",
	PassBack:       "passBack",
	BlockedPenalty: "blockedPenalty",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}
