package state

// Phase is a step of the turn state machine.
//
//	AwaitingRoll -> TargetsComputed -> AwaitingMoveSelection | MoveApplied
//	  -> RoomDecision | TurnComplete -> GameOver | next AwaitingRoll
type Phase int

// Turn phases
const (
	AwaitingRoll Phase = iota
	TargetsComputed
	AwaitingMoveSelection
	MoveApplied
	RoomDecision
	TurnComplete
	GameOver
)

var phaseNames = map[Phase]string{
	AwaitingRoll:          "AwaitingRoll",
	TargetsComputed:       "TargetsComputed",
	AwaitingMoveSelection: "AwaitingMoveSelection",
	MoveApplied:           "MoveApplied",
	RoomDecision:          "RoomDecision",
	TurnComplete:          "TurnComplete",
	GameOver:              "GameOver",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "Unknown"
}

// AwaitsHuman reports whether the phase blocks until the caller supplies input
func (p Phase) AwaitsHuman() bool {
	return p == AwaitingMoveSelection || p == RoomDecision
}
