package state

import (
	"fmt"
	"testing"

	"cluegame/pkg/game/deck"
)

func TestAddMessage_KeepsLastMessages(t *testing.T) {
	g := NewGame()
	for i := 0; i < MaxMessages+3; i++ {
		g.AddMessage(fmt.Sprintf("message %d", i))
	}
	if len(g.Messages) != MaxMessages {
		t.Fatalf("len(Messages) = %d, want %d", len(g.Messages), MaxMessages)
	}
	if got, want := g.Messages[0], "message 3"; got != want {
		t.Errorf("Messages[0] = %q, want %q", got, want)
	}
	g.ClearMessages()
	if len(g.Messages) != 0 {
		t.Errorf("len(Messages) = %d after ClearMessages, want 0", len(g.Messages))
	}
}

func TestBeginTurn_ResetsTurnFields(t *testing.T) {
	g := NewGame()
	guess := deck.Solution{}
	g.CurrentGuess = &guess
	g.AccusationChecked = true
	g.Phase = TurnComplete

	g.BeginTurn(2, 5)
	if g.Active != 2 || g.Roll != 5 || g.Turn != 1 {
		t.Errorf("BeginTurn(2, 5) = active %d roll %d turn %d, want 2 5 1", g.Active, g.Roll, g.Turn)
	}
	if g.CurrentGuess != nil || g.AccusationChecked || g.Phase != AwaitingRoll {
		t.Error("BeginTurn() did not reset the per-turn fields")
	}
}

func TestPhase(t *testing.T) {
	tests := []struct {
		phase  Phase
		name   string
		awaits bool
	}{
		{AwaitingRoll, "AwaitingRoll", false},
		{AwaitingMoveSelection, "AwaitingMoveSelection", true},
		{RoomDecision, "RoomDecision", true},
		{GameOver, "GameOver", false},
		{Phase(42), "Unknown", false},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.name {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.name)
		}
		if got := tt.phase.AwaitsHuman(); got != tt.awaits {
			t.Errorf("%v.AwaitsHuman() = %v, want %v", tt.phase, got, tt.awaits)
		}
	}
}

func TestSuggestionRecord_Text(t *testing.T) {
	var none *SuggestionRecord
	if got, want := none.GuessText(), "Waiting For a Guess!"; got != want {
		t.Errorf("nil.GuessText() = %q, want %q", got, want)
	}

	s := deck.NewSolution(
		deck.NewCard("Plum", deck.Person),
		deck.NewCard("Kitchen", deck.Room),
		deck.NewCard("Rope", deck.Weapon),
	)
	r := &SuggestionRecord{Suggester: "Green", Suggestion: s}
	if got, want := r.GuessText(), "Plum in the Kitchen with the Rope"; got != want {
		t.Errorf("GuessText() = %q, want %q", got, want)
	}
	if got, want := r.ResultText(), "Suggestion was not disproven"; got != want {
		t.Errorf("ResultText() = %q, want %q", got, want)
	}

	r.Disproved = true
	r.Disprover = "Scarlet"
	r.Card = s.Room
	if got, want := r.ResultText(), "Disproven by: Scarlet"; got != want {
		t.Errorf("ResultText() = %q, want %q", got, want)
	}
}
