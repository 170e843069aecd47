// Package input turns lines typed at the terminal into high-level intents.
package input

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceTerminal
	DeviceScript
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Turn commands
	ActionMove    // move to a row/column target
	ActionChoose  // pick a listed target by number
	ActionSuggest // suggest person and weapon by number
	ActionAccuse  // accuse person, room and weapon by number
	ActionNoAccuse
	ActionEndTurn

	// Meta / UI
	ActionHand
	ActionCards
	ActionHelp
	ActionDumpMap
	ActionQuit
)

// Intent is the 4th-layer, high-level description of what the player wants to do.
type Intent struct {
	Action Action
	Args   []int
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is the text typed, e.g. "move 3 4".
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// NewRawInput stamps a raw event with the current time
func NewRawInput(device Device, code string) RawInput {
	return RawInput{Device: device, Code: code, Timestamp: time.Now()}
}

// DebouncedInput is the 2nd-layer representation: the code lower-cased and
// split into words.
type DebouncedInput struct {
	Device Device
	Words  []string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Words:  strings.Fields(strings.ToLower(raw.Code)),
	}
}

// bindings maps command words to actions (3rd-layer bindings).
// Multiple words may point to the same Action.
var bindings = map[string]Action{
	"move": ActionMove,
	"m":    ActionMove,
	"go":   ActionMove,

	"pick":   ActionChoose,
	"p":      ActionChoose,
	"target": ActionChoose,

	"suggest": ActionSuggest,
	"s":       ActionSuggest,

	"accuse": ActionAccuse,
	"a":      ActionAccuse,

	"pass": ActionNoAccuse,

	"end":  ActionEndTurn,
	"next": ActionEndTurn,
	"n":    ActionEndTurn,
	"":     ActionEndTurn,

	"hand":  ActionHand,
	"h":     ActionHand,
	"cards": ActionCards,
	"c":     ActionCards,

	"help": ActionHelp,
	"?":    ActionHelp,

	"dump": ActionDumpMap,

	"quit": ActionQuit,
	"q":    ActionQuit,
	"exit": ActionQuit,
}

// argCounts is the number of numeric arguments each action takes
var argCounts = map[Action]int{
	ActionMove:    2,
	ActionChoose:  1,
	ActionSuggest: 2,
	ActionAccuse:  3,
}

// MapToIntent is the 3rd+4th layer: it applies the bindings to a debounced
// input and returns a high-level Intent. Bare numbers are shorthand: one
// number picks a listed target, two are a row and column. Missing or
// non-numeric arguments give ActionNone.
func MapToIntent(ev DebouncedInput) Intent {
	words := ev.Words
	if len(words) == 0 {
		return Intent{Action: bindings[""]}
	}

	if nums, ok := parseInts(words); ok {
		switch len(nums) {
		case 1:
			return Intent{Action: ActionChoose, Args: nums}
		case 2:
			return Intent{Action: ActionMove, Args: nums}
		}
		return Intent{Action: ActionNone}
	}

	act, ok := bindings[words[0]]
	if !ok {
		return Intent{Action: ActionNone}
	}
	args, ok := parseInts(words[1:])
	if !ok || len(args) != argCounts[act] {
		return Intent{Action: ActionNone}
	}
	return Intent{Action: act, Args: args}
}

func parseInts(words []string) ([]int, bool) {
	nums := make([]int, 0, len(words))
	for _, w := range words {
		n, err := strconv.Atoi(w)
		if err != nil {
			return nil, false
		}
		nums = append(nums, n)
	}
	return nums, true
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMove:
		return "Move"
	case ActionChoose:
		return "Pick Target"
	case ActionSuggest:
		return "Suggest"
	case ActionAccuse:
		return "Accuse"
	case ActionNoAccuse:
		return "Do Not Accuse"
	case ActionEndTurn:
		return "End Turn"
	case ActionHand:
		return "Show Hand"
	case ActionCards:
		return "List Cards"
	case ActionHelp:
		return "Help"
	case ActionDumpMap:
		return "Dump Map"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		if code == "" {
			continue
		}
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action so help text doesn't shuffle.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
