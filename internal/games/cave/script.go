package cave

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/grapplecore/internal/core"
)

// moveRunes maps script characters to intents.
var moveRunes = map[rune]Intent{
	'a': IntentStepLeft,
	'd': IntentStepRight,
	'w': IntentJump,
	'<': IntentGrappleLeft,
	'>': IntentGrappleRight,
	'^': IntentGrappleUp,
}

// ParseMoves turns a move script such as "dd>^" into intents.
// a/d step, w jumps, < > ^ grapple. Whitespace is ignored.
func ParseMoves(script string) ([]Intent, error) {
	var moves []Intent
	for i, r := range script {
		if strings.ContainsRune(" \t\n,", r) {
			continue
		}
		in, ok := moveRunes[r]
		if !ok {
			return nil, fmt.Errorf("cave: unknown move %q at offset %d (want one of a d w < > ^)", r, i)
		}
		moves = append(moves, in)
	}
	return moves, nil
}

// Ready reports whether the next intent would be considered this tick.
func (l *Lifecycle) Ready() bool {
	return !l.Frozen() && l.session.AcceptsInput()
}

// RunScript plays moves one turn at a time, idling between them until the
// lifecycle is ready. Each wait is capped at limit ticks. It returns every
// event in order, and stops early if a wait runs out.
func (l *Lifecycle) RunScript(moves []Intent, limit int) []core.Event {
	var events []core.Event

	wait := func() bool {
		for i := 0; i < limit; i++ {
			if l.Ready() {
				return true
			}
			events = append(events, l.Step(IntentNone)...)
		}
		return l.Ready()
	}

	for _, in := range moves {
		if !wait() {
			return events
		}
		events = append(events, l.Step(in)...)
	}
	wait()
	return events
}
