package engine

import (
	"github.com/vovakirdan/quiz-maze/internal/core"
	"github.com/vovakirdan/quiz-maze/internal/quiz"
)

// Outcome is the result of the player entering an armed answer room.
type Outcome int

const (
	OutcomeCorrect Outcome = iota + 1
	OutcomeIncorrect
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "none"
	}
}

// RoomZone is one answer room of the current question.
type RoomZone struct {
	Index     int
	Rect      core.RectF
	Label     string
	IsCorrect bool
	Armed     bool
}

// ZoneHit reports which room fired and what it meant.
type ZoneHit struct {
	Index   int
	Outcome Outcome
}

// ZoneSet owns the answer rooms of the current question.
// An empty set never evaluates.
type ZoneSet struct {
	zones []RoomZone
}

// Arm discards the current rooms and creates one armed room per option,
// placed on the matching layout rectangle.
func (s *ZoneSet) Arm(q quiz.Question, layout []core.RectF) {
	s.zones = make([]RoomZone, 0, quiz.OptionCount)
	for i := 0; i < quiz.OptionCount && i < len(layout); i++ {
		s.zones = append(s.zones, RoomZone{
			Index:     i,
			Rect:      layout[i],
			Label:     q.Options[i],
			IsCorrect: q.IsCorrect(i),
			Armed:     true,
		})
	}
}

// Clear removes every room.
func (s *ZoneSet) Clear() {
	s.zones = nil
}

// Len returns the number of rooms.
func (s *ZoneSet) Len() int {
	return len(s.zones)
}

// Evaluate checks the player's centre against the armed rooms.
// At most one room fires per call: the lowest index containing p. That room
// is consumed until the next re-arm.
func (s *ZoneSet) Evaluate(p core.Vec2) (ZoneHit, bool) {
	for i := range s.zones {
		z := &s.zones[i]
		if !z.Armed || !z.Rect.Contains(p) {
			continue
		}
		z.Armed = false
		outcome := OutcomeIncorrect
		if z.IsCorrect {
			outcome = OutcomeCorrect
		}
		return ZoneHit{Index: z.Index, Outcome: outcome}, true
	}
	return ZoneHit{}, false
}

// DisarmAll makes every room inert.
func (s *ZoneSet) DisarmAll() {
	for i := range s.zones {
		s.zones[i].Armed = false
	}
}

// RearmAll makes every room eligible again.
func (s *ZoneSet) RearmAll() {
	for i := range s.zones {
		s.zones[i].Armed = true
	}
}

// AnyArmed reports whether at least one room can fire.
func (s *ZoneSet) AnyArmed() bool {
	for _, z := range s.zones {
		if z.Armed {
			return true
		}
	}
	return false
}

// Zones returns a copy of the rooms.
func (s *ZoneSet) Zones() []RoomZone {
	out := make([]RoomZone, len(s.zones))
	copy(out, s.zones)
	return out
}
