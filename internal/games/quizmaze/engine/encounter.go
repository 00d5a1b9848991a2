package engine

import (
	"time"

	"github.com/vovakirdan/quiz-maze/internal/config"
)

// Phase is the dominant encounter state, for hosts and renderers.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseInvulnerable
	PhaseSafe
	PhasePenaltyCooldown
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInvulnerable:
		return "invulnerable"
	case PhaseSafe:
		return "safe"
	case PhasePenaltyCooldown:
		return "cooldown"
	default:
		return "playing"
	}
}

// encounter tracks the timed windows of the outcome state machine.
// All times are on the engine's simulated clock.
type encounter struct {
	timing config.TimingConfig

	invulnerable      bool
	invulnerableSince time.Duration
	invulnerableUntil time.Duration

	safe          bool
	transitioning bool
	transitionAt  time.Duration

	cooling       bool
	cooldownUntil time.Duration
}

func newEncounter(timing config.TimingConfig) encounter {
	return encounter{timing: timing}
}

// contact handles player-enemy contact and reports whether it costs a life.
func (e *encounter) contact(now time.Duration) bool {
	if e.invulnerable || e.safe {
		return false
	}
	e.invulnerable = true
	e.invulnerableSince = now
	e.invulnerableUntil = now + e.timing.Invulnerable()
	return true
}

// correct enters Safe and schedules the level transition.
func (e *encounter) correct(now time.Duration) {
	e.safe = true
	e.transitioning = true
	e.transitionAt = now + e.timing.Transition()
	e.cooling = false
}

// incorrect starts the zone cooldown.
func (e *encounter) incorrect(now time.Duration) {
	e.cooling = true
	e.cooldownUntil = now + e.timing.Cooldown()
}

// advance expires windows whose deadline has passed. It reports whether the
// level transition fired and whether the rooms must be re-armed.
func (e *encounter) advance(now time.Duration) (nextLevel, rearm bool) {
	if e.invulnerable && now >= e.invulnerableUntil {
		e.invulnerable = false
	}
	if e.transitioning && now >= e.transitionAt {
		e.transitioning = false
		nextLevel = true
	}
	if e.cooling && now >= e.cooldownUntil {
		e.cooling = false
		rearm = true
	}
	return nextLevel, rearm
}

// armed is called once a new question's rooms are live. Safe ends here and
// nowhere else.
func (e *encounter) armed() {
	e.safe = false
	e.cooling = false
}

// phase returns the dominant state.
func (e *encounter) phase() Phase {
	switch {
	case e.safe:
		return PhaseSafe
	case e.cooling:
		return PhasePenaltyCooldown
	case e.invulnerable:
		return PhaseInvulnerable
	default:
		return PhasePlaying
	}
}

// visible reports whether the player is drawn at now. While invulnerable the
// player blinks, starting hidden, once per flicker period.
func (e *encounter) visible(now time.Duration) bool {
	flicker := e.timing.Flicker()
	if !e.invulnerable || flicker <= 0 {
		return true
	}
	return ((now-e.invulnerableSince)/flicker)%2 == 1
}
