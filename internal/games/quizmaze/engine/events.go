package engine

import "sync/atomic"

// Event is an outcome reported to the host. It carries no payload.
type Event int

const (
	EventLoseLife Event = iota + 1
	EventScoreUp
	EventNextLevel
)

// String returns the event tag.
func (e Event) String() string {
	switch e {
	case EventLoseLife:
		return "LoseLife"
	case EventScoreUp:
		return "ScoreUp"
	case EventNextLevel:
		return "NextLevel"
	default:
		return "Unknown"
	}
}

// Sink receives engine events. OnGameEvent is called synchronously from Step
// and must not block.
type Sink interface {
	OnGameEvent(Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Event)

// OnGameEvent calls f(e).
func (f SinkFunc) OnGameEvent(e Event) {
	f(e)
}

// ChannelSink delivers events on a buffered channel without blocking.
// Events that do not fit are dropped and counted.
type ChannelSink struct {
	ch      chan Event
	dropped atomic.Int64
}

// NewChannelSink creates a sink with the given buffer size.
func NewChannelSink(buffer int) *ChannelSink {
	return &ChannelSink{ch: make(chan Event, buffer)}
}

// OnGameEvent queues e, or drops it when the buffer is full.
func (s *ChannelSink) OnGameEvent(e Event) {
	select {
	case s.ch <- e:
	default:
		s.dropped.Add(1)
	}
}

// Events returns the receive side of the channel.
func (s *ChannelSink) Events() <-chan Event {
	return s.ch
}

// Dropped returns how many events did not fit in the buffer.
func (s *ChannelSink) Dropped() int64 {
	return s.dropped.Load()
}

// MultiSink fans every event out to each sink in order.
type MultiSink []Sink

// OnGameEvent forwards e to every sink.
func (m MultiSink) OnGameEvent(e Event) {
	for _, s := range m {
		if s != nil {
			s.OnGameEvent(e)
		}
	}
}

type discardSink struct{}

func (discardSink) OnGameEvent(Event) {}
