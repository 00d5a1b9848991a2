package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/quiz-maze/internal/core"
	"github.com/vovakirdan/quiz-maze/internal/quiz"
)

var testRooms = []core.RectF{
	core.NewRectF(128, 128, 256, 192),
	core.NewRectF(768, 128, 256, 192),
	core.NewRectF(128, 768, 256, 192),
	core.NewRectF(768, 768, 256, 192),
}

func testQuestion(t *testing.T, correct int) quiz.Question {
	t.Helper()
	q, err := quiz.New("Which one?", []string{"alpha", "beta", "gamma", "delta"}, correct)
	require.NoError(t, err)
	return q
}

func TestArmExactlyOneCorrect(t *testing.T) {
	for correct := 0; correct < quiz.OptionCount; correct++ {
		var s ZoneSet
		s.Arm(testQuestion(t, correct), testRooms)

		zones := s.Zones()
		require.Len(t, zones, quiz.OptionCount)

		n := 0
		for i, z := range zones {
			assert.True(t, z.Armed)
			assert.Equal(t, i, z.Index)
			assert.Equal(t, testRooms[i], z.Rect)
			if z.IsCorrect {
				n++
				assert.Equal(t, correct, i)
			}
		}
		assert.Equal(t, 1, n, "correct index %d", correct)
	}
}

func TestArmReplacesZones(t *testing.T) {
	var s ZoneSet
	s.Arm(testQuestion(t, 0), testRooms)
	s.DisarmAll()

	q, err := quiz.New("Next?", []string{"w", "x", "y", "z"}, 3)
	require.NoError(t, err)
	s.Arm(q, testRooms)

	zones := s.Zones()
	require.Len(t, zones, 4)
	assert.Equal(t, "w", zones[0].Label)
	assert.True(t, zones[3].IsCorrect)
	assert.True(t, s.AnyArmed())
}

func TestEvaluateUsesPlayerCenter(t *testing.T) {
	var s ZoneSet
	s.Arm(testQuestion(t, 1), testRooms)

	// Just outside the top-left corner: a body of any radius would graze it.
	_, ok := s.Evaluate(core.V(127.9, 127.9))
	assert.False(t, ok)

	hit, ok := s.Evaluate(core.V(128, 128))
	require.True(t, ok)
	assert.Equal(t, ZoneHit{Index: 0, Outcome: OutcomeIncorrect}, hit)
}

func TestEvaluateConsumesZone(t *testing.T) {
	var s ZoneSet
	s.Arm(testQuestion(t, 1), testRooms)
	center := testRooms[1].Center()

	hit, ok := s.Evaluate(center)
	require.True(t, ok)
	assert.Equal(t, OutcomeCorrect, hit.Outcome)

	_, ok = s.Evaluate(center)
	assert.False(t, ok, "a consumed zone stays inert")

	s.RearmAll()
	_, ok = s.Evaluate(center)
	assert.True(t, ok, "re-armed zones fire again")
}

func TestEvaluateOverlappingPicksLowestIndex(t *testing.T) {
	overlapping := []core.RectF{
		core.NewRectF(0, 0, 100, 100),
		core.NewRectF(50, 50, 100, 100),
		core.NewRectF(500, 500, 10, 10),
		core.NewRectF(600, 600, 10, 10),
	}
	var s ZoneSet
	s.Arm(testQuestion(t, 1), overlapping)

	hit, ok := s.Evaluate(core.V(75, 75))
	require.True(t, ok)
	assert.Equal(t, 0, hit.Index)

	// Room 0 is consumed, so the same spot now reports room 1, on a later call.
	hit, ok = s.Evaluate(core.V(75, 75))
	require.True(t, ok)
	assert.Equal(t, 1, hit.Index)
}

func TestEmptyZoneSetNeverFires(t *testing.T) {
	var s ZoneSet
	_, ok := s.Evaluate(testRooms[0].Center())
	assert.False(t, ok)
	assert.Zero(t, s.Len())
	assert.False(t, s.AnyArmed())
}

func TestDisarmAll(t *testing.T) {
	var s ZoneSet
	s.Arm(testQuestion(t, 2), testRooms)
	s.DisarmAll()

	for _, r := range testRooms {
		_, ok := s.Evaluate(r.Center())
		assert.False(t, ok)
	}
}
