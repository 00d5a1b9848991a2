package config

import (
	"math"
	"testing"
)

func TestEnemyCount(t *testing.T) {
	d := NewDifficultyManager(DefaultMazeConfig().Difficulty)

	tests := []struct {
		level int
		want  int
	}{
		{0, 2},
		{2, 3},
		{3, 3},
		{5, 4},
		{6, 4},
		{8, 5},
		{9, 5},
	}

	for _, tc := range tests {
		if got := d.EnemyCount(tc.level); got != tc.want {
			t.Errorf("EnemyCount(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}

	for level := 0; level < 30; level++ {
		if got, want := d.EnemyCount(level), 2+(level+1)/3; got != want {
			t.Errorf("EnemyCount(%d) = %d, want %d", level, got, want)
		}
	}
}

func TestChaserSpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultMazeConfig().Difficulty)

	for level := 0; level < 30; level++ {
		got := d.EnemySpeed(130, d.SpeedMultiplier(level), level)
		want := 130*(1+0.15*float64(level)) + 5*float64(level)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("chaser speed at level %d = %v, want %v", level, got, want)
		}
	}
}

func TestStepMultiplier(t *testing.T) {
	d := NewDifficultyManager(DefaultMazeConfig().Difficulty)

	m := d.SpeedMultiplier(0)
	for i := 0; i < 4; i++ {
		m = d.StepMultiplier(m)
	}
	if math.Abs(m-d.SpeedMultiplier(4)) > 1e-9 {
		t.Errorf("four steps = %v, want %v", m, d.SpeedMultiplier(4))
	}
}

func TestDisabledDifficulty(t *testing.T) {
	d := NewDifficultyManager(DefaultMazeConfig().Difficulty)
	d.SetEnabled(false)

	if d.IsEnabled() {
		t.Fatal("IsEnabled() = true after SetEnabled(false)")
	}
	if got := d.EnemyCount(9); got != d.EnemyCount(0) {
		t.Errorf("EnemyCount(9) = %d, want level-0 count %d", got, d.EnemyCount(0))
	}
	if got := d.SpeedMultiplier(9); got != 1 {
		t.Errorf("SpeedMultiplier(9) = %v, want 1", got)
	}
	if got := d.StepMultiplier(1); got != 1 {
		t.Errorf("StepMultiplier(1) = %v, want 1", got)
	}
	if got := d.EnemySpeed(130, 1, 9); got != 130 {
		t.Errorf("EnemySpeed = %v, want 130", got)
	}
}
