package config

// DifficultyManager computes enemy population and speed from progress.
//
// Policy:
//
//	enemyCount(level)       = base + floor((level+1) / step)
//	speedMultiplier(done)   = 1 + speedStep * done
//	enemySpeed(base, m, L)  = base * m + L * levelBonus
//
// where level is the zero-based question index and done the number of
// completed levels.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// EnemyCount returns the enemy population for a level index.
// With progression disabled every level plays like level 0.
func (d *DifficultyManager) EnemyCount(level int) int {
	if !d.cfg.Enabled || level < 0 {
		level = 0
	}
	count := d.cfg.BaseEnemies
	if d.cfg.EnemyStep > 0 {
		count += (level + 1) / d.cfg.EnemyStep
	}
	if count < 0 {
		return 0
	}
	return count
}

// SpeedMultiplier returns the speed multiplier after completed levels.
func (d *DifficultyManager) SpeedMultiplier(completed int) float64 {
	if !d.cfg.Enabled || completed < 0 {
		return 1.0
	}
	return 1.0 + d.cfg.SpeedStep*float64(completed)
}

// StepMultiplier returns the multiplier after one more completed level.
func (d *DifficultyManager) StepMultiplier(current float64) float64 {
	if !d.cfg.Enabled {
		return current
	}
	return current + d.cfg.SpeedStep
}

// EnemySpeed layers the per-level bonus on top of the scaled base speed.
func (d *DifficultyManager) EnemySpeed(base, multiplier float64, level int) float64 {
	speed := base * multiplier
	if d.cfg.Enabled && level > 0 {
		speed += float64(level) * d.cfg.LevelSpeedBonus
	}
	return speed
}
