package cellbloom

import "time"

// debugStats holds per-frame timing and geometry counts.
// Only populated when Scene.debug is true.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	quads      int
	particles  int
	liveCells  int
	generation int
}

// debugLogInterval limits debug output to one line per second at 60 TPS.
const debugLogInterval = 60

// debugLog prints timing and scene stats. Called from Draw in debug mode.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug || s.frame%debugLogInterval != 0 {
		return
	}
	stats.particles = len(s.particles)
	if s.state == StateLife {
		stats.liveCells = s.grid.LiveCount()
		stats.generation = s.grid.Generation()
	}
	logger.Printf("frame %d %v | update: %v | draw: %v | quads: %d | particles: %d | live: %d | gen: %d",
		s.frame, s.state, stats.updateTime, stats.drawTime, stats.quads,
		stats.particles, stats.liveCells, stats.generation)
}
