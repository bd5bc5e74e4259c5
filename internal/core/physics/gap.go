package physics

import (
	"sort"

	"github.com/snaplevel/snaplevel/internal/core/level"
	"github.com/snaplevel/snaplevel/pkg/geom"
)

// Jump sizing. The required jump is the largest vertical gap between any two
// landing surfaces, padded with a safety margin and clamped to a playable
// range.
const (
	JumpMargin           = 0.15
	MinJumpFraction      = 0.15
	MaxJumpFraction      = 0.45
	FallbackJumpFraction = 0.35
)

// RequiredJumpFraction scans a scene for the largest vertical gap a player
// must clear and returns the jump height as a fraction of world height.
//
// Landing surfaces are the absolute ground (y=1), every platform top edge,
// and the exit (reachable, not merely standable). The player spawn is
// deliberately excluded: the player falls to the surface below it, so
// including it would mask the true required jump.
func RequiredJumpFraction(scene level.SceneV1) float64 {
	ys := []float64{1.0}
	for _, o := range scene.Objects {
		if o.Type == level.ObjectPlatform {
			ys = append(ys, o.Bounds.Y)
		}
	}
	ys = append(ys, scene.Spawns.Exit.Y)
	sort.Float64s(ys)

	maxGap := 0.0
	for i := 1; i < len(ys); i++ {
		if gap := ys[i] - ys[i-1]; gap > maxGap {
			maxGap = gap
		}
	}

	return geom.Clamp(maxGap*(1+JumpMargin), MinJumpFraction, MaxJumpFraction)
}
