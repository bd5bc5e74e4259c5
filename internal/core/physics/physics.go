package physics

import (
	"math"

	"github.com/snaplevel/snaplevel/internal/core/level"
)

// World-size scaling factors. Everything is derived from the world pixel
// dimensions so a level plays the same on any screen.
const (
	gravityFactor = 1.2
	speedFactor   = 0.40

	playerSizeFactor = 0.06
	exitSizeFactor   = 0.06
	pickupSizeFactor = 0.04

	minPlayerSizePx = 16
	minExitSizePx   = 16
	minPickupSizePx = 12

	// Collision body as a sub-rectangle of the player sprite.
	bodyWidthRatio  = 0.58
	bodyHeightRatio = 0.75

	minPlatformWidthFactor  = 0.025
	minPlatformHeightFactor = 0.008
)

// Computed holds every physics parameter the renderer and collision code
// need for one scene at one world size. It is recomputed per scene load and
// owns no state.
type Computed struct {
	GravityY          float64 `json:"gravityY"`
	PlayerSpeed       float64 `json:"playerSpeed"`
	JumpVelocity      float64 `json:"jumpVelocity"`
	PlayerSizePx      float64 `json:"playerSizePx"`
	PlayerBodyWidth   float64 `json:"playerBodyWidth"`
	PlayerBodyHeight  float64 `json:"playerBodyHeight"`
	ExitSizePx        float64 `json:"exitSizePx"`
	PickupSizePx      float64 `json:"pickupSizePx"`
	MinPlatformWidth  float64 `json:"minPlatformWidth"`
	MinPlatformHeight float64 `json:"minPlatformHeight"`
}

// Compute derives the physics parameters for a world of the given pixel
// size. When a scene is supplied the jump is sized to clear its largest
// landing gap; without one the fallback fraction is used.
//
// The jump velocity follows the projectile relation v = sqrt(2·g·h) solved
// for the initial velocity that peaks at the required height; it is negative
// because screen-space up is negative.
func Compute(worldW, worldH float64, scene *level.SceneV1) Computed {
	gravity := gravityFactor * worldH

	jumpFraction := FallbackJumpFraction
	if scene != nil {
		jumpFraction = RequiredJumpFraction(*scene)
	}
	jumpHeightPx := jumpFraction * worldH

	playerSize := math.Max(playerSizeFactor*worldH, minPlayerSizePx)

	return Computed{
		GravityY:          gravity,
		PlayerSpeed:       speedFactor * worldW,
		JumpVelocity:      -math.Sqrt(2 * gravity * jumpHeightPx),
		PlayerSizePx:      playerSize,
		PlayerBodyWidth:   playerSize * bodyWidthRatio,
		PlayerBodyHeight:  playerSize * bodyHeightRatio,
		ExitSizePx:        math.Max(exitSizeFactor*worldH, minExitSizePx),
		PickupSizePx:      math.Max(pickupSizeFactor*worldH, minPickupSizePx),
		MinPlatformWidth:  minPlatformWidthFactor * worldW,
		MinPlatformHeight: minPlatformHeightFactor * worldH,
	}
}
