package level

// Layout tuning. All values are normalized fractions of the image.
const (
	// Vertical band the staircase climbs through. The ground sits at
	// GroundY; the exit platform ends up near ExitY.
	GroundY = 0.92
	ExitY   = 0.18

	// MaxJumpHeight caps the vertical step between consecutive platforms.
	// The physics calculator later derives a jump that clears this with
	// margin, so the cap is what makes every level completable.
	MaxJumpHeight = 0.22

	// Horizontal band platforms may occupy.
	XMin = 0.02
	XMax = 0.98

	PlatformHeight = 0.03
	GroundHeight   = 0.03
)

// Entity placement.
const (
	// EntityOffsetY lifts spawned entities above their platform's top edge.
	EntityOffsetY = 0.06

	PlayerSpawnX = 0.08

	MaxBonusPlatforms = 2
	MaxPickups        = 6
	MinPickups        = 3
)
