package level

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/snaplevel/snaplevel/internal/core/detect"
	"github.com/snaplevel/snaplevel/internal/core/rng"
)

func testInfos(n int) []detect.PlatformInfo {
	infos := make([]detect.PlatformInfo, n)
	for i := range infos {
		infos[i] = detect.PlatformInfo{Label: "shelf", Category: detect.CategoryFurniture, Confidence: 0.8, Width: 0.2}
	}
	return infos
}

func TestStrategies_PlacementInvariants(t *testing.T) {
	const count = 8
	vertStep := math.Min((GroundY-ExitY)/float64(count+1), MaxJumpHeight)

	for _, strategy := range Strategies {
		t.Run(strategy.Name, func(t *testing.T) {
			for seed := int32(0); seed < 200; seed++ {
				r := rng.New(seed)
				stairs := strategy.Place(r, testInfos(count), vertStep)
				require.Len(t, stairs, count)

				for i, p := range stairs {
					require.True(t, p.rect.InUnitBounds(), "seed %d platform %d out of bounds: %+v", seed, i, p.rect)
					require.GreaterOrEqual(t, p.rect.X, XMin)
					require.LessOrEqual(t, p.rect.X+p.rect.W, XMax+1e-9)
					require.GreaterOrEqual(t, p.rect.Y, ExitY-0.02-1e-9)
					require.LessOrEqual(t, p.rect.Y, GroundY-0.04+1e-9)

					if i > 0 {
						delta := stairs[i-1].rect.Y - p.rect.Y
						require.LessOrEqual(t, delta, MaxJumpHeight+1e-9,
							"seed %d rows %d-%d too far apart", seed, i-1, i)
					}
				}

				// First step off the ground must also be jumpable.
				require.LessOrEqual(t, GroundY-stairs[0].rect.Y, MaxJumpHeight+1e-9)
			}
		})
	}
}

func TestStrategies_WidthStaysClamped(t *testing.T) {
	vertStep := 0.1
	infos := testInfos(8)
	for i := range infos {
		infos[i].Width = detect.MaxPlatformWidth
	}

	for _, strategy := range Strategies {
		for seed := int32(0); seed < 50; seed++ {
			stairs := strategy.Place(rng.New(seed), infos, vertStep)
			for _, p := range stairs {
				require.GreaterOrEqual(t, p.rect.W, detect.MinPlatformWidth-1e-9)
				require.LessOrEqual(t, p.rect.W, detect.MaxPlatformWidth+1e-9)
			}
		}
	}
}

func TestInjectBonus(t *testing.T) {
	const count = 8
	vertStep := math.Min((GroundY-ExitY)/float64(count+1), MaxJumpHeight)

	t.Run("adds one or two within cap", func(t *testing.T) {
		for seed := int32(0); seed < 200; seed++ {
			r := rng.New(seed)
			stairs := Strategies[0].Place(r, testInfos(count), vertStep)
			out := injectBonus(r, stairs)

			added := len(out) - len(stairs)
			require.GreaterOrEqual(t, added, 1)
			require.LessOrEqual(t, added, MaxBonusPlatforms)
			require.LessOrEqual(t, len(out), detect.MaxPlatforms+MaxBonusPlatforms)
		}
	})

	t.Run("bonus platforms sit between their neighbors' band", func(t *testing.T) {
		for seed := int32(0); seed < 200; seed++ {
			r := rng.New(seed)
			stairs := Strategies[2].Place(r, testInfos(count), vertStep)
			out := injectBonus(r, stairs)

			for _, b := range out[len(stairs):] {
				require.True(t, b.rect.InUnitBounds())
				require.GreaterOrEqual(t, b.rect.Y, ExitY-0.02-1e-9)
				require.LessOrEqual(t, b.rect.Y, GroundY-0.04+1e-9)
			}
		}
	})

	t.Run("too few stairs adds nothing", func(t *testing.T) {
		r := rng.New(7)
		single := Strategies[0].Place(r, testInfos(1), 0.1)
		require.Len(t, injectBonus(r, single), 1)
	})
}

func TestGroundPlatform(t *testing.T) {
	g := groundPlatform()
	require.True(t, g.isGround)
	require.Equal(t, 0.0, g.rect.X)
	require.Equal(t, GroundY, g.rect.Y)
	require.Equal(t, 1.0, g.rect.W)
	require.Equal(t, GroundHeight, g.rect.H)
}
