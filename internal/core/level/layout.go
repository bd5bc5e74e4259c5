package level

import (
	"math"

	"github.com/snaplevel/snaplevel/internal/core/detect"
	"github.com/snaplevel/snaplevel/internal/core/rng"
	"github.com/snaplevel/snaplevel/pkg/geom"
)

// platform is an intermediate placement descriptor. The staircase is built
// as an immutable list of these, and a later pass maps them to SceneObjects
// with all derived flags already resolved.
type platform struct {
	rect     geom.Rect
	info     detect.PlatformInfo
	isGround bool
}

// Strategy is one of the geometric placement algorithms. Each produces the
// ordered staircase bottom-to-top with row y-deltas bounded by vertStep.
type Strategy struct {
	Name  string
	Place func(r *rng.Source, infos []detect.PlatformInfo, vertStep float64) []platform
}

// Strategies is the table the builder picks from, uniformly, once per level.
var Strategies = [...]Strategy{
	{Name: "zigzag", Place: placeZigzag},
	{Name: "spiral", Place: placeSpiral},
	{Name: "scattered", Place: placeScattered},
	{Name: "sCurve", Place: placeSCurve},
}

// rowY computes row i's top edge: one vertStep above the previous row,
// jittered by up to ±20% of the step and clamped into the playable band.
func rowY(r *rng.Source, i int, vertStep float64) float64 {
	y := GroundY - float64(i+1)*vertStep
	y += (r.Float() - 0.5) * 0.4 * vertStep
	return geom.Clamp(y, ExitY-0.02, GroundY-0.04)
}

// clampX keeps a platform of width w inside the horizontal band.
func clampX(x, w float64) float64 {
	return geom.Clamp(x, XMin, XMax-w)
}

// placeZigzag alternates rows between a left and a right band, jittering
// each row's width around the detected width.
func placeZigzag(r *rng.Source, infos []detect.PlatformInfo, vertStep float64) []platform {
	bands := [2][2]float64{{0.02, 0.42}, {0.50, 0.96}}
	out := make([]platform, 0, len(infos))
	for i, info := range infos {
		y := rowY(r, i, vertStep)
		w := geom.Clamp(info.Width*(1+(r.Float()-0.5)*0.6),
			detect.MinPlatformWidth, detect.MaxPlatformWidth)
		band := bands[i%2]
		x := clampX(band[0]+r.Float()*(band[1]-band[0]-w), w)
		out = append(out, platform{
			rect: geom.Rect{X: x, Y: y, W: w, H: PlatformHeight},
			info: info,
		})
	}
	return out
}

// placeSpiral cycles rows through four quadrant x-ranges.
func placeSpiral(r *rng.Source, infos []detect.PlatformInfo, vertStep float64) []platform {
	quadrants := [4][2]float64{{0.02, 0.30}, {0.65, 0.96}, {0.25, 0.55}, {0.45, 0.75}}
	out := make([]platform, 0, len(infos))
	for i, info := range infos {
		y := rowY(r, i, vertStep)
		w := info.Width
		q := quadrants[i%4]
		x := clampX(q[0]+r.Float()*math.Max(q[1]-q[0]-w, 0), w)
		out = append(out, platform{
			rect: geom.Rect{X: x, Y: y, W: w, H: PlatformHeight},
			info: info,
		})
	}
	return out
}

// placeScattered draws x uniformly across the near-full width.
func placeScattered(r *rng.Source, infos []detect.PlatformInfo, vertStep float64) []platform {
	out := make([]platform, 0, len(infos))
	for i, info := range infos {
		y := rowY(r, i, vertStep)
		w := info.Width
		x := clampX(0.05+r.Float()*math.Max(0.88-w, 0), w)
		out = append(out, platform{
			rect: geom.Rect{X: x, Y: y, W: w, H: PlatformHeight},
			info: info,
		})
	}
	return out
}

// placeSCurve sweeps the platform centers along a sine-eased S from left
// to right as the staircase climbs.
func placeSCurve(r *rng.Source, infos []detect.PlatformInfo, vertStep float64) []platform {
	out := make([]platform, 0, len(infos))
	n := len(infos)
	for i, info := range infos {
		y := rowY(r, i, vertStep)
		w := info.Width
		progress := 0.0
		if n > 1 {
			progress = float64(i) / float64(n-1)
		}
		ease := (math.Sin(progress*2*math.Pi-math.Pi/2) + 1) / 2
		center := geom.Lerp(0.15, 0.80, ease)
		x := clampX(center-w/2+(r.Float()-0.5)*0.08, w)
		out = append(out, platform{
			rect: geom.Rect{X: x, Y: y, W: w, H: PlatformHeight},
			info: info,
		})
	}
	return out
}

// injectBonus adds one (p=0.6) or two extra floating platforms, each
// centered vertically between a random adjacent staircase pair and placed
// on the side opposite the lower neighbor's center. The total never
// exceeds MaxPlatforms+MaxBonusPlatforms.
func injectBonus(r *rng.Source, stairs []platform) []platform {
	count := 1
	if r.Float() >= 0.6 {
		count = 2
	}

	out := stairs
	for j := 0; j < count; j++ {
		if len(stairs) < 2 || len(out) >= detect.MaxPlatforms+MaxBonusPlatforms {
			break
		}
		i := r.IntN(len(stairs) - 1)
		below, above := stairs[i], stairs[i+1]

		w := r.Range(detect.MinPlatformWidth, 0.24)
		y := geom.Clamp((above.rect.Y+below.rect.Y)/2, ExitY-0.02, GroundY-0.04)

		var x float64
		if below.rect.CenterX() < 0.5 {
			x = r.Range(0.5, math.Max(XMax-w, 0.5))
		} else {
			x = r.Range(XMin, math.Max(0.5-w, XMin))
		}

		out = append(out, platform{
			rect: geom.Rect{X: clampX(x, w), Y: y, W: w, H: PlatformHeight},
			info: detect.PlatformInfo{Label: "ledge", Category: detect.CategoryOther, Confidence: 1, Width: w},
		})
	}
	return out
}

// groundPlatform is the always-present full-width floor.
func groundPlatform() platform {
	return platform{
		rect:     geom.Rect{X: 0, Y: GroundY, W: 1, H: GroundHeight},
		info:     detect.PlatformInfo{Label: "ground", Category: detect.CategoryOther, Confidence: 1, Width: 1},
		isGround: true,
	}
}
