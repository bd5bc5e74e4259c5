package detect

import (
	"github.com/snaplevel/snaplevel/pkg/geom"
	"github.com/snaplevel/snaplevel/pkg/sequence"
)

// Classification limits. Platform widths are clamped so that no detected
// object produces a sliver or a wall-to-wall slab, and the platform count
// is padded/capped into a range that always yields a climbable staircase.
const (
	MinPlatformWidth = 0.12
	MaxPlatformWidth = 0.35

	MinPlatforms = 5
	MaxPlatforms = 8

	MaxCollectibles = 5

	syntheticWidth = 0.18
)

// PlatformInfo is a platform candidate distilled from one detection.
// Only the category and (clamped) width survive; the detection's reported
// position is discarded.
type PlatformInfo struct {
	Label       string
	Category    Category
	Confidence  float64
	Width       float64
	EnemyAnchor bool
}

// Classified is the classifier's partition of a detection response.
type Classified struct {
	Platforms    []PlatformInfo
	Collectibles []Detection

	// RealCount is how many of Platforms came from detections rather than
	// synthetic padding. Bonus platforms are only injected when the photo
	// contributed at least one real candidate.
	RealCount int
}

// PlatformCount is the number of staircase platforms the layout will place:
// the candidate count clamped into [MinPlatforms, MaxPlatforms]. Platforms
// is always padded up to at least this length.
func (c Classified) PlatformCount() int {
	return geom.ClampInt(len(c.Platforms), MinPlatforms, MaxPlatforms)
}

// Classify partitions detections into platform candidates (everything that
// is not food) and collectible candidates (food, first MaxCollectibles are
// consumed downstream). Too few platform candidates are padded with
// synthetic ledges so an empty photo still produces a playable level.
func Classify(r Response) Classified {
	food, rest := sequence.From(r.Detections).Partition(func(d Detection) bool {
		return d.Category == CategoryFood
	})

	platforms := sequence.ToArray(sequence.From(rest), func(d Detection) PlatformInfo {
		return PlatformInfo{
			Label:       d.Label,
			Category:    d.Category,
			Confidence:  d.Confidence,
			Width:       geom.Clamp(d.Bounds.W, MinPlatformWidth, MaxPlatformWidth),
			EnemyAnchor: d.Category == CategoryPlant || d.Category == CategoryElectric,
		}
	})

	realCount := len(platforms)
	for len(platforms) < MinPlatforms {
		platforms = append(platforms, PlatformInfo{
			Label:      "ledge",
			Category:   CategoryOther,
			Confidence: 1,
			Width:      syntheticWidth,
		})
	}

	return Classified{Platforms: platforms, Collectibles: food, RealCount: realCount}
}
