package level

import (
	"fmt"

	"github.com/snaplevel/snaplevel/internal/core/detect"
	"github.com/snaplevel/snaplevel/pkg/geom"
	"github.com/snaplevel/snaplevel/pkg/sequence"
)

const (
	collectibleSize = 0.04
	enemyKindWalker = "walker"
)

// playerSpawn is fixed: bottom-left, standing on the ground.
func playerSpawn() SpawnPoint {
	return SpawnPoint{X: PlayerSpawnX, Y: GroundY - EntityOffsetY}
}

// exitSpawn places the exit on the visually highest non-ground platform
// (smallest y, first in build order on ties), nudged toward its right edge
// and kept in the upper-right of the screen.
func exitSpawn(real []platform) SpawnPoint {
	if len(real) == 0 {
		// Unreachable: the classifier pads to at least MinPlatforms.
		return SpawnPoint{X: 0.9, Y: GroundY - EntityOffsetY}
	}
	top := real[0]
	for _, p := range real[1:] {
		if p.rect.Y < top.rect.Y {
			top = p
		}
	}
	return SpawnPoint{
		X: geom.Clamp(top.rect.X+top.rect.W-0.04, 0.6, 0.95),
		Y: top.rect.Y - EntityOffsetY,
	}
}

// collectibleObjects turns up to MaxCollectibles food detections into
// collectible objects, dealt round-robin onto the non-ground platforms.
func collectibleObjects(foods []detect.Detection, real []platform) []SceneObject {
	if len(real) == 0 {
		return nil
	}
	capped := sequence.From(foods).Take(detect.MaxCollectibles).Collect()
	out := make([]SceneObject, 0, len(capped))
	for i := range capped {
		p := real[i%len(real)]
		out = append(out, SceneObject{
			ID:         fmt.Sprintf("collect_%d", i),
			Type:       ObjectCollectible,
			Label:      capped[i].Label,
			Confidence: capped[i].Confidence,
			Category:   detect.CategoryFood,
			Bounds: geom.Rect{
				X: geom.Clamp(p.rect.X+0.3*p.rect.W, 0, 1-collectibleSize),
				Y: geom.Clamp(p.rect.Y-collectibleSize, 0, 1-collectibleSize),
				W: collectibleSize,
				H: collectibleSize,
			},
		})
	}
	return out
}

// pickupSpawns centers one pickup above each non-ground platform, up to
// MaxPickups. The first is a health pickup, the rest coins. Tiny levels are
// topped up with two ground-level coins so a run always has something to
// collect.
func pickupSpawns(real []platform) []PickupSpawn {
	out := make([]PickupSpawn, 0, MaxPickups)
	for i, p := range real {
		if i >= MaxPickups {
			break
		}
		kind := PickupCoin
		if i == 0 {
			kind = PickupHealth
		}
		out = append(out, PickupSpawn{
			SpawnPoint: SpawnPoint{X: p.rect.CenterX(), Y: p.rect.Y - EntityOffsetY},
			Type:       kind,
		})
	}
	if len(out) < MinPickups {
		for _, x := range []float64{0.3, 0.6} {
			out = append(out, PickupSpawn{
				SpawnPoint: SpawnPoint{X: x, Y: GroundY - EntityOffsetY},
				Type:       PickupCoin,
			})
		}
	}
	return out
}

// enemyPlan picks the enemy platforms at roughly 1/3 and 2/3 through the
// ordered platform list (only 1/3 for small levels) and reports which
// platform indices become spawn anchors, so the object pass can emit the
// flag without patching objects afterwards.
func enemyPlan(real []platform) ([]EnemySpawn, map[int]bool) {
	n := len(real)
	if n == 0 {
		return nil, nil
	}
	idxs := []int{n / 3}
	if n >= 4 {
		idxs = append(idxs, (2*n)/3)
	}

	anchors := make(map[int]bool, len(idxs))
	spawns := make([]EnemySpawn, 0, len(idxs))
	for _, i := range idxs {
		p := real[i]
		anchors[i] = true
		spawns = append(spawns, EnemySpawn{
			SpawnPoint: SpawnPoint{X: p.rect.CenterX(), Y: p.rect.Y - EntityOffsetY},
			Type:       enemyKindWalker,
		})
	}
	return spawns, anchors
}
