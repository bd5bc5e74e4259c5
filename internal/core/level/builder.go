package level

import (
	"fmt"
	"math"

	"github.com/snaplevel/snaplevel/internal/core/detect"
	"github.com/snaplevel/snaplevel/internal/core/rng"
)

// Build converts one detection response into a guaranteed-completable scene.
//
// The pipeline is deterministic end to end: the detections derive the seed,
// the seeded generator drives every placement decision, and no stage touches
// shared state, so the same photo always yields the same level and
// concurrent builds cannot interfere. Malformed input is absorbed by
// clamping and padding; Build never fails.
func Build(resp detect.Response) SceneV1 {
	cls := detect.Classify(resp)
	r := rng.New(rng.Seed(resp))

	count := cls.PlatformCount()
	vertStep := math.Min((GroundY-ExitY)/float64(count+1), MaxJumpHeight)

	strategy := Strategies[r.IntN(len(Strategies))]
	stairs := strategy.Place(r, cls.Platforms[:count], vertStep)

	// A photo with no usable detections keeps the minimal synthetic
	// staircase; bonus ledges are only worth adding around real platforms.
	real := stairs
	if cls.RealCount > 0 {
		real = injectBonus(r, stairs)
	}

	enemies, anchors := enemyPlan(real)

	objects := make([]SceneObject, 0, len(real)+1+detect.MaxCollectibles)
	for i, p := range real {
		objects = append(objects, SceneObject{
			ID:               fmt.Sprintf("plat_%d", i),
			Type:             ObjectPlatform,
			Label:            p.info.Label,
			Confidence:       p.info.Confidence,
			Bounds:           p.rect,
			Surface:          SurfaceSolid,
			Category:         p.info.Category,
			EnemySpawnAnchor: p.info.EnemyAnchor || anchors[i],
		})
	}

	ground := groundPlatform()
	objects = append(objects, SceneObject{
		ID:         fmt.Sprintf("ground_%d", len(real)),
		Type:       ObjectPlatform,
		Label:      ground.info.Label,
		Confidence: ground.info.Confidence,
		Bounds:     ground.rect,
		Surface:    SurfaceSolid,
		Category:   ground.info.Category,
	})

	objects = append(objects, collectibleObjects(cls.Collectibles, real)...)

	return SceneV1{
		Version: 1,
		Image:   resp.Image,
		Objects: objects,
		Spawns: Spawns{
			Player:  playerSpawn(),
			Exit:    exitSpawn(real),
			Enemies: enemies,
			Pickups: pickupSpawns(real),
		},
		Rules: []string{},
	}
}
