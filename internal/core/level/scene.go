package level

import (
	"github.com/snaplevel/snaplevel/internal/core/detect"
	"github.com/snaplevel/snaplevel/pkg/geom"
	"github.com/snaplevel/snaplevel/pkg/sequence"
)

// SceneV1 is the wire shape handed to the client renderer. It is created
// once per accepted photo and immutable afterwards; a restart replays the
// same scene.

// ObjectType tags what a scene object is to the renderer and collision code.
type ObjectType string

const (
	ObjectPlatform    ObjectType = "platform"
	ObjectObstacle    ObjectType = "obstacle"
	ObjectCollectible ObjectType = "collectible"
	ObjectHazard      ObjectType = "hazard"
	ObjectDecoration  ObjectType = "decoration"
)

// SurfaceType describes how a platform behaves underfoot.
type SurfaceType string

const (
	SurfaceSolid     SurfaceType = "solid"
	SurfaceBouncy    SurfaceType = "bouncy"
	SurfaceSlippery  SurfaceType = "slippery"
	SurfaceBreakable SurfaceType = "breakable"
	SurfaceSoft      SurfaceType = "soft"
)

// PickupType tags a pickup spawn.
type PickupType string

const (
	PickupHealth PickupType = "health"
	PickupCoin   PickupType = "coin"
)

// SceneObject is a single placed object in normalized image coordinates.
type SceneObject struct {
	ID               string          `json:"id"`
	Type             ObjectType      `json:"type"`
	Label            string          `json:"label"`
	Confidence       float64         `json:"confidence"`
	Bounds           geom.Rect       `json:"bounds_normalized"`
	Surface          SurfaceType     `json:"surface_type,omitempty"`
	Category         detect.Category `json:"category,omitempty"`
	EnemySpawnAnchor bool            `json:"enemy_spawn_anchor,omitempty"`
}

// SpawnPoint is a normalized position.
type SpawnPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EnemySpawn is a spawn point with an enemy kind.
type EnemySpawn struct {
	SpawnPoint
	Type string `json:"type"`
}

// PickupSpawn is a spawn point with a pickup kind.
type PickupSpawn struct {
	SpawnPoint
	Type PickupType `json:"type"`
}

// Spawns collects every entity spawn derived from the platform list.
type Spawns struct {
	Player  SpawnPoint    `json:"player"`
	Exit    SpawnPoint    `json:"exit"`
	Enemies []EnemySpawn  `json:"enemies"`
	Pickups []PickupSpawn `json:"pickups"`
}

// SceneV1 is the builder's sole output.
type SceneV1 struct {
	Version int              `json:"version"`
	Image   detect.ImageSize `json:"image"`
	Objects []SceneObject    `json:"objects"`
	Spawns  Spawns           `json:"spawns"`
	Rules   []string         `json:"rules"`
}

// Platforms returns the scene's platform objects in emission order.
func (s SceneV1) Platforms() []SceneObject {
	return sequence.From(s.Objects).Filter(func(o SceneObject) bool {
		return o.Type == ObjectPlatform
	}).Collect()
}
