package rng

import (
	"math"

	"github.com/snaplevel/snaplevel/internal/core/detect"
)

// Seed derives the per-photo level seed from a detection response. It mixes
// the image dimensions with a rolling hash over each detection's label
// length and its rounded normalized position, so the same photo (same
// detections by value) always builds the same level, while nearby photos
// diverge. Plain int32 wraparound is intentional.
func Seed(r detect.Response) int32 {
	s := int32(r.Image.W)*7919 + int32(r.Image.H)*6271
	for _, d := range r.Detections {
		s = s*31 + int32(len(d.Label))
		s = s*31 + int32(math.Round(d.Bounds.X*1000))
		s = s*31 + int32(math.Round(d.Bounds.Y*1000))
	}
	return s
}
