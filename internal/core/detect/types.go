package detect

import "github.com/snaplevel/snaplevel/pkg/geom"

// Wire types for the vision model's output. The model call itself lives
// outside this repo; we consume its JSON as-is. Detections are untrusted:
// the builder only trusts category and width, and discards the reported
// x/y (photo positions cluster centrally and make unplayable layouts).

// Category classifies what kind of real-world object was detected.
type Category string

const (
	CategoryFurniture Category = "furniture"
	CategoryFood      Category = "food"
	CategoryPlant     Category = "plant"
	CategoryElectric  Category = "electric"
	CategoryOther     Category = "other"
)

// Detection is a single detected object in normalized image coordinates.
type Detection struct {
	Label      string    `json:"label"`
	Category   Category  `json:"category"`
	Confidence float64   `json:"confidence"`
	Bounds     geom.Rect `json:"bounds_normalized"`
}

// ImageSize is the source photo's pixel dimensions.
type ImageSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Response is the full payload returned by the vision call for one photo.
type Response struct {
	Image      ImageSize   `json:"image"`
	Detections []Detection `json:"detections"`
}
