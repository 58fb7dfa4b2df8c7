package domain

// The map canvas is a flat percentage space with padding on every edge, so
// pins never render flush against the border.
const (
	canvasMin = 3.0
	canvasMax = 97.0
)

// ProjectedPoint is a position on the flat map canvas, in percent of the
// canvas width (X) and height (Y). Recomputed on every render pass; never
// stored.
type ProjectedPoint struct {
	X float64
	Y float64
}

// Pin is a projected store position feeding the clusterer.
type Pin struct {
	StoreID string
	X       float64
	Y       float64
}

// Cluster groups pins close enough to render as a single marker. The
// centroid (X, Y) is the running mean of member positions, updated
// incrementally as members are added.
type Cluster struct {
	X    float64
	Y    float64
	Pins []Pin
}

// Project maps latitude/longitude onto the canvas using an equirectangular
// projection, then clamps each axis into [3, 97]. Clamping is mandatory:
// poles and the antimeridian land exactly on the raw 0/100 edges.
func Project(lat, lon float64) ProjectedPoint {
	x := ((lon + 180) / 360) * 100
	y := ((90 - lat) / 180) * 100

	return ProjectedPoint{X: clampToCanvas(x), Y: clampToCanvas(y)}
}

func clampToCanvas(v float64) float64 {
	if v < canvasMin {
		return canvasMin
	}
	if v > canvasMax {
		return canvasMax
	}
	return v
}
