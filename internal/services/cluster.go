package services

import (
	"math"

	"github.com/learngermanghana/sedifex-stores/internal/domain"
)

// DefaultClusterThreshold is the merge distance between a pin and a cluster
// centroid, in percent-canvas units.
const DefaultClusterThreshold = 4.0

// ClusterPins groups projected pins into map clusters in a single forward
// pass. Each pin joins the first existing cluster, in creation order, whose
// centroid lies within the Euclidean threshold; otherwise it starts a new
// singleton cluster. Distances are straight-line in canvas space, not
// geodesic.
//
// The match is "first found", not "closest found", so the final grouping
// depends on input order. That is a known approximation, traded for an
// O(n*k) pass with no spatial index, which holds up fine for the tens to
// low hundreds of pins a directory view renders. Centroids drift as members
// join and are never recomputed from the full member set.
//
// Pure over its input; output order is cluster-creation order. A threshold
// of zero or below falls back to DefaultClusterThreshold.
func ClusterPins(pins []domain.Pin, threshold float64) []domain.Cluster {
	if threshold <= 0 {
		threshold = DefaultClusterThreshold
	}

	clusters := make([]domain.Cluster, 0, len(pins))

	for _, p := range pins {
		merged := false
		for i := range clusters {
			c := &clusters[i]
			if math.Hypot(c.X-p.X, c.Y-p.Y) > threshold {
				continue
			}

			// Running-mean centroid update.
			n := float64(len(c.Pins))
			c.X = (c.X*n + p.X) / (n + 1)
			c.Y = (c.Y*n + p.Y) / (n + 1)
			c.Pins = append(c.Pins, p)
			merged = true
			break
		}

		if !merged {
			clusters = append(clusters, domain.Cluster{
				X:    p.X,
				Y:    p.Y,
				Pins: []domain.Pin{p},
			})
		}
	}

	return clusters
}
