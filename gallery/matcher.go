package gallery

import "faceserver/faces"

// Result of matching one probe image against a gallery.
type Result struct {
	Matched bool
	Label   string
	// (1 - distance) * 100. Not clamped to [0,100]: distances above 1 show
	// up as negative values on purpose.
	Confidence float64
}

// Match compares the probe's faces against the gallery. Only the first
// detected probe face is consulted: its nearest gallery entry is the match
// when it falls within tolerance, and its rejection ends the search - faces
// later in the image are never considered.
func Match(probe []faces.Face, g Gallery, tolerance float64) Result {
	if len(probe) == 0 || len(g) == 0 {
		return Result{}
	}
	best := 0
	bestDist := faces.Distance(probe[0].Descriptor, g[0].Descriptor)
	for i := 1; i < len(g); i++ {
		if d := faces.Distance(probe[0].Descriptor, g[i].Descriptor); d < bestDist {
			best = i
			bestDist = d
		}
	}
	if bestDist > tolerance {
		return Result{}
	}
	return Result{
		Matched:    true,
		Label:      g[best].Label,
		Confidence: (1 - bestDist) * 100,
	}
}
