// Package trackdata parses Tiled TMX track segments. It has no dependencies
// on ebitengine or donburi, so the loader can be tested headless.
package trackdata

// TrackData is one track segment in world units. X is centered on the
// level, Z runs forward from the segment start.
type TrackData struct {
	Name         string
	Width        float64 // level width, the runner is bounded to ±Width/2
	Length       float64 // forward length of one segment
	Spawn        Spawn
	LaneDistance float64 // 0 when the track does not override the lane distance
	Props        []Prop
}

// Spawn is where the runner starts.
type Spawn struct {
	X, Y, Z float64
}

// Prop is a roadside decoration, repeated every segment.
type Prop struct {
	Kind string
	X, Z float64
	W, L float64
}

// PropsBetween returns props from repeating segments that fall inside
// [fromZ, toZ), shifted to their absolute Z.
func (t *TrackData) PropsBetween(fromZ, toZ float64) []Prop {
	if t.Length <= 0 || toZ <= fromZ {
		return nil
	}
	var out []Prop
	first := int(fromZ / t.Length)
	if fromZ < 0 {
		first--
	}
	for seg := first; float64(seg)*t.Length < toZ; seg++ {
		base := float64(seg) * t.Length
		for _, p := range t.Props {
			z := base + p.Z
			if z+p.L < fromZ || z >= toZ {
				continue
			}
			p.Z = z
			out = append(out, p)
		}
	}
	return out
}
