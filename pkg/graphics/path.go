package graphics

// PathVerb identifies one drawing command inside a [PathData].
type PathVerb int

const (
	// PathMove starts a new subpath at (X, Y).
	PathMove PathVerb = iota
	// PathLine draws a straight line to (X, Y).
	PathLine
	// PathQuad draws a quadratic bezier to (X, Y) with control point (X1, Y1).
	PathQuad
	// PathCubic draws a cubic bezier to (X, Y) with control points
	// (X1, Y1) and (X2, Y2).
	PathCubic
	// PathClose closes the current subpath. Coordinates are ignored.
	PathClose
)

// String returns a human-readable representation of the path verb.
func (v PathVerb) String() string {
	switch v {
	case PathMove:
		return "move"
	case PathLine:
		return "line"
	case PathQuad:
		return "quad"
	case PathCubic:
		return "cubic"
	case PathClose:
		return "close"
	default:
		return "unknown"
	}
}

// PathElement is one command of a vector path. X and Y are the end point;
// the control point fields are only meaningful for the bezier verbs.
type PathElement struct {
	Verb           PathVerb
	X, Y           float64
	X1, Y1, X2, Y2 float64
}

// PathData holds the elements of a vector path as a flat command list.
//
// PathData is a plain value: copying it shares the underlying element slice,
// which is treated as immutable once the path is handed to a property.
type PathData struct {
	Elements []PathElement
}

// Equal reports whether two paths contain the same command sequence.
func (p PathData) Equal(q PathData) bool {
	if len(p.Elements) != len(q.Elements) {
		return false
	}
	for i, e := range p.Elements {
		if e != q.Elements[i] {
			return false
		}
	}
	return true
}
