package goarrays

// Len is the static length of an Array, carried as a type parameter.
// Implementations are zero-size types whose Len method returns a constant.
type Len interface {
	Len() int
}

// Predefined lengths.
type (
	N0  struct{}
	N1  struct{}
	N2  struct{}
	N3  struct{}
	N4  struct{}
	N5  struct{}
	N6  struct{}
	N7  struct{}
	N8  struct{}
	N16 struct{}
	N32 struct{}
	N64 struct{}
)

func (N0) Len() int  { return 0 }
func (N1) Len() int  { return 1 }
func (N2) Len() int  { return 2 }
func (N3) Len() int  { return 3 }
func (N4) Len() int  { return 4 }
func (N5) Len() int  { return 5 }
func (N6) Len() int  { return 6 }
func (N7) Len() int  { return 7 }
func (N8) Len() int  { return 8 }
func (N16) Len() int { return 16 }
func (N32) Len() int { return 32 }
func (N64) Len() int { return 64 }

// lengthOf returns the length described by N.
func lengthOf[N Len]() int {
	var n N
	return n.Len()
}
