package blueprint

// Point is an immutable pair of integer coordinates.
type Point struct {
	X int
	Y int
}

// Blueprint is a named, ordered collection of points owned by an author.
// The pair (Author, Name) identifies it.
type Blueprint struct {
	Author string
	Name   string
	Points []Point
}

// Key returns the natural key of the blueprint.
func (bp *Blueprint) Key() Key {
	return Key{Author: bp.Author, Name: bp.Name}
}

// Key is the (author, name) pair that identifies a blueprint.
type Key struct {
	Author string
	Name   string
}
