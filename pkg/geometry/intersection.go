package geometry

import "sort"

// Intersection records where along a ray a shape was met and which
// shape it was, by its index in the owning world's object list.
type Intersection struct {
	T          float64
	ShapeIndex int
}

// NewIntersection creates a new Intersection.
func NewIntersection(t float64, shapeIndex int) Intersection {
	return Intersection{T: t, ShapeIndex: shapeIndex}
}

// Intersections is an ordered ledger of intersections, kept sorted
// ascending by t on every insertion.
type Intersections struct {
	items []Intersection
}

// NewIntersections builds a sorted ledger from the given entries.
func NewIntersections(items ...Intersection) Intersections {
	xs := Intersections{items: items}
	xs.sort()
	return xs
}

// Add inserts an intersection, keeping the ledger sorted.
func (xs *Intersections) Add(i Intersection) {
	xs.items = append(xs.items, i)
	xs.sort()
}

// Merge inserts all entries of another ledger, keeping the result
// sorted.
func (xs *Intersections) Merge(other Intersections) {
	xs.items = append(xs.items, other.items...)
	xs.sort()
}

// Len returns the number of intersections in the ledger.
func (xs Intersections) Len() int {
	return len(xs.items)
}

// At returns the intersection at position i in sorted order.
func (xs Intersections) At(i int) Intersection {
	return xs.items[i]
}

// Hit returns the intersection with the lowest non-negative t, or
// false when every entry lies behind the ray origin. Negative entries
// sort to the front, so a linear scan finds the first valid one.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, item := range xs.items {
		if item.T >= 0 {
			return item, true
		}
	}
	return Intersection{}, false
}

func (xs *Intersections) sort() {
	sort.SliceStable(xs.items, func(i, j int) bool {
		return xs.items[i].T < xs.items[j].T
	})
}
