// Package kdtree implements a static k-d tree over fixed-dimension points,
// used to seed the nearest-point-on-curve query with a fast approximate
// answer before it is refined by root-finding.
package kdtree

import (
	"sort"

	"github.com/splinekit/splinekit/vecmath"
)

// Point is anything a Tree can index: a fixed number of axes, each readable
// by index. vecmath.Vector2[S] and vecmath.Vector3[S] both satisfy it.
type Point[S vecmath.Scalar] interface {
	Dim() int
	Axis(i int) S
}

// Tree is a static (build-once, query-many) k-d tree over a slice of
// points. The tree keeps the slice it was built from (it is not copied);
// queries return indices into it.
type Tree[S vecmath.Scalar, P Point[S]] struct {
	points []P
	root   *node
}

type node struct {
	index       int
	axis        int
	left, right *node
}

// Build constructs a k-d tree over points. points must be non-empty.
func Build[S vecmath.Scalar, P Point[S]](points []P) *Tree[S, P] {
	t := &Tree[S, P]{points: points}
	idx := make([]int, len(points))
	for i := range idx {
		idx[i] = i
	}
	dim := 0
	if len(points) > 0 {
		dim = points[0].Dim()
	}
	t.root = t.build(idx, 0, dim)
	return t
}

// build recursively partitions idx around its median along the current
// split axis, cycling through the point's dimensions with depth.
func (t *Tree[S, P]) build(idx []int, depth, dim int) *node {
	if len(idx) == 0 {
		return nil
	}
	axis := depth % dim
	sort.Slice(idx, func(i, j int) bool {
		return t.points[idx[i]].Axis(axis) < t.points[idx[j]].Axis(axis)
	})
	mid := len(idx) / 2
	n := &node{index: idx[mid], axis: axis}
	n.left = t.build(idx[:mid], depth+1, dim)
	n.right = t.build(idx[mid+1:], depth+1, dim)
	return n
}

// Nearest returns the index (into the slice passed to Build) of the point
// closest to query, along with its squared distance.
func (t *Tree[S, P]) Nearest(query P) (index int, distSq S) {
	best := -1
	var bestDist S
	t.search(t.root, query, &best, &bestDist)
	return best, bestDist
}

func (t *Tree[S, P]) search(n *node, query P, best *int, bestDist *S) {
	if n == nil {
		return
	}
	d := distSq[S](t.points[n.index], query)
	if *best < 0 || d < *bestDist {
		*best = n.index
		*bestDist = d
	}

	diff := query.Axis(n.axis) - t.points[n.index].Axis(n.axis)
	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}
	t.search(near, query, best, bestDist)
	if *best < 0 || diff*diff < *bestDist {
		t.search(far, query, best, bestDist)
	}
}

// distSq computes the squared Euclidean distance between two points of the
// same dimensionality via their axis accessors.
func distSq[S vecmath.Scalar, P Point[S]](a, b P) S {
	var sum S
	for i := 0; i < a.Dim(); i++ {
		d := a.Axis(i) - b.Axis(i)
		sum += d * d
	}
	return sum
}
