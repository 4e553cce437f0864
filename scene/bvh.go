package scene

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/achilleasa/go-mctrace/log"
	"github.com/achilleasa/go-mctrace/types"
)

// SplitStrategy selects how the BVH builder partitions primitives.
type SplitStrategy uint8

const (
	// Median split along a single axis picked at random once per build.
	SplitRandomAxis SplitStrategy = iota

	// Median split along an axis re-picked at random for every node.
	SplitRandomAxisPerNode

	// Split minimizing the surface area heuristic over all three axes:
	// score = left count * left bbox area + right count * right bbox area.
	SplitSurfaceArea
)

func (s SplitStrategy) String() string {
	switch s {
	case SplitRandomAxis:
		return "random-axis"
	case SplitRandomAxisPerNode:
		return "random-axis-per-node"
	case SplitSurfaceArea:
		return "sah"
	}
	return "unknown"
}

// Parse a split strategy from its name.
func ParseSplitStrategy(name string) (SplitStrategy, error) {
	for _, s := range []SplitStrategy{SplitRandomAxis, SplitRandomAxisPerNode, SplitSurfaceArea} {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownSplitStrategy, name)
}

// A BVH node owns two children and the box enclosing both. A node built over
// a single primitive stores it as both children.
type BvhNode struct {
	notALight
	Left  Hittable
	Right Hittable
	Box   types.AABB
}

// Statistics for a built tree.
type BvhStats struct {
	Nodes      int
	Leafs      int
	MaxDepth   int
	Primitives int
}

type bvhItem struct {
	obj Hittable
	box types.AABB
}

type bvhBuilder struct {
	strategy SplitStrategy
	rng      *rand.Rand
	axis     types.Axis
	stats    BvhStats
}

// Build a BVH using the default strategy.
func NewBvhNode(objects []Hittable, time0, time1 float64, rng *rand.Rand) (*BvhNode, error) {
	return BuildBvh(objects, time0, time1, rng, SplitRandomAxis)
}

// Build a BVH, panicking on failure. Intended for scene builders.
func MustBvhNode(objects []Hittable, time0, time1 float64, rng *rand.Rand) *BvhNode {
	node, err := NewBvhNode(objects, time0, time1, rng)
	if err != nil {
		panic(err)
	}
	return node
}

// Build a BVH over objects with the given strategy. The input slice is not
// modified. Every object must be bounded over [time0, time1].
func BuildBvh(objects []Hittable, time0, time1 float64, rng *rand.Rand, strategy SplitStrategy) (*BvhNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBvh
	}

	items := make([]bvhItem, len(objects))
	for i, obj := range objects {
		box, ok := obj.BoundingBox(time0, time1)
		if !ok {
			return nil, ErrUnboundedPrimitive
		}
		items[i] = bvhItem{obj: obj, box: box}
	}

	b := &bvhBuilder{
		strategy: strategy,
		rng:      rng,
		axis:     types.Axis(rng.Intn(3)),
	}
	b.stats.Primitives = len(items)

	start := time.Now()
	root := b.build(items, 1)
	log.New("bvh").Debugf(
		"BVH tree build time: %d ms, strategy: %s, maxDepth: %d, nodes: %d, leafs: %d",
		time.Since(start).Nanoseconds()/1e6,
		strategy, b.stats.MaxDepth, b.stats.Nodes, b.stats.Leafs,
	)
	return root, nil
}

func (b *bvhBuilder) build(items []bvhItem, depth int) *BvhNode {
	b.stats.Nodes++
	if depth > b.stats.MaxDepth {
		b.stats.MaxDepth = depth
	}

	node := &BvhNode{}
	switch len(items) {
	case 1:
		b.stats.Leafs++
		node.Left, node.Right = items[0].obj, items[0].obj
		node.Box = items[0].box
		return node
	case 2:
		b.stats.Leafs += 2
		b.sortItems(items, b.pickAxis())
		node.Left, node.Right = items[0].obj, items[1].obj
		node.Box = types.SurroundingBox(items[0].box, items[1].box)
		return node
	}

	var mid int
	if b.strategy == SplitSurfaceArea {
		mid = b.sahSplit(items)
	} else {
		b.sortItems(items, b.pickAxis())
		mid = len(items) / 2
	}

	left := b.build(items[:mid], depth+1)
	right := b.build(items[mid:], depth+1)
	node.Left, node.Right = left, right
	node.Box = types.SurroundingBox(left.Box, right.Box)
	return node
}

func (b *bvhBuilder) pickAxis() types.Axis {
	if b.strategy == SplitRandomAxisPerNode {
		return types.Axis(b.rng.Intn(3))
	}
	return b.axis
}

func (b *bvhBuilder) sortItems(items []bvhItem, axis types.Axis) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].box.Min[axis] < items[j].box.Min[axis]
	})
}

// Sort items along the axis with the cheapest SAH split and return the split index.
// When no split has a finite cost (boxes too large for their area to be
// represented) this degrades to a median split along the longest axis of the
// item centroids.
func (b *bvhBuilder) sahSplit(items []bvhItem) int {
	centroids := types.AABB{Min: items[0].box.Centroid(), Max: items[0].box.Centroid()}
	for _, item := range items[1:] {
		c := item.box.Centroid()
		centroids = types.SurroundingBox(centroids, types.AABB{Min: c, Max: c})
	}

	var (
		bestAxis  = centroids.LongestAxis()
		bestIndex = len(items) / 2
		bestScore = math.Inf(1)
		rightArea = make([]float64, len(items))
	)

	for axis := types.AxisX; axis <= types.AxisZ; axis++ {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].box.Centroid()[axis] < items[j].box.Centroid()[axis]
		})

		acc := items[len(items)-1].box
		for i := len(items) - 1; i > 0; i-- {
			acc = types.SurroundingBox(acc, items[i].box)
			rightArea[i] = acc.SurfaceArea()
		}

		acc = items[0].box
		for i := 1; i < len(items); i++ {
			score := float64(i)*acc.SurfaceArea() + float64(len(items)-i)*rightArea[i]
			if score < bestScore {
				bestScore, bestAxis, bestIndex = score, axis, i
			}
			acc = types.SurroundingBox(acc, items[i].box)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].box.Centroid()[bestAxis] < items[j].box.Centroid()[bestAxis]
	})
	return bestIndex
}

func (n *BvhNode) Hit(r types.Ray, tMin, tMax float64, rng *rand.Rand) (HitRecord, bool) {
	if !n.Box.Hit(r, tMin, tMax) {
		return HitRecord{}, false
	}

	leftRec, hitLeft := n.Left.Hit(r, tMin, tMax, rng)
	if n.Right == n.Left {
		return leftRec, hitLeft
	}

	if hitLeft {
		tMax = leftRec.T
	}
	if rightRec, hitRight := n.Right.Hit(r, tMin, tMax, rng); hitRight {
		return rightRec, true
	}
	return leftRec, hitLeft
}

func (n *BvhNode) BoundingBox(_, _ float64) (types.AABB, bool) {
	return n.Box, true
}

// Walk the tree and collect its statistics.
func (n *BvhNode) Stats() BvhStats {
	var stats BvhStats
	n.collectStats(&stats, 1)
	return stats
}

func (n *BvhNode) collectStats(stats *BvhStats, depth int) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Hittable{n.Left, n.Right}
	if n.Left == n.Right {
		children = children[:1]
	}
	for _, child := range children {
		if inner, ok := child.(*BvhNode); ok {
			inner.collectStats(stats, depth+1)
			continue
		}
		stats.Leafs++
		stats.Primitives++
	}
}

func (*BvhNode) hittable() {}
