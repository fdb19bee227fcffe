package fpgrowth

import (
	"fmt"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// maxTrackedNodes caps the recorded conditional tree size. Arbitrary.
const maxTrackedNodes = 1 << 30

// Stats describes the conditional trees built during one Mine call.
type Stats struct {
	// ConditionalTrees counts the non-empty conditional trees mined.
	ConditionalTrees int
	// MaxDepth is the longest prefix a conditional tree was built for.
	MaxDepth int
	// TreeNodes is the distribution of conditional tree sizes in nodes.
	TreeNodes *hdrhistogram.Histogram
}

func newStats() *Stats {
	return &Stats{TreeNodes: hdrhistogram.New(0, maxTrackedNodes, 2)}
}

func (s *Stats) reset() {
	s.ConditionalTrees = 0
	s.MaxDepth = 0
	if s.TreeNodes == nil {
		s.TreeNodes = hdrhistogram.New(0, maxTrackedNodes, 2)
	} else {
		s.TreeNodes.Reset()
	}
}

func (s *Stats) record(depth, nodes int) {
	s.ConditionalTrees++
	s.MaxDepth = max(s.MaxDepth, depth)
	_ = s.TreeNodes.RecordValue(int64(min(nodes, maxTrackedNodes)))
}

func (s *Stats) merge(o *Stats) {
	s.ConditionalTrees += o.ConditionalTrees
	s.MaxDepth = max(s.MaxDepth, o.MaxDepth)
	s.TreeNodes.Merge(o.TreeNodes)
}

// String summarizes s in one line.
func (s *Stats) String() string {
	if s.ConditionalTrees == 0 {
		return "no conditional trees"
	}
	h := s.TreeNodes

	return fmt.Sprintf("%d conditional trees, depth %d, nodes mean %.1f p50 %d p90 %d max %d",
		s.ConditionalTrees, s.MaxDepth, h.Mean(),
		h.ValueAtPercentile(50), h.ValueAtPercentile(90), h.Max())
}
