package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration time.Duration
	Nodes    int
	Depth    int // Deepest completed iteration
}

type MoveMetric struct {
	Step     int
	Player   int // Player ID
	Depth    int // Depth of the published move, 0 for the fallback
	Nodes    int // 0 for agents without search metrics
	Duration time.Duration
	Overrun  time.Duration // Time the agent kept running past the deadline
}

type GameMetric struct {
	ID         string
	Winner     int // Player ID
	Forfeit    bool
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector is written by the searching goroutine and may be read by others.
type Collector interface {
	Start()
	AddNode()
	CompleteDepth(depth int)
	Complete() SearchMetric
}

type collector struct {
	startTime atomic.Int64
	nodes     atomic.Int64
	depth     atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime.Store(time.Now().UnixNano())
	m.nodes.Store(0)
	m.depth.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) CompleteDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration: time.Since(time.Unix(0, m.startTime.Load())),
		Nodes:    int(m.nodes.Load()),
		Depth:    int(m.depth.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                  {}
func (m *dummyCollector) AddNode()                {}
func (m *dummyCollector) CompleteDepth(depth int) {}
func (m *dummyCollector) Complete() SearchMetric  { return SearchMetric{} }
