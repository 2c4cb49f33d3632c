package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarises the work done for one decision.
type SearchMetric struct {
	Depth      int
	Targets    int
	Duration   time.Duration
	Searches   int // lookahead roots
	Matrices   int // payoff matrices built
	Solves     int
	PrunedRows int
	PrunedCols int
	MemoHits   int
}

type MoveMetric struct {
	Turn   int
	Player int // side index, 0 for upper
	Action string
	SearchMetric
}

type GameMetric struct {
	Winner    int // side index, -1 for a draw
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Turns     int
	Kills     [2]int
}

type Collector interface {
	Start(depth, targets int)
	AddSearch()
	AddMatrix()
	AddSolve()
	AddPruned(rows, cols int)
	AddMemoHit()
	Complete() SearchMetric
}

type collector struct {
	depth      int
	targets    int
	startTime  time.Time
	searches   atomic.Int32
	matrices   atomic.Int32
	solves     atomic.Int32
	prunedRows atomic.Int32
	prunedCols atomic.Int32
	memoHits   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new decision.
func (m *collector) Start(depth, targets int) {
	m.startTime = time.Now()
	m.depth = depth
	m.targets = targets
	m.searches.Store(0)
	m.matrices.Store(0)
	m.solves.Store(0)
	m.prunedRows.Store(0)
	m.prunedCols.Store(0)
	m.memoHits.Store(0)
}

func (m *collector) AddSearch() {
	m.searches.Add(1)
}

func (m *collector) AddMatrix() {
	m.matrices.Add(1)
}

func (m *collector) AddSolve() {
	m.solves.Add(1)
}

func (m *collector) AddPruned(rows, cols int) {
	m.prunedRows.Add(int32(rows))
	m.prunedCols.Add(int32(cols))
}

func (m *collector) AddMemoHit() {
	m.memoHits.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Targets:    m.targets,
		Duration:   time.Since(m.startTime),
		Searches:   int(m.searches.Load()),
		Matrices:   int(m.matrices.Load()),
		Solves:     int(m.solves.Load()),
		PrunedRows: int(m.prunedRows.Load()),
		PrunedCols: int(m.prunedCols.Load()),
		MemoHits:   int(m.memoHits.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, targets int)  {}
func (m *dummyCollector) AddSearch()                {}
func (m *dummyCollector) AddMatrix()                {}
func (m *dummyCollector) AddSolve()                 {}
func (m *dummyCollector) AddPruned(rows, cols int) {}
func (m *dummyCollector) AddMemoHit()               {}
func (m *dummyCollector) Complete() SearchMetric    { return SearchMetric{} }
