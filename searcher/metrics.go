package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one planning call.
type SearchMetric struct {
	Depth       int
	Simulations int
	Expansions  int
	Duration    time.Duration
}

type Collector interface {
	Start(depth int)
	AddSimulation()
	AddExpansion()
	Complete() SearchMetric
}

type collector struct {
	depth       int
	startTime   time.Time
	simulations atomic.Int32
	expansions  atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	c.startTime = time.Now()
	c.depth = depth
	c.simulations.Store(0)
	c.expansions.Store(0)
}

func (c *collector) AddSimulation() {
	c.simulations.Add(1)
}

func (c *collector) AddExpansion() {
	c.expansions.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:       c.depth,
		Simulations: int(c.simulations.Load()),
		Expansions:  int(c.expansions.Load()),
		Duration:    time.Since(c.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(depth int)        {}
func (c *dummyCollector) AddSimulation()         {}
func (c *dummyCollector) AddExpansion()          {}
func (c *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
