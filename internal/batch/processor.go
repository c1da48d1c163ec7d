package batch

import (
	"sync"
	"time"

	"github.com/streetaddress/internal/debug"
	"github.com/streetaddress/streetaddress"
)

// Result pairs an input address with its parsed record.
type Result struct {
	Input      string                      `json:"input"`
	Record     streetaddress.AddressRecord `json:"record"`
	Normalized string                      `json:"normalized,omitempty"`
}

// Stats summarises a batch run.
type Stats struct {
	Total          int
	WithHouse      int
	WithStreetType int
	WithSuite      int
	WithOther      int
	ProcessingTime time.Duration
}

// Processor parses many addresses on a pool of workers.
type Processor struct {
	Parser    *streetaddress.Parser
	Formatter *streetaddress.Formatter
	Workers   int
	SkipHouse bool
	Normalize bool
}

// NewProcessor creates a processor using the shared tables.
func NewProcessor(workers int) *Processor {
	return &Processor{
		Parser:    streetaddress.NewParser(),
		Formatter: streetaddress.NewFormatter(),
		Workers:   workers,
	}
}

type job struct {
	index   int
	address string
}

// Run parses every address and returns results in input order.
func (p *Processor) Run(localDebug bool, addresses []string) ([]Result, *Stats) {
	debug.DebugHeader(localDebug)
	defer debug.DebugFooter(localDebug)

	startTime := time.Now()
	stats := &Stats{Total: len(addresses)}
	results := make([]Result, len(addresses))

	workers := p.Workers
	if workers < 1 {
		workers = 1
	}
	debug.DebugOutput(localDebug, "Processing %d addresses with %d workers", len(addresses), workers)

	jobs := make(chan job, workers*2)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				// each index is written by exactly one worker
				results[j.index] = p.process(j.address)
			}
		}()
	}

	for i, address := range addresses {
		jobs <- job{index: i, address: address}
	}
	close(jobs)
	wg.Wait()

	for _, res := range results {
		stats.add(res.Record)
	}
	stats.ProcessingTime = time.Since(startTime)

	debug.DebugOutput(localDebug, "Batch processing complete:")
	debug.DebugOutput(localDebug, "  Total addresses: %d", stats.Total)
	debug.DebugOutput(localDebug, "  With house number: %d", stats.WithHouse)
	debug.DebugOutput(localDebug, "  With street type: %d", stats.WithStreetType)
	debug.DebugOutput(localDebug, "  With suite: %d", stats.WithSuite)
	debug.DebugOutput(localDebug, "  With leftover text: %d", stats.WithOther)
	debug.DebugOutput(localDebug, "  Processing time: %v", stats.ProcessingTime)

	return results, stats
}

func (p *Processor) process(address string) Result {
	res := Result{
		Input:  address,
		Record: p.Parser.Parse(address, p.SkipHouse),
	}
	if p.Normalize {
		res.Normalized = p.Formatter.Normalize(address)
	}
	return res
}

func (s *Stats) add(rec streetaddress.AddressRecord) {
	if rec.Has(streetaddress.FieldHouse) {
		s.WithHouse++
	}
	if rec.Has(streetaddress.FieldStreetType) {
		s.WithStreetType++
	}
	if rec.Has(streetaddress.FieldSuiteNum) || rec.Has(streetaddress.FieldSuiteType) {
		s.WithSuite++
	}
	if rec.Has(streetaddress.FieldOther) {
		s.WithOther++
	}
}
