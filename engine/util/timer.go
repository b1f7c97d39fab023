package util

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type profileSection struct {
	name  string
	last  float64
	total float64
	count int64
	min   float64
	max   float64
}

func (s *profileSection) String() string {
	avg := s.total / float64(s.count)
	return fmt.Sprintf("%s last: %.3fms, avg: %.3fms, min: %.3fms, max: %.3fms (%d runs)", s.name, s.last, avg, s.min, s.max, s.count)
}

// Profiler collects per-section wall clock timings, for the simulation
// tick and the chunk mesh builds.
type Profiler struct {
	sections map[string]*profileSection
	order    []string
}

func NewProfiler() *Profiler {
	return &Profiler{
		sections: make(map[string]*profileSection),
	}
}

// Start begins timing a named section and returns the stop function.
// Usage: defer profiler.Start("tick")()
func (p *Profiler) Start(name string) func() float64 {
	section, ok := p.sections[name]
	if !ok {
		section = &profileSection{
			name: name,
			min:  math.MaxFloat64,
		}
		p.sections[name] = section
		p.order = append(p.order, name)
	}
	startedAt := time.Now()
	return func() float64 {
		elapsedMs := float64(time.Since(startedAt).Microseconds()) / 1000.0
		section.last = elapsedMs
		section.total += elapsedMs
		section.count++
		if elapsedMs < section.min {
			section.min = elapsedMs
		}
		if elapsedMs > section.max {
			section.max = elapsedMs
		}
		return elapsedMs
	}
}

func (p *Profiler) Reset() {
	p.sections = make(map[string]*profileSection)
	p.order = nil
}

func (p *Profiler) String() string {
	var sb strings.Builder
	for _, name := range p.order {
		sb.WriteString(p.sections[name].String())
		sb.WriteString("\n")
	}
	return sb.String()
}
