package game

import (
	"runtime"
	"sync"

	"github.com/pthm-cable/forage/components"
)

// parallelThreshold is the minimum animal count to use parallel processing.
// Below this, single-threaded is faster due to goroutine overhead.
const parallelThreshold = 64

// intent is one animal's brain output, applied after the parallel phase.
type intent struct {
	speed    float32
	rotation components.Rotation
	err      error
}

// workChunk represents a range of animals for a worker to process.
type workChunk struct {
	start, end int
}

// parallelState holds the worker pool for the brains phase.
type parallelState struct {
	intents    []intent
	numWorkers int

	workChan chan workChunk // sends work to workers
	doneChan chan struct{}  // workers signal completion
	stopChan chan struct{}  // signals workers to exit
	wg       sync.WaitGroup // tracks active workers
	running  bool
}

// newParallelState sizes the pool. workers <= 0 means GOMAXPROCS.
func newParallelState(workers int) *parallelState {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &parallelState{numWorkers: workers}
}

func (p *parallelState) startWorkers(s *Simulation) {
	if p.running {
		return
	}

	p.workChan = make(chan workChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for range p.numWorkers {
		p.wg.Add(1)
		go p.worker(s)
	}
}

func (p *parallelState) stopWorkers() {
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

func (p *parallelState) worker(s *Simulation) {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			s.computeChunk(chunk.start, chunk.end)
			p.doneChan <- struct{}{}
		}
	}
}

// computeParallel splits n animals across the pool and waits for all
// chunks.
func (s *Simulation) computeParallel(n int) {
	p := s.parallel
	p.startWorkers(s)

	chunkSize := (n + p.numWorkers - 1) / p.numWorkers
	dispatched := 0
	for start := 0; start < n; start += chunkSize {
		p.workChan <- workChunk{start: start, end: min(start+chunkSize, n)}
		dispatched++
	}
	for range dispatched {
		<-p.doneChan
	}
}

// computeChunk runs sensors and brains for animals [i0, i1). It reads the
// world and writes only its own intents.
func (s *Simulation) computeChunk(i0, i1 int) {
	for i := i0; i < i1; i++ {
		animal := &s.world.animals[i]
		in := &s.parallel.intents[i]
		in.speed, in.rotation, in.err = s.think(animal)
	}
}

// Close stops the worker pool if it was started.
func (s *Simulation) Close() {
	s.parallel.stopWorkers()
}
