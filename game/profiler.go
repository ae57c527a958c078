package game

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profile capture timing
const (
	profileWindow   = 5 * time.Second
	profileCooldown = 30 * time.Second
)

// Profiler records what the process was doing while the game lagged: a CPU
// profile and an execution trace over a short window, then a heap profile.
// Captures run in the background and are rate limited.
type Profiler struct {
	dir      string
	window   time.Duration
	cooldown time.Duration
	now      func() time.Time

	mu      sync.Mutex
	running bool
	last    time.Time
	done    sync.WaitGroup
}

// NewProfiler creates a profiler writing into dir, creating it if needed
func NewProfiler(dir string) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profile directory: %w", err)
	}
	return &Profiler{
		dir:      dir,
		window:   profileWindow,
		cooldown: profileCooldown,
		now:      time.Now,
	}, nil
}

// CaptureProfile starts a capture labelled with reason. It refuses while a
// capture is running or inside the cooldown after the previous one.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return fmt.Errorf("capture already running")
	}
	now := p.now()
	if !p.last.IsZero() && now.Sub(p.last) < p.cooldown {
		return fmt.Errorf("capture on cooldown (last one %v ago)", now.Sub(p.last).Round(time.Second))
	}
	p.running = true
	p.last = now

	prefix := filepath.Join(p.dir, now.Format("20060102-150405")+"-"+reason)
	p.done.Add(1)
	go p.capture(prefix)
	return nil
}

// Running reports whether a capture is in progress
func (p *Profiler) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Wait blocks until the current capture, if any, has been written
func (p *Profiler) Wait() {
	p.done.Wait()
}

func (p *Profiler) capture(prefix string) {
	defer p.done.Done()
	defer func() {
		p.mu.Lock()
		p.running = false
		p.mu.Unlock()
	}()

	cpu, err := startRecording(prefix+".cpu.prof", pprof.StartCPUProfile, pprof.StopCPUProfile)
	if err != nil {
		log.Printf("[Profiler] %v", err)
	}
	tr, err := startRecording(prefix+".trace", trace.Start, trace.Stop)
	if err != nil {
		log.Printf("[Profiler] %v", err)
	}

	time.Sleep(p.window)
	cpu.stop()
	tr.stop()

	if err := writeHeapProfile(prefix + ".heap.prof"); err != nil {
		log.Printf("[Profiler] %v", err)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("[Profiler] wrote %s.{cpu.prof,trace,heap.prof}; inspect with go tool pprof -http=:8080 %s.cpu.prof", prefix, prefix)
	log.Printf("[Profiler] heap %d KB in %d objects after %d GCs", m.HeapAlloc/1024, m.HeapObjects, m.NumGC)
}

// recording is a started runtime recorder writing to a file
type recording struct {
	file   *os.File
	finish func()
}

func startRecording(path string, start func(io.Writer) error, finish func()) (*recording, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := start(f); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("failed to start recording %s: %w", path, err)
	}
	return &recording{file: f, finish: finish}, nil
}

// stop ends the recording; a nil recording is ignored
func (r *recording) stop() {
	if r == nil {
		return
	}
	r.finish()
	r.file.Close()
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.Lookup("heap").WriteTo(f, 0); err != nil {
		return fmt.Errorf("failed to write heap profile: %w", err)
	}
	return nil
}
