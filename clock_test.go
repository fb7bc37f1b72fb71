package uuid

import (
	"bytes"
	"errors"
	"log/slog"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// manualClock is a wall clock that only moves when told to.
type manualClock struct {
	ms atomic.Int64
}

func newManualClock(t time.Time) *manualClock {
	c := &manualClock{}
	c.ms.Store(t.UnixMilli())
	return c
}

func (c *manualClock) Now() time.Time {
	return time.UnixMilli(c.ms.Load())
}

func (c *manualClock) Add(d time.Duration) {
	c.ms.Add(d.Milliseconds())
}

var referenceInstant = time.Date(2018, time.May, 27, 17, 43, 10, 101_000_000, time.UTC)

const referenceTicks = 137467357901010000

func TestTicksAt(t *testing.T) {
	if got := ticksAt(referenceInstant); got != referenceTicks {
		t.Errorf("ticksAt() = %d, want %d", got, referenceTicks)
	}
	gregorian := time.Date(1582, time.October, 15, 0, 0, 0, 0, time.UTC)
	if got := ticksAt(gregorian); got != 0 {
		t.Errorf("ticksAt(1582-10-15) = %d, want 0", got)
	}
	if got := ticksAt(gregorian.Add(-time.Hour)); got != 0 {
		t.Errorf("ticksAt(before epoch) = %d, want 0", got)
	}
}

func TestAllocator_SyntheticTicks(t *testing.T) {
	clock := newManualClock(referenceInstant)
	a := NewAllocator(WithClock(clock.Now), WithNode([6]byte{1, 2, 3, 4, 5, 6}))

	first := a.Timestamp()
	if first != referenceTicks {
		t.Fatalf("first Timestamp() = %d, want %d", first, referenceTicks)
	}

	prev := first
	for i := 1; i < ticksPerMilli; i++ {
		ts := a.Timestamp()
		if ts != prev+1 {
			t.Fatalf("Timestamp() #%d = %d, want %d", i, ts, prev+1)
		}
		if ts/ticksPerMilli != first/ticksPerMilli {
			t.Fatalf("synthetic tick %d left the millisecond bucket", ts)
		}
		prev = ts
	}
}

func TestAllocator_SpinsWhenMillisecondExhausted(t *testing.T) {
	clock := newManualClock(referenceInstant)
	a := NewAllocator(WithClock(clock.Now))

	for i := 0; i < ticksPerMilli; i++ {
		a.Timestamp()
	}

	got := make(chan uint64, 1)
	go func() { got <- a.Timestamp() }()

	select {
	case ts := <-got:
		t.Fatalf("Timestamp() = %d returned before the clock advanced", ts)
	case <-time.After(20 * time.Millisecond):
	}

	clock.Add(time.Millisecond)

	select {
	case ts := <-got:
		if want := uint64(referenceTicks + ticksPerMilli); ts != want {
			t.Errorf("Timestamp() after advance = %d, want %d", ts, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timestamp() did not return after the clock advanced")
	}
}

func TestAllocator_ClockRegression(t *testing.T) {
	clock := newManualClock(referenceInstant)
	a := NewAllocator(WithClock(clock.Now))

	first := a.Timestamp()
	clock.Add(-time.Second)
	second := a.Timestamp()
	if second != first+1 {
		t.Errorf("Timestamp() after regression = %d, want %d", second, first+1)
	}

	clock.Add(2 * time.Second)
	third := a.Timestamp()
	if third != ticksAt(clock.Now()) {
		t.Errorf("Timestamp() after recovery = %d, want %d", third, ticksAt(clock.Now()))
	}
}

func TestAllocator_Concurrent(t *testing.T) {
	a := NewAllocator()
	const goroutines = 8
	const perGoroutine = 2000

	results := make([][]uint64, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ticks := make([]uint64, perGoroutine)
			for j := range ticks {
				ticks[j] = a.Timestamp()
			}
			results[i] = ticks
		}(i)
	}
	wg.Wait()

	seen := make(map[uint64]bool, goroutines*perGoroutine)
	for _, ticks := range results {
		for j, ts := range ticks {
			if j > 0 && ts <= ticks[j-1] {
				t.Fatalf("ticks not strictly increasing within a goroutine: %d after %d", ts, ticks[j-1])
			}
			if seen[ts] {
				t.Fatalf("tick %d issued twice", ts)
			}
			seen[ts] = true
		}
	}
}

func TestAllocator_ClockSequenceAndNode(t *testing.T) {
	node := [6]byte{0x00, 0x1a, 0x2b, 0x3c, 0x4d, 0x5e}
	a := NewAllocator(WithNode(node))

	lsb := a.ClockSequenceAndNode()
	if lsb != a.ClockSequenceAndNode() {
		t.Error("ClockSequenceAndNode() changed between calls")
	}
	if lsb>>62 != 0b10 {
		t.Errorf("variant bits = %b, want 10", lsb>>62)
	}
	if got := lsb & 0xffffffffffff; got != 0x001a2b3c4d5e {
		t.Errorf("node bits = %#x", got)
	}
	if a.Node() != node {
		t.Errorf("Node() = %v, want %v", a.Node(), node)
	}
	if a.ClockSequence() > 0x3fff {
		t.Errorf("ClockSequence() = %#x exceeds 14 bits", a.ClockSequence())
	}
	if uint64(a.ClockSequence()) != (lsb>>48)&0x3fff {
		t.Errorf("ClockSequence() = %#x does not match %#x", a.ClockSequence(), lsb)
	}
	if a.NodeSource() != NodeConfigured {
		t.Errorf("NodeSource() = %v, want %v", a.NodeSource(), NodeConfigured)
	}
}

func TestAllocator_ClockSequenceSeededFromClock(t *testing.T) {
	clock := newManualClock(referenceInstant)
	node := [6]byte{1, 2, 3, 4, 5, 6}
	a := NewAllocator(WithClock(clock.Now), WithNode(node))
	b := NewAllocator(WithClock(clock.Now), WithNode(node))
	if a.ClockSequenceAndNode() != b.ClockSequenceAndNode() {
		t.Error("allocators seeded at the same instant disagree")
	}
}

func TestAllocator_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a := NewAllocator(WithNode([6]byte{0x02, 0, 0, 0, 0, 0x01}), WithLogger(logger))

	a.ClockSequenceAndNode()
	a.ClockSequenceAndNode()

	out := buf.String()
	if strings.Count(out, "Initialized clock sequence and node") != 1 {
		t.Errorf("expected exactly one initialization record, got %q", out)
	}
	if !strings.Contains(out, "nodeSource=configured") || !strings.Contains(out, "node=02:00:00:00:00:01") {
		t.Errorf("unexpected log output %q", out)
	}
}

func withInterfaces(t *testing.T, fn func() ([]net.Interface, error)) {
	t.Helper()
	saved := interfaces
	interfaces = fn
	t.Cleanup(func() { interfaces = saved })
}

func TestResolveNode_Hardware(t *testing.T) {
	withInterfaces(t, func() ([]net.Interface, error) {
		return []net.Interface{
			{Name: "lo", Flags: net.FlagLoopback, HardwareAddr: net.HardwareAddr{0xaa, 0, 0, 0, 0, 1}},
			{Name: "tun0", HardwareAddr: nil},
			{Name: "zero", HardwareAddr: net.HardwareAddr{0, 0, 0, 0, 0, 0}},
			{Name: "eth0", HardwareAddr: net.HardwareAddr{0x00, 0x16, 0x3e, 0x11, 0x22, 0x33}},
		}, nil
	})

	node, source := resolveNode()
	if source != NodeHardware {
		t.Fatalf("source = %v, want %v", source, NodeHardware)
	}
	if want := [6]byte{0x00, 0x16, 0x3e, 0x11, 0x22, 0x33}; node != want {
		t.Errorf("node = %v, want %v", node, want)
	}

	a := NewAllocator()
	if a.NodeSource() != NodeHardware || a.Node() != node {
		t.Errorf("allocator node = %v (%v)", a.Node(), a.NodeSource())
	}
}

func TestResolveNode_RandomFallback(t *testing.T) {
	for name, fn := range map[string]func() ([]net.Interface, error){
		"error": func() ([]net.Interface, error) { return nil, errors.New("no interfaces") },
		"none":  func() ([]net.Interface, error) { return nil, nil },
		"loopback only": func() ([]net.Interface, error) {
			return []net.Interface{{Name: "lo", Flags: net.FlagLoopback}}, nil
		},
	} {
		t.Run(name, func(t *testing.T) {
			withInterfaces(t, fn)

			node, source := resolveNode()
			if source != NodeRandom {
				t.Fatalf("source = %v, want %v", source, NodeRandom)
			}
			if node[0]&0x01 == 0 {
				t.Errorf("multicast bit not set in %v", node)
			}
			again, _ := resolveNode()
			if again != node {
				t.Errorf("random node not stable: %v then %v", node, again)
			}
		})
	}
}
