package uuid

import (
	"io"
	"log/slog"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// Milliseconds from 1582-10-15T00:00:00Z (Gregorian reform) to the Unix epoch.
	gregorianOffsetMillis = 12219292800000

	// Number of 100ns ticks in one millisecond.
	ticksPerMilli = 10000

	// Mask for the 60-bit v1/v6 timestamp.
	timestampMask = 0x0fffffffffffffff
)

// Allocator hands out the time and node fields shared by version 1 and
// version 6 UUIDs.
//
// It keeps a single "last issued" 60-bit tick counter that only moves
// forward. When the wall clock has not advanced past the last tick the
// allocator issues synthetic ticks inside the same millisecond, up to 10,000
// of them; after that callers spin until the next millisecond. Throughput is
// therefore capped at ten million timestamps per second. The counter is
// updated with compare-and-swap only, so any number of goroutines may call
// Timestamp concurrently.
//
// The clock sequence and node are computed once, on first use, and reused for
// the allocator's lifetime.
type Allocator struct {
	now    func() time.Time
	logger *slog.Logger
	node   *[6]byte

	last atomic.Uint64

	once   sync.Once
	lsb    uint64
	source NodeSource
}

// AllocatorOption configures an Allocator.
type AllocatorOption func(*Allocator)

// WithClock sets the wall clock read by the allocator. Defaults to time.Now.
func WithClock(now func() time.Time) AllocatorOption {
	return func(a *Allocator) {
		if now != nil {
			a.now = now
		}
	}
}

// WithNode pins the 48-bit node instead of looking up a hardware address.
func WithNode(node [6]byte) AllocatorOption {
	return func(a *Allocator) {
		a.node = &node
	}
}

// WithLogger sets the logger used to report how the node was derived.
// Nothing is logged per UUID. Defaults to a logger that discards output.
func WithLogger(logger *slog.Logger) AllocatorOption {
	return func(a *Allocator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAllocator creates an Allocator. Generators that share an allocator never
// observe the same tick; the package-level generators all share one.
func NewAllocator(opts ...AllocatorOption) *Allocator {
	a := &Allocator{
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// defaultAllocator is shared by every Generator created without one.
var defaultAllocator = NewAllocator()

// DefaultAllocator returns the process-wide allocator used by the
// package-level v1 and v6 functions.
func DefaultAllocator() *Allocator {
	return defaultAllocator
}

// Timestamp returns the next 60-bit count of 100ns intervals since
// 1582-10-15T00:00:00Z. Successive results are strictly increasing across
// all goroutines sharing the allocator.
func (a *Allocator) Timestamp() uint64 {
	for {
		now := ticksAt(a.now())
		last := a.last.Load()
		if now > last && a.last.CompareAndSwap(last, now) {
			return now
		}

		// The clock has not moved past last (or another goroutine won the
		// race). Issue last+1 if it stays within last's millisecond.
		candidate := last + 1
		if candidate/ticksPerMilli != last/ticksPerMilli {
			// 10,000 ticks already issued in this millisecond.
			runtime.Gosched()
			continue
		}
		if a.last.CompareAndSwap(last, candidate) {
			return candidate
		}
	}
}

// ticksAt converts a wall-clock instant to 100ns ticks since the Gregorian
// epoch, at millisecond resolution. Instants before the epoch map to 0.
func ticksAt(t time.Time) uint64 {
	ms := t.UnixMilli() + gregorianOffsetMillis
	if ms < 0 {
		return 0
	}
	return (uint64(ms) * ticksPerMilli) & timestampMask
}

// ClockSequenceAndNode returns the least significant 64 bits shared by v1 and
// v6 UUIDs: variant 10, a 14-bit clock sequence and the 48-bit node.
func (a *Allocator) ClockSequenceAndNode() uint64 {
	a.once.Do(a.init)
	return a.lsb
}

// ClockSequence returns the 14-bit clock sequence.
func (a *Allocator) ClockSequence() uint16 {
	return uint16(a.ClockSequenceAndNode()>>48) & 0x3fff
}

// Node returns the 48-bit node identifier in transmission order.
func (a *Allocator) Node() [6]byte {
	lsb := a.ClockSequenceAndNode()
	var node [6]byte
	for i := 0; i < 6; i++ {
		node[i] = byte(lsb >> (40 - 8*i))
	}
	return node
}

// NodeSource reports where the node identifier came from.
func (a *Allocator) NodeSource() NodeSource {
	a.once.Do(a.init)
	return a.source
}

func (a *Allocator) init() {
	seeded := a.now()

	// RFC 4122 section 4.1.5: with no stable storage the clock sequence is
	// set to a pseudo-random value.
	clock := rand.New(rand.NewSource(seeded.UnixMilli())).Uint64()

	var node [6]byte
	switch {
	case a.node != nil:
		node, a.source = *a.node, NodeConfigured
	default:
		node, a.source = resolveNode()
	}

	lsb := clock << 48
	lsb &= 0x3fffffffffffffff // clear variant bits
	lsb |= 0x8000000000000000 // variant 10
	for i := 0; i < 6; i++ {
		lsb |= uint64(node[i]) << (40 - 8*i)
	}
	a.lsb = lsb

	a.logger.Debug("Initialized clock sequence and node",
		"node", formatNode(node),
		"nodeSource", a.source.String(),
		"clockSequence", uint16(lsb>>48)&0x3fff,
	)
}
