// Package snowflake issues 64-bit time-ordered unique IDs: a millisecond
// timestamp in the high bits, a per-generator node in the middle, and a
// sequence counter in the low bits. IDs from one process never repeat and
// never decrease. Values exceed JavaScript's safe integer range, so they
// must cross the JSON boundary as strings.
package snowflake

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	timestampBits = 41
	nodeBits      = 10
	sequenceBits  = 12

	// MaxNode is the largest node discriminator a generator accepts.
	MaxNode = (1 << nodeBits) - 1

	maxSequence = (1 << sequenceBits) - 1

	// Epoch is the generator epoch: 2024-01-01T00:00:00Z in Unix milliseconds.
	// Any timestamp after it is positive, so an issued ID can never be zero.
	Epoch int64 = 1704067200000

	// maxClockDrift bounds how far backwards the wall clock may jump before
	// Next gives up waiting and fails instead.
	maxClockDrift = 500 * time.Millisecond
)

// ErrClockMovedBack is returned when the wall clock regressed past the
// last-issued timestamp by more than the generator is willing to wait out.
var ErrClockMovedBack = errors.New("snowflake: clock moved backwards")

// Generator issues snowflake IDs. It is safe for concurrent use.
type Generator struct {
	mu       sync.Mutex
	node     int64
	lastTime int64
	sequence int64

	nowMillis func() int64
}

// New creates a Generator with the given node discriminator.
func New(node int64) (*Generator, error) {
	if node < 0 || node > MaxNode {
		return nil, fmt.Errorf("snowflake: node %d out of range [0, %d]", node, MaxNode)
	}
	return &Generator{
		node:      node,
		nowMillis: func() int64 { return time.Now().UnixMilli() },
	}, nil
}

// Next returns a new unique ID. Consecutive calls return strictly increasing
// values. If the wall clock has moved backwards it waits the drift out up to
// maxClockDrift, then fails rather than risk a duplicate.
func (g *Generator) Next() (uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.nowMillis()
	if now < g.lastTime {
		drift := time.Duration(g.lastTime-now) * time.Millisecond
		if drift > maxClockDrift {
			return 0, fmt.Errorf("%w: %v behind last issued timestamp", ErrClockMovedBack, drift)
		}
		for now < g.lastTime {
			time.Sleep(time.Millisecond)
			now = g.nowMillis()
		}
	}

	if now == g.lastTime {
		g.sequence = (g.sequence + 1) & maxSequence
		if g.sequence == 0 {
			// Sequence exhausted within this millisecond; spin to the next one.
			for now <= g.lastTime {
				now = g.nowMillis()
			}
		}
	} else {
		g.sequence = 0
	}
	g.lastTime = now

	id := uint64(now-Epoch)<<(nodeBits+sequenceBits) |
		uint64(g.node)<<sequenceBits |
		uint64(g.sequence)
	return id, nil
}

// Node extracts the node discriminator embedded in an ID.
func Node(id uint64) int64 {
	return int64(id >> sequenceBits & MaxNode)
}

// Timestamp extracts the Unix millisecond timestamp embedded in an ID.
func Timestamp(id uint64) int64 {
	return int64(id>>(nodeBits+sequenceBits)) + Epoch
}
