package buddy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockInfo struct {
	Off, Size uint64
	Free      bool
}

func walk(t *testing.T, a *Arena) []blockInfo {
	t.Helper()
	var blocks []blockInfo
	err := a.Enumerate(func(off, size uint64, free bool) {
		blocks = append(blocks, blockInfo{Off: off, Size: size, Free: free})
	})
	require.NoError(t, err)
	return blocks
}

// checkInvariants asserts every structural invariant of a buddy arena
// holds for the current state of a.
func checkInvariants(t *testing.T, a *Arena) {
	t.Helper()
	blocks := walk(t, a)

	var total uint64
	for _, b := range blocks {
		total += b.Size
		assert.True(t, isPowerOfTwo(uint32(b.Size)), "block at %d has non-power-of-two size %d", b.Off, b.Size)
		assert.GreaterOrEqual(t, b.Size, uint64(HeaderSize), "block at %d smaller than header", b.Off)
		assert.LessOrEqual(t, b.Size, uint64(a.size), "block at %d larger than arena", b.Off)
		assert.Zero(t, b.Off%b.Size, "block at %d not aligned to its own size %d", b.Off, b.Size)
	}
	assert.EqualValues(t, a.size, total, "blocks do not partition the arena")

	// Maximally merged: no two adjacent free blocks are same-size buddies.
	for i := 0; i+1 < len(blocks); i++ {
		a1, a2 := blocks[i], blocks[i+1]
		if a1.Free && a2.Free && a1.Size == a2.Size {
			aligned := a1.Off%(2*a1.Size) == 0
			assert.False(t, aligned, "unmerged buddy pair at offsets %d/%d size %d", a1.Off, a2.Off, a1.Size)
		}
	}

	var freeOffsets []uint64
	for _, b := range blocks {
		if b.Free {
			freeOffsets = append(freeOffsets, b.Off)
		}
	}
	if len(freeOffsets) == 0 {
		return
	}

	// Anchor validity.
	require.True(t, a.header(a.free).isFree(), "F=%d does not address a free block", a.free)

	// Free-list integrity: a.free's circular doubly-linked list covers
	// exactly the free blocks, and the traversal is sorted by address
	// except for at most one wraparound point.
	var order []uint64
	seen := map[uint32]bool{}
	cur := a.free
	for {
		h := a.header(cur)
		require.True(t, h.isFree(), "free-list node %d is not tagged free", cur)
		require.False(t, seen[cur], "free-list node %d visited twice", cur)
		seen[cur] = true
		order = append(order, uint64(cur))

		require.True(t, a.header(h.prev()).isFree(), "free-list node %d's prev %d is not free", cur, h.prev())
		require.True(t, a.header(h.next()).isFree(), "free-list node %d's next %d is not free", cur, h.next())

		nxt := h.next()
		if nxt == a.free {
			break
		}
		cur = nxt
	}

	assert.ElementsMatch(t, freeOffsets, order, "free list does not cover exactly the free blocks")

	wraps := 0
	for i := range order {
		next := order[(i+1)%len(order)]
		if next < order[i] {
			wraps++
		}
	}
	assert.LessOrEqual(t, wraps, 1, "free list is not in ascending address order: %v", order)
}
