package buddy

// coalesce restores the canonical buddy layout after a Free: it merges
// every eligible buddy pair, recursively, until none remain, then
// reseeds the free-list anchor.
//
// Rather than a pivot-arithmetic walk from the freed block outward, this
// performs a straightforward physical walk of the arena from offset 0.
// Because the free list is always maintained in address order, a block's immediate
// physical successor is exactly the next candidate to check — there is
// no need to distinguish "follow the free list" from "advance by size".
// Each successful merge restarts the walk from 0, since the newly
// enlarged block may itself have a buddy.
func (a *Arena) coalesce() {
	for a.coalescePass() {
	}
	a.reseedFree()
}

// coalescePass performs one left-to-right walk of the arena, merging the
// first eligible buddy pair it finds and returning true so the caller
// restarts the walk from offset 0. It returns false once a full walk
// completes with no merge performed.
func (a *Arena) coalescePass() bool {
	p := uint32(0)
	for p < a.size {
		h := a.header(p)
		s := h.size()
		q := p + s
		if q >= a.size {
			return false
		}

		if h.isFree() {
			nh := a.header(q)
			if nh.isFree() && nh.size() == s && isBuddyAligned(p, s) {
				a.unlink(q)
				h.setSize(2 * s)
				return true
			}
		}

		p = q
	}
	return false
}

// reseedFree sets F to the offset of the last free block in address
// order. If no free block exists, F is left unchanged — Alloc and Free
// both tolerate F addressing a non-free block in that case, and the
// next Free call re-seeds it.
func (a *Arena) reseedFree() {
	p := uint32(0)
	last := a.free
	found := false

	for p < a.size {
		h := a.header(p)
		if h.isFree() {
			last = p
			found = true
		}
		p += h.size()
	}

	if found {
		a.free = last
	}
}
