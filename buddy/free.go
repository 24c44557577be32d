package buddy

import "unsafe"

// Free returns a block previously handed out by Alloc to the arena. p
// must be exactly the slice Alloc returned and not yet freed; any other
// value is an invalid free and fatal. Free splices the block back into
// the free list in address order and then runs the coalescing pass
// before returning.
func (a *Arena) Free(p []byte) error {
	if !a.inited {
		return ErrArenaNotInit
	}

	off := a.offsetOf(p)
	h := a.header(off)
	if h.magic() != allocTag {
		Fatal("Attempt to free non-allocated memory")
		return nil
	}

	nxt, wrapped := a.nextFreeBlock(off)
	if wrapped {
		// No free block exists anywhere: the arena was entirely
		// allocated. This block becomes the sole entry in the free list.
		h.setMagic(freeTag)
		h.setNext(off)
		h.setPrev(off)
		a.free = off
	} else {
		prv := a.header(nxt).prev()
		h.setMagic(freeTag)
		h.setNext(nxt)
		h.setPrev(prv)
		a.header(prv).setNext(off)
		a.header(nxt).setPrev(off)
	}

	Debug("Free: offset %d (block size %d) returned to free list", off, h.size())
	a.coalesce()
	return nil
}

// offsetOf derives a block's header offset from a caller pointer:
// off = p - HeaderSize, expressed in bytes relative to the arena base.
func (a *Arena) offsetOf(p []byte) uint32 {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	return uint32(ptr-base) - HeaderSize
}

// nextFreeBlock scans forward through block headers starting just past
// off, advancing by each block's size and wrapping around the arena once,
// looking for the first block tagged free. wrapped is true if the scan
// returned to off without finding one, meaning no free block exists
// anywhere in the arena.
func (a *Arena) nextFreeBlock(off uint32) (nxt uint32, wrapped bool) {
	cur := off + a.header(off).size()
	if cur >= a.size {
		cur = 0
	}
	for cur != off {
		if a.header(cur).isFree() {
			return cur, false
		}
		cur += a.header(cur).size()
		if cur >= a.size {
			cur = 0
		}
	}
	return 0, true
}
