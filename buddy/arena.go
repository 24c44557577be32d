package buddy

import "github.com/cznic/mathutil"

// Init acquires the arena's backing buffer and seeds it with a single
// free block spanning the whole arena. The realized size is
// max(MinArenaSize, next_pow2(size)). Init is idempotent: once an Arena
// is initialized, further calls are silently ignored even if size
// differs.
func (a *Arena) Init(size int) {
	if a.inited {
		return
	}
	if size < 0 {
		size = 0
	}

	n := nextPow2(uint32(size))
	n = mathutil.MaxUint32(n, MinArenaSize)

	buf, err := a.host.acquire(n)
	if err != nil {
		Error("Init: failed to acquire %d bytes: %v", n, err)
		Fatal("vlad_init:insufficient memory")
		return
	}

	a.buf = buf
	a.size = n
	a.free = 0
	a.inited = true

	root := a.header(0)
	root.setMagic(freeTag)
	root.setSize(n)
	root.setNext(0)
	root.setPrev(0)

	Debug("Init: arena ready, size=%d", n)
}

// End releases the arena's backing buffer back to the host and marks the
// Arena uninitialized; Init may be called again afterwards. Calling End
// on an Arena that was never Init'd (or already End'd) is a no-op.
func (a *Arena) End() {
	if !a.inited {
		return
	}
	if err := a.host.release(a.buf); err != nil {
		Error("End: failed to release arena buffer: %v", err)
	}
	a.buf = nil
	a.size = 0
	a.free = 0
	a.inited = false
	Debug("End: arena released")
}
