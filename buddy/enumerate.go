package buddy

// Enumerate walks the arena by header offsets and reports each block's
// offset, size and free/allocated state to visit, in ascending-offset
// order. It is strictly read-only and never mutates a header; this is
// the surface an external 2-D viewer or stats dump would consume (both
// are deliberately out of scope for this package).
func (a *Arena) Enumerate(visit func(off, size uint64, free bool)) error {
	if !a.inited {
		return ErrArenaNotInit
	}

	p := uint32(0)
	for p < a.size {
		h := a.header(p)
		s := h.size()
		visit(uint64(p), uint64(s), h.isFree())
		p += s
	}
	return nil
}
