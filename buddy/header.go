package buddy

import "encoding/binary"

// blockHeader is a thin accessor over the 16 bytes at a.buf[off:off+HeaderSize].
// It has no existence of its own outside that window — the same
// encoding/binary-over-a-byte-slice idiom cznic/lldb's Filer blocks and
// deadsimpledb's freeListNode use for their on-disk headers. next/prev
// are only meaningful while magic == freeTag.
type blockHeader struct {
	a   *Arena
	off uint32
}

func (a *Arena) header(off uint32) blockHeader {
	return blockHeader{a: a, off: off}
}

func (h blockHeader) bytes() []byte {
	return h.a.buf[h.off : h.off+HeaderSize]
}

func (h blockHeader) magic() uint32 {
	return binary.LittleEndian.Uint32(h.bytes()[0:4])
}

func (h blockHeader) setMagic(m uint32) {
	binary.LittleEndian.PutUint32(h.bytes()[0:4], m)
}

func (h blockHeader) size() uint32 {
	return binary.LittleEndian.Uint32(h.bytes()[4:8])
}

func (h blockHeader) setSize(s uint32) {
	binary.LittleEndian.PutUint32(h.bytes()[4:8], s)
}

func (h blockHeader) next() uint32 {
	return binary.LittleEndian.Uint32(h.bytes()[8:12])
}

func (h blockHeader) setNext(n uint32) {
	binary.LittleEndian.PutUint32(h.bytes()[8:12], n)
}

func (h blockHeader) prev() uint32 {
	return binary.LittleEndian.Uint32(h.bytes()[12:16])
}

func (h blockHeader) setPrev(p uint32) {
	binary.LittleEndian.PutUint32(h.bytes()[12:16], p)
}

func (h blockHeader) isFree() bool {
	return h.magic() == freeTag
}

// isBuddyAligned reports whether a block of size s at offset off sits at
// a buddy-pair boundary, i.e. off mod (2s) == 0. This is the one correct
// merge predicate — naive "adjacent and same size" is not
// sufficient.
func isBuddyAligned(off, size uint32) bool {
	return off%(2*size) == 0
}

// linkAfter splices the free block at newOff into the circular free list
// immediately after afterOff.
func (a *Arena) linkAfter(afterOff, newOff uint32) {
	after := a.header(afterOff)
	next := a.header(after.next())
	fresh := a.header(newOff)

	fresh.setPrev(afterOff)
	fresh.setNext(after.next())
	next.setPrev(newOff)
	after.setNext(newOff)
}

// unlink removes the free block at off from the circular free list. It
// does not touch off's own magic/size.
func (a *Arena) unlink(off uint32) {
	h := a.header(off)
	prev := a.header(h.prev())
	next := a.header(h.next())
	prev.setNext(h.next())
	next.setPrev(h.prev())
}
