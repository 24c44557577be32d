//go:build unix

package buddy

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// mmapHost obtains the arena buffer as an anonymous, private memory
// mapping, the way tamago's dma package and usbarmory's DMA allocator
// carve a page-backed region out of the OS rather than the Go heap. This
// keeps the arena's bytes outside the garbage collector's reach, which
// matters for an allocator that stores live pointers-as-offsets inside
// its own buffer.
type mmapHost struct{}

var defaultHost host = mmapHost{}

func (mmapHost) acquire(n uint32) ([]byte, error) {
	buf, err := unix.Mmap(-1, 0, int(n), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w", n, err)
	}
	return buf, nil
}

func (mmapHost) release(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return unix.Munmap(buf)
}
