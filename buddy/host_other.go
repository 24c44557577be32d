//go:build !unix

package buddy

// heapHost backs the arena with a plain Go slice on platforms where an
// anonymous mapping isn't available through golang.org/x/sys/unix. Bytes
// still live outside any Go struct the GC would scan for pointers, since
// the arena only ever stores byte-offsets, never real pointers, inside
// its own buffer.
type heapHost struct{}

var defaultHost host = heapHost{}

func (heapHost) acquire(n uint32) ([]byte, error) {
	return make([]byte, n), nil
}

func (heapHost) release([]byte) error {
	return nil
}
