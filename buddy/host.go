package buddy

// host abstracts the source of the arena's backing byte buffer: Init
// obtains a byte buffer of exactly n bytes from the host, and End
// releases it back. acquire must return a slice of exactly len(n) bytes
// or a non-nil error; release must accept exactly what acquire returned.
type host interface {
	acquire(n uint32) ([]byte, error)
	release(buf []byte) error
}
