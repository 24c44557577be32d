package buddy

// defaultArena backs the package-level convenience functions below, for
// callers that just want a single global arena rather than managing
// their own Arena value. Programs that need more than one arena should
// construct their own with NewArena instead of using these functions.
var defaultArena = NewArena()

// Init initializes the process-global default arena. See (*Arena).Init.
func Init(size int) { defaultArena.Init(size) }

// End releases the process-global default arena. See (*Arena).End.
func End() { defaultArena.End() }

// Alloc allocates from the process-global default arena. See (*Arena).Alloc.
func Alloc(n int) ([]byte, error) { return defaultArena.Alloc(n) }

// Free returns memory to the process-global default arena. See (*Arena).Free.
func Free(p []byte) error { return defaultArena.Free(p) }

// Enumerate walks the process-global default arena. See (*Arena).Enumerate.
func Enumerate(visit func(off, size uint64, free bool)) error {
	return defaultArena.Enumerate(visit)
}
