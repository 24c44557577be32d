package buddy

import "errors"

// Error definitions. Only one recoverable condition exists at the package
// boundary beyond the "returns nil" convention of Alloc: calling an
// operation on an Arena that has not been Init'd (or has since been
// End'd). Corruption and invalid-free conditions are not returned as
// errors — they are fatal and abort the process via Fatal.
var (
	// ErrArenaNotInit is returned by Alloc, Free and Enumerate when the
	// Arena has not been successfully Init'd, or has already been End'd.
	ErrArenaNotInit = errors.New("buddy: arena not initialized")
)
