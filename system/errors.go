package system

import "errors"

// Expected business-rule failures. Handlers map these to response codes;
// anything else that comes out of an operation is a storage failure and the
// in-memory state can no longer be trusted to match disk.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrQuotaExceeded     = errors.New("ticket quota exceeded")
	ErrOutOfStock        = errors.New("not enough stock")
	ErrReviewNotFound    = errors.New("review not found")
)
