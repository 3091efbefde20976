package domain

import "errors"

// ErrDuplicateKey is returned by repositories when an insert violates a
// unique constraint (email, national ID or tax ID).
var ErrDuplicateKey = errors.New("duplicate unique key")
