package legendary

import (
	"errors"
	"fmt"
)

// ErrEmptyPool means no species in the catalog qualify for the legendary
// rotation.
var ErrEmptyPool = errors.New("legendary pool is empty")

// CorruptCacheError indicates the cached species entry is not a species id.
type CorruptCacheError struct {
	Value string
	Err   error
}

func (e *CorruptCacheError) Error() string {
	return fmt.Sprintf("cached legendary species %q is not a species id: %v", e.Value, e.Err)
}

func (e *CorruptCacheError) Unwrap() error { return e.Err }
