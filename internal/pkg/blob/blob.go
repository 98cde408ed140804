// Package blob provides the single-object backing stores used by the content,
// lead, and mailbox stores: a local file replaced via temp-write-then-rename,
// and a remote S3 object where a single PUT is the atomicity primitive.
package blob

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Load when the backing object has never been
// written. Callers treat it as "empty document", not a failure.
var ErrNotExist = errors.New("blob: object does not exist")

// Store is a pair of primitives over one opaque object. Save must never
// expose a torn write to a concurrent Load.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}
