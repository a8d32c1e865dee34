package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrObjectNotFound is returned by Download when no object exists under the
// requested key.
var ErrObjectNotFound = errors.New("object not found")

// MediaStorage abstracts the blob bucket holding uploaded assets such as
// business logos.
type MediaStorage interface {
	// Upload writes data under key with the given content type, replacing
	// any previous object.
	Upload(ctx context.Context, key, contentType string, data []byte) error

	// Download returns the object bytes and stored content type, or
	// ErrObjectNotFound.
	Download(ctx context.Context, key string) (data []byte, contentType string, err error)

	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
