// Package storage implements the media bucket on top of gocloud blob, so
// the same code serves a local directory in development and GCS or S3 in
// production depending on the configured bucket URL.
package storage

import (
	"context"
	"log/slog"

	"turnos/config"
	"turnos/internal/domain/service"
	"turnos/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// fallbackBucketURL keeps the service functional without storage
// configuration. Uploads land in process memory and vanish on restart,
// which is acceptable for development only.
const fallbackBucketURL = "mem://"

type blobStorage struct {
	bucket *blob.Bucket
}

// Params holds dependencies for the media storage, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns it as the domain interface.
func New(params Params) (service.MediaStorage, error) {
	bucketURL := fallbackBucketURL
	if params.Config.Storage != nil && params.Config.Storage.BucketURL != "" {
		bucketURL = params.Config.Storage.BucketURL
	} else {
		params.Logger.Info("Storage not configured, using in-memory bucket")
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket: bucket,
	}, nil
}

// Upload writes data under key, replacing any previous object.
func (s *blobStorage) Upload(ctx context.Context, key, contentType string, data []byte) error {
	opts := &blob.WriterOptions{
		ContentType: contentType,
	}

	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return errors.Wrapf(err, "failed to upload object %s", key)
	}

	return nil
}

// Download returns the object bytes and stored content type.
func (s *blobStorage) Download(ctx context.Context, key string) ([]byte, string, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrObjectNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to download object %s", key)
	}

	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to read attributes of object %s", key)
	}

	return data, attrs.ContentType, nil
}

// Delete removes the object. A missing key is not an error: the goal state
// is already reached.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}
