package heredity

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/carbocation/pfx"
	"github.com/cenkalti/backoff"
)

const (
	googleStoragePrefix = "gs://"
	s3Prefix            = "s3://"

	remoteOpenRetries = 3
)

// OpenSource opens a pedigree file for reading. Paths beginning with gs:// are
// read from Google Cloud Storage and paths beginning with s3:// from Amazon
// S3; anything else is a local file. Compressed files (see
// CompressionFromPath) are decompressed transparently.
func OpenSource(ctx context.Context, path string) (io.ReadCloser, error) {
	var (
		rc  io.ReadCloser
		err error
	)

	switch {
	case strings.HasPrefix(path, googleStoragePrefix):
		bucket, object, serr := splitBucketPath(path, googleStoragePrefix)
		if serr != nil {
			return nil, serr
		}
		rc, err = withRetry(ctx, func() (io.ReadCloser, error) { return openGoogleStorage(ctx, bucket, object) })
	case strings.HasPrefix(path, s3Prefix):
		bucket, key, serr := splitBucketPath(path, s3Prefix)
		if serr != nil {
			return nil, serr
		}
		rc, err = withRetry(ctx, func() (io.ReadCloser, error) { return openS3(ctx, bucket, key) })
	default:
		rc, err = os.Open(path)
	}
	if err != nil {
		return nil, pfx.Err(err)
	}

	out, err := Decompress(rc, CompressionFromPath(path))
	if err != nil {
		rc.Close()
		return nil, pfx.Err(err)
	}

	return out, nil
}

func withRetry(ctx context.Context, open func() (io.ReadCloser, error)) (io.ReadCloser, error) {
	var rc io.ReadCloser
	operation := func() error {
		var err error
		rc, err = open()
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), remoteOpenRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return rc, nil
}

// splitBucketPath turns scheme://bucket/some/key into ("bucket", "some/key").
func splitBucketPath(path, prefix string) (string, string, error) {
	rest := strings.TrimPrefix(path, prefix)
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%s is not of the form %sbucket/key", path, prefix)
	}
	return bucket, key, nil
}

func openGoogleStorage(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}

	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		client.Close()
		return nil, err
	}

	// The client lives as long as the reader
	return &stackedReadCloser{ReadCloser: r, under: client}, nil
}

func openS3(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	out, err := s3.NewFromConfig(cfg).GetObject(ctx, &s3.GetObjectInput{Bucket: &bucket, Key: &key})
	if err != nil {
		return nil, err
	}

	return out.Body, nil
}
