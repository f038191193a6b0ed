package blob

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// Sentinel errors for storage operations.
var (
	ErrInvalidConfig = errors.New("blob: invalid configuration")
	ErrInvalidKey    = errors.New("blob: invalid key")
	ErrNotFound      = errors.New("blob: file not found")
	ErrUploadFailed  = errors.New("blob: upload failed")
	ErrDeleteFailed  = errors.New("blob: delete failed")
)

// wrapS3Error maps S3 failures onto the package sentinels. The original
// error is flattened with %v so callers match with errors.Is on sentinels
// instead of reaching for AWS types.
func wrapS3Error(err error, fallback error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}
	}
	var notFound *types.NoSuchKey
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return fmt.Errorf("%w: %v", fallback, err)
}
