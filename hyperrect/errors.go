package hyperrect

import (
	"errors"
	"math"
)

// Common errors
var (
	// ErrInvalidRegion reports a caller contract violation: mismatched
	// sequence lengths, an empty axis, bounds outside the source extent,
	// or a non-positive subsampling step. Non-retryable.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrOverflow reports that an offset, stride, skip or transfer length
	// exceeded its representable range. The request is too large to
	// address or to transfer in one call; split it and retry with
	// reduced bounds.
	ErrOverflow = errors.New("region arithmetic overflow")

	// ErrAxisRange reports an axis index outside the valid range.
	ErrAxisRange = errors.New("axis out of range")

	// ErrFrozen is returned by IncreaseStride once the region has been
	// frozen and handed to a consumer.
	ErrFrozen = errors.New("region is frozen")

	// ErrDataType reports an unknown or unsupported element type.
	ErrDataType = errors.New("unsupported data type")
)

// MaxTransferLength is the largest element count accepted for a single bulk
// transfer. Addressing is 64-bit but one physical read call must stay within
// this cap; larger requests fail with ErrOverflow.
const MaxTransferLength = math.MaxInt32
