package hyperrect

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/depshield-user-testing/sis/internal/numerics"
)

// Region describes a sub-area in an n-dimensional hyper-rectangle,
// optionally with subsampling. The source array is assumed to be stored
// linearly with the index at axis 0 varying fastest, followed by axis 1,
// and so on.
//
// A Region is built once per sub-region request, optionally widened with
// [Region.IncreaseStride], then frozen and shared read-only by the reader
// that drives the transfer loop. It performs no I/O itself.
type Region struct {
	// targetSize is the element count kept along each axis after
	// subsampling. Its length is the hyper-rectangle dimension.
	targetSize []int

	// startAt is the linear address of the first element to read.
	// Zero when every lower bound is zero.
	startAt int64

	// skips holds the number of elements to advance over but not read:
	// skips[0] after each single value along a line, skips[1] after the
	// last value of a line, skips[2] after the last value of a plane,
	// and so on. Its length is the dimension plus one; the last entry is
	// the trailing gap for the whole hyper-rectangle.
	skips []int64

	// frozen blocks further stride adjustments once a consumer has
	// attached.
	frozen bool
}

// NewRegion creates the addressing descriptor for a sub-region request.
//
// All four sequences describe the same axes and must share one length:
// size[i] is the source extent of axis i, [lower[i], upper[i]) the requested
// index range, and step[i] >= 1 the subsampling along that axis. Axis 0 is
// the fastest-varying axis of the linearization.
//
// The request is validated up front and every intermediate computation is
// overflow-checked: either a fully valid descriptor is produced, or none.
func NewRegion(size, lower, upper []int64, step []int) (*Region, error) {
	dimension := len(size)
	if dimension == 0 {
		return nil, fmt.Errorf("%w: empty shape", ErrInvalidRegion)
	}
	if len(lower) != dimension || len(upper) != dimension || len(step) != dimension {
		return nil, fmt.Errorf("%w: got %d sizes, %d lower bounds, %d upper bounds, %d steps",
			ErrInvalidRegion, dimension, len(lower), len(upper), len(step))
	}
	for i := 0; i < dimension; i++ {
		switch {
		case size[i] <= 0:
			return nil, fmt.Errorf("%w: axis %d has extent %d", ErrInvalidRegion, i, size[i])
		case lower[i] < 0:
			return nil, fmt.Errorf("%w: axis %d has lower bound %d", ErrInvalidRegion, i, lower[i])
		case lower[i] >= upper[i]:
			return nil, fmt.Errorf("%w: axis %d has empty range [%d, %d)", ErrInvalidRegion, i, lower[i], upper[i])
		case upper[i] > size[i]:
			return nil, fmt.Errorf("%w: axis %d upper bound %d exceeds extent %d", ErrInvalidRegion, i, upper[i], size[i])
		case step[i] < 1:
			return nil, fmt.Errorf("%w: axis %d has step %d", ErrInvalidRegion, i, step[i])
		}
	}

	r := &Region{
		targetSize: make([]int, dimension),
		skips:      make([]int64, dimension+1),
	}

	// Process axes from fastest to slowest, maintaining the running
	// stride (elements per unit increment of the current axis) and the
	// accumulated tail skip carried to the next outer axis.
	var position int64
	var tailSkip int64
	stride := int64(1)
	for i := 0; i < dimension; i++ {
		count := numerics.CeilDiv(upper[i]-lower[i], int64(step[i]))
		if !numerics.FitsInt32(count) {
			return nil, fmt.Errorf("axis %d: %d elements: %w", i, count, ErrOverflow)
		}
		r.targetSize[i] = int(count)

		// Span of source indices covered by the kept samples.
		covered := (count-1)*int64(step[i]) + 1

		var ok bool
		if position, ok = addMul(position, stride, lower[i]); !ok {
			return nil, fmt.Errorf("axis %d: start offset: %w", i, ErrOverflow)
		}
		if tailSkip, ok = addMul(tailSkip, stride, size[i]-covered); !ok {
			return nil, fmt.Errorf("axis %d: tail skip: %w", i, ErrOverflow)
		}
		// skips[i] already carries the previous axis's tail skip.
		if r.skips[i], ok = addMul(r.skips[i], stride, int64(step[i]-1)); !ok {
			return nil, fmt.Errorf("axis %d: subsampling skip: %w", i, ErrOverflow)
		}
		if stride, ok = numerics.Mul(stride, size[i]); !ok {
			return nil, fmt.Errorf("axis %d: stride: %w", i, ErrOverflow)
		}
		r.skips[i+1] = tailSkip
	}
	r.startAt = position
	return r, nil
}

// addMul returns acc + a*b with overflow checking.
func addMul(acc, a, b int64) (int64, bool) {
	product, ok := numerics.Mul(a, b)
	if !ok {
		return 0, false
	}
	return numerics.Add(acc, product)
}

// IncreaseStride widens the gap applied after each block of data in the
// given axis by extra elements. The skips are computed automatically at
// construction time; this hook covers the rare storage layouts where an
// axis reserves more space per step than its logical extent implies, such
// as a growable record dimension.
//
// Example: in a 10×10×10 cube the distance between indices (0,0,1) and
// (0,0,2) is 100 elements. IncreaseStride(1, 4) raises the gap applied
// after each completed plane so a reader still transfers the same 100
// values but skips 4 more when moving between planes.
//
// The adjustment must happen before the region is frozen.
func (r *Region) IncreaseStride(axis int, extra int64) error {
	if r.frozen {
		return ErrFrozen
	}
	if axis < 0 || axis >= len(r.skips) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrAxisRange, axis, len(r.skips)-1)
	}
	if extra < 0 {
		return fmt.Errorf("%w: negative stride adjustment %d", ErrInvalidRegion, extra)
	}
	widened, ok := numerics.Add(r.skips[axis], extra)
	if !ok {
		return fmt.Errorf("axis %d: stride adjustment: %w", axis, ErrOverflow)
	}
	r.skips[axis] = widened
	return nil
}

// Freeze pins the region. Further IncreaseStride calls fail with ErrFrozen
// and the value may be shared read-only across concurrent readers. Freezing
// an already frozen region is a no-op; NewReader freezes implicitly.
func (r *Region) Freeze() {
	r.frozen = true
}

// Dimension returns the number of axes.
func (r *Region) Dimension() int {
	return len(r.targetSize)
}

// TargetSize returns the element count kept along the given axis after
// subsampling.
func (r *Region) TargetSize(axis int) int {
	return r.targetSize[axis]
}

// StartOffset returns the linear element address of the first value to read.
func (r *Region) StartOffset() int64 {
	return r.startAt
}

// Skip returns the element gap applied when the given axis advances.
// Valid axes run from 0 to Dimension inclusive; the last entry is the
// trailing gap for the whole hyper-rectangle.
func (r *Region) Skip(axis int) int64 {
	return r.skips[axis]
}

// ContiguousPrefix returns the number of leading axes whose data are
// contiguous, as the index of the first non-zero skip. Those axes can be
// collapsed into a single bulk transfer of TargetLength(ContiguousPrefix())
// elements. The result equals Dimension when the whole request is one
// unbroken linear run.
func (r *Region) ContiguousPrefix() int {
	dimension := len(r.skips) - 1
	i := 0
	for i < dimension && r.skips[i] == 0 {
		i++
	}
	return i
}

// TargetLength returns the total number of elements produced by the first
// dim axes, i.e. the product of their target sizes. It fails with
// ErrOverflow when the product exceeds MaxTransferLength, the cap on a
// single bulk transfer.
func (r *Region) TargetLength(dim int) (int, error) {
	if dim < 0 || dim > len(r.targetSize) {
		return 0, fmt.Errorf("%w: %d not in [0, %d]", ErrAxisRange, dim, len(r.targetSize))
	}
	length := int64(1)
	for i := 0; i < dim; i++ {
		product, ok := numerics.Mul(length, int64(r.targetSize[i]))
		if !ok || product > MaxTransferLength {
			return 0, fmt.Errorf("transfer of %d axes: %w", dim, ErrOverflow)
		}
		length = product
	}
	return int(length), nil
}

// String returns a tabular representation of the per-axis target sizes and
// skips for debugging. It is deterministic and has no side effects.
func (r *Region) String() string {
	var sb strings.Builder
	table := tabwriter.NewWriter(&sb, 0, 0, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintln(table, "size\tskip\t")
	for i, n := range r.targetSize {
		fmt.Fprintf(table, "%d\t%d\t\n", n, r.skips[i])
	}
	table.Flush()
	return sb.String()
}
