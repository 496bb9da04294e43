package hyperrect

import (
	encbin "encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/depshield-user-testing/sis/internal/binary"
	"github.com/depshield-user-testing/sis/internal/numerics"
)

// Reader transfers a hyper-rectangular sub-region out of linear element
// storage, driven by a frozen Region. The leading contiguous axes are
// merged into single bulk reads; the remaining axes are swept with
// odometer counting, where an inner axis completing its sweep triggers
// the next outer axis's increment and its associated skip.
type Reader struct {
	data   *binary.Reader
	region *Region
	dtype  DataType
	order  encbin.ByteOrder
	origin int64
}

// Option configures a Reader.
type Option func(*Reader)

// WithByteOrder sets the byte order of the stored elements.
// The default is little-endian.
func WithByteOrder(order encbin.ByteOrder) Option {
	return func(r *Reader) {
		r.order = order
	}
}

// WithOrigin sets the byte offset of element (0, ..., 0) in the source.
// This is how callers fold in whatever header precedes the element data.
func WithOrigin(offset int64) Option {
	return func(r *Reader) {
		r.origin = offset
	}
}

// NewReader creates a reader for one sub-region request. The region is
// frozen: stride adjustments must be applied before this call.
func NewReader(src io.ReaderAt, region *Region, dtype DataType, opts ...Option) (*Reader, error) {
	if region == nil {
		return nil, fmt.Errorf("%w: nil region", ErrInvalidRegion)
	}
	if dtype.Size() == 0 {
		return nil, fmt.Errorf("%w: %v", ErrDataType, dtype)
	}
	r := &Reader{
		region: region,
		dtype:  dtype,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.data = binary.NewReader(src, r.order)
	region.Freeze()
	return r, nil
}

// Region returns the addressing descriptor driving this reader.
func (r *Reader) Region() *Region {
	return r.region
}

// DataType returns the element type being read.
func (r *Reader) DataType() DataType {
	return r.dtype
}

// Read transfers the sub-region and returns it packed in axis-0-fastest
// order, TargetLength(Dimension) * Size() bytes long.
func (r *Reader) Read() ([]byte, error) {
	region := r.region
	dimension := region.Dimension()
	prefix := region.ContiguousPrefix()

	bulk, err := region.TargetLength(prefix)
	if err != nil {
		return nil, err
	}
	total, err := region.TargetLength(dimension)
	if err != nil {
		return nil, err
	}
	elemSize := int64(r.dtype.Size())
	outBytes, ok := numerics.Mul(int64(total), elemSize)
	if !ok || outBytes > math.MaxInt32 {
		return nil, fmt.Errorf("transfer of %d elements of %v: %w", total, r.dtype, ErrOverflow)
	}

	out := make([]byte, outBytes)
	bulkBytes := bulk * int(elemSize)
	cursor := region.StartOffset()
	counters := make([]int, dimension-prefix)

	outOff := 0
	for {
		byteOff, ok := numerics.Mul(cursor, elemSize)
		if !ok {
			return nil, fmt.Errorf("element %d of %v: %w", cursor, r.dtype, ErrOverflow)
		}
		pos, ok := numerics.Add(r.origin, byteOff)
		if !ok {
			return nil, fmt.Errorf("element %d of %v: %w", cursor, r.dtype, ErrOverflow)
		}
		if err := r.data.At(pos).ReadInto(out[outOff : outOff+bulkBytes]); err != nil {
			return nil, fmt.Errorf("bulk transfer at element %d: %w", cursor, err)
		}
		outOff += bulkBytes
		cursor += int64(bulk)

		// Odometer carry: exactly one skip per transfer, the one
		// belonging to the axis where the carry chain stops.
		axis := prefix
		for {
			if axis == dimension {
				return out, nil
			}
			counters[axis-prefix]++
			if counters[axis-prefix] < region.TargetSize(axis) {
				cursor += region.Skip(axis)
				break
			}
			counters[axis-prefix] = 0
			axis++
		}
	}
}

// ReadUint8s reads the sub-region as uint8 values.
func (r *Reader) ReadUint8s() ([]uint8, error) {
	raw, err := r.rawFor(Uint8)
	if err != nil {
		return nil, err
	}
	out := make([]uint8, len(raw))
	copy(out, raw)
	return out, nil
}

// ReadInt8s reads the sub-region as int8 values.
func (r *Reader) ReadInt8s() ([]int8, error) {
	raw, err := r.rawFor(Int8)
	if err != nil {
		return nil, err
	}
	out := make([]int8, len(raw))
	for i, b := range raw {
		out[i] = int8(b)
	}
	return out, nil
}

// ReadUint16s reads the sub-region as uint16 values.
func (r *Reader) ReadUint16s() ([]uint16, error) {
	raw, err := r.rawFor(Uint16)
	if err != nil {
		return nil, err
	}
	order := r.data.ByteOrder()
	out := make([]uint16, len(raw)/2)
	for i := range out {
		out[i] = order.Uint16(raw[i*2:])
	}
	return out, nil
}

// ReadInt16s reads the sub-region as int16 values.
func (r *Reader) ReadInt16s() ([]int16, error) {
	raw, err := r.rawFor(Int16)
	if err != nil {
		return nil, err
	}
	order := r.data.ByteOrder()
	out := make([]int16, len(raw)/2)
	for i := range out {
		out[i] = int16(order.Uint16(raw[i*2:]))
	}
	return out, nil
}

// ReadUint32s reads the sub-region as uint32 values.
func (r *Reader) ReadUint32s() ([]uint32, error) {
	raw, err := r.rawFor(Uint32)
	if err != nil {
		return nil, err
	}
	order := r.data.ByteOrder()
	out := make([]uint32, len(raw)/4)
	for i := range out {
		out[i] = order.Uint32(raw[i*4:])
	}
	return out, nil
}

// ReadInt32s reads the sub-region as int32 values.
func (r *Reader) ReadInt32s() ([]int32, error) {
	raw, err := r.rawFor(Int32)
	if err != nil {
		return nil, err
	}
	order := r.data.ByteOrder()
	out := make([]int32, len(raw)/4)
	for i := range out {
		out[i] = int32(order.Uint32(raw[i*4:]))
	}
	return out, nil
}

// ReadUint64s reads the sub-region as uint64 values.
func (r *Reader) ReadUint64s() ([]uint64, error) {
	raw, err := r.rawFor(Uint64)
	if err != nil {
		return nil, err
	}
	order := r.data.ByteOrder()
	out := make([]uint64, len(raw)/8)
	for i := range out {
		out[i] = order.Uint64(raw[i*8:])
	}
	return out, nil
}

// ReadInt64s reads the sub-region as int64 values.
func (r *Reader) ReadInt64s() ([]int64, error) {
	raw, err := r.rawFor(Int64)
	if err != nil {
		return nil, err
	}
	order := r.data.ByteOrder()
	out := make([]int64, len(raw)/8)
	for i := range out {
		out[i] = int64(order.Uint64(raw[i*8:]))
	}
	return out, nil
}

// ReadFloat32s reads the sub-region as float32 values.
func (r *Reader) ReadFloat32s() ([]float32, error) {
	raw, err := r.rawFor(Float32)
	if err != nil {
		return nil, err
	}
	order := r.data.ByteOrder()
	out := make([]float32, len(raw)/4)
	for i := range out {
		out[i] = math.Float32frombits(order.Uint32(raw[i*4:]))
	}
	return out, nil
}

// ReadFloat64s reads the sub-region as float64 values.
func (r *Reader) ReadFloat64s() ([]float64, error) {
	raw, err := r.rawFor(Float64)
	if err != nil {
		return nil, err
	}
	order := r.data.ByteOrder()
	out := make([]float64, len(raw)/8)
	for i := range out {
		out[i] = math.Float64frombits(order.Uint64(raw[i*8:]))
	}
	return out, nil
}

// rawFor reads the raw sub-region after checking the reader was built for
// the requested element type.
func (r *Reader) rawFor(want DataType) ([]byte, error) {
	if r.dtype != want {
		return nil, fmt.Errorf("%w: reader holds %v, not %v", ErrDataType, r.dtype, want)
	}
	return r.Read()
}
