// Package hyperrect addresses and reads strided hyper-rectangular
// sub-regions of n-dimensional arrays stored linearly.
//
// The source array is assumed to live in a sequence (a raw file, a byte
// slice, anything addressable through io.ReaderAt) where the index at
// axis 0 varies fastest, followed by axis 1, and so on. Given the full
// shape and a per-axis (lower, upper, step) request, [NewRegion] computes
// an immutable descriptor holding:
//
//   - the linear offset of the first element to read,
//   - the element count produced along each axis after subsampling,
//   - the per-axis skip distances a sequential reader applies to jump
//     over data outside the request or discarded by subsampling.
//
// All of the geometry is exact, overflow-checked int64 arithmetic; a
// request too large to address fails with [ErrOverflow] rather than
// wrapping.
//
// # Reading
//
// [Reader] consumes a descriptor and drives the transfer loop. Leading
// axes that need no skip are collapsed into single bulk reads (the key
// optimization for gridded data); the remaining axes are swept with
// odometer counting:
//
//	region, err := hyperrect.NewRegion(
//		[]int64{360, 180, 12},  // shape, axis 0 fastest
//		[]int64{10, 20, 0},     // lower bounds
//		[]int64{110, 120, 12},  // upper bounds, exclusive
//		[]int{2, 2, 1},         // subsampling
//	)
//	if err != nil { ... }
//	r, err := hyperrect.NewReader(f, region, hyperrect.Float32)
//	values, err := r.ReadFloat32s()
//
// # Stride adjustment
//
// Some storage layouts reserve more space per index step than the logical
// shape implies, typically a growable record dimension whose records are
// padded. [Region.IncreaseStride] widens the corresponding skip before the
// first read. The lifecycle is build, optionally adjust, then freeze:
// once a Reader attaches the descriptor is pinned and can be shared
// read-only across goroutines.
//
// The package performs no decompression, no caching and owns no wire
// format; it is pure addressing plus the bulk transfer loop.
package hyperrect
