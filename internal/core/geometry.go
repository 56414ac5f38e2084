package core

import "github.com/scigolib/segy/internal/utils"

// offsetFieldOffset is the trace-header byte offset of the offset field,
// fixed by the format regardless of the caller's inline/crossline choice.
const offsetFieldOffset = 37

// Sorting is the deduced ordering of traces along the slow axis.
type Sorting int

const (
	SortingUnknown Sorting = iota
	SortingInline
	SortingCrossline
)

func (s Sorting) String() string {
	switch s {
	case SortingInline:
		return "inline-sorted"
	case SortingCrossline:
		return "crossline-sorted"
	default:
		return "unknown"
	}
}

// TraceHeaderReader reads a single trace header's raw bytes by trace index,
// the only capability the geometry analyzer needs from the file. Keeping
// it this small lets tests supply an in-memory fixture instead of a real
// file handle.
type TraceHeaderReader interface {
	TraceHeader(index int64) ([]byte, error)
	TraceCount() int64
}

// Geometry is the deduced 3-D cube shape of a SEG-Y file.
type Geometry struct {
	Sorting          Sorting
	Offsets          int64
	InlineCount      int64
	CrosslineCount   int64
	InlineIndices    []int32
	CrosslineIndices []int32
	OffsetIndices    []int32

	// InlineStride and CrosslineStride are the trace-index steps between
	// consecutive traces along each axis, holding offsets fixed — the
	// values a line read/write walks by. For an inline-sorted file,
	// crossline is the fast axis (CrosslineStride == Offsets) and inline
	// the slow axis (InlineStride == CrosslineCount*Offsets); swapped for
	// a crossline-sorted file.
	InlineStride    int64
	CrosslineStride int64
}

func fields(r TraceHeaderReader, index int64, il, xl int) (ilv, xlv, offv int32, err error) {
	buf, err := r.TraceHeader(index)
	if err != nil {
		return 0, 0, 0, err
	}
	ilv, err = GetTraceField(buf, il)
	if err != nil {
		return 0, 0, 0, err
	}
	xlv, err = GetTraceField(buf, xl)
	if err != nil {
		return 0, 0, 0, err
	}
	offv, err = GetTraceField(buf, offsetFieldOffset)
	if err != nil {
		return 0, 0, 0, err
	}
	return ilv, xlv, offv, nil
}

// AnalyzeGeometry deduces sorting, offsets-per-bin, line counts, and index
// vectors from the trace headers of an opened file. il and xl are the
// trace-header field identifiers naming the inline and crossline axes.
func AnalyzeGeometry(r TraceHeaderReader, il, xl int) (*Geometry, error) {
	if traceFieldWidth(il) == widthUnrecognized || traceFieldWidth(xl) == widthUnrecognized {
		return nil, utils.NewError(utils.InvalidField, "inline/crossline field offset unrecognized")
	}

	traceCount := r.TraceCount()
	if traceCount == 0 {
		return nil, utils.NewError(utils.InvalidSorting, "file has no traces")
	}

	offsets, err := countOffsets(r, il, xl, traceCount)
	if err != nil {
		return nil, err
	}

	sorting, err := deduceSorting(r, il, xl, traceCount, offsets)
	if err != nil {
		return nil, err
	}

	orthogonalField := xl
	if sorting == SortingCrossline {
		orthogonalField = il
	}
	lineAxisCount, err := countLineAxis(r, orthogonalField, traceCount, offsets)
	if err != nil {
		return nil, err
	}

	if lineAxisCount == 0 || offsets == 0 {
		return nil, utils.NewError(utils.InvalidOffsets, "degenerate geometry")
	}
	otherAxisCount := traceCount / (lineAxisCount * offsets)

	var inlineCount, crosslineCount int64
	var inlineStride, crosslineStride int64
	switch sorting {
	case SortingInline:
		// crossline is the fast axis, inline the slow axis.
		crosslineCount = lineAxisCount
		inlineCount = otherAxisCount
		inlineStride = crosslineCount * offsets
		crosslineStride = offsets
	case SortingCrossline:
		inlineCount = lineAxisCount
		crosslineCount = otherAxisCount
		crosslineStride = inlineCount * offsets
		inlineStride = offsets
	default:
		return nil, utils.NewError(utils.InvalidSorting, "could not deduce sorting direction")
	}

	if inlineCount*crosslineCount*offsets != traceCount {
		return nil, utils.NewError(utils.TraceSizeMismatch, "geometry consistency")
	}

	inlineIndices, err := enumerate(r, il, 0, inlineStride, inlineCount)
	if err != nil {
		return nil, err
	}
	crosslineIndices, err := enumerate(r, xl, 0, crosslineStride, crosslineCount)
	if err != nil {
		return nil, err
	}
	offsetIndices, err := enumerate(r, offsetFieldOffset, 0, 1, offsets)
	if err != nil {
		return nil, err
	}

	return &Geometry{
		Sorting:          sorting,
		Offsets:          offsets,
		InlineCount:      inlineCount,
		CrosslineCount:   crosslineCount,
		InlineIndices:    inlineIndices,
		CrosslineIndices: crosslineIndices,
		OffsetIndices:    offsetIndices,
		InlineStride:     inlineStride,
		CrosslineStride:  crosslineStride,
	}, nil
}

// deduceSorting implements the §4.6 tie-break order. The source's own
// "walk until the offset field differs from off0" check is only reliable
// when the offset field varies within a bin; for single-fold (offsets=1)
// files it never fires (the field is typically constant), so the tie-break
// instead inspects the first trace of the *second* bin, at index `offsets`
// (already known from the prior offsets-per-bin count) — the same trace
// the offset-field walk is trying to locate, found by a criterion that
// also works when offsets=1.
func deduceSorting(r TraceHeaderReader, il, xl int, traceCount, offsets int64) (Sorting, error) {
	il0, xl0, _, err := fields(r, 0, il, xl)
	if err != nil {
		return SortingUnknown, err
	}

	ilLast, xlLast, _, err := fields(r, traceCount-1, il, xl)
	if err != nil {
		return SortingUnknown, err
	}

	switch {
	case il0 == ilLast:
		return SortingCrossline, nil
	case xl0 == xlLast:
		return SortingInline, nil
	}

	if offsets < traceCount {
		ilK, xlK, _, err := fields(r, offsets, il, xl)
		if err != nil {
			return SortingUnknown, err
		}
		switch {
		case il0 == ilK:
			return SortingInline, nil
		case xl0 == xlK:
			return SortingCrossline, nil
		}
	}

	return SortingUnknown, utils.NewError(utils.InvalidSorting, "could not deduce sorting direction")
}

// countOffsets walks forward from trace 0 until (il, xl) changes, counting
// the traces sharing the first bin; that count is the offsets-per-bin.
func countOffsets(r TraceHeaderReader, il, xl int, traceCount int64) (int64, error) {
	if traceCount == 1 {
		return 1, nil
	}

	il0, xl0, _, err := fields(r, 0, il, xl)
	if err != nil {
		return 0, err
	}

	count := int64(1)
	for i := int64(1); i < traceCount; i++ {
		ili, xli, _, err := fields(r, i, il, xl)
		if err != nil {
			return 0, err
		}
		if ili != il0 || xli != xl0 {
			break
		}
		count++
	}
	return count, nil
}

// countLineAxis steps by offsets from trace 0, counting cells until the
// field named by fieldOffset (the axis orthogonal to sorting) and the
// offset field both return to trace 0's values; that count is the
// orthogonal axis's cardinality.
func countLineAxis(r TraceHeaderReader, fieldOffset int, traceCount, offsets int64) (int64, error) {
	buf0, err := r.TraceHeader(0)
	if err != nil {
		return 0, err
	}
	v0, err := GetTraceField(buf0, fieldOffset)
	if err != nil {
		return 0, err
	}
	off0, err := GetTraceField(buf0, offsetFieldOffset)
	if err != nil {
		return 0, err
	}

	count := int64(0)
	for pos := int64(0); pos < traceCount; pos += offsets {
		buf, err := r.TraceHeader(pos)
		if err != nil {
			return 0, err
		}
		v, err := GetTraceField(buf, fieldOffset)
		if err != nil {
			return 0, err
		}
		off, err := GetTraceField(buf, offsetFieldOffset)
		if err != nil {
			return 0, err
		}
		if count > 0 && v == v0 && off == off0 {
			return count, nil
		}
		count++
	}
	return count, nil
}

// enumerate reads the field at fieldOffset from traces start, start+stride,
// start+2*stride, ..., n times.
func enumerate(r TraceHeaderReader, fieldOffset int, start, stride, n int64) ([]int32, error) {
	out := make([]int32, n)
	for i := int64(0); i < n; i++ {
		buf, err := r.TraceHeader(start + i*stride)
		if err != nil {
			return nil, err
		}
		v, err := GetTraceField(buf, fieldOffset)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// LineStartTrace computes the trace number of the first sample (offset 0)
// of the requested line, given its position in the enumerated line-index
// vector, whether that axis is the fast axis, the orthogonal line length,
// and the offsets-per-bin count.
func LineStartTrace(position int64, fastAxis bool, lineLength, offsets int64) int64 {
	if fastAxis {
		return position * lineLength * offsets
	}
	return position * offsets
}

// IndexOf returns the position of target within indices, or -1 if absent.
func IndexOf(indices []int32, target int32) int {
	for i, v := range indices {
		if v == target {
			return i
		}
	}
	return -1
}
