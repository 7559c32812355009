package objects

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/slangeveld/fmu-dataio/pkg/fmuresults"
	"github.com/slangeveld/fmu-dataio/pkg/registry"
)

// SurfaceUndef is the undefined-value marker used in surface encodings.
const SurfaceUndef = 1e30

// RegularSurface is a 2D regular grid of values, row-major with ncol*nrow
// entries. NaN entries are undefined (masked) nodes.
type RegularSurface struct {
	Name string

	Ncol, Nrow int
	Xori, Yori float64
	Xinc, Yinc float64
	Rotation   float64

	Values []float64

	// CRS is the coordinate reference system identifier, if known.
	CRS string
}

// NewRegularSurface creates a surface with every node set to value.
func NewRegularSurface(ncol, nrow int, xinc, yinc, value float64) *RegularSurface {
	values := make([]float64, ncol*nrow)
	for i := range values {
		values[i] = value
	}
	return &RegularSurface{Ncol: ncol, Nrow: nrow, Xinc: xinc, Yinc: yinc, Values: values}
}

func (s *RegularSurface) Kind() registry.Kind		{ return registry.KindSurface }
func (s *RegularSurface) Class() fmuresults.Class	{ return fmuresults.ClassSurface }
func (s *RegularSurface) Layout() fmuresults.Layout	{ return fmuresults.LayoutRegular }
func (s *RegularSurface) ObjectName() string		{ return s.Name }
func (s *RegularSurface) CoordinateReference() string	{ return s.CRS }

// Bounds returns the horizontal extent of the node grid.
func (s *RegularSurface) Bounds() (fmuresults.BoundingBox, bool) {
	if s.Ncol <= 0 || s.Nrow <= 0 {
		return fmuresults.BoundingBox{}, false
	}
	return fmuresults.BoundingBox{
		Xmin: s.Xori,
		Xmax: s.Xori + s.Xinc*float64(s.Ncol-1),
		Ymin: s.Yori,
		Ymax: s.Yori + s.Yinc*float64(s.Nrow-1),
	}, true
}

// ValueRange scans the defined nodes. defined is false when every node is
// undefined.
func (s *RegularSurface) ValueRange() (min, max float64, defined bool) {
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		if !defined {
			min, max, defined = v, v, true
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, defined
}

// SpecBlock returns the surface spec for the data block.
func (s *RegularSurface) SpecBlock() any {
	return fmuresults.SurfaceSpec{
		Ncol:     s.Ncol,
		Nrow:     s.Nrow,
		Xori:     s.Xori,
		Yori:     s.Yori,
		Xinc:     s.Xinc,
		Yinc:     s.Yinc,
		Rotation: s.Rotation,
		Undef:    SurfaceUndef,
		Yflip:    1,
	}
}

// EncodeTo writes the surface in the requested format. Only irap_binary is
// built in; other formats need an injected writer.
func (s *RegularSurface) EncodeTo(w io.Writer, format fmuresults.FileFormat) error {
	if format != fmuresults.FormatIrapBinary {
		return fmt.Errorf("%w: %q for surface", ErrNoEncoder, format)
	}
	return s.encodeIrapBinary(w)
}

// encodeIrapBinary writes the Fortran-style record stream of the irap
// binary format: two header records followed by per-row value records,
// each delimited by int32 byte counts, big endian. Undefined nodes are
// written as the undef marker.
func (s *RegularSurface) encodeIrapBinary(w io.Writer) error {
	bbox, ok := s.Bounds()
	if !ok {
		return fmt.Errorf("cannot encode degenerate surface (%dx%d)", s.Ncol, s.Nrow)
	}

	writeRecord := func(fields ...any) error {
		size := int32(0)
		for range fields {
			size += 4
		}
		if err := binary.Write(w, binary.BigEndian, size); err != nil {
			return err
		}
		for _, f := range fields {
			if err := binary.Write(w, binary.BigEndian, f); err != nil {
				return err
			}
		}
		return binary.Write(w, binary.BigEndian, size)
	}

	// Header, split over two records as the format demands.
	err := writeRecord(
		int32(-996), int32(s.Nrow),
		float32(s.Xinc), float32(s.Yinc),
		float32(bbox.Xmin), float32(bbox.Xmax),
		float32(bbox.Ymin), float32(bbox.Ymax),
	)
	if err != nil {
		return fmt.Errorf("write surface header: %w", err)
	}
	err = writeRecord(
		int32(s.Ncol), float32(s.Rotation),
		float32(s.Xori), float32(s.Yori),
	)
	if err != nil {
		return fmt.Errorf("write surface header: %w", err)
	}

	for row := 0; row < s.Nrow; row++ {
		fields := make([]any, s.Ncol)
		for col := 0; col < s.Ncol; col++ {
			v := s.Values[row*s.Ncol+col]
			if math.IsNaN(v) {
				v = SurfaceUndef
			}
			fields[col] = float32(v)
		}
		if err := writeRecord(fields...); err != nil {
			return fmt.Errorf("write surface row %d: %w", row, err)
		}
	}

	return nil
}
