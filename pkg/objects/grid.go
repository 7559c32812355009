package objects

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/slangeveld/fmu-dataio/pkg/fmuresults"
	"github.com/slangeveld/fmu-dataio/pkg/registry"
)

// Grid is a cornerpoint grid geometry. Only the envelope and dimensions
// are carried; cell geometry is opaque to the metadata pipeline.
type Grid struct {
	Name             string
	Ncol, Nrow, Nlay int

	Xmin, Xmax float64
	Ymin, Ymax float64
	Zmin, Zmax float64

	CRS string
}

func (g *Grid) Kind() registry.Kind         { return registry.KindGrid }
func (g *Grid) Class() fmuresults.Class     { return fmuresults.ClassCPGrid }
func (g *Grid) Layout() fmuresults.Layout   { return fmuresults.LayoutCornerpoint }
func (g *Grid) ObjectName() string          { return g.Name }
func (g *Grid) CoordinateReference() string { return g.CRS }

func (g *Grid) Bounds() (fmuresults.BoundingBox, bool) {
	if g.Ncol <= 0 || g.Nrow <= 0 || g.Nlay <= 0 {
		return fmuresults.BoundingBox{}, false
	}
	zmin, zmax := g.Zmin, g.Zmax
	return fmuresults.BoundingBox{
		Xmin: g.Xmin, Xmax: g.Xmax,
		Ymin: g.Ymin, Ymax: g.Ymax,
		Zmin: &zmin, Zmax: &zmax,
	}, true
}

func (g *Grid) SpecBlock() any {
	return fmuresults.GridSpec{Ncol: g.Ncol, Nrow: g.Nrow, Nlay: g.Nlay}
}

// EncodeTo writes the grid in the requested format. Only roff is built in.
func (g *Grid) EncodeTo(w io.Writer, format fmuresults.FileFormat) error {
	if format != fmuresults.FormatRoff {
		return fmt.Errorf("%w: %q for grid", ErrNoEncoder, format)
	}
	return encodeRoff(w, "grid", g.Ncol, g.Nrow, g.Nlay, nil)
}

// GridProperty is a per-cell property attached to a grid geometry.
type GridProperty struct {
	Name             string
	Ncol, Nrow, Nlay int

	// Values holds ncol*nrow*nlay entries; NaN entries are undefined.
	Values []float64

	// IsDiscrete marks integer-coded properties (facies, regions).
	IsDiscrete bool

	// Geometry optionally links the property to its parent grid.
	Geometry *Grid
}

func (p *GridProperty) Kind() registry.Kind       { return registry.KindGrid }
func (p *GridProperty) Class() fmuresults.Class   { return fmuresults.ClassCPGridProperty }
func (p *GridProperty) Layout() fmuresults.Layout { return fmuresults.LayoutCornerpoint }
func (p *GridProperty) ObjectName() string        { return p.Name }
func (p *GridProperty) Discrete() bool            { return p.IsDiscrete }

func (p *GridProperty) Bounds() (fmuresults.BoundingBox, bool) {
	if p.Geometry != nil {
		return p.Geometry.Bounds()
	}
	if p.Ncol <= 0 || p.Nrow <= 0 || p.Nlay <= 0 {
		return fmuresults.BoundingBox{}, false
	}
	// Without a geometry reference only the cell index space is known.
	return fmuresults.BoundingBox{
		Xmax: float64(p.Ncol), Ymax: float64(p.Nrow),
	}, true
}

func (p *GridProperty) ValueRange() (min, max float64, defined bool) {
	for _, v := range p.Values {
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

func (p *GridProperty) SpecBlock() any {
	return fmuresults.GridSpec{Ncol: p.Ncol, Nrow: p.Nrow, Nlay: p.Nlay}
}

func (p *GridProperty) EncodeTo(w io.Writer, format fmuresults.FileFormat) error {
	if format != fmuresults.FormatRoff {
		return fmt.Errorf("%w: %q for grid property", ErrNoEncoder, format)
	}
	return encodeRoff(w, "parameter", p.Ncol, p.Nrow, p.Nlay, p.Values)
}

// encodeRoff writes a minimal roff binary stream: the magic tag, the
// dimension keywords and, for properties, the value array.
func encodeRoff(w io.Writer, kind string, ncol, nrow, nlay int, values []float64) error {
	if _, err := fmt.Fprintf(w, "roff-bin\x00#%s#\x00", kind); err != nil {
		return err
	}
	dims := []int32{int32(ncol), int32(nrow), int32(nlay)}
	if err := binary.Write(w, binary.LittleEndian, dims); err != nil {
		return fmt.Errorf("write roff dimensions: %w", err)
	}
	if values == nil {
		return nil
	}
	out := make([]float32, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			v = -999.0
		}
		out[i] = float32(v)
	}
	if err := binary.Write(w, binary.LittleEndian, out); err != nil {
		return fmt.Errorf("write roff values: %w", err)
	}
	return nil
}
