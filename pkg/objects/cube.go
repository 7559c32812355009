package objects

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/slangeveld/fmu-dataio/pkg/fmuresults"
	"github.com/slangeveld/fmu-dataio/pkg/registry"
)

// Cube is a regular seismic cube: ncol*nrow traces of nlay samples.
type Cube struct {
	Name             string
	Ncol, Nrow, Nlay int
	Xori, Yori, Zori float64
	Xinc, Yinc, Zinc float64
	Rotation         float64

	// Values holds ncol*nrow*nlay samples; NaN entries are undefined.
	Values []float64

	CRS string
}

func (c *Cube) Kind() registry.Kind         { return registry.KindCube }
func (c *Cube) Class() fmuresults.Class     { return fmuresults.ClassCube }
func (c *Cube) Layout() fmuresults.Layout   { return fmuresults.LayoutRegular }
func (c *Cube) ObjectName() string          { return c.Name }
func (c *Cube) CoordinateReference() string { return c.CRS }

func (c *Cube) Bounds() (fmuresults.BoundingBox, bool) {
	if c.Ncol <= 0 || c.Nrow <= 0 || c.Nlay <= 0 {
		return fmuresults.BoundingBox{}, false
	}
	zmin := c.Zori
	zmax := c.Zori + c.Zinc*float64(c.Nlay-1)
	return fmuresults.BoundingBox{
		Xmin: c.Xori,
		Xmax: c.Xori + c.Xinc*float64(c.Ncol-1),
		Ymin: c.Yori,
		Ymax: c.Yori + c.Yinc*float64(c.Nrow-1),
		Zmin: &zmin,
		Zmax: &zmax,
	}, true
}

func (c *Cube) ValueRange() (min, max float64, defined bool) {
	for _, v := range c.Values {
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

func (c *Cube) SpecBlock() any {
	return fmuresults.CubeSpec{
		Ncol: c.Ncol, Nrow: c.Nrow, Nlay: c.Nlay,
		Xori: c.Xori, Yori: c.Yori, Zori: c.Zori,
		Xinc: c.Xinc, Yinc: c.Yinc, Zinc: c.Zinc,
		Yflip: 1,
	}
}

// EncodeTo writes the cube in the requested format. Only segy is built in:
// a textual header, a binary header with the trace geometry, then one
// trace record per (col,row) position.
func (c *Cube) EncodeTo(w io.Writer, format fmuresults.FileFormat) error {
	if format != fmuresults.FormatSegy {
		return fmt.Errorf("%w: %q for cube", ErrNoEncoder, format)
	}

	textual := make([]byte, 3200)
	copy(textual, []byte(fmt.Sprintf("C 1 %s", c.Name)))
	if _, err := w.Write(textual); err != nil {
		return fmt.Errorf("write segy textual header: %w", err)
	}

	binhdr := make([]byte, 400)
	binary.BigEndian.PutUint16(binhdr[16:], uint16(c.Zinc*1000)) // sample interval, microseconds
	binary.BigEndian.PutUint16(binhdr[20:], uint16(c.Nlay))      // samples per trace
	binary.BigEndian.PutUint16(binhdr[24:], 5)                   // IEEE float sample format
	if _, err := w.Write(binhdr); err != nil {
		return fmt.Errorf("write segy binary header: %w", err)
	}

	trace := make([]float32, c.Nlay)
	for col := 0; col < c.Ncol; col++ {
		for row := 0; row < c.Nrow; row++ {
			hdr := make([]byte, 240)
			binary.BigEndian.PutUint32(hdr[188:], uint32(col+1)) // inline
			binary.BigEndian.PutUint32(hdr[192:], uint32(row+1)) // crossline
			if _, err := w.Write(hdr); err != nil {
				return fmt.Errorf("write segy trace header: %w", err)
			}
			base := (col*c.Nrow + row) * c.Nlay
			for k := 0; k < c.Nlay; k++ {
				v := c.Values[base+k]
				if math.IsNaN(v) {
					v = 0
				}
				trace[k] = float32(v)
			}
			if err := binary.Write(w, binary.BigEndian, trace); err != nil {
				return fmt.Errorf("write segy trace: %w", err)
			}
		}
	}

	return nil
}
