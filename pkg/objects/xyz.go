package objects

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/slangeveld/fmu-dataio/pkg/fmuresults"
	"github.com/slangeveld/fmu-dataio/pkg/registry"
)

// nativeXYZColumns are the column names used by the csv|xtgeo format.
var nativeXYZColumns = []string{"X_UTME", "Y_UTMN", "Z_TVDSS"}

// Points is a set of XYZ points.
type Points struct {
	Name   string
	Coords [][3]float64
	CRS    string
}

func (p *Points) Kind() registry.Kind         { return registry.KindPoints }
func (p *Points) Class() fmuresults.Class     { return fmuresults.ClassPoints }
func (p *Points) Layout() fmuresults.Layout   { return fmuresults.LayoutUnset }
func (p *Points) ObjectName() string          { return p.Name }
func (p *Points) CoordinateReference() string { return p.CRS }

func (p *Points) Bounds() (fmuresults.BoundingBox, bool) {
	return xyzBounds(p.Coords)
}

func (p *Points) SpecBlock() any {
	return fmuresults.XYZSpec{Size: len(p.Coords)}
}

func (p *Points) EncodeTo(w io.Writer, format fmuresults.FileFormat) error {
	switch format {
	case fmuresults.FormatCSV:
		return encodeXYZCSV(w, []string{"X", "Y", "Z"}, p.Coords, nil)
	case fmuresults.FormatCSVXtgeo:
		return encodeXYZCSV(w, nativeXYZColumns, p.Coords, nil)
	case fmuresults.FormatIrapASCII:
		return encodeXYZASCII(w, p.Coords, nil)
	}
	return fmt.Errorf("%w: %q for points", ErrNoEncoder, format)
}

// Polygons is a set of XYZ vertices grouped into closed polygons by ID.
type Polygons struct {
	Name   string
	Coords [][3]float64
	// IDs has one entry per coordinate, grouping vertices into polygons.
	IDs []int
	CRS string
}

func (p *Polygons) Kind() registry.Kind         { return registry.KindPolygons }
func (p *Polygons) Class() fmuresults.Class     { return fmuresults.ClassPolygons }
func (p *Polygons) Layout() fmuresults.Layout   { return fmuresults.LayoutUnset }
func (p *Polygons) ObjectName() string          { return p.Name }
func (p *Polygons) CoordinateReference() string { return p.CRS }

func (p *Polygons) Bounds() (fmuresults.BoundingBox, bool) {
	return xyzBounds(p.Coords)
}

func (p *Polygons) SpecBlock() any {
	return fmuresults.XYZSpec{Size: len(p.Coords)}
}

func (p *Polygons) EncodeTo(w io.Writer, format fmuresults.FileFormat) error {
	switch format {
	case fmuresults.FormatCSV:
		return encodeXYZCSV(w, []string{"X", "Y", "Z", "ID"}, p.Coords, p.IDs)
	case fmuresults.FormatCSVXtgeo:
		return encodeXYZCSV(w, append(nativeXYZColumns[:3:3], "POLY_ID"), p.Coords, p.IDs)
	case fmuresults.FormatIrapASCII:
		return encodeXYZASCII(w, p.Coords, p.IDs)
	}
	return fmt.Errorf("%w: %q for polygons", ErrNoEncoder, format)
}

func xyzBounds(coords [][3]float64) (fmuresults.BoundingBox, bool) {
	if len(coords) == 0 {
		return fmuresults.BoundingBox{}, false
	}
	bbox := fmuresults.BoundingBox{
		Xmin: coords[0][0], Xmax: coords[0][0],
		Ymin: coords[0][1], Ymax: coords[0][1],
	}
	zmin, zmax := coords[0][2], coords[0][2]
	for _, c := range coords[1:] {
		if c[0] < bbox.Xmin {
			bbox.Xmin = c[0]
		}
		if c[0] > bbox.Xmax {
			bbox.Xmax = c[0]
		}
		if c[1] < bbox.Ymin {
			bbox.Ymin = c[1]
		}
		if c[1] > bbox.Ymax {
			bbox.Ymax = c[1]
		}
		if c[2] < zmin {
			zmin = c[2]
		}
		if c[2] > zmax {
			zmax = c[2]
		}
	}
	bbox.Zmin, bbox.Zmax = &zmin, &zmax
	return bbox, true
}

func encodeXYZCSV(w io.Writer, header []string, coords [][3]float64, ids []int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, c := range coords {
		row := []string{
			strconv.FormatFloat(c[0], 'f', -1, 64),
			strconv.FormatFloat(c[1], 'f', -1, 64),
			strconv.FormatFloat(c[2], 'f', -1, 64),
		}
		if ids != nil {
			row = append(row, strconv.Itoa(ids[i]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func encodeXYZASCII(w io.Writer, coords [][3]float64, ids []int) error {
	for i, c := range coords {
		// Polygon boundaries are marked by the 999 separator line.
		if ids != nil && i > 0 && ids[i] != ids[i-1] {
			if _, err := fmt.Fprintln(w, "999.000000 999.000000 999.000000"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%f %f %f\n", c[0], c[1], c[2]); err != nil {
			return err
		}
	}
	return nil
}
