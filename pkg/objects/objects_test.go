package objects

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/slangeveld/fmu-dataio/pkg/fmuresults"
	"github.com/slangeveld/fmu-dataio/pkg/registry"
)

func TestInspectSurface(t *testing.T) {
	t.Run("Constant Surface", func(t *testing.T) {
		s := NewRegularSurface(12, 10, 25.0, 25.0, 1234.0)
		s.Name = "TopWhatever"

		p, err := Inspect(s)
		if err != nil {
			t.Fatalf("Inspect failed: %v", err)
		}
		if p.Kind != registry.KindSurface || p.Class != fmuresults.ClassSurface {
			t.Errorf("Wrong kind/class: %v %v", p.Kind, p.Class)
		}
		if p.Name != "TopWhatever" {
			t.Errorf("Name not carried: %q", p.Name)
		}
		if p.BBox == nil {
			t.Fatal("Surface must report a bounding box")
		}
		if p.BBox.Xmax != 25.0*11 || p.BBox.Ymax != 25.0*9 {
			t.Errorf("Wrong extent: %+v", p.BBox)
		}
		if p.ValueMin == nil || *p.ValueMin != 1234.0 || *p.ValueMax != 1234.0 {
			t.Errorf("Wrong value range: %v %v", p.ValueMin, p.ValueMax)
		}
		if p.BBox.Zmin == nil || *p.BBox.Zmin != 1234.0 {
			t.Errorf("Vertical extent should follow the value range: %v", p.BBox.Zmin)
		}
	})

	t.Run("Fully Undefined Surface", func(t *testing.T) {
		s := NewRegularSurface(3, 3, 10, 10, math.NaN())

		p, err := Inspect(s)
		if err != nil {
			t.Fatalf("Inspect failed: %v", err)
		}
		if p.ValueMin != nil || p.ValueMax != nil {
			t.Error("Masked surface must report unknown value range, not NaN")
		}
		if p.BBox == nil {
			t.Fatal("Horizontal extent is still known")
		}
		if p.BBox.Zmin != nil || p.BBox.Zmax != nil {
			t.Error("Vertical extent must be absent for a fully masked surface")
		}
	})

	t.Run("Degenerate Surface Fails", func(t *testing.T) {
		s := &RegularSurface{Name: "empty"}
		_, err := Inspect(s)
		if !errors.Is(err, ErrInspection) {
			t.Errorf("Expected ErrInspection, got %v", err)
		}
	})

	t.Run("Placeholder Name Is Dropped", func(t *testing.T) {
		s := NewRegularSurface(2, 2, 1, 1, 0)
		s.Name = "unknown"
		p, err := Inspect(s)
		if err != nil {
			t.Fatalf("Inspect failed: %v", err)
		}
		if p.Name != "" {
			t.Errorf("Placeholder name should be dropped, got %q", p.Name)
		}
	})
}

func TestInspectGridProperty(t *testing.T) {
	geom := &Grid{
		Name: "geogrid", Ncol: 4, Nrow: 3, Nlay: 2,
		Xmin: 0, Xmax: 100, Ymin: 0, Ymax: 80, Zmin: 1500, Zmax: 1700,
	}
	prop := &GridProperty{
		Name: "facies", Ncol: 4, Nrow: 3, Nlay: 2,
		Values:     []float64{1, 2, 1, 3, math.NaN(), 2, 1, 1, 2, 3, 1, 2, 1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2, 3},
		IsDiscrete: true,
		Geometry:   geom,
	}

	p, err := Inspect(prop)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if p.Layout != fmuresults.LayoutCornerpoint {
		t.Errorf("Wrong layout %q", p.Layout)
	}
	if p.Discrete == nil || !*p.Discrete {
		t.Error("Discreteness not carried")
	}
	if p.BBox == nil || *p.BBox.Zmin != 1500 {
		t.Errorf("Bounding box should come from the geometry: %+v", p.BBox)
	}
	if p.ValueMin == nil || *p.ValueMin != 1 || *p.ValueMax != 3 {
		t.Errorf("Wrong value range: %v %v", p.ValueMin, p.ValueMax)
	}
}

func TestInspectTable(t *testing.T) {
	table := &Table{
		Name:    "volumes",
		Columns: []string{"ZONE", "REGION", "STOIIP"},
		Rows: [][]any{
			{"Valysar", "West", 1200.5},
			{"Therys", "East", 900.0},
		},
	}

	p, err := Inspect(table)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if p.Layout != fmuresults.LayoutTable {
		t.Errorf("Wrong layout %q", p.Layout)
	}
	if p.BBox != nil {
		t.Error("Tables have no bounding box")
	}
	if len(p.TableColumns) != 3 || p.TableColumns[0] != "ZONE" {
		t.Errorf("Columns not carried: %v", p.TableColumns)
	}
	spec, ok := p.Spec.(fmuresults.TableSpec)
	if !ok || spec.Size != 6 {
		t.Errorf("Unexpected spec %+v", p.Spec)
	}
}

func TestXYZBounds(t *testing.T) {
	pts := &Points{
		Name: "wellpoints",
		Coords: [][3]float64{
			{10, 20, 1000},
			{30, 5, 1100},
			{20, 40, 900},
		},
	}
	bbox, ok := pts.Bounds()
	if !ok {
		t.Fatal("Expected bounds")
	}
	if bbox.Xmin != 10 || bbox.Xmax != 30 || bbox.Ymin != 5 || bbox.Ymax != 40 {
		t.Errorf("Wrong horizontal bounds: %+v", bbox)
	}
	if *bbox.Zmin != 900 || *bbox.Zmax != 1100 {
		t.Errorf("Wrong vertical bounds: %v %v", *bbox.Zmin, *bbox.Zmax)
	}

	empty := &Points{Name: "none"}
	if _, ok := empty.Bounds(); ok {
		t.Error("Empty point set has no bounds")
	}
}

func TestPointsEncoding(t *testing.T) {
	pts := &Points{
		Name:   "p",
		Coords: [][3]float64{{1, 2, 3}, {4, 5, 6}},
	}

	t.Run("CSV", func(t *testing.T) {
		var buf bytes.Buffer
		if err := pts.EncodeTo(&buf, fmuresults.FormatCSV); err != nil {
			t.Fatalf("EncodeTo failed: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if lines[0] != "X,Y,Z" {
			t.Errorf("Wrong header %q", lines[0])
		}
		if len(lines) != 3 || lines[1] != "1,2,3" {
			t.Errorf("Wrong rows %v", lines)
		}
	})

	t.Run("Native CSV Keeps UTM Columns", func(t *testing.T) {
		var buf bytes.Buffer
		if err := pts.EncodeTo(&buf, fmuresults.FormatCSVXtgeo); err != nil {
			t.Fatalf("EncodeTo failed: %v", err)
		}
		if !strings.HasPrefix(buf.String(), "X_UTME,Y_UTMN,Z_TVDSS") {
			t.Errorf("Wrong header in %q", buf.String())
		}
	})

	t.Run("Unsupported Format", func(t *testing.T) {
		var buf bytes.Buffer
		err := pts.EncodeTo(&buf, fmuresults.FormatSegy)
		if !errors.Is(err, ErrNoEncoder) {
			t.Errorf("Expected ErrNoEncoder, got %v", err)
		}
	})
}

func TestPolygonsEncoding(t *testing.T) {
	poly := &Polygons{
		Name:   "boundary",
		Coords: [][3]float64{{0, 0, 0}, {1, 0, 0}, {5, 5, 0}, {6, 5, 0}},
		IDs:    []int{0, 0, 1, 1},
	}

	t.Run("CSV Carries IDs", func(t *testing.T) {
		var buf bytes.Buffer
		if err := poly.EncodeTo(&buf, fmuresults.FormatCSV); err != nil {
			t.Fatalf("EncodeTo failed: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if lines[0] != "X,Y,Z,ID" {
			t.Errorf("Wrong header %q", lines[0])
		}
		if lines[3] != "5,5,0,1" {
			t.Errorf("Wrong row %q", lines[3])
		}
	})

	t.Run("Irap ASCII Separates Polygons", func(t *testing.T) {
		var buf bytes.Buffer
		if err := poly.EncodeTo(&buf, fmuresults.FormatIrapASCII); err != nil {
			t.Fatalf("EncodeTo failed: %v", err)
		}
		if !strings.Contains(buf.String(), "999.000000 999.000000 999.000000") {
			t.Error("Expected the 999 separator between polygons")
		}
	})
}

func TestSurfaceEncoding(t *testing.T) {
	s := NewRegularSurface(3, 2, 50, 50, 1000)
	var buf bytes.Buffer
	if err := s.EncodeTo(&buf, fmuresults.FormatIrapBinary); err != nil {
		t.Fatalf("EncodeTo failed: %v", err)
	}

	raw := buf.Bytes()
	// First record: length marker then the -996 magic.
	if got := int32(binary.BigEndian.Uint32(raw[0:4])); got != 32 {
		t.Errorf("Wrong first record length %d", got)
	}
	if got := int32(binary.BigEndian.Uint32(raw[4:8])); got != -996 {
		t.Errorf("Wrong magic %d", got)
	}
	if got := int32(binary.BigEndian.Uint32(raw[8:12])); got != 2 {
		t.Errorf("Wrong nrow %d", got)
	}

	var degenerate bytes.Buffer
	if err := (&RegularSurface{}).EncodeTo(&degenerate, fmuresults.FormatIrapBinary); err == nil {
		t.Error("Degenerate surface must not encode")
	}
}

func TestParseFaultRoom(t *testing.T) {
	doc := map[string]any{
		"metadata": map[string]any{
			"horizons":         []any{"TopVolantis"},
			"faults":           []any{map[string]any{"name": "F1"}, map[string]any{"name": "F2"}},
			"juxtaposition_hw": []any{"Valysar"},
			"juxtaposition_fw": []any{"Therys"},
			"properties":       []any{"juxtaposition"},
		},
		"features": []any{
			map[string]any{
				"geometry": map[string]any{
					"coordinates": []any{
						[]any{float64(100), float64(200), float64(1500)},
						[]any{float64(150), float64(250), float64(1600)},
					},
				},
			},
		},
	}

	f, err := ParseFaultRoom(doc)
	if err != nil {
		t.Fatalf("ParseFaultRoom failed: %v", err)
	}
	if f.ObjectName() != "TopVolantis" {
		t.Errorf("Wrong name %q", f.ObjectName())
	}
	if len(f.Faults) != 2 || f.Faults[0] != "F1" {
		t.Errorf("Faults not extracted: %v", f.Faults)
	}
	if f.Xmin != 100 || f.Xmax != 150 || f.Zmin != 1500 || f.Zmax != 1600 {
		t.Errorf("Wrong envelope: %+v", f)
	}
	if f.Layout() != fmuresults.LayoutFaultroomTriangulated {
		t.Errorf("Wrong layout %q", f.Layout())
	}

	if _, err := ParseFaultRoom(map[string]any{}); !errors.Is(err, ErrInspection) {
		t.Errorf("Expected ErrInspection for empty document, got %v", err)
	}
}
