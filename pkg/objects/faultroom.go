package objects

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/slangeveld/fmu-dataio/pkg/fmuresults"
	"github.com/slangeveld/fmu-dataio/pkg/registry"
)

// FaultRoomSurface is a triangulated fault-room surface as produced by the
// RMS FaultRoom plugin. The triangulated payload is carried opaquely and
// re-emitted on export; only the envelope and the naming lists are
// interpreted.
type FaultRoomSurface struct {
	Horizons        []string
	Faults          []string
	JuxtapositionHW []string
	JuxtapositionFW []string
	Properties      []string

	Xmin, Xmax float64
	Ymin, Ymax float64
	Zmin, Zmax float64

	// Payload is the full document from the plugin, written back verbatim.
	Payload map[string]any
}

func (f *FaultRoomSurface) Kind() registry.Kind     { return registry.KindTriangulatedSurface }
func (f *FaultRoomSurface) Class() fmuresults.Class { return fmuresults.ClassSurface }
func (f *FaultRoomSurface) Layout() fmuresults.Layout {
	return fmuresults.LayoutFaultroomTriangulated
}

// ObjectName joins the horizon names, matching how the plugin tags its
// output documents.
func (f *FaultRoomSurface) ObjectName() string {
	name := ""
	for i, h := range f.Horizons {
		if i > 0 {
			name += "_"
		}
		name += h
	}
	return name
}

func (f *FaultRoomSurface) Bounds() (fmuresults.BoundingBox, bool) {
	if f.Xmin == 0 && f.Xmax == 0 && f.Ymin == 0 && f.Ymax == 0 {
		return fmuresults.BoundingBox{}, false
	}
	zmin, zmax := f.Zmin, f.Zmax
	return fmuresults.BoundingBox{
		Xmin: f.Xmin, Xmax: f.Xmax,
		Ymin: f.Ymin, Ymax: f.Ymax,
		Zmin: &zmin, Zmax: &zmax,
	}, true
}

func (f *FaultRoomSurface) SpecBlock() any {
	return fmuresults.FaultRoomSpec{
		Horizons:        f.Horizons,
		Faults:          f.Faults,
		JuxtapositionHW: f.JuxtapositionHW,
		JuxtapositionFW: f.JuxtapositionFW,
		Properties:      f.Properties,
		Name:            f.ObjectName(),
	}
}

func (f *FaultRoomSurface) EncodeTo(w io.Writer, format fmuresults.FileFormat) error {
	if format != fmuresults.FormatJSON {
		return fmt.Errorf("%w: %q for faultroom surface", ErrNoEncoder, format)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f.Payload)
}

// ParseFaultRoom interprets a FaultRoom plugin document: the metadata
// section carries the naming lists and the coordinate envelope.
func ParseFaultRoom(doc map[string]any) (*FaultRoomSurface, error) {
	meta, ok := doc["metadata"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: faultroom document has no metadata section", ErrInspection)
	}
	f := &FaultRoomSurface{
		Horizons:        stringList(meta["horizons"]),
		Faults:          faultNames(meta["faults"]),
		JuxtapositionHW: stringList(meta["juxtaposition_hw"]),
		JuxtapositionFW: stringList(meta["juxtaposition_fw"]),
		Properties:      stringList(meta["properties"]),
		Payload:         doc,
	}
	first := true
	walkCoordinates(doc["features"], func(x, y, z float64) {
		if first {
			f.Xmin, f.Xmax, f.Ymin, f.Ymax, f.Zmin, f.Zmax = x, x, y, y, z, z
			first = false
			return
		}
		if x < f.Xmin {
			f.Xmin = x
		}
		if x > f.Xmax {
			f.Xmax = x
		}
		if y < f.Ymin {
			f.Ymin = y
		}
		if y > f.Ymax {
			f.Ymax = y
		}
		if z < f.Zmin {
			f.Zmin = z
		}
		if z > f.Zmax {
			f.Zmax = z
		}
	})
	if first {
		return nil, fmt.Errorf("%w: faultroom document has no coordinates", ErrInspection)
	}
	return f, nil
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// faultNames handles the two shapes the plugin emits for the fault list:
// a plain list of names, or a list of {name, ...} objects.
func faultNames(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		switch f := it.(type) {
		case string:
			out = append(out, f)
		case map[string]any:
			if s, ok := f["name"].(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// walkCoordinates visits every [x,y,z] triple under the GeoJSON-style
// features tree.
func walkCoordinates(v any, visit func(x, y, z float64)) {
	switch node := v.(type) {
	case []any:
		if x, y, z, ok := asTriple(node); ok {
			visit(x, y, z)
			return
		}
		for _, child := range node {
			walkCoordinates(child, visit)
		}
	case map[string]any:
		for _, child := range node {
			walkCoordinates(child, visit)
		}
	}
}

func asTriple(node []any) (x, y, z float64, ok bool) {
	if len(node) != 3 {
		return 0, 0, 0, false
	}
	coords := make([]float64, 3)
	for i, raw := range node {
		switch n := raw.(type) {
		case float64:
			coords[i] = n
		case int:
			coords[i] = float64(n)
		default:
			return 0, 0, 0, false
		}
	}
	return coords[0], coords[1], coords[2], true
}
