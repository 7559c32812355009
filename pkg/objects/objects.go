// Package objects holds the in-memory scientific object types that can be
// exported with metadata, and the capability-based inspector that
// normalizes their geometric and statistical properties.
//
// Every exportable type implements Object; the optional capabilities
// (value statistics, discreteness, coordinate reference, naming) are
// separate interfaces so the inspector degrades to "unknown" rather than
// failing when a capability is absent.
package objects

import (
	"errors"
	"fmt"
	"io"

	"github.com/slangeveld/fmu-dataio/pkg/fmuresults"
	"github.com/slangeveld/fmu-dataio/pkg/registry"
)

// ErrInspection signals that a mandatory property (bounding box for a
// coordinate-based object, or the layout kind) could not be derived.
var ErrInspection = errors.New("could not inspect object")

// ErrNoEncoder signals that the object has no built-in encoder for the
// requested format; callers may inject an external writer instead.
var ErrNoEncoder = errors.New("no built-in encoder for format")

// Object is the minimal capability set every exportable type implements.
type Object interface {
	// Kind places the object in the content/format registry.
	Kind() registry.Kind
	// Class is the FMU class the object's metadata is tagged with.
	Class() fmuresults.Class
	// Layout describes how the object's values are arranged.
	Layout() fmuresults.Layout
	// EncodeTo serializes the object in the given format. This is the
	// delegated-writer boundary: failures pass through unmodified.
	EncodeTo(w io.Writer, format fmuresults.FileFormat) error
}

// BoundsReporter is implemented by coordinate-based objects.
type BoundsReporter interface {
	// Bounds returns the horizontal extent, with ok=false when the
	// object is degenerate (zero dimensions).
	Bounds() (bbox fmuresults.BoundingBox, ok bool)
}

// ValueRanger exposes min/max value statistics. defined is false when the
// entire value range is undefined (fully masked), in which case min and
// max carry no meaning.
type ValueRanger interface {
	ValueRange() (min, max float64, defined bool)
}

// DiscreteFlagger is implemented by objects that know whether their values
// are discrete or continuous.
type DiscreteFlagger interface {
	Discrete() bool
}

// CoordinateReferenced is implemented by objects carrying their own
// coordinate reference system identifier.
type CoordinateReferenced interface {
	CoordinateReference() string
}

// Named is implemented by objects that carry an identifying name.
type Named interface {
	ObjectName() string
}

// SpecProvider is implemented by objects that contribute a spec block to
// the data section of their metadata.
type SpecProvider interface {
	SpecBlock() any
}

// TableShaped is implemented by tabular objects.
type TableShaped interface {
	ColumnNames() []string
}

// Properties is the normalized intermediate representation produced by
// Inspect. Nil pointers mean "unknown" or "undefined", never NaN.
type Properties struct {
	Kind   registry.Kind
	Class  fmuresults.Class
	Layout fmuresults.Layout

	Name string

	BBox *fmuresults.BoundingBox
	Spec any

	ValueMin *float64
	ValueMax *float64
	Discrete *bool

	CoordinateReference string
	TableColumns        []string
}

// geometric reports whether a layout implies a coordinate-based object,
// for which a bounding box is mandatory.
func geometric(layout fmuresults.Layout) bool {
	switch layout {
	case fmuresults.LayoutRegular, fmuresults.LayoutCornerpoint, fmuresults.LayoutFaultroomTriangulated:
		return true
	}
	return false
}

// Inspect derives the normalized properties of an object. Pure: no I/O.
// Missing optional capabilities are reported as unknown; a missing layout
// or a missing bounding box on a coordinate-based object is an
// ErrInspection.
func Inspect(obj Object) (*Properties, error) {
	layout := obj.Layout()
	if layout == "" {
		return nil, fmt.Errorf("%w: object %T reports no layout", ErrInspection, obj)
	}

	p := &Properties{
		Kind:   obj.Kind(),
		Class:  obj.Class(),
		Layout: layout,
	}

	if br, ok := obj.(BoundsReporter); ok {
		if bbox, ok := br.Bounds(); ok {
			p.BBox = &bbox
		}
	}
	if geometric(layout) && p.BBox == nil {
		return nil, fmt.Errorf("%w: object %T has layout %q but no bounding box",
			ErrInspection, obj, layout)
	}

	if vr, ok := obj.(ValueRanger); ok {
		if min, max, defined := vr.ValueRange(); defined {
			p.ValueMin, p.ValueMax = &min, &max
			// For regular surfaces the vertical extent is the value
			// range; fully undefined surfaces leave it absent.
			if layout == fmuresults.LayoutRegular && p.BBox != nil && p.BBox.Zmin == nil {
				p.BBox.Zmin, p.BBox.Zmax = &min, &max
			}
		}
	}

	if df, ok := obj.(DiscreteFlagger); ok {
		discrete := df.Discrete()
		p.Discrete = &discrete
	}
	if cr, ok := obj.(CoordinateReferenced); ok {
		p.CoordinateReference = cr.CoordinateReference()
	}
	if n, ok := obj.(Named); ok {
		p.Name = normalizeName(obj, n.ObjectName())
	}
	if sp, ok := obj.(SpecProvider); ok {
		p.Spec = sp.SpecBlock()
	}
	if ts, ok := obj.(TableShaped); ok {
		p.TableColumns = ts.ColumnNames()
	}

	return p, nil
}

// normalizeName filters out the placeholder names some modeling tools
// assign to unnamed objects.
func normalizeName(obj Object, name string) string {
	switch {
	case name == "unknown":
		return ""
	case name == "poly" && obj.Kind() == registry.KindPolygons:
		return ""
	case name == "noname" && obj.Kind() == registry.KindGrid:
		return ""
	}
	return name
}
