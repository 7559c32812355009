package fmuresults

import "time"

// Timestamp is a datetime being marked plus a free label for it.
type Timestamp struct {
	Value time.Time `yaml:"value" json:"value"`
	Label string    `yaml:"label,omitempty" json:"label,omitempty"`
}

// Time holds up to two timestamps for a data object, like simulator restart
// dates or dates for seismic 4D surveys.
type Time struct {
	T0 Timestamp  `yaml:"t0" json:"t0"`
	T1 *Timestamp `yaml:"t1,omitempty" json:"t1,omitempty"`
}

// Seismic describes seismic data. Shall be present when data.content is
// "seismic".
type Seismic struct {
	Attribute      string   `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	Calculation    string   `yaml:"calculation,omitempty" json:"calculation,omitempty"`
	FilterSize     *float64 `yaml:"filter_size,omitempty" json:"filter_size,omitempty"`
	ScalingFactor  *float64 `yaml:"scaling_factor,omitempty" json:"scaling_factor,omitempty"`
	StackingOffset string   `yaml:"stacking_offset,omitempty" json:"stacking_offset,omitempty"`
	ZRange         *float64 `yaml:"zrange,omitempty" json:"zrange,omitempty"`
}

// Property describes property data. Shall be present when data.content is
// "property".
type Property struct {
	Attribute  string `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	IsDiscrete *bool  `yaml:"is_discrete" json:"is_discrete"`
}

// FluidContact describes a fluid contact. Shall be present when
// data.content is "fluid_contact".
type FluidContact struct {
	Contact   string `yaml:"contact" json:"contact"`
	Truncated bool   `yaml:"truncated" json:"truncated"`
}

// FieldOutline describes a field outline. Shall be present when
// data.content is "field_outline".
type FieldOutline struct {
	Contact string `yaml:"contact" json:"contact"`
}

// FieldRegion describes a field region. Shall be present when data.content
// is "field_region".
type FieldRegion struct {
	ID int `yaml:"id" json:"id"`
}

// Geometry links a derived object (e.g. a grid property) to the geometry it
// was derived from.
type Geometry struct {
	Name         string `yaml:"name" json:"name"`
	RelativePath string `yaml:"relative_path" json:"relative_path"`
}

// Layer represents one side, top or base, of a stratigraphic interval.
type Layer struct {
	Name          string  `yaml:"name" json:"name"`
	Offset        float64 `yaml:"offset" json:"offset"`
	Stratigraphic bool    `yaml:"stratigraphic" json:"stratigraphic"`
}

// BoundingBox holds the coordinates within which a data object is
// contained. Zmin/Zmax are nil for 2D objects and for objects whose values
// are entirely undefined.
type BoundingBox struct {
	Xmin float64  `yaml:"xmin" json:"xmin"`
	Xmax float64  `yaml:"xmax" json:"xmax"`
	Ymin float64  `yaml:"ymin" json:"ymin"`
	Ymax float64  `yaml:"ymax" json:"ymax"`
	Zmin *float64 `yaml:"zmin,omitempty" json:"zmin,omitempty"`
	Zmax *float64 `yaml:"zmax,omitempty" json:"zmax,omitempty"`
}

// SurfaceSpec is the spec block for regular surfaces.
type SurfaceSpec struct {
	Ncol     int     `yaml:"ncol" json:"ncol"`
	Nrow     int     `yaml:"nrow" json:"nrow"`
	Xori     float64 `yaml:"xori" json:"xori"`
	Yori     float64 `yaml:"yori" json:"yori"`
	Xinc     float64 `yaml:"xinc" json:"xinc"`
	Yinc     float64 `yaml:"yinc" json:"yinc"`
	Rotation float64 `yaml:"rotation" json:"rotation"`
	Undef    float64 `yaml:"undef" json:"undef"`
	Yflip    int     `yaml:"yflip" json:"yflip"`
}

// GridSpec is the spec block for cornerpoint grids and grid properties.
type GridSpec struct {
	Ncol int `yaml:"ncol" json:"ncol"`
	Nrow int `yaml:"nrow" json:"nrow"`
	Nlay int `yaml:"nlay" json:"nlay"`
}

// CubeSpec is the spec block for seismic cubes.
type CubeSpec struct {
	Ncol  int     `yaml:"ncol" json:"ncol"`
	Nrow  int     `yaml:"nrow" json:"nrow"`
	Nlay  int     `yaml:"nlay" json:"nlay"`
	Xori  float64 `yaml:"xori" json:"xori"`
	Yori  float64 `yaml:"yori" json:"yori"`
	Zori  float64 `yaml:"zori" json:"zori"`
	Xinc  float64 `yaml:"xinc" json:"xinc"`
	Yinc  float64 `yaml:"yinc" json:"yinc"`
	Zinc  float64 `yaml:"zinc" json:"zinc"`
	Yflip int     `yaml:"yflip" json:"yflip"`
}

// TableSpec is the spec block for tabular data.
type TableSpec struct {
	Columns []string `yaml:"columns" json:"columns"`
	Size    int      `yaml:"size" json:"size"`
}

// XYZSpec is the spec block for points and polygons.
type XYZSpec struct {
	Attributes []string `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Size       int      `yaml:"size" json:"size"`
}

// FaultRoomSpec is the spec block for triangulated fault-room surfaces.
type FaultRoomSpec struct {
	Horizons        []string `yaml:"horizons" json:"horizons"`
	Faults          []string `yaml:"faults" json:"faults"`
	JuxtapositionHW []string `yaml:"juxtaposition_hw" json:"juxtaposition_hw"`
	JuxtapositionFW []string `yaml:"juxtaposition_fw" json:"juxtaposition_fw"`
	Properties      []string `yaml:"properties" json:"properties"`
	Name            string   `yaml:"name" json:"name"`
}

// Data is the data block of an object metadata document. The Content field
// discriminates which of the conditional sub-blocks must be present; see
// Validate.
type Data struct {
	Content Content `yaml:"content" json:"content"`

	Name          string   `yaml:"name" json:"name"`
	Alias         []string `yaml:"alias,omitempty" json:"alias,omitempty"`
	Tagname       string   `yaml:"tagname,omitempty" json:"tagname,omitempty"`
	Stratigraphic bool     `yaml:"stratigraphic" json:"stratigraphic"`
	Description   []string `yaml:"description,omitempty" json:"description,omitempty"`

	Format FileFormat   `yaml:"format" json:"format"`
	Layout Layout       `yaml:"layout,omitempty" json:"layout,omitempty"`
	BBox   *BoundingBox `yaml:"bbox,omitempty" json:"bbox,omitempty"`
	Spec   any          `yaml:"spec,omitempty" json:"spec,omitempty"`

	Unit            string          `yaml:"unit" json:"unit"`
	VerticalDomain  VerticalDomain  `yaml:"vertical_domain,omitempty" json:"vertical_domain,omitempty"`
	DomainReference DomainReference `yaml:"domain_reference,omitempty" json:"domain_reference,omitempty"`

	IsObservation bool    `yaml:"is_observation" json:"is_observation"`
	IsPrediction  bool    `yaml:"is_prediction" json:"is_prediction"`
	Offset        float64 `yaml:"offset" json:"offset"`
	UndefIsZero   *bool   `yaml:"undef_is_zero,omitempty" json:"undef_is_zero,omitempty"`

	Geometry   *Geometry `yaml:"geometry,omitempty" json:"geometry,omitempty"`
	Time       *Time     `yaml:"time,omitempty" json:"time,omitempty"`
	TableIndex []string  `yaml:"table_index,omitempty" json:"table_index,omitempty"`

	Top  *Layer `yaml:"top,omitempty" json:"top,omitempty"`
	Base *Layer `yaml:"base,omitempty" json:"base,omitempty"`

	Property     *Property     `yaml:"property,omitempty" json:"property,omitempty"`
	Seismic      *Seismic      `yaml:"seismic,omitempty" json:"seismic,omitempty"`
	FluidContact *FluidContact `yaml:"fluid_contact,omitempty" json:"fluid_contact,omitempty"`
	FieldOutline *FieldOutline `yaml:"field_outline,omitempty" json:"field_outline,omitempty"`
	FieldRegion  *FieldRegion  `yaml:"field_region,omitempty" json:"field_region,omitempty"`
}
