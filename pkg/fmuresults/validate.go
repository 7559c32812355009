package fmuresults

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	versionPattern  = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)$`)
	checksumPattern = regexp.MustCompile(`^([a-f\d]{32}|[A-F\d]{32})$`)
)

// FieldViolation is one field-level validation failure, addressed by the
// dotted path of the offending field.
type FieldViolation struct {
	Path    string
	Message string
}

func (v FieldViolation) String() string {
	return v.Path + ": " + v.Message
}

// ValidationError aggregates all field-level violations found in a
// document. It is returned in full so the caller can pinpoint the offending
// configuration; no partial metadata file is written on failure.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return fmt.Sprintf("metadata validation failed: %s", strings.Join(msgs, "; "))
}

// violations collects field errors during a validation walk.
type violations struct {
	list []FieldViolation
}

func (v *violations) addf(path, format string, args ...any) {
	v.list = append(v.list, FieldViolation{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (v *violations) err() error {
	if len(v.list) == 0 {
		return nil
	}
	return &ValidationError{Violations: v.list}
}

// contentLayouts lists the layouts each content kind may be exported with.
// An empty entry means any layout is acceptable for that content.
var contentLayouts = map[Content][]Layout{
	ContentDepth:                {LayoutRegular, LayoutCornerpoint, LayoutFaultroomTriangulated, LayoutUnset},
	ContentTime:                 {LayoutRegular, LayoutCornerpoint, LayoutUnset},
	ContentTimeSeries:           {LayoutTable},
	ContentSimulationTimeSeries: {LayoutTable},
	ContentVolumes:              {LayoutTable, LayoutDictionary},
	ContentRFT:                  {LayoutTable},
	ContentRelperm:              {LayoutTable},
	ContentPVT:                  {LayoutTable},
	ContentWellPicks:            {LayoutTable},
	ContentParameters:           {LayoutDictionary, LayoutTable},
}

// Validate checks a fully assembled object document, structurally and
// semantically. All violations found are returned together as a
// *ValidationError; a nil return means the document conforms.
func (m *ObjectMetadata) Validate() error {
	v := &violations{}

	if !versionPattern.MatchString(m.Version) {
		v.addf("version", "must match MAJOR.MINOR.PATCH, got %q", m.Version)
	}
	if m.Schema == "" {
		v.addf("$schema", "must be stamped before validation")
	}
	if m.Masterdata.Smda.CoordinateSystem.Identifier == "" {
		v.addf("masterdata.smda.coordinate_system.identifier", "is required")
	}
	if !m.Access.Classification.Valid() {
		v.addf("access.classification", "invalid value %q", m.Access.Classification)
	}
	if m.FMU.Case.UUID == "" {
		v.addf("fmu.case.uuid", "is required")
	}
	if m.FMU.SimulationMode != "" && !m.FMU.SimulationMode.Valid() {
		v.addf("fmu.simulation_mode", "unknown simulation mode %q", m.FMU.SimulationMode)
	}
	if m.File.RelativePath == "" {
		v.addf("file.relative_path", "is required")
	}
	if m.File.ChecksumMD5 != "" && !checksumPattern.MatchString(m.File.ChecksumMD5) {
		v.addf("file.checksum_md5", "must be 32 hex digits, got %q", m.File.ChecksumMD5)
	}

	m.Data.validate(v)
	m.validateProduct(v)

	return v.err()
}

// Validate checks a case document.
func (m *CaseMetadata) Validate() error {
	v := &violations{}

	if !versionPattern.MatchString(m.Version) {
		v.addf("version", "must match MAJOR.MINOR.PATCH, got %q", m.Version)
	}
	if m.Class != ClassCase {
		v.addf("class", "must be %q, got %q", ClassCase, m.Class)
	}
	if m.FMU.Case.Name == "" {
		v.addf("fmu.case.name", "is required")
	}
	if m.FMU.Case.UUID == "" {
		v.addf("fmu.case.uuid", "is required")
	}
	if m.Masterdata.Smda.CoordinateSystem.Identifier == "" {
		v.addf("masterdata.smda.coordinate_system.identifier", "is required")
	}
	if !m.Access.Classification.Valid() {
		v.addf("access.classification", "invalid value %q", m.Access.Classification)
	}

	return v.err()
}

// validate runs the structural and discriminator checks for the data block.
func (d *Data) validate(v *violations) {
	if !d.Content.Valid() {
		v.addf("data.content", "invalid content %q, valid entries are %v", d.Content, ContentNames())
		return
	}
	if d.Name == "" {
		v.addf("data.name", "is required")
	}

	if layouts, ok := contentLayouts[d.Content]; ok && d.Layout != "" {
		found := false
		for _, l := range layouts {
			if d.Layout == l {
				found = true
				break
			}
		}
		if !found {
			v.addf("data.layout", "layout %q is not valid for content %q", d.Layout, d.Content)
		}
	}

	// Interval endpoints come in pairs.
	if (d.Top == nil) != (d.Base == nil) {
		v.addf("data.top", "'top' and 'base' must both be set or both be unset")
	}

	// Content-conditional blocks, one arm per discriminated variant.
	switch d.Content {
	case ContentProperty, ContentFaultProperties:
		if d.Property == nil {
			v.addf("data.property", "block is required when content is %q", d.Content)
		} else if d.Property.IsDiscrete == nil {
			v.addf("data.property.is_discrete", "is required when content is %q", d.Content)
		}
	case ContentSeismic:
		if d.Seismic == nil {
			v.addf("data.seismic", "block is required when content is \"seismic\"")
		}
	case ContentFluidContact:
		if d.FluidContact == nil {
			v.addf("data.fluid_contact", "block is required when content is \"fluid_contact\"")
		} else if d.FluidContact.Contact == "" {
			v.addf("data.fluid_contact.contact", "is required")
		}
	case ContentFieldOutline:
		if d.FieldOutline == nil {
			v.addf("data.field_outline", "block is required when content is \"field_outline\"")
		}
	case ContentFieldRegion:
		if d.FieldRegion == nil {
			v.addf("data.field_region", "block is required when content is \"field_region\"")
		}
	case ContentDepth:
		if d.VerticalDomain != "" && d.VerticalDomain != DomainDepth {
			v.addf("data.vertical_domain", "must be \"depth\" for depth content, got %q", d.VerticalDomain)
		}
	case ContentTime:
		if d.VerticalDomain != "" && d.VerticalDomain != DomainTime {
			v.addf("data.vertical_domain", "must be \"time\" for time content, got %q", d.VerticalDomain)
		}
	}
}

// validateProduct enforces the product discriminator: the name must be a
// registered variant and the file schema must match its pin exactly.
func (m *ObjectMetadata) validateProduct(v *violations) {
	if m.Product == nil {
		return
	}
	pinned, ok := ProductFileSchema(m.Product.Name)
	if !ok {
		v.addf("product.name", "unknown product %q", m.Product.Name)
		return
	}
	if m.Product.FileSchema == nil {
		v.addf("product.file_schema", "is required for product %q", m.Product.Name)
		return
	}
	if *m.Product.FileSchema != pinned {
		v.addf("product.file_schema", "must match the pinned schema %s (%s) for product %q",
			pinned.Version, pinned.URL, m.Product.Name)
	}
}
