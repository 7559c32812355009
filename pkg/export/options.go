package export

import (
	"log/slog"
	"time"

	"github.com/slangeveld/fmu-dataio/internal/runcontext"
	"github.com/slangeveld/fmu-dataio/pkg/fmuresults"
)

// Option configures an ExportData instance.
type Option func(*ExportData)

// WithName overrides the name carried by the object itself. Names present
// in the stratigraphic inventory are translated to their official form.
func WithName(name string) Option {
	return func(e *ExportData) { e.name = name }
}

// WithTagname sets the tag part of the exported file stem and metadata.
func WithTagname(tag string) Option {
	return func(e *ExportData) { e.tagname = tag }
}

// WithUnit sets the unit of measurement for the data values.
func WithUnit(unit string) Option {
	return func(e *ExportData) { e.unit = unit }
}

// WithSubfolder exports into a subfolder below the standard export folder.
func WithSubfolder(subfolder string) Option {
	return func(e *ExportData) { e.subfolder = subfolder }
}

// WithForceFolder replaces the standard export folder for the object's
// kind. Downstream indexing keys on folders, so this is for the exceptional
// setups only.
func WithForceFolder(folder string) Option {
	return func(e *ExportData) { e.forceFolder = folder }
}

// WithDescription attaches free-text description lines. A single string
// with newlines is split by the caller; each entry is one line.
func WithDescription(lines ...string) Option {
	return func(e *ExportData) { e.description = append(e.description, lines...) }
}

// WithClassification overrides the security classification from the global
// configuration.
func WithClassification(c fmuresults.Classification) Option {
	return func(e *ExportData) { e.classification = c }
}

// WithVerticalDomain sets the vertical domain and its reference.
func WithVerticalDomain(domain fmuresults.VerticalDomain, ref fmuresults.DomainReference) Option {
	return func(e *ExportData) {
		e.verticalDomain = domain
		e.domainReference = ref
	}
}

// WithObservation marks the export as an observation, routed under
// share/observations instead of share/results.
func WithObservation(observation bool) Option {
	return func(e *ExportData) { e.isObservation = observation }
}

// WithPrediction marks the data as a prediction.
func WithPrediction(prediction bool) Option {
	return func(e *ExportData) { e.isPrediction = prediction }
}

// WithFormat overrides the default serialization format for the object's
// kind. The format must be registered for the kind or the export fails.
func WithFormat(format fmuresults.FileFormat) Option {
	return func(e *ExportData) { e.format = format }
}

// WithWorkflow records the workflow reference the export runs under.
func WithWorkflow(reference string) Option {
	return func(e *ExportData) { e.workflow = reference }
}

// WithTime attaches a single timestamp to the data.
func WithTime(t0 time.Time, label string) Option {
	return func(e *ExportData) {
		e.timeData = &fmuresults.Time{T0: fmuresults.Timestamp{Value: t0, Label: label}}
	}
}

// WithTimeInterval attaches a 4D-style timestamp pair to the data.
func WithTimeInterval(t0 time.Time, label0 string, t1 time.Time, label1 string) Option {
	return func(e *ExportData) {
		e.timeData = &fmuresults.Time{
			T0: fmuresults.Timestamp{Value: t0, Label: label0},
			T1: &fmuresults.Timestamp{Value: t1, Label: label1},
		}
	}
}

// WithProperty attaches the property block required by property content.
func WithProperty(attribute string, isDiscrete bool) Option {
	return func(e *ExportData) {
		e.property = &fmuresults.Property{Attribute: attribute, IsDiscrete: &isDiscrete}
	}
}

// WithSeismic attaches the seismic block required by seismic content.
func WithSeismic(s fmuresults.Seismic) Option {
	return func(e *ExportData) { e.seismic = &s }
}

// WithFluidContact attaches the fluid contact block required by
// fluid_contact content.
func WithFluidContact(contact string, truncated bool) Option {
	return func(e *ExportData) {
		e.fluidContact = &fmuresults.FluidContact{Contact: contact, Truncated: truncated}
	}
}

// WithFieldOutline attaches the field outline block required by
// field_outline content.
func WithFieldOutline(contact string) Option {
	return func(e *ExportData) {
		e.fieldOutline = &fmuresults.FieldOutline{Contact: contact}
	}
}

// WithFieldRegion attaches the field region block required by field_region
// content.
func WithFieldRegion(id int) Option {
	return func(e *ExportData) {
		e.fieldRegion = &fmuresults.FieldRegion{ID: id}
	}
}

// WithGeometry links the export to the geometry it was derived from.
func WithGeometry(name, relativePath string) Option {
	return func(e *ExportData) {
		e.geometry = &fmuresults.Geometry{Name: name, RelativePath: relativePath}
	}
}

// WithTableIndex overrides the standard index columns for tabular exports.
func WithTableIndex(columns ...string) Option {
	return func(e *ExportData) { e.tableIndex = columns }
}

// WithProduct tags the export as a standardized product. Unknown product
// names fail at export time.
func WithProduct(name fmuresults.ProductName) Option {
	return func(e *ExportData) { e.productName = name }
}

// WithUndefIsZero declares that undefined values mean zero.
func WithUndefIsZero(yes bool) Option {
	return func(e *ExportData) { e.undefIsZero = &yes }
}

// WithCaseName names the case when no case metadata exists, as in
// interactive sessions outside an established case.
func WithCaseName(name string) Option {
	return func(e *ExportData) { e.caseName = name }
}

// WithRunContext injects a pre-resolved run context instead of detecting
// one from the process environment.
func WithRunContext(rc *runcontext.RunContext) Option {
	return func(e *ExportData) { e.rc = rc }
}

// WithLogger sets the logger for the export.
func WithLogger(logger *slog.Logger) Option {
	return func(e *ExportData) { e.logger = logger }
}

// WithClock injects the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *ExportData) { e.now = now }
}
