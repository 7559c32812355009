package dataio

import (
	"log/slog"
	"time"

	"github.com/slangeveld/fmu-dataio/internal/config"
	"github.com/slangeveld/fmu-dataio/internal/runcontext"
	"github.com/slangeveld/fmu-dataio/pkg/export"
	"github.com/slangeveld/fmu-dataio/pkg/fmuresults"
	"github.com/slangeveld/fmu-dataio/pkg/objects"
)

// Version exposes the version of the library.
const Version = "0.1.0"

// --- Types ---

// GlobalConfig is the validated global configuration feeding static
// metadata into every export.
type GlobalConfig = config.Global

// ExportData is the per-export settings carrier.
type ExportData = export.ExportData

// CreateCase establishes a case metadata document.
type CreateCase = export.CreateCase

// ObjectMetadata and CaseMetadata are the written document models.
type ObjectMetadata = fmuresults.ObjectMetadata
type CaseMetadata = fmuresults.CaseMetadata

// RunContext is the classified execution context of an export call.
type RunContext = runcontext.RunContext

// Exportable object types.
type RegularSurface = objects.RegularSurface
type Grid = objects.Grid
type GridProperty = objects.GridProperty
type Cube = objects.Cube
type Points = objects.Points
type Polygons = objects.Polygons
type Table = objects.Table
type Dictionary = objects.Dictionary
type FaultRoomSurface = objects.FaultRoomSurface

// --- Configuration ---

// Option defines a functional option for configuring an export.
type Option = export.Option

// WithName overrides the name carried by the object itself.
func WithName(name string) Option { return export.WithName(name) }

// WithTagname sets the tag part of the exported file stem.
func WithTagname(tag string) Option { return export.WithTagname(tag) }

// WithUnit sets the unit of measurement for the data values.
func WithUnit(unit string) Option { return export.WithUnit(unit) }

// WithSubfolder exports into a subfolder below the standard export folder.
func WithSubfolder(sub string) Option { return export.WithSubfolder(sub) }

// WithClassification overrides the configured security classification.
func WithClassification(c fmuresults.Classification) Option {
	return export.WithClassification(c)
}

// WithObservation routes the export under share/observations.
func WithObservation(observation bool) Option { return export.WithObservation(observation) }

// WithWorkflow records the workflow reference the export runs under.
func WithWorkflow(ref string) Option { return export.WithWorkflow(ref) }

// WithTime attaches a single timestamp to the data.
func WithTime(t0 time.Time, label string) Option { return export.WithTime(t0, label) }

// WithLogger sets the logger for the export.
func WithLogger(logger *slog.Logger) Option { return export.WithLogger(logger) }

// --- Factory ---

// LoadConfig reads and validates the global configuration. An empty path
// falls back to the FMU_GLOBAL_CONFIG environment variable.
func LoadConfig(path string) (*GlobalConfig, error) {
	return config.Load(path)
}

// NewExport creates an exporter for the given content kind.
func NewExport(cfg *GlobalConfig, content string, opts ...Option) (*ExportData, error) {
	return export.New(cfg, content, opts...)
}

// --- Operations ---

// DetectRunContext classifies the execution context of the current process.
func DetectRunContext(cwd string) (*RunContext, error) {
	return runcontext.Detect(runcontext.Snapshot(), cwd)
}

// ReadCaseMetadata loads the case document under casePath.
func ReadCaseMetadata(casePath string) (*CaseMetadata, error) {
	return export.ReadCaseMetadata(casePath)
}

// ReadMetadata loads the sibling metadata document for an exported file.
func ReadMetadata(dataPath string) (*ObjectMetadata, error) {
	return export.ReadMetadata(dataPath)
}
