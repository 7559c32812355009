package fmuresults

import (
	"fmt"
	"sort"
)

// Content is the content type of a data object. It is the discriminator
// for the data block: unknown values are rejected, never passed through.
type Content string

const (
	ContentDepth                Content = "depth"
	ContentFaciesThickness      Content = "facies_thickness"
	ContentFaultLines           Content = "fault_lines"
	ContentFaultProperties      Content = "fault_properties"
	ContentFieldOutline         Content = "field_outline"
	ContentFieldRegion          Content = "field_region"
	ContentFluidContact         Content = "fluid_contact"
	ContentKHProduct            Content = "khproduct"
	ContentLiftCurves           Content = "lift_curves"
	ContentNamedArea            Content = "named_area"
	ContentParameters           Content = "parameters"
	ContentPinchout             Content = "pinchout"
	ContentProperty             Content = "property"
	ContentPVT                  Content = "pvt"
	ContentRegions              Content = "regions"
	ContentRelperm              Content = "relperm"
	ContentRFT                  Content = "rft"
	ContentSeismic              Content = "seismic"
	ContentSimulationTimeSeries Content = "simulationtimeseries"
	ContentSubcrop              Content = "subcrop"
	ContentThickness            Content = "thickness"
	ContentTime                 Content = "time"
	ContentTimeSeries           Content = "timeseries"
	ContentTransmissibilities   Content = "transmissibilities"
	ContentVelocity             Content = "velocity"
	ContentVolumes              Content = "volumes"
	ContentWellPicks            Content = "wellpicks"
)

var allContents = map[Content]struct{}{
	ContentDepth: {}, ContentFaciesThickness: {}, ContentFaultLines: {},
	ContentFaultProperties: {}, ContentFieldOutline: {}, ContentFieldRegion: {},
	ContentFluidContact: {}, ContentKHProduct: {}, ContentLiftCurves: {},
	ContentNamedArea: {}, ContentParameters: {}, ContentPinchout: {},
	ContentProperty: {}, ContentPVT: {}, ContentRegions: {}, ContentRelperm: {},
	ContentRFT: {}, ContentSeismic: {}, ContentSimulationTimeSeries: {},
	ContentSubcrop: {}, ContentThickness: {}, ContentTime: {},
	ContentTimeSeries: {}, ContentTransmissibilities: {}, ContentVelocity: {},
	ContentVolumes: {}, ContentWellPicks: {},
}

// ParseContent maps a free-form string onto the closed Content set.
func ParseContent(s string) (Content, error) {
	c := Content(s)
	if _, ok := allContents[c]; !ok {
		return "", fmt.Errorf("invalid content %q, valid entries are %v", s, ContentNames())
	}
	return c, nil
}

// Valid reports whether the content is a member of the closed set.
func (c Content) Valid() bool {
	_, ok := allContents[c]
	return ok
}

// ContentNames returns the valid content names, sorted.
func ContentNames() []string {
	names := make([]string, 0, len(allContents))
	for c := range allContents {
		names = append(names, string(c))
	}
	sort.Strings(names)
	return names
}

// Classification is the security classification for a data object.
type Classification string

const (
	ClassificationAsset      Classification = "asset"
	ClassificationInternal   Classification = "internal"
	ClassificationRestricted Classification = "restricted"
)

// Valid reports whether the classification is known.
func (c Classification) Valid() bool {
	switch c {
	case ClassificationAsset, ClassificationInternal, ClassificationRestricted:
		return true
	}
	return false
}

// Layout describes how the values of a data object are arranged.
type Layout string

const (
	LayoutRegular               Layout = "regular"
	LayoutUnset                 Layout = "unset"
	LayoutCornerpoint           Layout = "cornerpoint"
	LayoutTable                 Layout = "table"
	LayoutDictionary            Layout = "dictionary"
	LayoutFaultroomTriangulated Layout = "faultroom_triangulated"
)

// Class is the FMU class of a metadata document.
type Class string

const (
	ClassCase           Class = "case"
	ClassRealization    Class = "realization"
	ClassEnsemble       Class = "ensemble"
	ClassSurface        Class = "surface"
	ClassTable          Class = "table"
	ClassCPGrid         Class = "cpgrid"
	ClassCPGridProperty Class = "cpgrid_property"
	ClassPolygons       Class = "polygons"
	ClassCube           Class = "cube"
	ClassWell           Class = "well"
	ClassPoints         Class = "points"
	ClassDictionary     Class = "dictionary"
)

// FMUContext tells which level of the run hierarchy data were generated in.
type FMUContext string

const (
	ContextCase        FMUContext = "case"
	ContextEnsemble    FMUContext = "ensemble"
	ContextRealization FMUContext = "realization"
)

// VerticalDomain is the vertical domain of coordinate-based data.
type VerticalDomain string

const (
	DomainDepth VerticalDomain = "depth"
	DomainTime  VerticalDomain = "time"
)

// DomainReference is the reference for the vertical scale of the data.
type DomainReference string

const (
	ReferenceMSL DomainReference = "msl"
	ReferenceSB  DomainReference = "sb"
	ReferenceRKB DomainReference = "rkb"
)

// FileFormat is a known serialization format.
type FileFormat string

const (
	FormatIrapBinary FileFormat = "irap_binary"
	FormatIrapASCII  FileFormat = "irap_ascii"
	FormatRoff       FileFormat = "roff"
	FormatSegy       FileFormat = "segy"
	FormatCSV        FileFormat = "csv"
	FormatCSVXtgeo   FileFormat = "csv|xtgeo"
	FormatParquet    FileFormat = "parquet"
	FormatHDF        FileFormat = "hdf"
	FormatJSON       FileFormat = "json"
)

// SimulationMode is the mode the ensemble orchestrator was run in.
type SimulationMode string

const (
	ModeEnsembleExperiment        SimulationMode = "ensemble_experiment"
	ModeEnsembleSmoother          SimulationMode = "ensemble_smoother"
	ModeESMDA                     SimulationMode = "es_mda"
	ModeEvaluateEnsemble          SimulationMode = "evaluate_ensemble"
	ModeIterativeEnsembleSmoother SimulationMode = "iterative_ensemble_smoother"
	ModeManualUpdate              SimulationMode = "manual_update"
	ModeTestRun                   SimulationMode = "test_run"
	ModeWorkflow                  SimulationMode = "workflow"
)

// Valid reports whether the value is a known orchestrator mode.
func (m SimulationMode) Valid() bool {
	switch m {
	case ModeEnsembleExperiment, ModeEnsembleSmoother, ModeESMDA,
		ModeEvaluateEnsemble, ModeIterativeEnsembleSmoother,
		ModeManualUpdate, ModeTestRun, ModeWorkflow:
		return true
	}
	return false
}

// ProductName identifies a standardized downstream product.
type ProductName string

const (
	ProductInplaceVolumes ProductName = "inplace_volumes"
)

// TrackLogEventType is the type of event being logged.
type TrackLogEventType string

const (
	EventCreated TrackLogEventType = "created"
	EventUpdated TrackLogEventType = "updated"
	EventMerged  TrackLogEventType = "merged"
)
