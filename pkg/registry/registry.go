// Package registry is the closed, process-wide table of supported data
// kinds, their valid serialization formats and file extensions, and the
// content-specific metadata requirements. It is read-only for the process
// lifetime; all lookups are pure.
package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/slangeveld/fmu-dataio/pkg/fmuresults"
)

// Sentinel errors for registry lookups.
var (
	ErrUnknownContent    = errors.New("unknown content kind")
	ErrUnsupportedFormat = errors.New("unsupported format for content kind")
)

// Kind is an abstract data kind an object can be exported as.
type Kind string

const (
	KindSurface    Kind = "surface"
	KindGrid       Kind = "grid"
	KindCube       Kind = "cube"
	KindTable      Kind = "table"
	KindPolygons   Kind = "polygons"
	KindPoints     Kind = "points"
	KindDictionary Kind = "dictionary"
	// KindTriangulatedSurface covers fault-room meshes, which serialize
	// as json but live among the maps.
	KindTriangulatedSurface Kind = "triangulated_surface"
)

// validFormats maps each kind to its allowed formats and their default file
// extension. Format strings are unique within a kind.
var validFormats = map[Kind]map[fmuresults.FileFormat]string{
	KindSurface: {
		fmuresults.FormatIrapBinary: ".gri",
	},
	KindGrid: {
		fmuresults.FormatHDF:  ".hdf",
		fmuresults.FormatRoff: ".roff",
	},
	KindCube: {
		fmuresults.FormatSegy: ".segy",
	},
	KindTable: {
		fmuresults.FormatHDF:     ".hdf",
		fmuresults.FormatCSV:     ".csv",
		fmuresults.FormatParquet: ".parquet",
	},
	KindPolygons: {
		fmuresults.FormatHDF:       ".hdf",
		fmuresults.FormatCSV:       ".csv", // columns will be X Y Z, ID
		fmuresults.FormatCSVXtgeo:  ".csv", // keep native columns: X_UTME, ... POLY_ID
		fmuresults.FormatIrapASCII: ".pol",
	},
	KindPoints: {
		fmuresults.FormatHDF:       ".hdf",
		fmuresults.FormatCSV:       ".csv", // columns will be X Y Z
		fmuresults.FormatCSVXtgeo:  ".csv", // keep native columns: X_UTME, Y_UTMN, Z_TVDSS
		fmuresults.FormatIrapASCII: ".poi",
	},
	KindDictionary: {
		fmuresults.FormatJSON: ".json",
	},
	KindTriangulatedSurface: {
		fmuresults.FormatJSON: ".json",
	},
}

// exportFolders maps each kind to its folder under share/results.
var exportFolders = map[Kind]string{
	KindSurface:             "maps",
	KindGrid:                "grids",
	KindCube:                "cubes",
	KindTable:               "tables",
	KindPolygons:            "polygons",
	KindPoints:              "points",
	KindDictionary:          "dictionaries",
	KindTriangulatedSurface: "maps",
}

// standardTableIndexes lists the standard index columns per table content.
var standardTableIndexes = map[fmuresults.Content][]string{
	fmuresults.ContentVolumes:              {"ZONE", "REGION", "FACIES", "LICENSE", "FLUID"},
	fmuresults.ContentRFT:                  {"measured_depth", "well", "time"},
	fmuresults.ContentTimeSeries:           {"DATE"},
	fmuresults.ContentSimulationTimeSeries: {"DATE"},
	fmuresults.ContentWellPicks:            {"WELL", "HORIZON"},
	fmuresults.ContentRelperm:              {"SATNUM"},
}

// Resolve returns the file extension for a (kind, format) pair. It fails
// with ErrUnknownContent for an unregistered kind and ErrUnsupportedFormat
// for a format outside the kind's allowed set.
func Resolve(kind Kind, format fmuresults.FileFormat) (string, error) {
	formats, ok := validFormats[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownContent, kind)
	}
	ext, ok := formats[format]
	if !ok {
		return "", fmt.Errorf("%w: %q not in %v for kind %q",
			ErrUnsupportedFormat, format, Formats(kind), kind)
	}
	return ext, nil
}

// DefaultFormat returns the preferred format for a kind.
func DefaultFormat(kind Kind) fmuresults.FileFormat {
	switch kind {
	case KindSurface:
		return fmuresults.FormatIrapBinary
	case KindGrid:
		return fmuresults.FormatRoff
	case KindCube:
		return fmuresults.FormatSegy
	case KindTable, KindPolygons, KindPoints:
		return fmuresults.FormatCSV
	case KindDictionary, KindTriangulatedSurface:
		return fmuresults.FormatJSON
	}
	return ""
}

// Formats returns the allowed format names for a kind, sorted.
func Formats(kind Kind) []string {
	formats := validFormats[kind]
	names := make([]string, 0, len(formats))
	for f := range formats {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// Kinds returns all registered kinds, sorted.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(validFormats))
	for k := range validFormats {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Folder returns the export folder name for a kind under share/results.
func Folder(kind Kind) (string, error) {
	folder, ok := exportFolders[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownContent, kind)
	}
	return folder, nil
}

// TableIndexColumns returns the standard index columns for a table content
// kind, or nil when the content has no standard index.
func TableIndexColumns(content fmuresults.Content) []string {
	return standardTableIndexes[content]
}
