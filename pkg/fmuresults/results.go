// Package fmuresults holds the versioned metadata document model for FMU
// results: the case and object documents written alongside exported data,
// and the validation rules downstream consumers rely on.
package fmuresults

import (
	"time"

	"github.com/slangeveld/fmu-dataio/pkg/schema"
)

// SchemaVersion is the current version of the fmu_results schema.
const SchemaVersion = "0.9.0"

// SchemaFilename is the published filename of the fmu_results schema.
const SchemaFilename = "fmu_results.json"

// SchemaInfo returns the identity of the fmu_results schema.
func SchemaInfo() schema.Info {
	return schema.Info{Version: SchemaVersion, Filename: SchemaFilename}
}

// ObjectMetadata is the metadata document written alongside one exported
// data object. It is constructed fresh per export and never mutated once
// written.
type ObjectMetadata struct {
	Schema  string `yaml:"$schema" json:"$schema"`
	Version string `yaml:"version" json:"version"`
	Source  string `yaml:"source" json:"source"`
	Class   Class  `yaml:"class" json:"class"`

	FMU        FMU        `yaml:"fmu" json:"fmu"`
	Masterdata Masterdata `yaml:"masterdata" json:"masterdata"`
	Access     Access     `yaml:"access" json:"access"`
	Data       Data       `yaml:"data" json:"data"`
	File       File       `yaml:"file" json:"file"`
	Product    *Product   `yaml:"product,omitempty" json:"product,omitempty"`

	TrackLog []TrackLogEvent `yaml:"tracklog" json:"tracklog"`
}

// CaseMetadata is the case-level document created once per case, before any
// realization exports. Per-object documents reference its case UUID.
type CaseMetadata struct {
	Schema  string `yaml:"$schema" json:"$schema"`
	Version string `yaml:"version" json:"version"`
	Source  string `yaml:"source" json:"source"`
	Class   Class  `yaml:"class" json:"class"`

	FMU        FMU        `yaml:"fmu" json:"fmu"`
	Masterdata Masterdata `yaml:"masterdata" json:"masterdata"`
	Access     Access     `yaml:"access" json:"access"`

	TrackLog []TrackLogEvent `yaml:"tracklog" json:"tracklog"`
}

// Stamp fills the schema identity and creation tracklog of an object
// document. Stamped fields are immutable once the document is written.
func (m *ObjectMetadata) Stamp(user string, now time.Time) {
	m.Schema = SchemaInfo().URL()
	m.Version = SchemaVersion
	m.Source = "fmu"
	m.TrackLog = []TrackLogEvent{{Datetime: now.UTC(), Event: EventCreated, User: User{ID: user}}}
}

// Stamp fills the schema identity and creation tracklog of a case document.
func (m *CaseMetadata) Stamp(user string, now time.Time) {
	m.Schema = SchemaInfo().URL()
	m.Version = SchemaVersion
	m.Source = "fmu"
	m.Class = ClassCase
	m.TrackLog = []TrackLogEvent{{Datetime: now.UTC(), Event: EventCreated, User: User{ID: user}}}
}
