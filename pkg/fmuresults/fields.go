package fmuresults

import "time"

// Asset names the asset a data object belongs to.
type Asset struct {
	Name string `yaml:"name" json:"name"`
}

// Access holds the security classification of a data object and the asset
// it belongs to.
type Access struct {
	Asset          Asset          `yaml:"asset" json:"asset"`
	Classification Classification `yaml:"classification" json:"classification"`
}

// CoordinateSystem identifies the coordinate reference system in the
// masterdata inventory.
type CoordinateSystem struct {
	Identifier string `yaml:"identifier" json:"identifier"`
	UUID       string `yaml:"uuid" json:"uuid"`
}

// CountryItem identifies a country in the masterdata inventory.
type CountryItem struct {
	Identifier string `yaml:"identifier" json:"identifier"`
	UUID       string `yaml:"uuid" json:"uuid"`
}

// DiscoveryItem identifies a discovery in the masterdata inventory.
type DiscoveryItem struct {
	ShortIdentifier string `yaml:"short_identifier" json:"short_identifier"`
	UUID            string `yaml:"uuid" json:"uuid"`
}

// FieldItem identifies a field in the masterdata inventory.
type FieldItem struct {
	Identifier string `yaml:"identifier" json:"identifier"`
	UUID       string `yaml:"uuid" json:"uuid"`
}

// StratigraphicColumn identifies the stratigraphic column in the masterdata
// inventory.
type StratigraphicColumn struct {
	Identifier string `yaml:"identifier" json:"identifier"`
	UUID       string `yaml:"uuid" json:"uuid"`
}

// Smda is the masterdata block sourced from the SMDA inventory.
type Smda struct {
	CoordinateSystem    CoordinateSystem    `yaml:"coordinate_system" json:"coordinate_system"`
	Country             []CountryItem       `yaml:"country" json:"country"`
	Discovery           []DiscoveryItem     `yaml:"discovery" json:"discovery"`
	Field               []FieldItem         `yaml:"field" json:"field"`
	StratigraphicColumn StratigraphicColumn `yaml:"stratigraphic_column" json:"stratigraphic_column"`
}

// Masterdata carries static identifiers from the masterdata inventories.
// It is required and non-null in every document.
type Masterdata struct {
	Smda Smda `yaml:"smda" json:"smda"`
}

// Model describes the model used to produce the data.
type Model struct {
	Name     string `yaml:"name" json:"name"`
	Revision string `yaml:"revision" json:"revision"`
}

// User identifies the user that produced the data.
type User struct {
	ID string `yaml:"id" json:"id"`
}

// Case identifies the case all exports of a run hierarchy belong to.
type Case struct {
	Name        string   `yaml:"name" json:"name"`
	UUID        string   `yaml:"uuid" json:"uuid"`
	User        User     `yaml:"user" json:"user"`
	Description []string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Workflow references the workflow a data object was produced by.
type Workflow struct {
	Reference string `yaml:"reference" json:"reference"`
}

// Realization describes the realization a data object was exported from.
type Realization struct {
	ID         int            `yaml:"id" json:"id"`
	Name       string         `yaml:"name" json:"name"`
	UUID       string         `yaml:"uuid" json:"uuid"`
	Parameters map[string]any `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// Ensemble describes the ensemble (iteration) a data object was exported
// from. RestartFrom is set when the run was restarted from a prior ensemble.
type Ensemble struct {
	ID          int    `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	UUID        string `yaml:"uuid" json:"uuid"`
	RestartFrom string `yaml:"restart_from,omitempty" json:"restart_from,omitempty"`
}

// Context tells at which stage of the run hierarchy the data were generated.
type Context struct {
	Stage FMUContext `yaml:"stage" json:"stage"`
}

// FMU is the case/run provenance block of a metadata document.
type FMU struct {
	Case           Case           `yaml:"case" json:"case"`
	Model          *Model         `yaml:"model,omitempty" json:"model,omitempty"`
	Context        *Context       `yaml:"context,omitempty" json:"context,omitempty"`
	Workflow       *Workflow      `yaml:"workflow,omitempty" json:"workflow,omitempty"`
	Realization    *Realization   `yaml:"realization,omitempty" json:"realization,omitempty"`
	Ensemble       *Ensemble      `yaml:"ensemble,omitempty" json:"ensemble,omitempty"`
	RunPath        string         `yaml:"runpath,omitempty" json:"runpath,omitempty"`
	ExperimentID   string         `yaml:"experiment_id,omitempty" json:"experiment_id,omitempty"`
	SimulationMode SimulationMode `yaml:"simulation_mode,omitempty" json:"simulation_mode,omitempty"`
}

// File describes the exported file a metadata document accompanies.
type File struct {
	RelativePath string `yaml:"relative_path" json:"relative_path"`
	AbsolutePath string `yaml:"absolute_path,omitempty" json:"absolute_path,omitempty"`
	ChecksumMD5  string `yaml:"checksum_md5" json:"checksum_md5"`
	SizeBytes    int64  `yaml:"size_bytes,omitempty" json:"size_bytes,omitempty"`
}

// TrackLogEvent is a single provenance event on a document.
type TrackLogEvent struct {
	Datetime time.Time         `yaml:"datetime" json:"datetime"`
	Event    TrackLogEventType `yaml:"event" json:"event"`
	User     User              `yaml:"user" json:"user"`
}
