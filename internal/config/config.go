// Package config loads and validates the global configuration file that
// feeds static metadata (masterdata, access defaults, model info and the
// stratigraphic inventory) into every export.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/slangeveld/fmu-dataio/pkg/fmuresults"
	"github.com/slangeveld/fmu-dataio/pkg/git"
)

// EnvGlobalConfig points at the global configuration file when no explicit
// path is given.
const EnvGlobalConfig = "FMU_GLOBAL_CONFIG"

// DefaultPath is where the configuration lives relative to a model
// directory, by FMU project convention.
const DefaultPath = "fmuconfig/output/global_variables.yml"

// Element is one entry in the stratigraphic inventory. Keys in the
// Stratigraphy map are the names used inside the modeling project; Name is
// the official (SMDA) name the metadata must carry.
type Element struct {
	Name               string   `yaml:"name"`
	Stratigraphic      bool     `yaml:"stratigraphic"`
	Alias              []string `yaml:"alias"`
	StratigraphicAlias []string `yaml:"stratigraphic_alias"`
}

// Stratigraphy maps project-internal names to their inventory entries.
type Stratigraphy map[string]Element

// Lookup resolves a project-internal name to its inventory entry. The
// match is case-insensitive: viper lowercases configuration keys, while
// modeling projects use mixed-case horizon names.
func (s Stratigraphy) Lookup(name string) (Element, bool) {
	if el, ok := s[name]; ok {
		return el, true
	}
	for key, el := range s {
		if strings.EqualFold(key, name) {
			return el, true
		}
	}
	return Element{}, false
}

// Global is the validated global configuration.
type Global struct {
	Masterdata   fmuresults.Masterdata `yaml:"masterdata"`
	Access       fmuresults.Access     `yaml:"access"`
	Model        fmuresults.Model      `yaml:"model"`
	Stratigraphy Stratigraphy          `yaml:"stratigraphy"`
}

// Load reads and validates the global configuration at path. When path is
// empty the EnvGlobalConfig environment variable is consulted instead.
func Load(path string) (*Global, error) {
	if path == "" {
		path = os.Getenv(EnvGlobalConfig)
	}
	if path == "" {
		return nil, fmt.Errorf("no global configuration: pass a path or set %s", EnvGlobalConfig)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read global configuration %s: %w", path, err)
	}

	var cfg Global
	// The shared metadata structs are tagged for yaml, not mapstructure.
	decodeYAML := func(dc *mapstructure.DecoderConfig) { dc.TagName = "yaml" }
	if err := v.Unmarshal(&cfg, decodeYAML); err != nil {
		return nil, fmt.Errorf("decode global configuration %s: %w", path, err)
	}

	// Model directories are git checkouts by convention; an unpinned model
	// revision falls back to the checkout's revision.
	if cfg.Model.Revision == "" {
		cfg.Model.Revision = checkoutRevision(filepath.Dir(path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid global configuration %s: %w", path, err)
	}
	return &cfg, nil
}

// checkoutRevision derives a revision from the checkout containing dir: the
// nearest tag or commit hash, with the branch name as a last resort.
func checkoutRevision(dir string) string {
	client := git.NewClient(dir, slog.Default())
	if rev, err := client.Describe(); err == nil && rev != "" {
		return rev
	}
	if branch, err := client.Branch(); err == nil {
		return branch
	}
	return ""
}

// FindPath walks upward from dir looking for the conventional configuration
// location, so exports started anywhere inside a model directory find it.
func FindPath(dir string) (string, error) {
	for {
		candidate := filepath.Join(dir, DefaultPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found above %s", DefaultPath, dir)
		}
		dir = parent
	}
}

// Validate checks the blocks every export depends on. A configuration that
// fails here fails the whole export before anything is written.
func (g *Global) Validate() error {
	smda := g.Masterdata.Smda
	if smda.CoordinateSystem.Identifier == "" || smda.CoordinateSystem.UUID == "" {
		return fmt.Errorf("masterdata.smda.coordinate_system is incomplete")
	}
	if len(smda.Country) == 0 {
		return fmt.Errorf("masterdata.smda.country is empty")
	}
	if len(smda.Field) == 0 {
		return fmt.Errorf("masterdata.smda.field is empty")
	}
	if smda.StratigraphicColumn.Identifier == "" {
		return fmt.Errorf("masterdata.smda.stratigraphic_column is incomplete")
	}

	if g.Access.Asset.Name == "" {
		return fmt.Errorf("access.asset.name is required")
	}
	if g.Access.Classification != "" && !g.Access.Classification.Valid() {
		return fmt.Errorf("access.classification %q is not a valid classification", g.Access.Classification)
	}

	if g.Model.Name == "" || g.Model.Revision == "" {
		return fmt.Errorf("model.name and model.revision are required")
	}

	for key, el := range g.Stratigraphy {
		if el.Name == "" {
			return fmt.Errorf("stratigraphy entry %q has no official name", key)
		}
	}

	return nil
}
