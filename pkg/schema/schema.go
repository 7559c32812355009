// Package schema generates and publishes the JSON Schemas that downstream
// consumers validate metadata documents against.
//
// Generation is a two step pipeline: a base reflection step producing plain
// JSON Schema from the Go model types, followed by an ordered list of
// transform passes applied as plain functions over the generated structure.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/invopop/jsonschema"
)

const (
	// DevURL and ProdURL are the schema deployment hosts. The host is the
	// only part that differs between deployment targets.
	DevURL  = "https://main-fmu-schemas-dev.radix.equinor.com"
	ProdURL = "https://main-fmu-schemas-prod.radix.equinor.com"

	// DevEnvName is the environment flag selecting the dev host.
	DevEnvName = "DEV_SCHEMA"

	// RootPath is the first path segment of every published schema.
	RootPath = "schemas"
)

// BaseURL returns the deployment host, selected by the DEV_SCHEMA
// environment flag. The flag is read at call time, not at process start.
func BaseURL() string {
	if os.Getenv(DevEnvName) != "" {
		return DevURL
	}
	return ProdURL
}

// Info is the identity of one published schema: its version and filename
// determine both the on-disk path and the published URL.
type Info struct {
	Version  string
	Filename string
}

// Path returns the canonical on-disk path, schemas/<version>/<filename>.
func (i Info) Path() string {
	return path.Join(RootPath, i.Version, i.Filename)
}

// URL returns the published URL for the schema under the active host.
func (i Info) URL() string {
	return BaseURL() + "/" + i.Path()
}

// Pass is one transform applied to a generated schema structure. Passes
// receive and return generic JSON trees (maps, slices, scalars).
type Pass func(any) any

// RemoveDiscriminatorMapping strips ["discriminator"]["mapping"] entries.
// OpenAPI understands the mapping annotation, plain JSON Schema does not.
func RemoveDiscriminatorMapping(data any) any {
	switch v := data.(type) {
	case map[string]any:
		if d, ok := v["discriminator"].(map[string]any); ok {
			delete(d, "mapping")
		}
		for key, value := range v {
			v[key] = RemoveDiscriminatorMapping(value)
		}
		return v
	case []any:
		for i, element := range v {
			v[i] = RemoveDiscriminatorMapping(element)
		}
		return v
	}
	return data
}

// RemoveFormatPath strips "format": "path" entries, which are valid in an
// OpenAPI context only.
func RemoveFormatPath(data any) any {
	switch v := data.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			if key == "format" && value == "path" {
				continue
			}
			out[key] = RemoveFormatPath(value)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, element := range v {
			out[i] = RemoveFormatPath(element)
		}
		return out
	}
	return data
}

// StampIdentity returns a pass that stamps $id, $schema and the version
// onto the schema root. The stamped values are immutable once written.
func StampIdentity(info Info) Pass {
	return func(data any) any {
		root, ok := data.(map[string]any)
		if !ok {
			return data
		}
		root["$id"] = info.URL()
		root["$schema"] = "https://json-schema.org/draft/2020-12/schema"
		root["version"] = info.Version
		return root
	}
}

// DefaultPasses is the ordered transform list adequate for most schemas.
func DefaultPasses(info Info) []Pass {
	return []Pass{
		RemoveDiscriminatorMapping,
		RemoveFormatPath,
		StampIdentity(info),
	}
}

// Generate reflects a JSON Schema from the given model value and applies
// the transform passes in order. The result is a plain JSON tree ready for
// serialization.
func Generate(model any, info Info, passes ...Pass) (map[string]any, error) {
	r := jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: false,
	}
	base := r.Reflect(model)

	raw, err := json.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("marshal base schema: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("decode base schema: %w", err)
	}

	if len(passes) == 0 {
		passes = DefaultPasses(info)
	}
	var out any = tree
	for _, pass := range passes {
		out = pass(out)
	}
	result, ok := out.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("schema transform did not produce an object")
	}
	return result, nil
}
