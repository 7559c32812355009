package schema

import (
	"strings"
	"testing"
)

func TestBaseURL(t *testing.T) {
	t.Run("Defaults To Prod", func(t *testing.T) {
		t.Setenv(DevEnvName, "")
		if got := BaseURL(); got != ProdURL {
			t.Errorf("Expected prod host, got %q", got)
		}
	})

	t.Run("Dev Flag Selects Dev Host", func(t *testing.T) {
		t.Setenv(DevEnvName, "1")
		if got := BaseURL(); got != DevURL {
			t.Errorf("Expected dev host, got %q", got)
		}
	})
}

func TestInfoPaths(t *testing.T) {
	t.Setenv(DevEnvName, "")
	info := Info{Version: "0.9.0", Filename: "fmu_results.json"}

	if got := info.Path(); got != "schemas/0.9.0/fmu_results.json" {
		t.Errorf("Unexpected path %q", got)
	}
	want := ProdURL + "/schemas/0.9.0/fmu_results.json"
	if got := info.URL(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestPasses(t *testing.T) {
	t.Run("RemoveDiscriminatorMapping", func(t *testing.T) {
		tree := map[string]any{
			"discriminator": map[string]any{
				"propertyName": "content",
				"mapping":      map[string]any{"depth": "#/$defs/Depth"},
			},
			"nested": []any{
				map[string]any{
					"discriminator": map[string]any{"mapping": map[string]any{}},
				},
			},
		}
		out := RemoveDiscriminatorMapping(tree).(map[string]any)

		d := out["discriminator"].(map[string]any)
		if _, ok := d["mapping"]; ok {
			t.Error("mapping should be removed at the root")
		}
		if d["propertyName"] != "content" {
			t.Error("propertyName must survive")
		}
		inner := out["nested"].([]any)[0].(map[string]any)["discriminator"].(map[string]any)
		if _, ok := inner["mapping"]; ok {
			t.Error("mapping should be removed in nested structures")
		}
	})

	t.Run("RemoveFormatPath", func(t *testing.T) {
		tree := map[string]any{
			"format": "path",
			"properties": map[string]any{
				"when": map[string]any{"format": "date-time"},
			},
		}
		out := RemoveFormatPath(tree).(map[string]any)
		if _, ok := out["format"]; ok {
			t.Error("format: path should be removed")
		}
		when := out["properties"].(map[string]any)["when"].(map[string]any)
		if when["format"] != "date-time" {
			t.Error("other format values must survive")
		}
	})

	t.Run("StampIdentity", func(t *testing.T) {
		t.Setenv(DevEnvName, "")
		info := Info{Version: "0.9.0", Filename: "fmu_results.json"}
		out := StampIdentity(info)(map[string]any{}).(map[string]any)

		if out["$id"] != info.URL() {
			t.Errorf("Expected $id %q, got %v", info.URL(), out["$id"])
		}
		if out["version"] != "0.9.0" {
			t.Errorf("Expected version stamp, got %v", out["version"])
		}
		if !strings.Contains(out["$schema"].(string), "2020-12") {
			t.Errorf("Expected draft 2020-12, got %v", out["$schema"])
		}
	})
}

func TestGenerate(t *testing.T) {
	t.Setenv(DevEnvName, "")

	type model struct {
		Name  string `json:"name"`
		Count int    `json:"count,omitempty"`
	}

	info := Info{Version: "1.0.0", Filename: "model.json"}
	tree, err := Generate(&model{}, info)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if tree["$id"] != info.URL() {
		t.Errorf("Default passes should stamp $id, got %v", tree["$id"])
	}
	props, ok := tree["properties"].(map[string]any)
	if !ok {
		t.Fatalf("Expected reflected properties, got %v", tree)
	}
	if _, ok := props["name"]; !ok {
		t.Error("Reflected schema should describe the name property")
	}
}
