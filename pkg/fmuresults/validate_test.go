package fmuresults

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validObject() *ObjectMetadata {
	m := &ObjectMetadata{
		Class: ClassSurface,
		FMU: FMU{
			Case: Case{
				Name: "testcase",
				UUID: "9c9d9a52-1cf4-44cc-829f-23b8334ae813",
				User: User{ID: "tester"},
			},
		},
		Masterdata: Masterdata{
			Smda: Smda{
				CoordinateSystem: CoordinateSystem{Identifier: "ST_WGS84", UUID: "x"},
			},
		},
		Access: Access{
			Asset:          Asset{Name: "Drogon"},
			Classification: ClassificationInternal,
		},
		Data: Data{
			Content: ContentDepth,
			Name:    "Whatever Top",
			Format:  FormatIrapBinary,
			Layout:  LayoutRegular,
		},
		File: File{
			RelativePath: "realization-0/iter-0/share/results/maps/x.gri",
			ChecksumMD5:  "fa4d055b113ae5282796e328cde0ffa4",
		},
	}
	m.Stamp("tester", time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	return m
}

func violationPaths(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError, got %v", err)
	}
	paths := make([]string, len(verr.Violations))
	for i, v := range verr.Violations {
		paths[i] = v.Path
	}
	return paths
}

func hasPath(paths []string, want string) bool {
	for _, p := range paths {
		if p == want {
			return true
		}
	}
	return false
}

func TestObjectMetadataValidate(t *testing.T) {
	t.Run("Valid Document", func(t *testing.T) {
		if err := validObject().Validate(); err != nil {
			t.Fatalf("Expected valid document, got %v", err)
		}
	})

	t.Run("Unstamped Document", func(t *testing.T) {
		m := validObject()
		m.Schema = ""
		m.Version = ""
		paths := violationPaths(t, m.Validate())
		if !hasPath(paths, "$schema") || !hasPath(paths, "version") {
			t.Errorf("Expected $schema and version violations, got %v", paths)
		}
	})

	t.Run("Bad Checksum", func(t *testing.T) {
		m := validObject()
		m.File.ChecksumMD5 = "not-a-checksum"
		paths := violationPaths(t, m.Validate())
		if !hasPath(paths, "file.checksum_md5") {
			t.Errorf("Expected checksum violation, got %v", paths)
		}
	})

	t.Run("Unknown Simulation Mode", func(t *testing.T) {
		m := validObject()
		m.FMU.SimulationMode = "weather"
		paths := violationPaths(t, m.Validate())
		if !hasPath(paths, "fmu.simulation_mode") {
			t.Errorf("Expected simulation mode violation, got %v", paths)
		}

		m.FMU.SimulationMode = ModeEnsembleExperiment
		if err := m.Validate(); err != nil {
			t.Errorf("Expected valid with a known mode, got %v", err)
		}
		m.FMU.SimulationMode = ""
		if err := m.Validate(); err != nil {
			t.Errorf("Expected valid with no mode, got %v", err)
		}
	})

	t.Run("All Violations Are Collected", func(t *testing.T) {
		m := validObject()
		m.FMU.Case.UUID = ""
		m.File.RelativePath = ""
		m.Data.Name = ""
		paths := violationPaths(t, m.Validate())
		if len(paths) < 3 {
			t.Errorf("Expected at least 3 violations, got %v", paths)
		}
	})
}

func TestDataDiscriminator(t *testing.T) {
	t.Run("Unknown Content", func(t *testing.T) {
		m := validObject()
		m.Data.Content = "weather"
		paths := violationPaths(t, m.Validate())
		if !hasPath(paths, "data.content") {
			t.Errorf("Expected content violation, got %v", paths)
		}
	})

	t.Run("Property Requires IsDiscrete", func(t *testing.T) {
		m := validObject()
		m.Data.Content = ContentProperty
		m.Data.Layout = LayoutCornerpoint
		m.Data.Property = &Property{Attribute: "porosity"}
		paths := violationPaths(t, m.Validate())
		if !hasPath(paths, "data.property.is_discrete") {
			t.Errorf("Expected is_discrete violation, got %v", paths)
		}

		discrete := false
		m.Data.Property.IsDiscrete = &discrete
		if err := m.Validate(); err != nil {
			t.Errorf("Expected valid after setting is_discrete, got %v", err)
		}
	})

	t.Run("Seismic Requires Block", func(t *testing.T) {
		m := validObject()
		m.Data.Content = ContentSeismic
		paths := violationPaths(t, m.Validate())
		if !hasPath(paths, "data.seismic") {
			t.Errorf("Expected seismic violation, got %v", paths)
		}
	})

	t.Run("Fluid Contact Requires Contact", func(t *testing.T) {
		m := validObject()
		m.Data.Content = ContentFluidContact
		m.Data.FluidContact = &FluidContact{}
		paths := violationPaths(t, m.Validate())
		if !hasPath(paths, "data.fluid_contact.contact") {
			t.Errorf("Expected contact violation, got %v", paths)
		}
	})

	t.Run("Depth Forces Vertical Domain", func(t *testing.T) {
		m := validObject()
		m.Data.VerticalDomain = DomainTime
		paths := violationPaths(t, m.Validate())
		if !hasPath(paths, "data.vertical_domain") {
			t.Errorf("Expected vertical_domain violation, got %v", paths)
		}
	})

	t.Run("Layout Must Fit Content", func(t *testing.T) {
		m := validObject()
		m.Data.Content = ContentVolumes
		m.Data.Layout = LayoutRegular
		paths := violationPaths(t, m.Validate())
		if !hasPath(paths, "data.layout") {
			t.Errorf("Expected layout violation, got %v", paths)
		}
	})

	t.Run("Top And Base Come In Pairs", func(t *testing.T) {
		m := validObject()
		m.Data.Top = &Layer{Name: "TopWhatever"}
		paths := violationPaths(t, m.Validate())
		if !hasPath(paths, "data.top") {
			t.Errorf("Expected top/base violation, got %v", paths)
		}

		m.Data.Base = &Layer{Name: "BaseWhatever"}
		if err := m.Validate(); err != nil {
			t.Errorf("Expected valid with both set, got %v", err)
		}
	})
}

func TestProductValidation(t *testing.T) {
	t.Run("Known Product With Pinned Schema", func(t *testing.T) {
		m := validObject()
		m.Data.Content = ContentVolumes
		m.Data.Layout = LayoutTable
		product, ok := NewProduct(ProductInplaceVolumes)
		if !ok {
			t.Fatal("inplace_volumes should be a registered product")
		}
		m.Product = product
		if err := m.Validate(); err != nil {
			t.Fatalf("Expected valid product, got %v", err)
		}
	})

	t.Run("Unknown Product Name", func(t *testing.T) {
		m := validObject()
		m.Product = &Product{Name: "made_up"}
		paths := violationPaths(t, m.Validate())
		if !hasPath(paths, "product.name") {
			t.Errorf("Expected product.name violation, got %v", paths)
		}
	})

	t.Run("Schema Pin Mismatch", func(t *testing.T) {
		m := validObject()
		m.Product = &Product{
			Name:       ProductInplaceVolumes,
			FileSchema: &FileSchema{Version: "9.9.9", URL: "https://example.com/x.json"},
		}
		paths := violationPaths(t, m.Validate())
		if !hasPath(paths, "product.file_schema") {
			t.Errorf("Expected file_schema violation, got %v", paths)
		}
	})
}

func TestCaseMetadataValidate(t *testing.T) {
	m := &CaseMetadata{
		FMU: FMU{Case: Case{Name: "c", UUID: "9c9d9a52-1cf4-44cc-829f-23b8334ae813"}},
		Masterdata: Masterdata{Smda: Smda{
			CoordinateSystem: CoordinateSystem{Identifier: "ST_WGS84"},
		}},
		Access: Access{Classification: ClassificationInternal},
	}
	m.Stamp("tester", time.Now())

	if err := m.Validate(); err != nil {
		t.Fatalf("Expected valid case document, got %v", err)
	}

	m.Class = ClassSurface
	paths := violationPaths(t, m.Validate())
	if !hasPath(paths, "class") {
		t.Errorf("Expected class violation, got %v", paths)
	}
}

func TestParseContent(t *testing.T) {
	if _, err := ParseContent("depth"); err != nil {
		t.Errorf("depth should parse: %v", err)
	}
	_, err := ParseContent("weather")
	if err == nil {
		t.Fatal("Expected error for unknown content")
	}
	if !strings.Contains(err.Error(), "depth") {
		t.Errorf("Error should list valid entries, got %v", err)
	}
}
