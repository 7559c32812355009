package fmuresults

import "github.com/slangeveld/fmu-dataio/pkg/schema"

// FileSchema identifies the pinned schema a product's file conforms to.
type FileSchema struct {
	Version string `yaml:"version" json:"version"`
	URL     string `yaml:"url" json:"url"`
}

// Product tags a data object as a standardized downstream product. The Name
// field discriminates the variant; FileSchema must match the variant's
// pinned schema exactly.
type Product struct {
	Name       ProductName `yaml:"name" json:"name"`
	FileSchema *FileSchema `yaml:"file_schema,omitempty" json:"file_schema,omitempty"`
}

const inplaceVolumesVersion = "0.1.0"

// ProductFileSchema returns the pinned file schema for a product variant.
// The URL host follows the active schema deployment target.
func ProductFileSchema(name ProductName) (FileSchema, bool) {
	switch name {
	case ProductInplaceVolumes:
		info := schema.Info{Version: inplaceVolumesVersion, Filename: "inplace_volumes.json"}
		return FileSchema{Version: info.Version, URL: info.URL()}, true
	}
	return FileSchema{}, false
}

// NewProduct returns a product tag for a registered variant with its pinned
// file schema filled in, or false for an unknown variant.
func NewProduct(name ProductName) (*Product, bool) {
	fs, ok := ProductFileSchema(name)
	if !ok {
		return nil, false
	}
	return &Product{Name: name, FileSchema: &fs}, true
}
