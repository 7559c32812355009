package objects

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/slangeveld/fmu-dataio/pkg/fmuresults"
	"github.com/slangeveld/fmu-dataio/pkg/registry"
)

// Dictionary is an arbitrary key/value structure exported as json.
type Dictionary struct {
	Name    string
	Content map[string]any
}

func (d *Dictionary) Kind() registry.Kind       { return registry.KindDictionary }
func (d *Dictionary) Class() fmuresults.Class   { return fmuresults.ClassDictionary }
func (d *Dictionary) Layout() fmuresults.Layout { return fmuresults.LayoutDictionary }
func (d *Dictionary) ObjectName() string        { return d.Name }

func (d *Dictionary) EncodeTo(w io.Writer, format fmuresults.FileFormat) error {
	if format != fmuresults.FormatJSON {
		return fmt.Errorf("%w: %q for dictionary", ErrNoEncoder, format)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d.Content)
}
