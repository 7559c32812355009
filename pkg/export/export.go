// Package export orchestrates metadata-accompanied exports: it inspects an
// object, assembles and validates its metadata document, derives the
// deterministic export path, and writes the data file with its sibling
// metadata file atomically.
//
// Validation is fail fast: nothing touches the filesystem until the
// assembled document has passed validation.
package export

import (
	"bufio"
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/slangeveld/fmu-dataio/internal/config"
	"github.com/slangeveld/fmu-dataio/internal/runcontext"
	"github.com/slangeveld/fmu-dataio/pkg/fmuresults"
	"github.com/slangeveld/fmu-dataio/pkg/objects"
	"github.com/slangeveld/fmu-dataio/pkg/registry"
)

// DefaultName is recorded when neither the object nor the caller names the
// data.
const DefaultName = "unknown"

// ExportData carries the per-export settings. One instance describes one
// logical data object; reuse across objects is allowed when the settings
// apply to all of them.
type ExportData struct {
	cfg    *config.Global
	rc     *runcontext.RunContext
	logger *slog.Logger
	now    func() time.Time

	content fmuresults.Content

	name        string
	tagname     string
	unit        string
	subfolder   string
	forceFolder string
	caseName    string
	workflow    string
	description []string

	classification  fmuresults.Classification
	verticalDomain  fmuresults.VerticalDomain
	domainReference fmuresults.DomainReference
	format          fmuresults.FileFormat
	productName     fmuresults.ProductName

	isObservation bool
	isPrediction  bool
	undefIsZero   *bool
	tableIndex    []string

	timeData     *fmuresults.Time
	geometry     *fmuresults.Geometry
	property     *fmuresults.Property
	seismic      *fmuresults.Seismic
	fluidContact *fmuresults.FluidContact
	fieldOutline *fmuresults.FieldOutline
	fieldRegion  *fmuresults.FieldRegion
}

// New creates an exporter for the given content kind. The content string is
// checked against the closed content set immediately; everything else is
// validated at export time.
func New(cfg *config.Global, content string, opts ...Option) (*ExportData, error) {
	c, err := fmuresults.ParseContent(content)
	if err != nil {
		return nil, err
	}

	e := &ExportData{
		cfg:     cfg,
		content: c,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.rc == nil {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		rc, err := runcontext.Detect(runcontext.Snapshot(), cwd)
		if err != nil {
			return nil, err
		}
		e.rc = rc
	}

	return e, nil
}

// GenerateMetadata assembles and validates the metadata document for obj
// without writing anything.
func (e *ExportData) GenerateMetadata(obj objects.Object) (*fmuresults.ObjectMetadata, error) {
	meta, _, _, err := e.assemble(obj)
	return meta, err
}

// Export writes the object and its sibling metadata file, returning the
// absolute path of the data file. On any failure before the writes, no file
// is created; the two writes themselves are individually atomic.
func (e *ExportData) Export(obj objects.Object) (string, error) {
	meta, payload, absPath, err := e.assemble(obj)
	if err != nil {
		return "", err
	}

	if err := writeFileAtomic(absPath, payload, 0o644); err != nil {
		return "", err
	}

	metaBytes, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal metadata: %w", err)
	}
	if err := writeFileAtomic(metadataPath(absPath), metaBytes, 0o644); err != nil {
		return "", err
	}

	e.logger.Info("exported data object",
		"path", absPath,
		"content", string(e.content),
		"size_bytes", len(payload))

	return absPath, nil
}

// assemble runs the full pipeline up to, but not including, the writes.
func (e *ExportData) assemble(obj objects.Object) (*fmuresults.ObjectMetadata, []byte, string, error) {
	if e.rc.Mode == runcontext.ModeUndetermined {
		e.logger.Warn("run context is undetermined, case affiliation cannot be resolved",
			"export_root", e.rc.ExportRoot)
	}

	props, err := objects.Inspect(obj)
	if err != nil {
		return nil, nil, "", err
	}

	format := e.format
	if format == "" {
		format = registry.DefaultFormat(props.Kind)
	}
	ext, err := registry.Resolve(props.Kind, format)
	if err != nil {
		return nil, nil, "", err
	}
	folder := e.forceFolder
	if folder == "" {
		folder, err = registry.Folder(props.Kind)
		if err != nil {
			return nil, nil, "", err
		}
	}

	var buf bytes.Buffer
	if err := obj.EncodeTo(&buf, format); err != nil {
		return nil, nil, "", fmt.Errorf("encode %s as %s: %w", props.Kind, format, err)
	}
	payload := buf.Bytes()

	name := e.name
	if name == "" {
		name = props.Name
	}
	displayName := name
	if displayName == "" {
		displayName = DefaultName
	}

	relPath, err := relativePath(folder, e.subfolder, displayName, e.tagname, ext, e.isObservation)
	if err != nil {
		return nil, nil, "", err
	}
	absPath, err := resolveCollision(filepath.Join(e.rc.ExportRoot, relPath))
	if err != nil {
		return nil, nil, "", err
	}

	data, err := e.buildData(displayName, format, props)
	if err != nil {
		return nil, nil, "", err
	}

	fmu, err := e.buildFMU()
	if err != nil {
		return nil, nil, "", err
	}

	meta := &fmuresults.ObjectMetadata{
		Class:      props.Class,
		FMU:        *fmu,
		Masterdata: e.cfg.Masterdata,
		Access:     e.buildAccess(),
		Data:       *data,
		File: fmuresults.File{
			RelativePath: e.recordedPath(absPath),
			AbsolutePath: absPath,
			ChecksumMD5:  checksumMD5(payload),
			SizeBytes:    int64(len(payload)),
		},
	}

	if e.productName != "" {
		product, ok := fmuresults.NewProduct(e.productName)
		if !ok {
			return nil, nil, "", fmt.Errorf("unknown product %q", e.productName)
		}
		if e.productName == fmuresults.ProductInplaceVolumes {
			if e.content != fmuresults.ContentVolumes || props.Layout != fmuresults.LayoutTable {
				return nil, nil, "", fmt.Errorf(
					"product %q requires a volumes table, got content %q with layout %q",
					e.productName, e.content, props.Layout)
			}
		}
		meta.Product = product
	}

	meta.Stamp(e.rc.UserID, e.now())

	if err := meta.Validate(); err != nil {
		return nil, nil, "", err
	}

	return meta, payload, absPath, nil
}

// recordedPath is the path written into file.relative_path: relative to the
// case root when one is known, else to the export root.
func (e *ExportData) recordedPath(absPath string) string {
	base := e.rc.CasePath
	if base == "" {
		base = e.rc.ExportRoot
	}
	if rel, err := filepath.Rel(base, absPath); err == nil {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(absPath)
}

// buildData assembles the data block, translating names through the
// stratigraphic inventory and filling content-conditional sub-blocks.
func (e *ExportData) buildData(name string, format fmuresults.FileFormat, props *objects.Properties) (*fmuresults.Data, error) {
	data := &fmuresults.Data{
		Content: e.content,
		Name:    name,

		Tagname:     e.tagname,
		Description: e.description,
		Unit:        e.unit,

		Format: format,
		Layout: props.Layout,
		BBox:   props.BBox,
		Spec:   props.Spec,

		VerticalDomain:  e.verticalDomain,
		DomainReference: e.domainReference,

		IsObservation: e.isObservation,
		IsPrediction:  e.isPrediction,
		UndefIsZero:   e.undefIsZero,

		Geometry: e.geometry,
		Time:     e.timeData,

		Property:     e.property,
		Seismic:      e.seismic,
		FluidContact: e.fluidContact,
		FieldOutline: e.fieldOutline,
		FieldRegion:  e.fieldRegion,
	}

	// Coordinate-based contents imply their vertical domain.
	switch e.content {
	case fmuresults.ContentDepth:
		data.VerticalDomain = fmuresults.DomainDepth
	case fmuresults.ContentTime:
		data.VerticalDomain = fmuresults.DomainTime
	}

	// Discrete properties detected on the object win over a missing option.
	if e.content == fmuresults.ContentProperty && data.Property == nil && props.Discrete != nil {
		data.Property = &fmuresults.Property{IsDiscrete: props.Discrete}
	}

	if el, ok := e.cfg.Stratigraphy.Lookup(name); ok {
		data.Name = el.Name
		data.Stratigraphic = el.Stratigraphic
		data.Alias = el.Alias
	}

	if props.Layout == fmuresults.LayoutTable {
		index := e.tableIndex
		if index == nil {
			index = standardIndex(e.content, props.TableColumns)
		}
		for _, col := range index {
			if !containsColumn(props.TableColumns, col) {
				return nil, fmt.Errorf("table index column %q is not a column of the table", col)
			}
		}
		data.TableIndex = index
	}

	return data, nil
}

// standardIndex returns the standard index columns for the content that are
// actually present in the table.
func standardIndex(content fmuresults.Content, columns []string) []string {
	var index []string
	for _, col := range registry.TableIndexColumns(content) {
		if containsColumn(columns, col) {
			index = append(index, col)
		}
	}
	return index
}

func containsColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}

func (e *ExportData) buildAccess() fmuresults.Access {
	access := e.cfg.Access
	if e.classification != "" {
		access.Classification = e.classification
	}
	if access.Classification == "" {
		access.Classification = fmuresults.ClassificationInternal
	}
	return access
}

// buildFMU assembles the provenance block from the run context and, when
// available, the case metadata document at the case root.
func (e *ExportData) buildFMU() (*fmuresults.FMU, error) {
	fmu := &fmuresults.FMU{
		Model:          &e.cfg.Model,
		RunPath:        e.rc.RunPath,
		ExperimentID:   e.rc.ExperimentID,
		SimulationMode: fmuresults.SimulationMode(e.rc.SimulationMode),
	}

	if e.workflow != "" {
		fmu.Workflow = &fmuresults.Workflow{Reference: e.workflow}
	}

	caseMeta, err := e.loadCase()
	if err != nil {
		return nil, err
	}
	if caseMeta != nil {
		fmu.Case = caseMeta.FMU.Case
	} else {
		// No established case: synthesize a stable identity so repeated
		// exports from the same location agree.
		name := e.caseName
		if name == "" {
			name = DefaultName
		}
		fmu.Case = fmuresults.Case{
			Name: name,
			UUID: uuid.NewMD5(uuid.NameSpaceURL, []byte(e.rc.ExportRoot)).String(),
			User: fmuresults.User{ID: e.rc.UserID},
		}
		e.logger.Debug("no case metadata found, synthesized case identity",
			"case_path", e.rc.CasePath, "uuid", fmu.Case.UUID)
	}

	caseUUID, err := uuid.Parse(fmu.Case.UUID)
	if err != nil {
		return nil, fmt.Errorf("case metadata carries invalid uuid %q: %w", fmu.Case.UUID, err)
	}

	switch e.rc.Mode {
	case runcontext.ModeForward, runcontext.ModePrediction:
		fmu.Context = &fmuresults.Context{Stage: fmuresults.ContextRealization}
	default:
		fmu.Context = &fmuresults.Context{Stage: fmuresults.ContextCase}
	}

	if e.rc.IterationNumber >= 0 {
		ensembleUUID := uuid.NewMD5(caseUUID, []byte(e.rc.EnsembleName))
		fmu.Ensemble = &fmuresults.Ensemble{
			ID:   e.rc.IterationNumber,
			Name: e.rc.EnsembleName,
			UUID: ensembleUUID.String(),
		}
		if e.rc.RestartFromPath != "" {
			if restartFrom, ok := e.restartLineage(); ok {
				fmu.Ensemble.RestartFrom = restartFrom
			}
		}

		if e.rc.RealizationNumber >= 0 {
			fmu.Realization = &fmuresults.Realization{
				ID:         e.rc.RealizationNumber,
				Name:       e.rc.RealizationName,
				UUID:       uuid.NewMD5(ensembleUUID, []byte(e.rc.RealizationName)).String(),
				Parameters: e.loadParameters(),
			}
		}
	}

	return fmu, nil
}

// restartLineage derives the prior ensemble UUID from the restart run
// path's own case metadata. The restart path may live under a different
// case than the current run; a path whose case does not resolve is omitted
// with a warning.
func (e *ExportData) restartLineage() (string, bool) {
	restart := filepath.Clean(e.rc.RestartFromPath)
	restartCasePath := filepath.Dir(filepath.Dir(restart))

	caseMeta, err := loadCaseAt(restartCasePath)
	if err != nil || caseMeta == nil {
		e.logger.Warn("restart path does not resolve to an established case, omitting restart lineage",
			"path", restart)
		return "", false
	}
	caseUUID, err := uuid.Parse(caseMeta.FMU.Case.UUID)
	if err != nil {
		e.logger.Warn("restart case metadata carries an invalid uuid, omitting restart lineage",
			"path", restart, "uuid", caseMeta.FMU.Case.UUID)
		return "", false
	}

	return uuid.NewMD5(caseUUID, []byte(filepath.Base(restart))).String(), true
}

// loadCase reads the case metadata document at the case root, or nil when
// no case has been established.
func (e *ExportData) loadCase() (*fmuresults.CaseMetadata, error) {
	if e.rc.CasePath == "" {
		return nil, nil
	}
	return loadCaseAt(e.rc.CasePath)
}

// loadCaseAt reads the case document under casePath, nil when none exists.
func loadCaseAt(casePath string) (*fmuresults.CaseMetadata, error) {
	path := filepath.Join(casePath, CaseMetadataPath)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read case metadata %s: %w", path, err)
	}

	var meta fmuresults.CaseMetadata
	if err := yaml.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("parse case metadata %s: %w", path, err)
	}
	return &meta, nil
}

// loadParameters reads the parameters.txt file at the run path. Missing or
// malformed files degrade to no parameters; parameters are provenance, not
// a requirement.
func (e *ExportData) loadParameters() map[string]any {
	if e.rc.RunPath == "" {
		return nil
	}
	f, err := os.Open(filepath.Join(e.rc.RunPath, "parameters.txt"))
	if err != nil {
		return nil
	}
	defer f.Close()

	params := map[string]any{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			continue
		}
		name, raw := fields[0], fields[1]

		var value any = raw
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			value = n
		}

		// GROUP:NAME entries nest under their group.
		if group, key, ok := strings.Cut(name, ":"); ok && key != "" {
			sub, _ := params[group].(map[string]any)
			if sub == nil {
				sub = map[string]any{}
				params[group] = sub
			}
			sub[key] = value
			continue
		}
		params[name] = value
	}
	if len(params) == 0 {
		return nil
	}
	return params
}
