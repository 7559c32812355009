package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/slangeveld/fmu-dataio/internal/config"
	"github.com/slangeveld/fmu-dataio/internal/runcontext"
	"github.com/slangeveld/fmu-dataio/pkg/fmuresults"
)

// CaseMetadataPath is where the case document lives relative to the case
// root.
const CaseMetadataPath = "share/metadata/fmu_case.yml"

// CreateCase holds the inputs for establishing a case.
type CreateCase struct {
	// CasePath is the case root directory; created if absent.
	CasePath string
	// CaseName names the case in all documents referencing it.
	CaseName string
	// User overrides the detected user identity when non-empty.
	User string
	// Description is optional free text about the case.
	Description []string

	Logger *slog.Logger
	Now    func() time.Time
}

// Run establishes the case metadata document at the case root. The
// operation is idempotent: an already established case is left untouched
// and its existing path is returned with a warning.
func (c *CreateCase) Run(cfg *config.Global) (string, error) {
	if c.CasePath == "" || c.CaseName == "" {
		return "", fmt.Errorf("case path and case name are required")
	}
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := c.Now
	if now == nil {
		now = time.Now
	}
	user := c.User
	if user == "" {
		user = runcontext.Snapshot().UserID
	}

	target := filepath.Join(c.CasePath, CaseMetadataPath)
	if _, err := os.Stat(target); err == nil {
		logger.Warn("case metadata already exists, leaving it untouched", "path", target)
		return target, nil
	}

	meta := &fmuresults.CaseMetadata{
		FMU: fmuresults.FMU{
			Case: fmuresults.Case{
				Name:        c.CaseName,
				UUID:        uuid.New().String(),
				User:        fmuresults.User{ID: user},
				Description: c.Description,
			},
			Model: &cfg.Model,
		},
		Masterdata: cfg.Masterdata,
		Access:     cfg.Access,
	}
	if meta.Access.Classification == "" {
		meta.Access.Classification = fmuresults.ClassificationInternal
	}
	meta.Stamp(user, now())

	if err := meta.Validate(); err != nil {
		return "", err
	}

	raw, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal case metadata: %w", err)
	}
	if err := writeFileAtomic(target, raw, 0o644); err != nil {
		return "", err
	}

	logger.Info("established case", "name", c.CaseName, "uuid", meta.FMU.Case.UUID, "path", target)
	return target, nil
}

// ReadCaseMetadata loads and parses the case document under casePath.
func ReadCaseMetadata(casePath string) (*fmuresults.CaseMetadata, error) {
	path := filepath.Join(casePath, CaseMetadataPath)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case metadata %s: %w", path, err)
	}
	var meta fmuresults.CaseMetadata
	if err := yaml.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("parse case metadata %s: %w", path, err)
	}
	return &meta, nil
}

// ReadMetadata loads the sibling metadata document for an exported data
// file.
func ReadMetadata(dataPath string) (*fmuresults.ObjectMetadata, error) {
	path := metadataPath(dataPath)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata %s: %w", path, err)
	}
	var meta fmuresults.ObjectMetadata
	if err := yaml.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("parse metadata %s: %w", path, err)
	}
	return &meta, nil
}
