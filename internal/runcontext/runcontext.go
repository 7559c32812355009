// Package runcontext classifies the execution context of an export call:
// interactive modeling session, batch ensemble run (prehook, forward or
// prediction), or undetermined. The process environment is read in exactly
// one boundary function, Snapshot; Detect itself is pure and testable
// without environment mocking.
package runcontext

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"regexp"
	"strconv"
)

// Environment variable names recognized by the detector. The batch markers
// are namespaced by the ensemble orchestrator (ERT).
const (
	EnvExperimentID      = "_ERT_EXPERIMENT_ID"
	EnvEnsembleID        = "_ERT_ENSEMBLE_ID"
	EnvSimulationMode    = "_ERT_SIMULATION_MODE"
	EnvIterationNumber   = "_ERT_ITERATION_NUMBER"
	EnvRealizationNumber = "_ERT_REALIZATION_NUMBER"
	EnvRunPath           = "_ERT_RUNPATH"
	EnvRMSExecMode       = "RUNRMS_EXEC_MODE"
	EnvRestartFromPath   = "RESTART_FROM_PATH"
)

// DefaultEnsembleName is used for run layouts without an iteration folder.
const DefaultEnsembleName = "iter-0"

// ErrContextResolution signals that the environment markers are partially
// or ambiguously set and no consistent context can be derived.
var ErrContextResolution = errors.New("could not resolve run context")

// Env is an immutable snapshot of the environment inputs to detection.
type Env struct {
	ExperimentID      string
	EnsembleID        string
	SimulationMode    string
	IterationNumber   string
	RealizationNumber string
	RunPath           string
	RMSExecMode       string
	RestartFromPath   string
	UserID            string
}

// Snapshot reads the ambient process environment. This is the only place
// the package touches os.Getenv or the current user.
func Snapshot() Env {
	return Env{
		ExperimentID:      os.Getenv(EnvExperimentID),
		EnsembleID:        os.Getenv(EnvEnsembleID),
		SimulationMode:    os.Getenv(EnvSimulationMode),
		IterationNumber:   os.Getenv(EnvIterationNumber),
		RealizationNumber: os.Getenv(EnvRealizationNumber),
		RunPath:           os.Getenv(EnvRunPath),
		RMSExecMode:       os.Getenv(EnvRMSExecMode),
		RestartFromPath:   os.Getenv(EnvRestartFromPath),
		UserID:            currentUser(),
	}
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}

// Mode is the classified execution mode of the current process.
type Mode string

const (
	// ModeUndetermined means no batch or interactive markers were found.
	// Exports are still permitted but cannot resolve case affiliation.
	ModeUndetermined Mode = "undetermined"
	// ModeInteractive means an interactive modeling session (RMS).
	ModeInteractive Mode = "interactive"
	// ModePrehook means a case-level batch stage before any realization
	// or iteration folders exist.
	ModePrehook Mode = "prehook"
	// ModeForward means a forward-model batch stage inside a
	// realization-<N>/<ensemble> run path.
	ModeForward Mode = "forward"
	// ModePrediction means a forward stage under the pred folder
	// convention (realization present, no iteration).
	ModePrediction Mode = "prediction"
)

// RunContext is the classified context of one export call. It is computed
// fresh per call and never persisted; only derived fields feed metadata.
type RunContext struct {
	Mode Mode

	ExperimentID   string
	EnsembleID     string
	SimulationMode string

	// RealizationNumber and IterationNumber are -1 when not applicable.
	RealizationNumber int
	IterationNumber   int
	RealizationName   string
	EnsembleName      string

	// RunPath is the realization run directory for batch contexts.
	// CasePath is the resolved case root, empty when unknown.
	// ExportRoot is the directory share/... paths are derived from.
	RunPath    string
	CasePath   string
	ExportRoot string

	RestartFromPath string
	UserID          string
}

// Batch reports whether the context comes from a batch ensemble run.
func (rc *RunContext) Batch() bool {
	switch rc.Mode {
	case ModePrehook, ModeForward, ModePrediction:
		return true
	}
	return false
}

var realizationDirPattern = regexp.MustCompile(`^realization-\d+$`)

// Detect derives a RunContext from an environment snapshot and the current
// working directory. Pure: no environment reads, no filesystem mutation.
//
// Priority order: batch markers first, then the interactive marker, then
// undetermined.
func Detect(env Env, cwd string) (*RunContext, error) {
	rc := &RunContext{
		Mode:              ModeUndetermined,
		RealizationNumber: -1,
		IterationNumber:   -1,
		RestartFromPath:   env.RestartFromPath,
		UserID:            env.UserID,
		ExportRoot:        cwd,
	}

	batch := env.ExperimentID != "" || env.EnsembleID != "" ||
		env.RealizationNumber != "" || env.IterationNumber != ""

	switch {
	case batch:
		if err := detectBatch(env, rc); err != nil {
			return nil, err
		}
	case env.RMSExecMode == "interactive":
		rc.Mode = ModeInteractive
		rc.ExportRoot = interactiveRoot(cwd)
	}

	return rc, nil
}

func detectBatch(env Env, rc *RunContext) error {
	rc.ExperimentID = env.ExperimentID
	rc.EnsembleID = env.EnsembleID
	rc.SimulationMode = env.SimulationMode

	if env.RealizationNumber == "" {
		if env.IterationNumber != "" {
			return fmt.Errorf("%w: %s is set without %s",
				ErrContextResolution, EnvIterationNumber, EnvRealizationNumber)
		}
		// Case-level stage: no realization or iteration folders yet.
		rc.Mode = ModePrehook
		return nil
	}

	real, err := strconv.Atoi(env.RealizationNumber)
	if err != nil || real < 0 {
		return fmt.Errorf("%w: invalid realization number %q",
			ErrContextResolution, env.RealizationNumber)
	}
	if env.RunPath == "" {
		return fmt.Errorf("%w: %s is set without %s",
			ErrContextResolution, EnvRealizationNumber, EnvRunPath)
	}

	runpath := filepath.Clean(env.RunPath)
	leaf := filepath.Base(runpath)

	rc.Mode = ModeForward
	rc.RunPath = runpath
	rc.ExportRoot = runpath
	rc.RealizationNumber = real
	rc.RealizationName = fmt.Sprintf("realization-%d", real)

	switch {
	case leaf == "pred":
		// Prediction convention: realization-<N>/pred, no iteration.
		rc.Mode = ModePrediction
		rc.EnsembleName = leaf
		rc.IterationNumber = 0
		rc.CasePath = filepath.Dir(filepath.Dir(runpath))
	case realizationDirPattern.MatchString(leaf):
		// No-iter layout: the run path itself is the realization folder.
		rc.EnsembleName = DefaultEnsembleName
		rc.CasePath = filepath.Dir(runpath)
		if err := parseIteration(env, rc); err != nil {
			return err
		}
	default:
		// Standard layout: realization-<N>/<ensemble>.
		rc.EnsembleName = leaf
		rc.CasePath = filepath.Dir(filepath.Dir(runpath))
		if err := parseIteration(env, rc); err != nil {
			return err
		}
	}

	return nil
}

func parseIteration(env Env, rc *RunContext) error {
	if env.IterationNumber == "" {
		return fmt.Errorf("%w: %s is set without %s and the run path is not a prediction",
			ErrContextResolution, EnvRealizationNumber, EnvIterationNumber)
	}
	iter, err := strconv.Atoi(env.IterationNumber)
	if err != nil || iter < 0 {
		return fmt.Errorf("%w: invalid iteration number %q",
			ErrContextResolution, env.IterationNumber)
	}
	rc.IterationNumber = iter
	return nil
}

// interactiveRoot resolves the project root for interactive sessions by
// walking upwards looking for an rms/model path segment. The root is two
// levels above that segment. Falls back to a fixed ../.. offset.
func interactiveRoot(cwd string) string {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		abs = cwd
	}

	dir := abs
	for {
		if filepath.Base(dir) == "model" && filepath.Base(filepath.Dir(dir)) == "rms" {
			return filepath.Dir(filepath.Dir(dir))
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return filepath.Dir(filepath.Dir(abs))
}
