// Package dataio is the Composition Root for the fmu-dataio library.
//
// It connects the metadata model (pkg/fmuresults), the object inspector
// (pkg/objects), the content registry (pkg/registry) and the export
// orchestrator (pkg/export) behind a small facade.
//
// Philosophy:
//
// dataio treats exported modeling results as documents: every data file is
// written together with a sibling metadata document describing its content,
// provenance and geometry, following the versioned fmu_results schema.
// Downstream consumers index on the metadata, never on file names.
//
// Features:
//
//   - **Run-context detection**: batch ensemble runs and interactive
//     sessions are classified from the environment, never configured.
//   - **Fail-fast validation**: metadata is assembled and validated in full
//     before any file is written.
//   - **Atomic writes**: data and metadata files land via temp-and-rename.
//   - **Deterministic paths**: share/results/<folder>/<name>--<tag>.<ext>,
//     derived from the object and the export settings alone.
//   - **Schema generation**: the published JSON Schema is reflected from
//     the same Go types the library writes.
//
// Usage:
//
//	cfg, err := dataio.LoadConfig("fmuconfig/output/global_variables.yml")
//	exp, err := dataio.NewExport(cfg, "depth",
//		dataio.WithTagname("ds_extract"),
//		dataio.WithUnit("m"),
//	)
//	path, err := exp.Export(surface)
package dataio
