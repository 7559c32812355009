package dataio_test

import (
	"fmt"
	"log"
	"os"

	dataio "github.com/slangeveld/fmu-dataio"
)

// Example demonstrates the minimal export flow: load the global
// configuration, create an exporter for a content kind, and export an
// object. The metadata document lands next to the data file.
func Example() {
	cfg, err := dataio.LoadConfig("fmuconfig/output/global_variables.yml")
	if err != nil {
		log.Fatal(err)
	}

	surface := &dataio.RegularSurface{
		Name: "TopWhatever",
		Ncol: 12, Nrow: 10,
		Xinc: 25.0, Yinc: 25.0,
		Values: make([]float64, 120),
	}

	exp, err := dataio.NewExport(cfg, "depth",
		dataio.WithTagname("ds_extract"),
		dataio.WithUnit("m"),
	)
	if err != nil {
		log.Fatal(err)
	}

	path, err := exp.Export(surface)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("exported to", path)
}

// Example_caseInit shows how a case is established before any realization
// exports. The operation is idempotent.
func Example_caseInit() {
	cfg, err := dataio.LoadConfig(os.Getenv("FMU_GLOBAL_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}

	cc := &dataio.CreateCase{
		CasePath: "/scratch/ff/testcase",
		CaseName: "testcase",
	}
	path, err := cc.Run(cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("case metadata at", path)
}

// Example_metadataOnly generates and inspects a metadata document without
// writing any files.
func Example_metadataOnly() {
	cfg, err := dataio.LoadConfig("")
	if err != nil {
		log.Fatal(err)
	}

	table := &dataio.Table{
		Name:    "geogrid_volumes",
		Columns: []string{"ZONE", "REGION", "STOIIP"},
		Rows:    [][]any{{"Valysar", "West", 1200.5}},
	}

	exp, err := dataio.NewExport(cfg, "volumes")
	if err != nil {
		log.Fatal(err)
	}

	meta, err := exp.GenerateMetadata(table)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(meta.Data.Content, meta.Data.TableIndex)
}
