// Beamgen CLI - loads the OTP tables and emits the generated Go sources
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tliron/commonlog"

	"github.com/chazu/beamgen/codegen"
	"github.com/chazu/beamgen/manifest"
	"github.com/chazu/beamgen/otp"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("beamgen")

func main() {
	projectDir := flag.String("C", ".", "Project directory (beamgen.toml is searched upward from here)")
	release := flag.String("otp", "", "OTP release to load: otp19 or otp20 (overrides manifest)")
	tablesDir := flag.String("tables", "", "Directory holding the table files (overrides manifest)")
	outDir := flag.String("out", "", "Output directory for generated code (overrides manifest)")
	pkgName := flag.String("pkg", "", "Package name for generated code (overrides manifest)")
	snapshotPath := flag.String("snapshot", "", "Also write the loaded model as a CBOR snapshot to this file")
	verbose := flag.Bool("v", false, "Verbose output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: beamgen [options]\n\n")
		fmt.Fprintf(os.Stderr, "Loads atoms.tab, genop.tab and bif.tab for one OTP release and emits\n")
		fmt.Fprintf(os.Stderr, "the opcode, atom and bif tables as Go source.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  beamgen                          # Use beamgen.toml from the current tree\n")
		fmt.Fprintf(os.Stderr, "  beamgen -otp otp19 -tables ./tab # Load OTP 19 tables from ./tab\n")
		fmt.Fprintf(os.Stderr, "  beamgen -snapshot tables.cbor    # Keep a reloadable model snapshot\n")
	}
	flag.Parse()

	verbosity := 0
	if *verbose {
		verbosity = 1
	}
	commonlog.Configure(verbosity, nil)

	m, err := manifest.FindAndLoad(*projectDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading beamgen.toml: %v\n", err)
		os.Exit(1)
	}
	if m == nil {
		// No manifest anywhere above; fall back to defaults rooted at -C
		dir, err := filepath.Abs(*projectDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		m = &manifest.Manifest{
			OTP:    manifest.OTP{Release: "otp20", Tables: "tab"},
			Output: manifest.Output{Dir: "gen", Package: "genop"},
			Dir:    dir,
		}
	}

	if *release != "" {
		m.OTP.Release = *release
	}
	if *tablesDir != "" {
		m.OTP.Tables = *tablesDir
	}
	if *outDir != "" {
		m.Output.Dir = *outDir
	}
	if *pkgName != "" {
		m.Output.Package = *pkgName
	}

	rel, ok := otp.ReleaseByName(m.OTP.Release)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown OTP release %q (expected otp19 or otp20)\n", m.OTP.Release)
		os.Exit(1)
	}

	tables, err := otp.Load(rel, m.TablesDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s tables: %v\n", rel.Name, err)
		os.Exit(1)
	}
	log.Infof("loaded %s: %d opcodes, %d atoms, %d bifs, %d implemented ops",
		rel.Name, len(tables.Ops), tables.Atoms.Len(), len(tables.Bifs), len(tables.ImplementedOps))

	files, err := codegen.Generate(tables, m.Output.Package)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating code: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(m.OutputDir(), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", m.OutputDir(), err)
		os.Exit(1)
	}
	for name, code := range files {
		path := filepath.Join(m.OutputDir(), name)
		if err := os.WriteFile(path, []byte(code), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		log.Infof("wrote %s", path)
	}

	if *snapshotPath != "" {
		data, err := otp.MarshalSnapshot(tables)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding snapshot: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*snapshotPath, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *snapshotPath, err)
			os.Exit(1)
		}
		log.Infof("wrote snapshot %s (%d bytes)", *snapshotPath, len(data))
	}
}
