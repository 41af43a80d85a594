// Command urplit converts material description files in a directory to the
// URP Lit shading model, auto-filling texture slots from filename
// conventions.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/woozymasta/urplit"
	"github.com/woozymasta/urplit/internal/fshost"
	"github.com/woozymasta/urplit/internal/logging"
)

// version is shown by --version; override at build time with
// -ldflags "-X main.version=...".
var version = "0.1.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		shader      = flag.String("shader", urplit.DefaultTargetShader, "target shader name")
		dryRun      = flag.Bool("dry-run", false, "convert in memory without writing files")
		noAutoFill  = flag.Bool("no-autofill", false, "disable filename-based slot probing")
		noBackup    = flag.Bool("no-backup", false, "do not write .bak copies before mutation")
		verbose     = flag.Bool("verbose", false, "log per-material debug detail")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Fprintln(os.Stdout, "urplit v"+version)
		return 0
	}
	if flag.NArg() != 1 {
		usage()
		return 1
	}
	root := strings.TrimRight(flag.Arg(0), "/")

	log := logging.NewLogger(*verbose)

	paths, err := discoverMaterials(root)
	if err != nil {
		log.Error("material discovery failed: %v", err)
		return 1
	}
	log.Info("Found %d materials under %s", len(paths), root)

	mats := make([]urplit.HostMaterial, 0, len(paths))
	files := make([]*fshost.Material, 0, len(paths))
	for _, p := range paths {
		m, err := fshost.Load(p)
		if err != nil {
			log.Error("%v", err)
			return 1
		}
		mats = append(mats, m)
		files = append(files, m)
	}

	conv := urplit.Converter{
		Shaders: fshost.Registry{},
		Assets:  fshost.Index{},
		Notices: logging.Sink{Log: log},
	}
	if !*noBackup && !*dryRun {
		conv.Recorder = fshost.NewBackupRecorder()
	}

	opt := &urplit.ConvertOptions{
		TargetShader:    *shader,
		DisableAutoFill: *noAutoFill,
	}
	stats, err := conv.ConvertSelection(mats, opt)
	if err != nil {
		return 1
	}

	for _, m := range files {
		if *verbose {
			log.Debug("%s", spew.Sdump(urplit.Snapshot(m)))
		}
		if *dryRun {
			continue
		}
		if err := m.Save(); err != nil {
			log.Error("save %s: %v", m.Path(), err)
			return 1
		}
	}

	if *dryRun {
		log.Success("[DRY] Would convert %d materials (%d workflow conflicts)", stats.Converted, stats.Conflicts)
		return 0
	}
	log.Success("Converted %d of %d materials (%d workflow conflicts)", stats.Converted, stats.Total, stats.Conflicts)
	return 0
}

// discoverMaterials lists every *.mat file under root, in lexical order.
func discoverMaterials(root string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".mat") {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: urplit [flags] <materials_dir>

Converts every *.mat description file under materials_dir to the URP Lit
shading model, inferring unassigned texture slots from filename conventions.

Flags:
`)
	flag.PrintDefaults()
}
