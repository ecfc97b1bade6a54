// Package gen generates an embeddable Go icon package from a checkout of the
// material-design-icons repository.
//
// The generator locates the repository and its single platform root, picks
// the baseline 48px black raster of every icon, keeps only its alpha channel,
// and writes:
//
//	data/<blob>.bin       concatenated alpha channels
//	data/<blob>.lz4       the same, size-prefixed and compressed
//	data/manifest.json    SHA-1 of every written file
//	<module>.go           IconID values, All, ByPath, ByName
//	<module>_packed.go    embeds the compressed blob (default build)
//	<module>_raw.go       embeds the raw blob (<pkg>_uncompressed build tag)
//
// The generated files sit directly under the output root, beside data/,
// rather than in a src/ directory, as go:embed cannot reference a parent
// directory.
//
// Every run is a full, deterministic rebuild.
package gen

import (
	"flag"
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/yookoala/realpath"
)

// Result describes a completed generation.
type Result struct {
	Repo     string
	Platform string
	Files    []string
	Stats    Stats
}

// Run generates the icon package using the current working directory, the
// environment, and the command line args (including the program name).
func Run(args []string) error {
	// load working directory
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("could not determine working directory: %w", err)
	}
	if wd, err = realpath.Realpath(wd); err != nil {
		return fmt.Errorf("could not determine real path for working directory: %w", err)
	}
	flags, err := ParseFlags(wd, args, os.Stderr)
	if err != nil {
		return err
	}
	e, err := ParseEnv()
	if err != nil {
		return &ConfigError{Msg: "invalid environment", Err: err}
	}
	if flags.IconsDir != "" {
		dir, err := realpath.Realpath(flags.IconsDir)
		if err != nil {
			return &ConfigError{Msg: "could not determine real path for " + flags.IconsDir, Err: err}
		}
		flags.IconsDir = dir
	}
	_, err = Generate(afero.NewOsFs(), flags, e)
	return err
}

// ParseFlags parses the command line args (including the program name),
// writing usage and flag errors to w.
func ParseFlags(wd string, args []string, w io.Writer) (*Flags, error) {
	name := "gen-icons"
	if len(args) != 0 {
		name, args = filepath.Base(args[0]), args[1:]
	}
	flags := NewFlags(wd)
	fs := flags.FlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() {
		fmt.Fprintf(w, "usage: %s [--icons-dir <path-to-material-design-icons>] [--out <root>]\n\n", name)
		fs.PrintDefaults()
	}
	switch err := fs.Parse(args); {
	case err == flag.ErrHelp:
		return nil, err
	case err != nil:
		return nil, &UsageError{Err: err}
	case fs.NArg() != 0:
		err := fmt.Errorf("unexpected argument %q", fs.Arg(0))
		fmt.Fprintf(w, "%v\n", err)
		fs.Usage()
		return nil, &UsageError{Err: err}
	}
	return flags, nil
}

// Generate runs the generator against fs using flags.
//
// All output is rendered in memory first and only written to flags.Out once
// every icon has been decoded and the package generated, so a failed run
// leaves existing output untouched.
func Generate(fs afero.Fs, flags *Flags, e Env) (*Result, error) {
	if err := checkFlags(fs, flags); err != nil {
		return nil, err
	}
	emitter, err := NewEmitter(flags)
	if err != nil {
		return nil, err
	}
	extractor, err := NewExtractor(fs, flags)
	if err != nil {
		return nil, err
	}
	// locate
	repo, err := FindRepo(fs, flags, e)
	if err != nil {
		return nil, err
	}
	infof(flags, "icons repository: %s", repo)
	root, err := FindPlatformRoot(fs, flags, repo)
	if err != nil {
		return nil, err
	}
	infof(flags, "platform root: %s", root)
	// extract
	cat, stats, err := extractor.Extract(root)
	if err != nil {
		return nil, err
	}
	if stats.Packed == 0 {
		warnf(flags, "no icons found under %s", root)
	}
	// emit
	p, err := emitter.Emit(cat)
	if err != nil {
		return nil, err
	}
	files, err := p.WriteTo(fs, flags.Out)
	if err != nil {
		return nil, err
	}
	for _, n := range files {
		infof(flags, "wrote: %s", n)
	}
	infof(flags, "packed %d icons (%d bytes), skipped %d", stats.Packed, len(cat.Blob()), stats.Skipped)
	return &Result{
		Repo:     repo,
		Platform: root,
		Files:    files,
		Stats:    stats,
	}, nil
}

// checkFlags ensures flags have sane values.
func checkFlags(fs afero.Fs, flags *Flags) error {
	switch {
	case !isValidIdentifier(flags.Package) || token.IsKeyword(flags.Package):
		return configErrorf("invalid package name %q", flags.Package)
	case !isFileName(flags.BlobName):
		return configErrorf("invalid blob name %q", flags.BlobName)
	case !isFileName(flags.ModuleName):
		return configErrorf("invalid module name %q", flags.ModuleName)
	case flags.Out == "":
		return configErrorf("--out cannot be empty")
	case flags.FileMode == 0 || flags.FileMode&^0o777 != 0:
		return configErrorf("invalid file mode %#o", flags.FileMode)
	}
	fi, err := fs.Stat(flags.Out)
	switch {
	case err != nil && os.IsNotExist(err):
	case err != nil:
		return &ConfigError{Msg: "could not stat --out " + flags.Out, Err: err}
	case !fi.IsDir():
		return configErrorf("--out %s is not a directory", flags.Out)
	}
	return nil
}

// isFileName determines if s is usable as a plain file name.
func isFileName(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`)
}
