package gen

import (
	"flag"
)

// Flags holds config flags for generating the icon package.
type Flags struct {
	Wd         string
	Verbose    bool
	IconsDir   string
	Out        string
	Package    string
	Codec      string
	BlobName   string
	ModuleName string

	// RepoName is the directory name searched for in the ancestors of the
	// working directory when no icons directory is given.
	RepoName string
	// Fingerprint is the category directory that identifies a platform root.
	Fingerprint string
	// DensityDir is the slash separated path, relative to an icon directory,
	// holding the baseline density rasters.
	DensityDir string
	// Prefer is the glob of the preferred raster file name.
	Prefer string
	// Match is the glob of any acceptable raster file name.
	Match string
	// BlobImport is the import path of the blob runtime used by generated
	// code.
	BlobImport string
	// FileMode is the permission of written files.
	FileMode uint32
}

// NewFlags creates a set of flags for use by gen-icons.
func NewFlags(wd string) *Flags {
	return &Flags{
		Wd:          wd,
		Verbose:     true,
		Out:         ".",
		Package:     "mdicons",
		Codec:       "lz4",
		BlobName:    "material_design_icons_alpha",
		ModuleName:  "material_icons",
		RepoName:    "material-design-icons",
		Fingerprint: "action",
		DensityDir:  "materialicons/black/res/drawable-mdpi",
		Prefer:      "baseline_*_black_48.png",
		Match:       "*_black_48.png",
		BlobImport:  "github.com/kenshaw/mdicons/blob",
		FileMode:    0o644,
	}
}

// FlagSet returns a standard flag set for gen-icons flags.
func (f *Flags) FlagSet(name string, errorHandling flag.ErrorHandling) *flag.FlagSet {
	fs := flag.NewFlagSet(name, errorHandling)
	fs.BoolVar(&f.Verbose, "v", f.Verbose, "toggle verbose")
	fs.StringVar(&f.IconsDir, "icons-dir", f.IconsDir, "path to the material-design-icons repository (overrides "+EnvIconsDir+" and auto-detection)")
	fs.StringVar(&f.Out, "out", f.Out, "output root for data/ and the generated package")
	fs.StringVar(&f.Package, "pkg", f.Package, "generated package name")
	fs.StringVar(&f.Codec, "codec", f.Codec, "compressed blob codec (lz4, zstd)")
	fs.StringVar(&f.BlobName, "blob-name", f.BlobName, "base name of the blob files in data/")
	fs.StringVar(&f.ModuleName, "module-name", f.ModuleName, "base name of the generated Go files")
	return fs
}
