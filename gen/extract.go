package gen

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/spf13/afero"
	"golang.org/x/image/draw"

	"github.com/kenshaw/mdicons/binpack"
)

// Extractor selects and decodes the baseline raster of every icon under a
// platform root.
type Extractor struct {
	fs     afero.Fs
	flags  *Flags
	prefer glob.Glob
	match  glob.Glob
}

// Stats are extraction counts.
type Stats struct {
	Packed  int
	Skipped int
}

// NewExtractor creates an extractor reading from fs.
func NewExtractor(fs afero.Fs, flags *Flags) (*Extractor, error) {
	prefer, err := glob.Compile(flags.Prefer)
	if err != nil {
		return nil, &ConfigError{Msg: fmt.Sprintf("invalid preferred pattern %q", flags.Prefer), Err: err}
	}
	match, err := glob.Compile(flags.Match)
	if err != nil {
		return nil, &ConfigError{Msg: fmt.Sprintf("invalid match pattern %q", flags.Match), Err: err}
	}
	return &Extractor{
		fs:     fs,
		flags:  flags,
		prefer: prefer,
		match:  match,
	}, nil
}

// Extract walks the category and icon directories of root in sorted order,
// building a catalog of each icon's alpha channel. Icons without a baseline
// raster are skipped. A raster that fails to decode is a fatal *AssetError.
func (x *Extractor) Extract(root string) (*binpack.Catalog, Stats, error) {
	var stats Stats
	cat := binpack.New(filepath.Base(root))
	categories, err := readDir(x.fs, root, true)
	if err != nil {
		return nil, stats, fmt.Errorf("could not read icon categories under %s: %w", root, err)
	}
	for _, c := range categories {
		catDir := filepath.Join(root, c.Name())
		icons, err := readDir(x.fs, catDir, true)
		if err != nil {
			return nil, stats, fmt.Errorf("could not read icons under %s: %w", catDir, err)
		}
		for _, ic := range icons {
			iconDir := filepath.Join(catDir, ic.Name())
			name, err := x.Pick(iconDir)
			switch {
			case err != nil:
				return nil, stats, err
			case name == "":
				stats.Skipped++
				continue
			}
			alpha, w, h, err := x.Decode(name)
			if err != nil {
				return nil, stats, err
			}
			if _, err := cat.Add(c.Name(), ic.Name(), alpha, w, h); err != nil {
				return nil, stats, fmt.Errorf("could not add %s: %w", name, err)
			}
			stats.Packed++
		}
	}
	return cat, stats, nil
}

// Pick returns the path of the canonical raster for the icon in iconDir, or
// an empty string when the icon has no baseline raster.
//
// A file matching the preferred pattern wins. Otherwise the first file (in
// sorted order) matching the general pattern is used.
func (x *Extractor) Pick(iconDir string) (string, error) {
	dir := filepath.Join(iconDir, filepath.FromSlash(x.flags.DensityDir))
	if !isDir(x.fs, dir) {
		return "", nil
	}
	files, err := readDir(x.fs, dir, false)
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", dir, err)
	}
	var fallback string
	for _, fi := range files {
		switch name := fi.Name(); {
		case x.prefer.Match(name):
			return filepath.Join(dir, name), nil
		case fallback == "" && x.match.Match(name):
			fallback = filepath.Join(dir, name)
		}
	}
	return fallback, nil
}

// Decode decodes the png at name, returning its alpha channel and size.
func (x *Extractor) Decode(name string) ([]byte, int, int, error) {
	f, err := x.fs.Open(name)
	if err != nil {
		return nil, 0, 0, &AssetError{Path: name, Err: err}
	}
	defer f.Close()
	alpha, w, h, err := DecodeAlpha(f)
	if err != nil {
		return nil, 0, 0, &AssetError{Path: name, Err: err}
	}
	return alpha, w, h, nil
}

// ErrPaletted is returned when a paletted image survives palette expansion.
var ErrPaletted = errors.New("indexed png decode did not expand as expected")

// DecodeAlpha decodes a png from r and extracts its alpha channel.
func DecodeAlpha(r io.Reader) ([]byte, int, int, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("png decode: %w", err)
	}
	if p, ok := img.(*image.Paletted); ok {
		img = expand(p)
	}
	alpha, err := Alpha(img)
	if err != nil {
		return nil, 0, 0, err
	}
	b := img.Bounds()
	return alpha, b.Dx(), b.Dy(), nil
}

// expand converts a paletted image to 8-bit non-premultiplied RGBA, carrying
// any palette transparency into the alpha channel.
func expand(p *image.Paletted) image.Image {
	b := p.Bounds()
	dst := image.NewNRGBA(b)
	draw.Copy(dst, b.Min, p, b, draw.Src, nil)
	return dst
}

// Alpha returns the opacity of each pixel of img in row-major order.
//
// Images with an alpha channel yield that channel, reduced to 8 bits. Images
// without one (gray, and truecolor which decodes to opaque RGBA) are fully
// opaque. Paletted images must be expanded first.
func Alpha(img image.Image) ([]byte, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	buf := make([]byte, 0, w*h)
	switch m := img.(type) {
	case *image.NRGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := m.Pix[m.PixOffset(b.Min.X, y):]
			for x := 0; x < w; x++ {
				buf = append(buf, row[x*4+3])
			}
		}
	case *image.NRGBA64:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := m.Pix[m.PixOffset(b.Min.X, y):]
			for x := 0; x < w; x++ {
				// high byte of the big-endian 16-bit alpha
				buf = append(buf, row[x*8+6])
			}
		}
	case *image.RGBA, *image.RGBA64, *image.Gray, *image.Gray16:
		for i := 0; i < w*h; i++ {
			buf = append(buf, 0xff)
		}
	case *image.Paletted:
		return nil, ErrPaletted
	default:
		return nil, fmt.Errorf("unsupported image type %T", img)
	}
	return buf, nil
}
