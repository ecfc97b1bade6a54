package gen

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

const (
	testRepo     = "/work/material-design-icons"
	testPlatform = testRepo + "/android"
)

// testFlags returns quiet flags writing to /out.
func testFlags() *Flags {
	flags := NewFlags("/work/project/sub")
	flags.Verbose = false
	flags.Out = "/out"
	return flags
}

// uniform returns a w x h image with every pixel set to c.
func uniform(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// encodePNG encodes img as a png.
func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

// writeFile writes buf to name on fs.
func writeFile(t *testing.T, fs afero.Fs, name string, buf []byte) {
	t.Helper()
	if err := fs.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, name, buf, 0o644); err != nil {
		t.Fatal(err)
	}
}

// rasterPath returns the path of file in the baseline density directory of
// category/icon.
func rasterPath(category, icon, file string) string {
	return filepath.Join(testPlatform, category, icon, "materialicons", "black", "res", "drawable-mdpi", file)
}

// addIcon writes a w x h baseline raster with alpha a for category/icon.
func addIcon(t *testing.T, fs afero.Fs, category, icon string, w, h int, a uint8) {
	t.Helper()
	writeFile(t, fs, rasterPath(category, icon, "baseline_"+icon+"_black_48.png"), encodePNG(t, uniform(w, h, color.NRGBA{A: a})))
}

// testRepoFs builds a small icons repository:
//
//	android/action/3d_rotation      4x4 alpha 0x10
//	android/action/account_balance  4x4 alpha 0x20 (plus an outlined variant)
//	android/action/warning          2x2 alpha 0x30
//	android/alert/error             2x2 alpha 0x50 (fallback name only)
//	android/alert/warning           3x3 alpha 0x40
//	android/alert/xxx_only          xxxhdpi only, skipped
func testRepoFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	addIcon(t, fs, "action", "3d_rotation", 4, 4, 0x10)
	addIcon(t, fs, "action", "account_balance", 4, 4, 0x20)
	writeFile(t, fs, rasterPath("action", "account_balance", "outline_account_balance_black_48.png"), encodePNG(t, uniform(4, 4, color.NRGBA{A: 0x99})))
	addIcon(t, fs, "action", "warning", 2, 2, 0x30)
	writeFile(t, fs, rasterPath("alert", "error", "error_black_48.png"), encodePNG(t, uniform(2, 2, color.NRGBA{A: 0x50})))
	addIcon(t, fs, "alert", "warning", 3, 3, 0x40)
	writeFile(t, fs, filepath.Join(testPlatform, "alert", "xxx_only", "materialicons", "black", "res", "drawable-xxxhdpi", "baseline_xxx_only_black_48.png"), encodePNG(t, uniform(8, 8, color.NRGBA{A: 0x60})))
	// not a platform root
	writeFile(t, fs, filepath.Join(testRepo, "docs", "README.md"), []byte("docs"))
	return fs
}

// expBlob is the expected blob of testRepoFs.
func expBlob() []byte {
	var buf []byte
	for _, z := range []struct {
		v byte
		n int
	}{
		{0x10, 16},
		{0x20, 16},
		{0x30, 4},
		{0x50, 4},
		{0x40, 9},
	} {
		buf = append(buf, bytes.Repeat([]byte{z.v}, z.n)...)
	}
	return buf
}
