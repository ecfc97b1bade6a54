// Package pack stages generated files in memory and writes them out as a
// set.
//
// Files are added to an in-memory filesystem as they are produced. Nothing
// touches the destination until WriteTo is called, so a generator that fails
// midway leaves previous output in place.
package pack

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shurcooL/httpfs/vfsutil"
	"github.com/spf13/afero"
)

// Pack is a staged set of output files.
type Pack struct {
	fs       afero.Fs
	manifest string
	mode     uint32
}

// New creates a new output pack.
func New(opts ...Option) *Pack {
	p := &Pack{
		fs:   afero.NewMemMapFs(),
		mode: 0o644,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// clean normalizes name to a slash separated absolute path.
func clean(name string) string {
	return path.Clean("/" + strings.TrimLeft(filepath.ToSlash(name), "/"))
}

// Add adds a file with name to pack from r.
func (p *Pack) Add(name string, r io.Reader) error {
	name = clean(name)
	buf, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if err := p.fs.MkdirAll(path.Dir(name), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(p.fs, name, buf, os.FileMode(p.mode))
}

// AddBytes adds a file with name to the output from buf.
func (p *Pack) AddBytes(name string, buf []byte) error {
	return p.Add(name, bytes.NewReader(buf))
}

// AddString adds a file with name to the output from s.
func (p *Pack) AddString(name string, s string) error {
	return p.Add(name, strings.NewReader(s))
}

// ReadFile returns the contents of the packed file name.
func (p *Pack) ReadFile(name string) ([]byte, error) {
	return afero.ReadFile(p.fs, clean(name))
}

// Files returns the sorted names of all packed files.
func (p *Pack) Files() ([]string, error) {
	var files []string
	err := vfsutil.Walk(p, "/", func(n string, fi os.FileInfo, err error) error {
		switch {
		case err != nil:
			return err
		case fi.IsDir():
			return nil
		}
		files = append(files, strings.TrimPrefix(n, "/"))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Manifest returns a manifest of the packed file data, mapping each file
// name to the hex encoded SHA-1 of its contents.
func (p *Pack) Manifest() (map[string]string, error) {
	files, err := p.Files()
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(files))
	for _, n := range files {
		if p.manifest != "" && n == strings.TrimPrefix(clean(p.manifest), "/") {
			continue
		}
		buf, err := p.ReadFile(n)
		if err != nil {
			return nil, err
		}
		sum := sha1.Sum(buf)
		m[n] = hex.EncodeToString(sum[:])
	}
	return m, nil
}

// ManifestBytes returns a JSON-encoded version of the file manifest.
func (p *Pack) ManifestBytes() ([]byte, error) {
	m, err := p.Manifest()
	if err != nil {
		return nil, err
	}
	buf, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(buf, '\n'), nil
}

// WriteTo writes all packed files, plus the manifest when configured, to
// dir on fs. It returns the written paths.
func (p *Pack) WriteTo(fs afero.Fs, dir string) ([]string, error) {
	if p.manifest != "" {
		buf, err := p.ManifestBytes()
		if err != nil {
			return nil, fmt.Errorf("could not build manifest: %w", err)
		}
		if err := p.AddBytes(p.manifest, buf); err != nil {
			return nil, err
		}
	}
	files, err := p.Files()
	if err != nil {
		return nil, err
	}
	var written []string
	for _, n := range files {
		buf, err := p.ReadFile(n)
		if err != nil {
			return written, err
		}
		out := filepath.Join(dir, filepath.FromSlash(n))
		if err := fs.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return written, fmt.Errorf("could not create directory for %s: %w", out, err)
		}
		if err := afero.WriteFile(fs, out, buf, os.FileMode(p.mode)); err != nil {
			return written, fmt.Errorf("could not write %s: %w", out, err)
		}
		written = append(written, out)
	}
	return written, nil
}

// Open satisfies the http.FileSystem interface.
func (p *Pack) Open(name string) (http.File, error) {
	return p.fs.Open(clean(name))
}
