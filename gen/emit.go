package gen

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/kenshaw/mdicons/binpack"
	"github.com/kenshaw/mdicons/blob"
	"github.com/kenshaw/mdicons/gen/tpl"
	"github.com/kenshaw/mdicons/pack"
)

const (
	// generatorName is the name written in generated file headers.
	generatorName = "gen-icons"
	dataDir       = "data"
	manifestName  = "manifest.json"
)

// reservedIdents are the package level identifiers of the generated package
// that category aliases and the platform value must not shadow.
var reservedIdents = []string{"IconID", "Entry", "All", "ByPath", "ByName"}

// codecVars maps codec names to their variable in the blob package.
var codecVars = map[string]string{
	"lz4":  "LZ4",
	"zstd": "Zstd",
}

// Emitter writes the blob, its compressed form, and the generated package
// for a catalog.
type Emitter struct {
	flags *Flags
	codec blob.Codec
}

// NewEmitter creates an emitter.
func NewEmitter(flags *Flags) (*Emitter, error) {
	codec, err := blob.CodecByName(flags.Codec)
	if err != nil {
		return nil, &ConfigError{Msg: "invalid --codec", Err: err}
	}
	return &Emitter{
		flags: flags,
		codec: codec,
	}, nil
}

// Emit renders all output files for cat into a staged pack.
func (e *Emitter) Emit(cat *binpack.Catalog) (*pack.Pack, error) {
	p := pack.New(
		pack.WithManifest(path.Join(dataDir, manifestName)),
		pack.WithFileMode(e.flags.FileMode),
	)
	raw := path.Join(dataDir, e.flags.BlobName+".bin")
	packed := path.Join(dataDir, e.flags.BlobName+e.codec.Ext())
	// blobs
	if err := p.AddBytes(raw, cat.Blob()); err != nil {
		return nil, err
	}
	enc, err := e.codec.Encode(cat.Blob())
	if err != nil {
		return nil, fmt.Errorf("could not compress blob: %w", err)
	}
	if err := p.AddBytes(packed, enc); err != nil {
		return nil, err
	}
	// module
	m, err := BuildModule(cat, e.flags)
	if err != nil {
		return nil, err
	}
	tag := e.flags.Package + "_uncompressed"
	for _, z := range []struct {
		name string
		src  string
	}{
		{e.flags.ModuleName + ".go", tpl.ModuleSource(m)},
		{e.flags.ModuleName + "_packed.go", tpl.BlobSource(&tpl.Blob{
			Generator:  generatorName,
			Package:    e.flags.Package,
			BlobImport: e.flags.BlobImport,
			Constraint: "!" + tag,
			Embed:      packed,
			Codec:      codecVars[e.codec.Name()],
		})},
		{e.flags.ModuleName + "_raw.go", tpl.BlobSource(&tpl.Blob{
			Generator:  generatorName,
			Package:    e.flags.Package,
			BlobImport: e.flags.BlobImport,
			Constraint: tag,
			Embed:      raw,
		})},
	} {
		buf, err := formatSource(z.name, z.src)
		if err != nil {
			return nil, err
		}
		if err := p.AddBytes(z.name, buf); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// formatSource gofmts generated source.
func formatSource(name, src string) ([]byte, error) {
	buf, err := imports.Process(name, []byte(src), &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		return nil, fmt.Errorf("could not format generated %s: %w", name, err)
	}
	return buf, nil
}

// BuildModule builds the template data for the generated package of cat.
//
// Identifiers are checked for collisions within each namespace: the icons of
// a category, the categories of the platform, and the package level names.
func BuildModule(cat *binpack.Catalog, flags *Flags) (*tpl.Module, error) {
	root := binpack.NewNamespace("package "+flags.Package, reservedIdents...)
	platformIdent, err := root.Ident(cat.Platform)
	if err != nil {
		return nil, err
	}
	m := &tpl.Module{
		Generator:  generatorName,
		Package:    flags.Package,
		BlobImport: flags.BlobImport,
		Platform: tpl.Platform{
			Name:  strconv.Quote(cat.Platform),
			Ident: platformIdent,
			Type:  "platform" + platformIdent,
		},
	}
	exprs := make(map[string]string)
	seenPaths := make(map[string]bool)
	categories := binpack.NewNamespace(cat.Platform)
	for _, c := range cat.Categories() {
		catIdent, err := categories.Ident(c)
		if err != nil {
			return nil, err
		}
		aliasIdent, err := root.Ident(c)
		if err != nil {
			return nil, fmt.Errorf("category alias: %w", err)
		}
		m.Aliases = append(m.Aliases, tpl.Alias{
			Ident:  aliasIdent,
			Target: platformIdent + "." + catIdent,
		})
		category := tpl.Category{
			Name:  strconv.Quote(c),
			Ident: catIdent,
			Type:  "category" + catIdent,
		}
		icons := binpack.NewNamespace(cat.Platform + "/" + c)
		for _, icon := range cat.Icons(c) {
			ident, err := icons.Ident(icon)
			if err != nil {
				return nil, err
			}
			meta, _ := cat.Meta(c, icon)
			category.Icons = append(category.Icons, tpl.Icon{
				Name:   icon,
				Ident:  ident,
				Offset: meta.Offset,
				Len:    meta.Len,
				Width:  meta.Width,
				Height: meta.Height,
			})
			p := cat.Path(c, icon)
			expr := platformIdent + "." + catIdent + "." + ident
			exprs[p] = expr
			m.Entries = append(m.Entries, tpl.Entry{
				Key:  strconv.Quote(p),
				Expr: expr,
			})
			// paths differing only in case resolve to the first in sorted
			// order
			if key := strings.ToLower(p); !seenPaths[key] {
				seenPaths[key] = true
				m.Paths = append(m.Paths, tpl.Entry{
					Key:  strconv.Quote(key),
					Expr: expr,
				})
			}
		}
		m.Platform.Categories = append(m.Platform.Categories, category)
	}
	seenNames := make(map[string]bool)
	for _, name := range cat.Names() {
		key := strings.ToLower(name)
		if seenNames[key] {
			continue
		}
		seenNames[key] = true
		p, _ := cat.FirstPath(name)
		m.Names = append(m.Names, tpl.Entry{
			Key:  strconv.Quote(key),
			Expr: exprs[p],
		})
	}
	return m, nil
}
