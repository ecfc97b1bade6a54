// Package tpl contains the quicktemplate templates for generated icon
// packages.
//
// Edit the .qtpl files and regenerate with qtc.
package tpl

//go:generate qtc -dir=.

// Module is the data rendered into a generated icon package.
type Module struct {
	// Generator is the name of the generating command.
	Generator string
	// Package is the Go package name.
	Package string
	// BlobImport is the import path of the blob runtime package.
	BlobImport string
	// Platform is the platform root.
	Platform Platform
	// Aliases are the root level category aliases.
	Aliases []Alias
	// Entries are all icons in catalog order, keyed by quoted path.
	Entries []Entry
	// Paths are the lowercased path lookup keys.
	Paths []Entry
	// Names are the bare name lookup keys, sorted.
	Names []Entry
}

// Platform is the top level namespace.
type Platform struct {
	Name       string
	Ident      string
	Type       string
	Categories []Category
}

// Category is a category namespace.
type Category struct {
	Name  string
	Ident string
	Type  string
	Icons []Icon
}

// Icon is a single icon value.
type Icon struct {
	Name   string
	Ident  string
	Offset uint32
	Len    uint32
	Width  uint16
	Height uint16
}

// Alias is a root level alias of a category value.
type Alias struct {
	Ident  string
	Target string
}

// Entry maps a quoted lookup key (or path) to the expression of an icon
// value.
type Entry struct {
	Key  string
	Expr string
}

// Blob is the data rendered into the build tagged blob files.
type Blob struct {
	Generator  string
	Package    string
	BlobImport string
	Constraint string
	Embed      string
	// Codec is the blob codec variable name, empty for raw blobs.
	Codec string
}
