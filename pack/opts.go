package pack

// Option is a pack option.
type Option func(*Pack)

// WithManifest is a pack option to specify the path of the manifest written
// alongside the packed files. An empty name disables the manifest.
func WithManifest(name string) Option {
	return func(p *Pack) {
		p.manifest = name
	}
}

// WithFileMode is a pack option to specify the mode of written files.
func WithFileMode(mode uint32) Option {
	return func(p *Pack) {
		p.mode = mode
	}
}
