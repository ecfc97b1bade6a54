// Package binpack accumulates single channel icon rasters into one contiguous
// blob and keeps the ordered placement table used when generating Go code for
// the blob.
//
// Icons are added category by category, icon by icon, in lexicographic order.
// Every added icon receives an IconMeta describing where its bytes live in the
// blob:
//
//	blob[meta.Offset : meta.Offset+meta.Len]
//
// is exactly the icon's Width*Height bytes, row-major, with no padding.
//
// # Bare names
//
// The same icon name may appear in more than one category. The catalog
// remembers the first category (in sorted order) a name was seen in, which
// gives lookups by bare name a stable tie-break.
package binpack

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// IconMeta is the placement of an icon inside the blob.
type IconMeta struct {
	Offset uint32
	Len    uint32
	Width  uint16
	Height uint16
}

// End returns the offset one past the icon's last byte.
func (m IconMeta) End() uint32 {
	return m.Offset + m.Len
}

// Catalog is an ordered category -> icon -> IconMeta table together with the
// blob the metas point into.
type Catalog struct {
	// Platform is the name of the platform root the icons were read from.
	Platform string

	blob  []byte
	cats  map[string]map[string]IconMeta
	first map[string]string

	// last added pair, used to enforce ordering
	lastCat, lastIcon string
	count             int
}

// New creates an empty catalog for platform.
func New(platform string) *Catalog {
	return &Catalog{
		Platform: platform,
		cats:     make(map[string]map[string]IconMeta),
		first:    make(map[string]string),
	}
}

// ErrOutOfOrder is returned when icons are not added in sorted order.
var ErrOutOfOrder = errors.New("icons must be added in sorted category/icon order")

// Add appends alpha to the blob and records its placement under category and
// icon. Icons must be added in lexicographic (category, icon) order so that
// blob order matches catalog order.
func (c *Catalog) Add(category, icon string, alpha []byte, width, height int) (IconMeta, error) {
	switch {
	case category == "" || icon == "":
		return IconMeta{}, errors.New("category and icon names cannot be empty")
	case width < 0 || height < 0 || width > math.MaxUint16 || height > math.MaxUint16:
		return IconMeta{}, fmt.Errorf("%s/%s: invalid size %dx%d", category, icon, width, height)
	case len(alpha) != width*height:
		return IconMeta{}, fmt.Errorf("%s/%s: expected %d bytes for %dx%d, got %d", category, icon, width*height, width, height, len(alpha))
	case uint64(len(c.blob))+uint64(len(alpha)) > math.MaxUint32:
		return IconMeta{}, fmt.Errorf("%s/%s: blob would exceed %d bytes", category, icon, uint32(math.MaxUint32))
	}
	if c.count != 0 {
		if category < c.lastCat || (category == c.lastCat && icon <= c.lastIcon) {
			if _, ok := c.cats[category][icon]; ok {
				return IconMeta{}, fmt.Errorf("%s/%s: duplicate icon", category, icon)
			}
			return IconMeta{}, fmt.Errorf("%s/%s after %s/%s: %w", category, icon, c.lastCat, c.lastIcon, ErrOutOfOrder)
		}
	}
	m := IconMeta{
		Offset: uint32(len(c.blob)),
		Len:    uint32(len(alpha)),
		Width:  uint16(width),
		Height: uint16(height),
	}
	c.blob = append(c.blob, alpha...)
	icons, ok := c.cats[category]
	if !ok {
		icons = make(map[string]IconMeta)
		c.cats[category] = icons
	}
	icons[icon] = m
	if _, ok := c.first[icon]; !ok {
		c.first[icon] = c.Path(category, icon)
	}
	c.lastCat, c.lastIcon = category, icon
	c.count++
	return m, nil
}

// Path returns the full "platform/category/icon" path.
func (c *Catalog) Path(category, icon string) string {
	return c.Platform + "/" + category + "/" + icon
}

// Len returns the number of icons in the catalog.
func (c *Catalog) Len() int {
	return c.count
}

// Blob returns the concatenated channel data of all icons.
func (c *Catalog) Blob() []byte {
	return c.blob
}

// Categories returns the sorted category names.
func (c *Catalog) Categories() []string {
	return sortedKeys(c.cats)
}

// Icons returns the sorted icon names in category.
func (c *Catalog) Icons(category string) []string {
	return sortedKeys(c.cats[category])
}

// Meta returns the placement of category/icon.
func (c *Catalog) Meta(category, icon string) (IconMeta, bool) {
	m, ok := c.cats[category][icon]
	return m, ok
}

// Slice returns the channel data for m.
func (c *Catalog) Slice(m IconMeta) []byte {
	return c.blob[m.Offset:m.End()]
}

// Names returns the sorted bare icon names.
func (c *Catalog) Names() []string {
	return sortedKeys(c.first)
}

// FirstPath returns the full path of the first occurrence of the bare icon
// name.
func (c *Catalog) FirstPath(name string) (string, bool) {
	p, ok := c.first[name]
	return p, ok
}

// sortedKeys returns the sorted keys of m.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
