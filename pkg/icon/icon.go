// Package icon resolves icon references found in menu documents into pixel
// data.
//
// A reference starting with '@' names a file in the bundled resource
// namespace (an fs.FS supplied by the caller). Anything else is a locator:
// a plain path or a file: URL on the local disk, or an icons: URL naming one
// of the built-in material design icons (see Names).
package icon

import (
	"errors"
	"image"
	"image/draw"
)

const (
	// BundlePrefix marks a reference into the bundled resource namespace.
	BundlePrefix = "@"

	// DefaultSize is the edge of the square resized icons are fitted into.
	DefaultSize = 15
)

// Resolution failures. Errors returned by resolvers wrap one of these.
var (
	ErrNotFound          = errors.New("icon not found")
	ErrDecode            = errors.New("icon decode failed")
	ErrUnsupportedScheme = errors.New("unsupported icon locator scheme")
	ErrMalformedRef      = errors.New("malformed icon reference")
)

// Icon is a decoded icon owned by the node that embeds it.
type Icon struct {
	Image  *image.NRGBA
	Width  int
	Height int
	Ref    string
}

// New wraps an image, converting it to NRGBA when needed.
func New(ref string, img image.Image) *Icon {
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		b := img.Bounds()
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}
	return &Icon{
		Image:  nrgba,
		Width:  nrgba.Rect.Dx(),
		Height: nrgba.Rect.Dy(),
		Ref:    ref,
	}
}

// Resolver turns an icon reference into an Icon. When resize is set the
// result is fitted into the resolver's square size.
type Resolver interface {
	Resolve(ref string, resize bool) (*Icon, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ref string, resize bool) (*Icon, error)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(ref string, resize bool) (*Icon, error) {
	return f(ref, resize)
}
