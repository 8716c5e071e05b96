package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/tiff" // register decoder
	_ "golang.org/x/image/webp" // register decoder
)

// MaterialScheme is the URL scheme of the built-in material icons.
const MaterialScheme = "icons"

// Loader is the default Resolver. It reads bundled resources from an fs.FS,
// locators from the local disk and material icons from memory. It holds no
// mutable state and is safe for concurrent use.
type Loader struct {
	bundle   fs.FS
	size     int
	readFile func(name string) ([]byte, error)
}

// Option configures a Loader.
type Option func(*Loader)

// WithBundle sets the namespace '@' references are resolved against.
func WithBundle(fsys fs.FS) Option {
	return func(l *Loader) { l.bundle = fsys }
}

// WithSize sets the square edge used when resizing. Values below 1 keep the
// default.
func WithSize(size int) Option {
	return func(l *Loader) {
		if size > 0 {
			l.size = size
		}
	}
}

// NewLoader creates a Loader with DefaultSize and no bundle.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		size:     DefaultSize,
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Size returns the square edge used when resizing.
func (l *Loader) Size() int {
	return l.size
}

// Resolve implements Resolver.
func (l *Loader) Resolve(ref string, resize bool) (*Icon, error) {
	img, err := l.load(ref, resize)
	if err != nil {
		return nil, err
	}
	if resize {
		img = Fit(img, l.size)
	}
	return New(ref, img), nil
}

func (l *Loader) load(ref string, resize bool) (image.Image, error) {
	if strings.TrimSpace(ref) == "" {
		return nil, fmt.Errorf("empty reference: %w", ErrMalformedRef)
	}
	if strings.HasPrefix(ref, BundlePrefix) {
		return l.loadBundled(ref, strings.TrimPrefix(ref, BundlePrefix))
	}
	return l.loadLocator(ref, resize)
}

func (l *Loader) loadBundled(ref, name string) (image.Image, error) {
	name = strings.TrimPrefix(name, "/")
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("%s: %w", ref, ErrMalformedRef)
	}
	if l.bundle == nil {
		return nil, fmt.Errorf("%s: no bundle configured: %w", ref, ErrNotFound)
	}
	data, err := fs.ReadFile(l.bundle, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", ref, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", ref, err)
	}
	return decode(ref, data)
}

func (l *Loader) loadLocator(ref string, resize bool) (image.Image, error) {
	u, err := url.Parse(strings.ReplaceAll(ref, " ", "%20"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", ref, ErrMalformedRef, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "", "file":
		return l.loadFile(ref, u.Path)
	case MaterialScheme:
		name := u.Opaque
		if name == "" {
			name = u.Host + u.Path
		}
		size := MaterialSize
		if resize {
			size = l.size
		}
		return Material(name, size)
	}

	// Single letter schemes are drive letters (C:\icons\open.png).
	if len(u.Scheme) == 1 {
		return l.loadFile(ref, ref)
	}
	return nil, fmt.Errorf("%s: %q: %w", ref, u.Scheme, ErrUnsupportedScheme)
}

func (l *Loader) loadFile(ref, path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%s: %w", ref, ErrMalformedRef)
	}
	data, err := l.readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", ref, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", ref, err)
	}
	return decode(ref, data)
}

// decode sniffs the content before decoding so non-image files report
// what they are instead of a bare format error.
func decode(ref string, data []byte) (image.Image, error) {
	if !filetype.IsImage(data) {
		kind := "unknown content"
		if t, err := filetype.Match(data); err == nil && t != filetype.Unknown {
			kind = t.MIME.Value
		}
		return nil, fmt.Errorf("%s: %w: %s", ref, ErrDecode, kind)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", ref, ErrDecode, err)
	}
	return img, nil
}
