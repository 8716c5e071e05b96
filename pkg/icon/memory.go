package icon

import (
	"fmt"
	"image"
	"sync"
)

// MemoryResolver serves preloaded images. It is deterministic and useful in
// tests or when the caller ships its icons compiled in.
type MemoryResolver struct {
	mu     sync.RWMutex
	images map[string]image.Image
	errs   map[string]error
	size   int
}

// NewMemoryResolver creates an empty resolver fitting resized icons into
// DefaultSize.
func NewMemoryResolver() *MemoryResolver {
	return &MemoryResolver{
		images: make(map[string]image.Image),
		errs:   make(map[string]error),
		size:   DefaultSize,
	}
}

// Add registers an image under the exact reference string.
func (r *MemoryResolver) Add(ref string, img image.Image) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.images[ref] = img
	delete(r.errs, ref)
}

// Fail makes the reference resolve to err.
func (r *MemoryResolver) Fail(ref string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs[ref] = err
	delete(r.images, ref)
}

// Resolve implements Resolver.
func (r *MemoryResolver) Resolve(ref string, resize bool) (*Icon, error) {
	r.mu.RLock()
	img, ok := r.images[ref]
	err := r.errs[ref]
	r.mu.RUnlock()

	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", ref, ErrNotFound)
	}
	if resize {
		return New(ref, Fit(img, r.size)), nil
	}
	return New(ref, img), nil
}
