package menu

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/OpenTraceLab/menukit/pkg/icon"
	"github.com/OpenTraceLab/menukit/pkg/markup"
)

// Errors reported in strict mode.
var (
	ErrRootMismatch = errors.New("root tag does not match shape")
	ErrUnknownTag   = errors.New("unknown element")
)

// Builder compiles documents into menu trees. A Builder holds only its
// configuration and may be shared between goroutines.
type Builder struct {
	resolver icon.Resolver
	logger   *slog.Logger
	strict   bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithResolver sets the icon resolver. A nil resolver disables icons.
func WithResolver(r icon.Resolver) Option {
	return func(b *Builder) { b.resolver = r }
}

// WithLogger sets where diagnostics go. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithStrict turns root mismatches and unknown tags into errors.
func WithStrict(strict bool) Option {
	return func(b *Builder) { b.strict = strict }
}

// NewBuilder creates a lenient builder using icon.NewLoader() without a
// bundle, unless options say otherwise.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		resolver: icon.NewLoader(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Strict reports whether the builder runs in strict mode.
func (b *Builder) Strict() bool {
	return b.strict
}

// Build compiles doc into the container for shape. The returned container
// is never nil, even when err is not: a failed build yields an empty one.
func (b *Builder) Build(doc *markup.Document, shape Shape) (Container, error) {
	ctx := &buildContext{resolver: b.resolver, logger: b.logger, strict: b.strict}

	var root *markup.Element
	if doc != nil {
		root = doc.Root
	}
	if root == nil || root.Tag != shape.RootTag() {
		got := ""
		if root != nil {
			got = root.Tag
		}
		if b.strict {
			return emptyContainer(shape), fmt.Errorf("got <%s>, want <%s> for %s: %w", got, shape.RootTag(), shape, ErrRootMismatch)
		}
		b.logger.Debug("menu: root tag mismatch, returning empty container", "got", got, "want", shape.RootTag())
		return emptyContainer(shape), nil
	}

	switch shape {
	case ShapeMenuBar:
		nodes, err := ctx.children(root, groupsOnly)
		if err != nil {
			return emptyContainer(shape), err
		}
		bar := &MenuBar{Menus: make([]*Group, 0, len(nodes))}
		for _, n := range nodes {
			bar.Menus = append(bar.Menus, n.(*Group))
		}
		return bar, nil
	case ShapeContextMenu:
		nodes, err := ctx.children(root, allNodes)
		if err != nil {
			return emptyContainer(shape), err
		}
		return &ContextMenu{Items: nodes}, nil
	default:
		g, err := ctx.newGroup(root)
		if err != nil {
			return emptyContainer(shape), err
		}
		return &Menu{Group: *g}, nil
	}
}

// Load builds doc as a menu (root tag menu-root).
func (b *Builder) Load(doc *markup.Document) (*Menu, error) {
	c, err := b.Build(doc, ShapeMenu)
	return c.(*Menu), err
}

// LoadMenuBar builds doc as a menu bar (root tag menu-bar).
func (b *Builder) LoadMenuBar(doc *markup.Document) (*MenuBar, error) {
	c, err := b.Build(doc, ShapeMenuBar)
	return c.(*MenuBar), err
}

// LoadContextMenu builds doc as a context menu (root tag menu-context).
func (b *Builder) LoadContextMenu(doc *markup.Document) (*ContextMenu, error) {
	c, err := b.Build(doc, ShapeContextMenu)
	return c.(*ContextMenu), err
}

// BuildAuto builds doc into the shape its root tag names. Documents with
// an unrecognised root fall back to ShapeMenu.
func (b *Builder) BuildAuto(doc *markup.Document) (Container, error) {
	shape := ShapeMenu
	if doc != nil && doc.Root != nil {
		if s, ok := ShapeForRootTag(doc.Root.Tag); ok {
			shape = s
		}
	}
	return b.Build(doc, shape)
}
