package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/menukit/pkg/icon"
	"github.com/OpenTraceLab/menukit/pkg/markup"
	"github.com/OpenTraceLab/menukit/pkg/menu"
)

// newResolver returns the icon loader described by settings.
func newResolver() *icon.Loader {
	opts := []icon.Option{icon.WithSize(settings.IconSize)}
	if settings.Bundle != "" {
		opts = append(opts, icon.WithBundle(os.DirFS(settings.Bundle)))
	}
	return icon.NewLoader(opts...)
}

func newBuilder(strictMode bool) *menu.Builder {
	return menu.NewBuilder(
		menu.WithResolver(newResolver()),
		menu.WithLogger(logger),
		menu.WithStrict(strictMode),
	)
}

// readDocument parses path, honouring a forced format.
func readDocument(path, formatName string) (*markup.Document, error) {
	if formatName == "" {
		formatName = settings.Format
	}
	if formatName == "" {
		return markup.ParseFile(path)
	}
	format, err := markup.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return markup.Parse(f, format)
}

// buildFile parses and builds path. An empty shape name uses the config
// default and then the document's root tag.
func buildFile(path, shapeName, formatName string, strictMode bool) (menu.Container, error) {
	doc, err := readDocument(path, formatName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	b := newBuilder(strictMode)

	if shapeName == "" {
		shapeName = settings.Shape
	}
	if shapeName == "" {
		return b.BuildAuto(doc)
	}
	shape, err := menu.ParseShape(shapeName)
	if err != nil {
		return nil, err
	}
	return b.Build(doc, shape)
}
