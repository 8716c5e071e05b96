// Package menu compiles markup documents into typed menu trees.
//
// A tree is made of three node kinds: Leaf (a selectable item), Separator
// and Group (a sub menu with ordered children). The builder walks a
// markup.Document once, in document order, and returns one of three
// containers depending on the requested Shape:
//
//	Shape             root tag        container
//	ShapeMenu         menu-root       *Menu
//	ShapeMenuBar      menu-bar        *MenuBar
//	ShapeContextMenu  menu-context    *ContextMenu
//
// # Usage
//
//	doc, err := markup.ParseFile("menus/main.xml")
//	if err != nil {
//		return err
//	}
//	b := menu.NewBuilder(menu.WithResolver(icon.NewLoader(icon.WithBundle(assets))))
//	bar, err := b.LoadMenuBar(doc)
//
// # Failure policy
//
// By default the builder fails open: a document whose root tag does not
// match the shape yields an empty container, an element with an unknown tag
// is skipped, boolean attributes that are not "true" read as false, and an
// icon that cannot be resolved leaves the node without an icon (the cause is
// logged). WithStrict(true) turns the first two cases into errors while
// still returning the empty container.
//
// Identifier uniqueness is not checked while building; see DuplicateIDs for
// consumers that need it.
package menu
