package icon

import (
	"fmt"
	"image"
	"image/draw"
	"sort"

	"golang.org/x/exp/shiny/iconvg"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// MaterialSize is the edge material icons are rasterised at when no resize
// is requested. It matches the 48dp grid the icons are designed on.
const MaterialSize = 48

var materialIcons = map[string][]byte{
	"ActionAutorenew":              icons.ActionAutorenew,
	"ActionBugReport":              icons.ActionBugReport,
	"ActionBuild":                  icons.ActionBuild,
	"ActionDelete":                 icons.ActionDelete,
	"ActionExitToApp":              icons.ActionExitToApp,
	"ActionHelp":                   icons.ActionHelp,
	"ActionHome":                   icons.ActionHome,
	"ActionInfo":                   icons.ActionInfo,
	"ActionList":                   icons.ActionList,
	"ActionOpenInNew":              icons.ActionOpenInNew,
	"ActionPrint":                  icons.ActionPrint,
	"ActionSearch":                 icons.ActionSearch,
	"ActionSettings":               icons.ActionSettings,
	"ActionSettingsInputComponent": icons.ActionSettingsInputComponent,
	"ActionZoomIn":                 icons.ActionZoomIn,
	"ActionZoomOut":                icons.ActionZoomOut,
	"AlertError":                   icons.AlertError,
	"AlertWarning":                 icons.AlertWarning,
	"ContentAdd":                   icons.ContentAdd,
	"ContentContentCopy":           icons.ContentContentCopy,
	"ContentContentCut":            icons.ContentContentCut,
	"ContentContentPaste":          icons.ContentContentPaste,
	"ContentRedo":                  icons.ContentRedo,
	"ContentRemove":                icons.ContentRemove,
	"ContentSave":                  icons.ContentSave,
	"ContentUndo":                  icons.ContentUndo,
	"EditorModeEdit":               icons.EditorModeEdit,
	"FileFolder":                   icons.FileFolder,
	"FileFolderOpen":               icons.FileFolderOpen,
	"HardwareDeveloperBoard":       icons.HardwareDeveloperBoard,
	"HardwareMemory":               icons.HardwareMemory,
	"NavigationClose":              icons.NavigationClose,
	"NavigationMenu":               icons.NavigationMenu,
	"NavigationRefresh":            icons.NavigationRefresh,
}

// Names returns the built-in material icon names, sorted. Reference one as
// "icons:<Name>", for example "icons:ContentSave".
func Names() []string {
	names := make([]string, 0, len(materialIcons))
	for name := range materialIcons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Material rasterises a built-in icon into a size×size image.
func Material(name string, size int) (image.Image, error) {
	data, ok := materialIcons[name]
	if !ok {
		return nil, fmt.Errorf("%s:%s: %w", MaterialScheme, name, ErrNotFound)
	}
	if size <= 0 {
		size = MaterialSize
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	var z iconvg.Rasterizer
	z.SetDstImage(dst, dst.Bounds(), draw.Src)
	if err := iconvg.Decode(&z, data, nil); err != nil {
		return nil, fmt.Errorf("%s:%s: %w: %w", MaterialScheme, name, ErrDecode, err)
	}
	return dst, nil
}
