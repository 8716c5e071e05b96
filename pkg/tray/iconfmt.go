package tray

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image/png"
	"runtime"

	"github.com/OpenTraceLab/menukit/pkg/icon"
	"github.com/disintegration/imaging"
)

// TrayIconSize is the edge length tray icons are scaled to.
const TrayIconSize = 16

// encodeIcon scales ic to TrayIconSize square and encodes it in the format
// the platform tray expects: PNG, wrapped in an ICO container on Windows.
func encodeIcon(ic *icon.Icon) ([]byte, error) {
	if ic == nil || ic.Image == nil {
		return nil, fmt.Errorf("tray: empty icon")
	}
	scaled := imaging.Resize(ic.Image, TrayIconSize, TrayIconSize, imaging.Lanczos)
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("tray: encode %s: %w", ic.Ref, err)
	}
	if runtime.GOOS == "windows" {
		return wrapICO(buf.Bytes(), TrayIconSize), nil
	}
	return buf.Bytes(), nil
}

// wrapICO builds a single image ICO file holding PNG data.
func wrapICO(data []byte, size int) []byte {
	var buf bytes.Buffer
	// ICONDIR: reserved, type 1 (icon), one image.
	binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, 1})
	// ICONDIRENTRY
	buf.WriteByte(byte(size))
	buf.WriteByte(byte(size))
	buf.WriteByte(0) // palette
	buf.WriteByte(0)
	binary.Write(&buf, binary.LittleEndian, uint16(1))  // planes
	binary.Write(&buf, binary.LittleEndian, uint16(32)) // bpp
	binary.Write(&buf, binary.LittleEndian, uint32(len(data)))
	binary.Write(&buf, binary.LittleEndian, uint32(6+16))
	buf.Write(data)
	return buf.Bytes()
}
