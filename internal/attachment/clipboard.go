package attachment

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/png"

	"golang.design/x/clipboard"
)

// SystemClipboard reads raster images from the OS clipboard.
type SystemClipboard struct {
	ready bool
}

// NewSystemClipboard initializes the clipboard bridge. On headless
// systems initialization can fail; paste then reports ErrNoImage
// instead of crashing the UI.
func NewSystemClipboard() *SystemClipboard {
	err := clipboard.Init()
	return &SystemClipboard{ready: err == nil}
}

func (c *SystemClipboard) ReadImage() (image.Image, error) {
	if !c.ready {
		return nil, ErrNoImage
	}
	data := clipboard.Read(clipboard.FmtImage)
	if len(data) == 0 {
		return nil, ErrNoImage
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrNoImage
	}
	return img, nil
}
