// Package attachment captures clipboard images and stores them as
// JPEG files referenced from a note's attachment list.
package attachment

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	xdraw "golang.org/x/image/draw"

	"github.com/vavargasdev/vanotes/internal/note"
	"github.com/vavargasdev/vanotes/internal/sanitize"
)

// ErrNoImage reports that the clipboard holds no raster image. A
// paste with nothing usable is a logged no-op, not a failure.
var ErrNoImage = errors.New("no image on clipboard")

// ImageSource yields the current clipboard image, or ErrNoImage.
type ImageSource interface {
	ReadImage() (image.Image, error)
}

// Updater is the single store operation the handler needs.
type Updater interface {
	UpdateAttachments(id int64, joined string) error
}

// Handler writes pasted images to the image directories and keeps the
// owning note's attachment column in sync.
type Handler struct {
	ImageDir  string
	ThumbDir  string
	ThumbSize int

	source ImageSource
	store  Updater
	logger *slog.Logger
}

func NewHandler(
	imageDir, thumbDir string,
	thumbSize int,
	source ImageSource,
	store Updater,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		ImageDir:  imageDir,
		ThumbDir:  thumbDir,
		ThumbSize: thumbSize,
		source:    source,
		store:     store,
		logger:    logger,
	}
}

// Filename derives the deterministic attachment name from the note
// id, the 1-based sequence of the attachment, and the sanitized title.
func Filename(noteID int64, seq int, title string) string {
	return fmt.Sprintf("%d_%d_%s.jpg", noteID, seq, sanitize.Sanitize(title))
}

// Paste grabs the clipboard image, writes the full-size copy and the
// thumbnail, appends the filename to n's attachment list, and writes
// the joined list through to the store. Returns the new filename.
func (h *Handler) Paste(n *note.Note) (string, error) {
	img, err := h.source.ReadImage()
	if err != nil {
		if errors.Is(err, ErrNoImage) {
			h.logger.Info("paste skipped, clipboard has no image", "note", n.ID)
		}
		return "", err
	}

	name := Filename(n.ID, len(n.Attachments)+1, n.Title)

	flat := flatten(img)
	if err := writeJPEG(filepath.Join(h.ImageDir, name), flat); err != nil {
		return "", fmt.Errorf("writing image: %w", err)
	}
	if err := writeJPEG(filepath.Join(h.ThumbDir, name), thumbnail(flat, h.ThumbSize)); err != nil {
		return "", fmt.Errorf("writing thumbnail: %w", err)
	}

	n.Attachments = append(n.Attachments, name)
	if err := h.store.UpdateAttachments(n.ID, note.JoinAttachments(n.Attachments)); err != nil {
		return "", err
	}

	h.logger.Info("attached image", "note", n.ID, "file", name)
	return name, nil
}

// Delete removes filename from n's attachment list and rewrites the
// store column. The backing files are intentionally left on disk; see
// DESIGN.md for the tracked orphaned-files limitation.
func (h *Handler) Delete(n *note.Note, filename string) error {
	idx := slices.Index(n.Attachments, filename)
	if idx < 0 {
		return nil
	}
	n.Attachments = slices.Delete(n.Attachments, idx, idx+1)

	if err := h.store.UpdateAttachments(n.ID, note.JoinAttachments(n.Attachments)); err != nil {
		return err
	}
	h.logger.Info("detached image", "note", n.ID, "file", filename)
	return nil
}

// ThumbPath returns the on-disk path of an attachment's thumbnail.
func (h *Handler) ThumbPath(filename string) string {
	return filepath.Join(h.ThumbDir, filename)
}

// ImagePath returns the on-disk path of a full-size attachment.
func (h *Handler) ImagePath(filename string) string {
	return filepath.Join(h.ImageDir, filename)
}

// flatten draws img over an opaque white background. JPEG has no
// transparency channel, so alpha and indexed images must be composited
// before encoding.
func flatten(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, bounds, img, bounds.Min, draw.Over)
	return out
}

// thumbnail scales img down so its longest side is at most max,
// preserving aspect ratio. Images already within bounds pass through.
func thumbnail(img image.Image, max int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if max <= 0 || (w <= max && h <= max) {
		return img
	}

	var tw, th int
	if w >= h {
		tw = max
		th = h * max / w
	} else {
		th = max
		tw = w * max / h
	}
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	out := image.NewRGBA(image.Rect(0, 0, tw, th))
	xdraw.CatmullRom.Scale(out, out.Bounds(), img, bounds, xdraw.Src, nil)
	return out
}

func writeJPEG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
