// Package gui is the fyne presentation layer: one window, one image, and the
// keystroke wiring into the dispatcher.
package gui

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	// Decoders for the formats the viewer shows.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/wcmckee/SortPictures/internal/config"
	"github.com/wcmckee/SortPictures/internal/dispatch"
	"github.com/wcmckee/SortPictures/internal/log"
)

// Viewer is the single-window image viewer. It implements dispatch.Surface:
// the dispatcher decides what a keystroke means, the viewer only loads,
// rotates and redraws.
type Viewer struct {
	fyneApp     fyne.App
	window      fyne.Window
	canvasImage *canvas.Image
	dispatcher  *dispatch.Dispatcher
	scale       config.Scale
	frame       image.Image
}

// New creates the viewer window. Attach must be called before the first
// Reload.
func New(scale config.Scale) *Viewer {
	return NewWithApp(app.NewWithID("com.github.wcmckee.sortpictures"), scale)
}

// NewWithApp creates the viewer on an existing fyne app; tests pass the fyne
// test app here.
func NewWithApp(fyneApp fyne.App, scale config.Scale) *Viewer {
	v := &Viewer{
		fyneApp: fyneApp,
		scale:   scale,
	}
	v.window = fyneApp.NewWindow("SortPictures")

	v.canvasImage = canvas.NewImageFromImage(placeholderImage())
	v.canvasImage.FillMode = canvas.ImageFillContain
	if scale.Method == config.ScalePixels {
		v.canvasImage.ScaleMode = canvas.ImageScalePixels
	} else {
		v.canvasImage.ScaleMode = canvas.ImageScaleSmooth
	}
	v.window.SetContent(v.canvasImage)

	v.window.Canvas().SetOnTypedKey(v.typedKey)
	v.window.Canvas().SetOnTypedRune(v.typedRune)

	return v
}

// Attach connects the dispatcher and shows the first image.
func (v *Viewer) Attach(d *dispatch.Dispatcher) {
	v.dispatcher = d
	v.Reload()
}

// Window returns the viewer window.
func (v *Viewer) Window() fyne.Window {
	return v.window
}

// Run shows the window and enters the fyne event loop. It returns when the
// window is closed.
func (v *Viewer) Run() {
	v.window.ShowAndRun()
}

func (v *Viewer) typedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyDown, fyne.KeyRight:
		v.dispatcher.Handle(dispatch.KeyNamed(dispatch.NameNext))
	case fyne.KeyUp, fyne.KeyLeft:
		v.dispatcher.Handle(dispatch.KeyNamed(dispatch.NamePrevious))
	case fyne.KeyF1:
		v.dispatcher.Handle(dispatch.KeyNamed(dispatch.NamePrint))
	case fyne.KeyF11:
		v.dispatcher.Handle(dispatch.KeyNamed(dispatch.NameRotateCCW))
	case fyne.KeyF12:
		v.dispatcher.Handle(dispatch.KeyNamed(dispatch.NameRotateCW))
	case fyne.KeyEscape:
		v.window.Close()
	}
}

func (v *Viewer) typedRune(r rune) {
	v.dispatcher.Handle(dispatch.KeyRune(r))
}

// Reload loads the current path from disk and redraws. A file that cannot be
// read or decoded gets the placeholder; navigation away and back retries the
// load.
func (v *Viewer) Reload() {
	path := v.dispatcher.Current()

	frame, err := loadImage(path)
	if err != nil {
		log.With(log.F("path", path), log.F("error", err)).Warn("cannot load image")
		frame = placeholderImage()
	}
	v.frame = frame
	v.show()
	v.resize()
}

// Rotate turns the in-memory frame a quarter turn and redraws. The file on
// disk is untouched; the next Reload shows the original orientation again.
func (v *Viewer) Rotate(clockwise bool) {
	if v.frame == nil {
		return
	}
	v.frame = Rotate90(v.frame, clockwise)
	v.show()
	v.resize()
}

func (v *Viewer) show() {
	v.canvasImage.Image = v.frame
	v.canvasImage.Refresh()

	pos, total := v.dispatcher.Position()
	v.window.SetTitle(fmt.Sprintf("%s (%d/%d)", filepath.Base(v.dispatcher.Current()), pos, total))
}

func (v *Viewer) resize() {
	b := v.frame.Bounds()
	w := float32(b.Dx()) * float32(v.scale.Factor)
	h := float32(b.Dy()) * float32(v.scale.Factor)
	if w < 1 || h < 1 {
		return
	}
	v.window.Resize(fyne.NewSize(w, h))
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// placeholderImage is shown when the current slot cannot be loaded, e.g.
// after the file was moved away by a bound action.
func placeholderImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 320, 240))
	gray := color.NRGBA{R: 32, G: 32, B: 32, A: 255}
	for y := 0; y < 240; y++ {
		for x := 0; x < 320; x++ {
			img.SetNRGBA(x, y, gray)
		}
	}
	return img
}
