// Package gui is the fyne front end: a star field widget and the panel
// around it.
package gui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/constellation/internal/surface"
	"github.com/philipparndt/constellation/pkg/constellation"
	"github.com/philipparndt/constellation/pkg/pick"
	"github.com/philipparndt/constellation/pkg/scene"
	"github.com/philipparndt/constellation/pkg/viewer"
)

var (
	backgroundColor = color.RGBA{5, 6, 14, 255}
	starColor       = color.RGBA{235, 235, 255, 255}
	lineColor       = color.RGBA{255, 255, 255, 255}
	highlightColor  = color.RGBA{0, 255, 255, 255}
)

// StarField renders the scene and turns taps into picks
type StarField struct {
	widget.BaseWidget
	scene      *scene.Scene
	raster     *canvas.Raster
	canvas     *viewer.Canvas
	isDragging bool
	onChange   func(constellation.Outcome)
}

// NewStarField creates a new star field widget
func NewStarField(sc *scene.Scene) *StarField {
	f := &StarField{scene: sc}
	f.raster = canvas.NewRaster(f.draw)
	f.ExtendBaseWidget(f)
	return f
}

// SetOnChange sets the callback for picks that reached the graph
func (f *StarField) SetOnChange(callback func(constellation.Outcome)) {
	f.onChange = callback
}

// CreateRenderer creates the renderer for the widget
func (f *StarField) CreateRenderer() fyne.WidgetRenderer {
	return &starFieldRenderer{field: f}
}

// draw rasterizes the scene at the raster's pixel size
func (f *StarField) draw(w, h int) image.Image {
	if f.canvas == nil || f.canvas.Img.Bounds().Dx() != w || f.canvas.Img.Bounds().Dy() != h {
		f.canvas = viewer.NewCanvas(f.scene.Camera, w, h)
	}
	c := f.canvas
	sc := f.scene

	c.Clear(backgroundColor)
	c.DrawStars(sc.Cloud.Positions(), starColor)

	buf := sc.Graph.Buffer()
	c.DrawSegments(buf.Vertices(), buf.DrawRange(), lineColor)

	if pos, ok := sc.Highlight(); ok {
		c.DrawMarker(pos, max(3, h/150), highlightColor)
	}
	return c.Img
}

// syncViewport keeps the scene viewport in widget coordinates, the space
// pointer events arrive in
func (f *StarField) syncViewport() {
	size := f.Size()
	f.scene.Resize(viewer.NewViewport(float64(size.Width), float64(size.Height)))
}

// Tapped handles tap events for star selection
func (f *StarField) Tapped(event *fyne.PointEvent) {
	if f.isDragging {
		return
	}
	f.syncViewport()
	outcome := f.scene.HandlePointer(pick.At(float64(event.Position.X), float64(event.Position.Y)))
	f.changed(outcome)
}

// TappedSecondary cancels the pending selection
func (f *StarField) TappedSecondary(event *fyne.PointEvent) {
	outcome := f.scene.HandleMissEvent(float64(event.Position.X), float64(event.Position.Y))
	f.changed(outcome)
}

// Dragged handles mouse drag events for looking around
func (f *StarField) Dragged(event *fyne.DragEvent) {
	f.isDragging = true
	surface.Look(f.scene.Camera, float64(event.Dragged.DX), float64(event.Dragged.DY))
	f.raster.Refresh()
}

// DragEnd handles the end of a drag event
func (f *StarField) DragEnd() {
	f.isDragging = false
}

// Scrolled handles scroll events for zooming
func (f *StarField) Scrolled(event *fyne.ScrollEvent) {
	surface.Wheel(f.scene.Camera, float64(event.Scrolled.DY)/10)
	f.raster.Refresh()
}

// Redraw repaints the star field after the graph changed elsewhere
func (f *StarField) Redraw() {
	f.raster.Refresh()
}

func (f *StarField) changed(outcome constellation.Outcome) {
	f.raster.Refresh()
	if f.onChange != nil {
		f.onChange(outcome)
	}
}

// starFieldRenderer implements fyne.WidgetRenderer
type starFieldRenderer struct {
	field *StarField
}

func (r *starFieldRenderer) Layout(size fyne.Size) {
	r.field.raster.Resize(size)
	r.field.syncViewport()
}

func (r *starFieldRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *starFieldRenderer) Refresh() {
	r.field.raster.Refresh()
}

func (r *starFieldRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.field.raster}
}

func (r *starFieldRenderer) Destroy() {}
