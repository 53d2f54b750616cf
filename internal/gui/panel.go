package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/constellation/pkg/constellation"
	"github.com/philipparndt/constellation/pkg/scene"
)

// Panel is the star field plus the info panel on its right
type Panel struct {
	Field       *StarField
	NameEntry   *widget.Entry
	StatusLabel *widget.Label
	StarsLabel  *widget.Label
	DroppedInfo *widget.Label
	ResetButton *widget.Button

	scene *scene.Scene
}

// NewPanel builds the widgets for a scene
func NewPanel(sc *scene.Scene) *Panel {
	p := &Panel{
		scene:       sc,
		Field:       NewStarField(sc),
		NameEntry:   widget.NewEntry(),
		StatusLabel: widget.NewLabel(""),
		StarsLabel:  widget.NewLabel(fmt.Sprintf("Stars: %d", sc.Cloud.Len())),
		DroppedInfo: widget.NewLabel(""),
	}

	p.NameEntry.SetText(sc.Graph.Name())
	p.NameEntry.SetPlaceHolder("Constellation name")
	p.NameEntry.OnChanged = func(name string) {
		sc.Graph.SetName(name)
	}

	p.StatusLabel.TextStyle = fyne.TextStyle{Bold: true}

	p.ResetButton = widget.NewButton("Clear Lines", func() {
		sc.Graph.Reset()
		p.update()
		p.Field.Redraw()
	})

	p.Field.SetOnChange(func(constellation.Outcome) {
		p.update()
	})

	p.update()
	return p
}

// update refreshes the labels from the graph
func (p *Panel) update() {
	graph := p.scene.Graph
	p.StatusLabel.SetText(graph.Status())
	if graph.Dropped() > 0 {
		p.DroppedInfo.SetText(fmt.Sprintf("Line buffer full: %d dropped", graph.Dropped()))
	} else {
		p.DroppedInfo.SetText("")
	}
}

// Content lays the panel out for a window
func (p *Panel) Content() fyne.CanvasObject {
	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Click two stars to connect them\n" +
			"• Click a star twice to deselect it\n" +
			"• Right click to cancel a selection\n" +
			"• Drag to look around\n" +
			"• Scroll to zoom in/out",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Constellation:"),
		p.NameEntry,
		widget.NewSeparator(),
		p.StatusLabel,
		p.StarsLabel,
		p.DroppedInfo,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		p.ResetButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(260, 0))

	return container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		p.Field,    // center
	)
}
