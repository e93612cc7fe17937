//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws a status line with the live frame rate over the automaton
// view.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a visible overlay.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the status text in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image, s Status) {
	if !o.visible {
		return
	}
	line := fmt.Sprintf("rule %d  gen %d  %d sps x%d  %s  %0.0f fps",
		s.Rule, s.Generation, s.SPS, s.Speed, s.Palette, ebiten.ActualFPS())
	if s.Paused {
		line += "  [paused]"
	}
	text.Draw(screen, line, basicfont.Face7x13, 8, 16, color.White)
}
