package view

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const hudHelp = "click/space: toggle  drag: orbit  wheel: zoom  R: reset  P: screenshot"

// hudText formats the overlay shown in the top-left corner.
func (v *Viewer) hudText(fps, tps float64) string {
	mode := "flat"
	if v.ctrl.IsScattered() {
		mode = "scattered"
	}
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\ncubes: %d (%s)\n%s",
		fps, tps, v.ctrl.Len(), mode, hudHelp)
}

func (v *Viewer) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, v.hudText(ebiten.ActualFPS(), ebiten.ActualTPS()))
}
