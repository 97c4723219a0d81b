package scenes

import (
	"fmt"

	"github.com/decker502/pixelgarden/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugText 调试信息文本
func (s *GardenScene) debugText() string {
	counts := s.state.Garden.CountByType()
	text := fmt.Sprintf("TPS %.0f  tick %d\nitems %d (tree %d flower %d pond %d rock %d)\nbees %d  tool %s  drag %v  night %v",
		ebiten.ActualTPS(), s.loop.Frame(),
		s.state.Garden.Len(),
		counts[types.ItemTree], counts[types.ItemFlower], counts[types.ItemPond], counts[types.ItemRock],
		s.state.Bees.Len(), s.state.Controller.SelectedTool(), s.state.Controller.IsDragging(), s.state.IsNight())

	if items := s.state.Garden.Items(); len(items) > 0 {
		last := items[len(items)-1]
		text += fmt.Sprintf("\nlast %s (%d, %d) v%d", last.Type, last.X, last.Y, last.Variant)
	}
	return text
}

// drawDebug 在左上角绘制调试信息（F3 切换）
func (s *GardenScene) drawDebug(screen *ebiten.Image) {
	if !s.showDebug {
		return
	}
	ebitenutil.DebugPrint(screen, s.debugText())
}
