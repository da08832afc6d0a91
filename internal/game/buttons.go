package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/sound-orbit/internal/config"
)

type button struct {
	label   string
	x, y    int
	action  func()
	hovered bool
	pressed bool
}

func newButtons(labels []string, actions []func()) []*button {
	buttons := make([]*button, len(labels))
	for i, label := range labels {
		buttons[i] = &button{
			label:  label,
			x:      config.ButtonX + i*(config.ButtonWidth+config.ButtonGap),
			y:      config.ButtonY,
			action: actions[i],
		}
	}
	return buttons
}

func (b *button) contains(x, y int) bool {
	return x >= b.x && x <= b.x+config.ButtonWidth &&
		y >= b.y && y <= b.y+config.ButtonHeight
}

// update fires the action on release over the button.
func (b *button) update(mouseX, mouseY int) {
	b.hovered = b.contains(mouseX, mouseY)
	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if b.pressed && b.hovered {
			b.action()
		}
		b.pressed = false
	}
}

func (b *button) draw(screen *ebiten.Image) {
	var bgColor color.Color
	switch {
	case b.pressed:
		bgColor = color.RGBA{R: 60, G: 60, B: 60, A: 230}
	case b.hovered:
		bgColor = color.RGBA{R: 80, G: 80, B: 80, A: 230}
	default:
		bgColor = color.RGBA{R: 30, G: 30, B: 30, A: 200}
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), config.ButtonWidth, config.ButtonHeight, bgColor, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), config.ButtonWidth, config.ButtonHeight, 1, color.RGBA{R: 170, G: 170, B: 170, A: 255}, false)

	textWidth := len(b.label) * 6 // debug font glyph width
	textX := b.x + (config.ButtonWidth-textWidth)/2
	textY := b.y + (config.ButtonHeight-16)/2
	ebitenutil.DebugPrintAt(screen, b.label, textX, textY)
}
