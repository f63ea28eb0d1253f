package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight = 1 // Title line; hosts add score and start control to it
	cellWidth = 2 // Terminal cells are about twice as tall as wide
)

// Glyphs used on the terminal screen.
const (
	headGlyph = '█'
	bodyGlyph = '▓'
	foodGlyph = '█'
)

// FieldRect returns the bordered playfield rectangle for a screen of w x h
// characters, and whether it fits.
func FieldRect(w, h, cols, rows int) (core.Rect, bool) {
	boxW := cols*cellWidth + 2
	boxH := rows + 2
	r := core.NewRect((w-boxW)/2, hudHeight, boxW, boxH)
	return r, w >= boxW && h >= hudHeight+boxH
}

// Draw renders f onto dst: title line, border, snake and food.
func Draw(dst *core.Screen, f Frame) {
	dst.Clear()
	drawHUD(dst, f)

	box, ok := FieldRect(dst.Width(), dst.Height(), f.Cols, f.Rows)
	if !ok {
		drawMessageBox(dst, core.NewRect(0, 0, dst.Width(), dst.Height()), "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(box, core.ColorGray)

	if f.HasFood() {
		drawCell(dst, box, f.Food, foodGlyph, core.ColorRed)
	}
	// Body first so the head wins on a self-collision frame
	for i := len(f.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			drawCell(dst, box, f.Snake[i], headGlyph, core.ColorBrightGreen)
		} else {
			drawCell(dst, box, f.Snake[i], bodyGlyph, core.ColorGreen)
		}
	}
}

// DrawOverlay renders f dimmed, with a centered message box on top.
func DrawOverlay(dst *core.Screen, f Frame, line1, line2 string) {
	Draw(dst, f)

	box, ok := FieldRect(dst.Width(), dst.Height(), f.Cols, f.Rows)
	if !ok {
		return
	}

	// Dim everything inside the border
	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Tint(x, y, core.ColorGray)
		}
	}

	drawMessageBox(dst, box, line1, line2)
}

// drawHUD draws the title line. The score belongs to the host's score sink.
func drawHUD(dst *core.Screen, f Frame) {
	hud := fmt.Sprintf(" Snake  Length: %d", len(f.Snake))
	dst.DrawColorText(0, 0, hud, core.ColorBrightWhite)
}

// drawCell fills one grid cell inside box.
func drawCell(dst *core.Screen, box core.Rect, p core.Point, r rune, c core.Color) {
	sx := box.X + 1 + p.X*cellWidth
	sy := box.Y + 1 + p.Y
	for i := 0; i < cellWidth; i++ {
		dst.SetCell(sx+i, sy, r, c)
	}
}

// drawMessageBox draws a bordered two-line message centered in area.
func drawMessageBox(dst *core.Screen, area core.Rect, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	cx, cy := area.Center()
	msg := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.DrawRect(msg, ' ', core.ColorDefault)
	dst.DrawBox(msg, core.ColorBrightWhite)

	dst.DrawTextCentered(msg, msg.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(msg, msg.Y+3, line2, core.ColorWhite)
}
