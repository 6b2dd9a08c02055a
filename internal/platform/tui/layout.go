package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-textgame/internal/asset"
	"github.com/vovakirdan/tui-textgame/internal/blink"
	"github.com/vovakirdan/tui-textgame/internal/core"
	"github.com/vovakirdan/tui-textgame/internal/game"
	"github.com/vovakirdan/tui-textgame/internal/marquee"
)

// Panel layout constants, in cells.
const (
	imageBoxW  = asset.ImageWidth + 2
	imageBoxH  = asset.ImageHeight + 2
	optionGap  = 4 // Horizontal space between the two option panels
	cursorRune = '>'
)

// Layout holds screen rectangles for one terminal and panel size.
// Rendering and mouse hit-testing share it so taps land where drawn.
type Layout struct {
	Panel    core.Rect
	Inner    core.Rect
	TooSmall bool

	TitleRow   int
	ScoreRow   int
	Marquee    core.Rect
	Options    [2]core.Rect // Image panels, the tap targets
	CaptionRow int
	PromptRow  int
	PromptX    int

	EndingImage      core.Rect
	EndingCaptionRow int
	EndingPromptRow  int
}

// ComputeLayout centers a panelW x panelH panel in a screenW x screenH area.
func ComputeLayout(screenW, screenH, panelW, panelH int) Layout {
	l := Layout{
		TooSmall: screenW < panelW || screenH < panelH,
	}

	px := core.Max((screenW-panelW)/2, 0)
	py := core.Max((screenH-panelH)/2, 0)
	l.Panel = core.NewRect(px, py, panelW, panelH)
	l.Inner = l.Panel.Inset(1)

	top := l.Inner.Y
	l.TitleRow = top
	l.ScoreRow = top + 1
	l.Marquee = core.NewRect(l.Inner.X+1, top+3, core.Max(l.Inner.W-2, 0), marquee.FontFootnote.Height())

	optionsY := l.Marquee.Bottom()
	pairW := 2*imageBoxW + optionGap
	optionsX := l.Inner.X + (l.Inner.W-pairW)/2
	l.Options[0] = core.NewRect(optionsX, optionsY, imageBoxW, imageBoxH)
	l.Options[1] = core.NewRect(optionsX+imageBoxW+optionGap, optionsY, imageBoxW, imageBoxH)
	l.CaptionRow = optionsY + imageBoxH
	l.PromptRow = l.CaptionRow + 2
	l.PromptX = l.Inner.X + 1

	endingX := l.Inner.X + (l.Inner.W-imageBoxW)/2
	l.EndingImage = core.NewRect(endingX, top+2, imageBoxW, imageBoxH)
	l.EndingCaptionRow = l.EndingImage.Bottom() + 1
	l.EndingPromptRow = l.EndingCaptionRow + 2

	return l
}

// OptionAt returns the index of the option panel containing (x, y).
func (l Layout) OptionAt(x, y int) (int, bool) {
	if l.TooSmall {
		return 0, false
	}
	for i, r := range l.Options {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// frame is everything drawView needs besides the screen.
type frame struct {
	layout  Layout
	view    game.View
	marquee *marquee.Marquee
	cursor  *blink.Cursor
	assets  *asset.Store
	focus   int
}

// drawView renders one frame of the game into dst.
func drawView(dst *core.Screen, f frame) {
	dst.Clear()
	l := f.layout

	if l.TooSmall {
		msg := fmt.Sprintf("Enlarge terminal to %dx%d", l.Panel.W, l.Panel.H+1)
		dst.DrawTextCentered(core.NewRect(0, 0, dst.Width(), dst.Height()), dst.Height()/2, msg, core.ColorGreen)
		return
	}

	dst.DrawBox(l.Panel, core.ColorDimGreen)

	if f.view.Status == game.StatusFinished && f.view.Ending != nil {
		drawImage(dst, l.EndingImage, f.assets.Image(f.view.Ending.Image), core.ColorDimGreen)
		dst.DrawTextCentered(l.Inner, l.EndingCaptionRow, f.view.Ending.Caption, core.ColorGreen)
		drawPrompt(dst, l.Inner, l.PromptX, l.EndingPromptRow, f.cursor, f.view.Prompt)
		return
	}

	dst.DrawTextCentered(l.Inner, l.TitleRow, f.view.Title, core.ColorBrightGreen)
	dst.DrawTextCentered(l.Inner, l.ScoreRow, f.view.ScoreLine, core.ColorGreen)

	if f.marquee != nil {
		dst.DrawTextClipped(l.Marquee, l.Marquee.X, l.Marquee.Y, f.marquee.Window(), core.ColorGreen)
	}

	for i, opt := range f.view.Options {
		if i >= len(l.Options) {
			break
		}
		border, caption := core.ColorDimGreen, core.ColorGreen
		if i == f.focus {
			border, caption = core.ColorBrightGreen, core.ColorBrightGreen
		}
		box := l.Options[i]
		drawImage(dst, box, f.assets.Image(opt.Image), border)

		// Captions are centered under their panel, clipped to its column
		col := core.NewRect(box.X-optionGap/2, l.CaptionRow, box.W+optionGap, 1)
		dst.DrawTextCentered(col, l.CaptionRow, opt.Caption, caption)
	}

	drawPrompt(dst, l.Inner, l.PromptX, l.PromptRow, f.cursor, f.view.Prompt)
}

// drawImage draws img framed by a box in the given border color.
func drawImage(dst *core.Screen, box core.Rect, img asset.Image, border core.Color) {
	dst.DrawBox(box, border)
	inner := box.Inset(1)
	art := core.ColorGreen
	if img.Placeholder {
		art = core.ColorGray
	}
	for i, line := range img.Lines {
		dst.DrawTextClipped(inner, inner.X, inner.Y+i, line, art)
	}
}

// drawPrompt draws the blinking cursor followed by text.
func drawPrompt(dst *core.Screen, clip core.Rect, x, y int, cursor *blink.Cursor, text string) {
	r, c := cursorCell(cursor)
	dst.Set(x, y, r, c)
	dst.DrawTextClipped(clip, x+1, y, text, core.ColorGreen)
}

// cursorCell maps the cursor's eased opacity onto the green palette.
func cursorCell(cursor *blink.Cursor) (rune, core.Color) {
	if cursor == nil {
		return cursorRune, core.ColorGreen
	}
	switch op := cursor.Opacity(); {
	case op >= 0.7:
		return cursorRune, core.ColorGreen
	case op >= 0.35:
		return cursorRune, core.ColorDimGreen
	case op > 0.05:
		return cursorRune, core.ColorGray
	default:
		return ' ', core.ColorDefault
	}
}
