package game

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// panelTheme is the palette of the tuning panel and the on-screen help.
type panelTheme struct {
	Background rl.Color
	Control    rl.Color
	Hover      rl.Color
	Accent     rl.Color
	Border     rl.Color
	Text       rl.Color
	TextActive rl.Color
	Label      rl.Color
}

const labelTextSize = 14

var theme = panelTheme{
	Background: rl.NewColor(10, 10, 15, 255),
	Control:    rl.NewColor(28, 28, 38, 255),
	Hover:      rl.NewColor(38, 38, 52, 255),
	Accent:     rl.NewColor(108, 99, 255, 255),
	Border:     rl.NewColor(50, 50, 65, 255),
	Text:       rl.NewColor(200, 200, 208, 255),
	TextActive: rl.White,
	Label:      rl.NewColor(150, 150, 160, 255),
}

// initGuiStyle applies theme to every raygui control.
func initGuiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(theme.Background))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(theme.Control))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(theme.Hover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(theme.Accent))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(theme.Border))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(theme.Accent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(theme.Border))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(theme.Text))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(theme.TextActive))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(theme.TextActive))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, labelTextSize)
}
