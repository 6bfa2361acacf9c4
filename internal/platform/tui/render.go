package tui

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/welldone/internal/config"
	"github.com/vovakirdan/welldone/internal/core"
	"github.com/vovakirdan/welldone/internal/kitchen"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Screen rows reserved above the playfield and below it for the help bar.
const (
	hudRows    = 2
	footerRows = 1
)

// stationStyle is how each station kind is drawn.
var stationStyle = map[config.StationKind]struct {
	glyph rune
	color core.Color
}{
	config.KindBoard:     {'#', core.ColorYellow},
	config.KindPot:       {'U', core.ColorOrange},
	config.KindDispenser: {'O', core.ColorWhite},
	config.KindTrash:     {'X', core.ColorGray},
	config.KindServe:     {'$', core.ColorMagenta},
	config.KindSpawn:     {'*', core.ColorGreen},
}

// ingredientColors gives known ingredients a fixed color.
var ingredientColors = map[string]core.Color{
	"tomato":   core.ColorRed,
	"lettuce":  core.ColorGreen,
	"cucumber": core.ColorCyan,
	"onion":    core.ColorMagenta,
	"carrot":   core.ColorOrange,
}

func ingredientColor(name string) core.Color {
	if c, ok := ingredientColors[name]; ok {
		return c
	}
	return core.ColorYellow
}

// ingredientGlyph is the first letter of the name: lowercase raw,
// uppercase chopped.
func ingredientGlyph(ing kitchen.Ingredient) rune {
	r := 'i'
	for _, c := range ing.Name {
		r = c
		break
	}
	if ing.Stage == kitchen.StageChopped {
		return unicode.ToUpper(r)
	}
	return unicode.ToLower(r)
}

// viewport maps playfield pixels onto screen cells.
type viewport struct {
	play  core.Rect // Playfield in pixels
	field core.Rect // Playfield area on screen, in cells
}

func newViewport(play core.Rect, screenW, screenH int) viewport {
	field := core.NewRect(0, hudRows, screenW, core.Max(screenH-hudRows, 1))
	return viewport{play: play, field: field}
}

// cell converts a playfield point to a screen cell.
func (v viewport) cell(px, py float64) (int, int) {
	sx := float64(v.field.W) / float64(v.play.W)
	sy := float64(v.field.H) / float64(v.play.H)
	x := v.field.X + int(math.Floor((px-float64(v.play.X))*sx))
	y := v.field.Y + int(math.Floor((py-float64(v.play.Y))*sy))
	return x, y
}

// rect converts a playfield rectangle to screen cells, at least 1x1.
func (v viewport) rect(r core.Rect) core.Rect {
	x0, y0 := v.cell(float64(r.X), float64(r.Y))
	x1, y1 := v.cell(float64(r.Right()), float64(r.Bottom()))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// center returns the cell under the center of r.
func (v viewport) center(r core.Rect) (int, int) {
	cx, cy := r.Center()
	return v.cell(cx, cy)
}

// drawKitchen paints the round state into dst.
func drawKitchen(dst *core.Screen, game *kitchen.Game, snap kitchen.Snapshot, title string) {
	cfg := game.Config()
	vp := newViewport(cfg.Playfield, dst.Width(), dst.Height())

	drawHUD(dst, snap, title)
	dst.DrawBox(vp.field, core.ColorGray)

	for _, st := range game.Stations().All() {
		style := stationStyle[st.Kind]
		box := vp.rect(st.Rect)
		dst.DrawBox(box, style.color)

		label := st.Name
		if st.Kind == config.KindSpawn {
			ing := kitchen.Ingredient{Name: st.Ingredient}
			dst.Set(box.X+box.W/2, box.Y+box.H/2, ingredientGlyph(ing), ingredientColor(st.Ingredient))
		} else {
			cx, cy := vp.center(st.Rect)
			dst.Set(cx, cy, style.glyph, style.color)
		}
		if box.W > 2 && label != "" {
			dst.DrawText(box.X+1, box.Y, truncate(label, box.W-2), style.color)
		}
	}

	if len(snap.Staged) > 0 {
		disp := vp.rect(game.Stations().Dispenser.Rect)
		dst.DrawText(disp.X, disp.Bottom(), truncate(contentsLabel(snap.Staged), 12), core.ColorWhite)
	}

	drawInstances(dst, vp, snap.Floor, "")
	drawInstances(dst, vp, snap.Board, snap.ChopTarget)
	drawPot(dst, vp, game.Stations().Pot.Rect, snap.Pot)

	for _, p := range snap.Dropped {
		x, y := vp.center(p.Rect)
		dst.Set(x, y, 'o', core.ColorWhite)
		if len(p.Contents) > 0 {
			dst.DrawText(x+1, y, truncate(contentsLabel(p.Contents), 10), core.ColorWhite)
		}
	}

	chef := vp.rect(snap.Chef)
	dst.DrawBox(chef, core.ColorCyan)
	cx, cy := vp.center(snap.Chef)
	dst.Set(cx, cy, '@', core.ColorCyan)

	switch snap.Hand {
	case kitchen.HandIngredient:
		x, y := vp.center(snap.HeldAnchor)
		dst.Set(x, y, ingredientGlyph(snap.HeldItem.Ingredient), ingredientColor(snap.HeldItem.Ingredient.Name))
	case kitchen.HandPlate:
		x, y := vp.center(snap.HeldAnchor)
		dst.Set(x, y, 'o', core.ColorWhite)
		if len(snap.HeldPlate.Contents) > 0 {
			dst.DrawText(x+1, y, truncate(contentsLabel(snap.HeldPlate.Contents), 10), core.ColorWhite)
		}
	}

	switch {
	case snap.RoundOver:
		drawBanner(dst, vp.field, []string{
			"TIME'S UP",
			fmt.Sprintf("Score: %d  Orders: %d  Missed: %d", snap.Score, snap.Stats.OrdersServed, snap.Stats.PlatesMissed),
			"R: restart  B: menu  Q: quit",
		})
	case snap.Paused:
		drawBanner(dst, vp.field, []string{"PAUSED", "P: resume  B: menu"})
	}
}

func drawInstances(dst *core.Screen, vp viewport, items []kitchen.Instance, busy kitchen.InstanceID) {
	for _, it := range items {
		x, y := vp.center(it.Rect)
		c := ingredientColor(it.Ingredient.Name)
		dst.Set(x, y, ingredientGlyph(it.Ingredient), c)
		if busy != "" && it.ID == busy {
			dst.Set(x+1, y, '~', core.ColorWhite)
		}
	}
}

// drawPot lists the pot contents inside the pot box.
func drawPot(dst *core.Screen, vp viewport, pot core.Rect, items []kitchen.Instance) {
	box := vp.rect(pot)
	x := box.X + 1
	for _, it := range items {
		dst.Set(x, box.Bottom(), ingredientGlyph(it.Ingredient), ingredientColor(it.Ingredient.Name))
		x++
	}
}

func drawHUD(dst *core.Screen, snap kitchen.Snapshot, title string) {
	line := fmt.Sprintf(" %s  Score: %d  Time: %d:%02d  Served: %d",
		title, snap.Score, snap.Remaining/60, snap.Remaining%60, snap.Stats.OrdersServed)
	dst.DrawText(0, 0, line, core.ColorWhite)

	x := 1
	dst.DrawText(x, 1, "Orders:", core.ColorGray)
	x += len("Orders:") + 1
	for i, o := range snap.Orders {
		label := "[" + orderLabel(o) + "]"
		c := core.ColorYellow
		if i == 0 {
			c = core.ColorGreen
		}
		dst.DrawText(x, 1, label, c)
		x += len([]rune(label)) + 1
	}

	status := statusLine(snap)
	if status != "" {
		dst.DrawText(core.Max(x+1, dst.Width()-len(status)-1), 1, status, core.ColorCyan)
	}
}

// statusLine hints at what the chef can do right now.
func statusLine(snap kitchen.Snapshot) string {
	switch {
	case snap.Chopping:
		return "chopping..."
	case snap.CanChop && snap.Hand == kitchen.HandEmpty:
		return "space: chop"
	}
	if len(snap.Nearby) > 0 {
		return "near " + string(snap.Nearby[0])
	}
	return ""
}

// orderLabel shortens "lettuce_chopped_tomato_chopped" to "lettuce+tomato".
func orderLabel(key string) string {
	ings := strings.Split(strings.ReplaceAll(key, "_chopped", ""), "_")
	return strings.Join(ings, "+")
}

func contentsLabel(contents []string) string {
	return orderLabel(kitchen.CompositeKey(contents))
}

func drawBanner(dst *core.Screen, area core.Rect, lines []string) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	box := core.NewRect(area.X+(area.W-w-4)/2, area.Y+(area.H-len(lines)-2)/2, w+4, len(lines)+2)
	box = box.ClampInside(area)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorYellow)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawText(x, box.Y+1+i, l, core.ColorYellow)
	}
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
