package terminal

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trinket/component"
	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/engine"
	"github.com/lixenwraith/trinket/event"
	"github.com/lixenwraith/trinket/input"
	"github.com/lixenwraith/trinket/inventory"
	"github.com/lixenwraith/trinket/parameter"
	"github.com/lixenwraith/trinket/vmath"
)

const (
	logLines    = 5
	maxMessages = 64
)

var (
	styleFloor  = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	stylePond   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleItem   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleActor  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleProp   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleLog    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// View draws the world through the camera and keeps the message log
// Implements engine.Presenter; all methods run on the tick goroutine
type View struct {
	screen   tcell.Screen
	world    *engine.World
	viewport Viewport
	messages []string
}

// NewView creates a view over an initialized screen
func NewView(screen tcell.Screen, world *engine.World) *View {
	v := &View{
		screen:   screen,
		world:    world,
		messages: make([]string, 0, maxMessages),
	}
	v.Resize()
	return v
}

// Resize recomputes the map area from the screen size
func (v *View) Resize() Viewport {
	w, h := v.screen.Size()
	v.viewport = Viewport{Width: w, Height: max(0, h-logLines-1)}
	return v.viewport
}

// Viewport returns the current map area
func (v *View) Viewport() Viewport {
	return v.viewport
}

// Present appends formatted effects to the message log
func (v *View) Present(_ uint64, effects []event.Effect) {
	for _, e := range effects {
		v.Log(FormatEffect(e, v.name))
	}
}

// Log appends a line, dropping the oldest beyond the cap
func (v *View) Log(line string) {
	if len(v.messages) == maxMessages {
		copy(v.messages, v.messages[1:])
		v.messages = v.messages[:maxMessages-1]
	}
	v.messages = append(v.messages, line)
}

// Messages returns the most recent n log lines
func (v *View) Messages(n int) []string {
	if n > len(v.messages) {
		n = len(v.messages)
	}
	return v.messages[len(v.messages)-n:]
}

// UpdateProjection sizes the orthographic volume to the orbit distance and screen aspect
func (v *View) UpdateProjection() {
	cam := v.world.Resource.Camera
	if cam == nil {
		return
	}
	dist := parameter.CameraDefaultDistance
	if t, ok := v.world.Components.CameraTarget.Get(v.world.Resource.Player); ok {
		dist = t.Distance
	}
	hh := dist * parameter.CameraViewHalfHeight
	hw := hh * v.viewport.Aspect()
	cam.Projection = vmath.OrthoZO(-hw, hw, -hh, hh, parameter.CameraNear, parameter.CameraFar)
}

// Step runs one tick and draws it
// The projection is sized after the tick so a zoom shows on the frame that applied it;
// the next tick picks against the image it drew
func (v *View) Step(snapshot *input.Snapshot) *engine.Frame {
	f := v.world.Tick(snapshot)
	v.UpdateProjection()
	v.Draw(f)
	return f
}

// Draw renders the frame: ground, entities, the pack line and the message log
func (v *View) Draw(f *engine.Frame) {
	v.screen.Clear()
	cam := v.world.Resource.Camera
	if cam != nil && v.viewport.Valid() {
		vp := cam.ViewProjection()
		v.drawTiles(vp)
		v.drawEntities(vp, f)
	}
	v.drawStatus(f)
	v.drawLog()
	v.screen.Show()
}

func (v *View) project(vp mgl32.Mat4, p mgl32.Vec3) (x, y int, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() == 0 {
		return 0, 0, false
	}
	return v.viewport.NDCToCell(mgl32.Vec2{clip.X() / clip.W(), clip.Y() / clip.W()})
}

func (v *View) drawTiles(vp mgl32.Mat4) {
	v.world.Components.Tile.Each(func(_ core.Entity, t component.TileComponent) {
		x, y, ok := v.project(vp, t.Center)
		if !ok {
			return
		}
		if t.Walkable {
			v.screen.SetContent(x, y, '.', nil, styleFloor)
		} else {
			v.screen.SetContent(x, y, '~', nil, stylePond)
		}
	})
}

// drawEntities layers props, then loose items, then the player on top
func (v *View) drawEntities(vp mgl32.Mat4, f *engine.Frame) {
	c := v.world.Components
	player := v.world.Resource.Player
	for _, e := range v.world.InWorld() {
		if e == player || c.Storable.Has(e) {
			continue
		}
		v.drawEntity(vp, e, f)
	}
	for _, e := range v.world.Query().With(c.Storable).With(c.Location).Execute() {
		v.drawEntity(vp, e, f)
	}
	v.drawEntity(vp, player, f)
}

func (v *View) drawEntity(vp mgl32.Mat4, e core.Entity, f *engine.Frame) {
	wp, ok := v.world.WorldPlacement(e)
	if !ok {
		return
	}
	x, y, ok := v.project(vp, wp.Position)
	if !ok {
		return
	}
	r, style := v.glyph(e)
	if f != nil && e == f.Nearest {
		style = style.Reverse(true)
	}
	v.screen.SetContent(x, y, r, nil, style)
}

// glyph picks a rune by role: player, storable item, speaker, or static prop
func (v *View) glyph(e core.Entity) (rune, tcell.Style) {
	c := v.world.Components
	initial := '#'
	if n, ok := c.Name.Get(e); ok && n.Name != "" {
		initial = []rune(n.Name)[0]
	}
	switch {
	case e == v.world.Resource.Player:
		return '@', stylePlayer
	case c.Storable.Has(e):
		return unicode.ToLower(initial), styleItem
	case c.Dialogue.Has(e):
		return unicode.ToUpper(initial), styleActor
	default:
		return '♣', styleProp
	}
}

func (v *View) drawStatus(f *engine.Frame) {
	var b strings.Builder
	b.WriteString(" Pack:")
	for i, slot := range inventory.Contents(v.world, v.world.Resource.Player) {
		fmt.Fprintf(&b, " %d:%s", i+1, v.name(slot.Item))
	}
	if f != nil && f.Nearest.Valid() {
		fmt.Fprintf(&b, "  | Target: %s", v.name(f.Nearest))
	}
	if audio := v.world.Resource.Audio; audio != nil && audio.IsMuted() {
		b.WriteString("  | muted")
	}
	w, _ := v.screen.Size()
	v.drawText(0, v.viewport.Height, padRight(b.String(), w), styleStatus)
}

func (v *View) drawLog() {
	for i, line := range v.Messages(logLines) {
		v.drawText(1, v.viewport.Height+1+i, line, styleLog)
	}
}

func (v *View) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (v *View) name(e core.Entity) string {
	if n, ok := v.world.Components.Name.Get(e); ok {
		return n.Name
	}
	return fmt.Sprintf("thing %d", e)
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
