// Package window runs the desktop driver inside an ebiten window.
package window

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/meteordodge/internal/desktop"
	"github.com/tomz197/meteordodge/internal/input"
	"github.com/tomz197/meteordodge/internal/loop/config"
	"github.com/tomz197/meteordodge/internal/loop/session"
	"github.com/tomz197/meteordodge/internal/object"
	"github.com/tomz197/meteordodge/internal/physics"
)

var (
	skyColor      = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	cloudColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xd0}
	meteorColor   = color.RGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}
	trailColor    = color.RGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0x90}
	wingColor     = color.RGBA{R: 0x6b, G: 0x8e, B: 0x23, A: 0xff}
	bodyColor     = color.RGBA{R: 0x55, G: 0x6b, B: 0x2f, A: 0xff}
	beakColor     = color.RGBA{R: 0xda, G: 0xa5, B: 0x20, A: 0xff}
	particleColor = color.RGBA{R: 0xff, G: 0x45, B: 0x00, A: 0xff}
	textColor     = color.RGBA{R: 0x10, G: 0x10, B: 0x30, A: 0xff}
	titleColor    = color.RGBA{R: 0x80, G: 0x00, B: 0x00, A: 0xff}
	hintColor     = color.RGBA{R: 0x30, G: 0x40, B: 0x60, A: 0xff}
	errorColor    = color.RGBA{R: 0xc0, G: 0x00, B: 0x00, A: 0xff}
)

// Game adapts a desktop.Driver to ebiten.Game.
type Game struct {
	driver  *desktop.Driver
	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
	chars   []rune
}

// New wraps d for ebiten.RunGame.
func New(d *desktop.Driver) *Game {
	return &Game{driver: d}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if !g.driver.Step(g.readFrame()) {
		return ebiten.Termination
	}
	return nil
}

// readFrame polls the keyboard.
func (g *Game) readFrame() desktop.Frame {
	f := desktop.Frame{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Start: inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Quit:  inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		f.Keys = append(f.Keys, input.Key{Code: input.KeyRune, Rune: r})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		f.Keys = append(f.Keys, input.Key{Code: input.KeyBackspace})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		f.Keys = append(f.Keys, input.Key{Code: input.KeyEnter})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		f.Keys = append(f.Keys, input.Key{Code: input.KeyEscape})
	}
	return f
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.fillImg == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		g.fillImg = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	v := g.driver.View()
	snap := v.Snapshot
	screen.Fill(skyColor)

	for _, anchor := range object.Clouds(v.Frames, snap.Screen) {
		for _, puff := range object.CloudPuffs(anchor) {
			vector.DrawFilledCircle(screen, float32(puff.X), float32(puff.Y), float32(puff.R), cloudColor, true)
		}
	}

	for _, m := range snap.Meteors {
		g.strokePolygon(screen, object.TrailOutline(m.X, m.Y, m.Size), 2, trailColor)
		g.fillPolygon(screen, m.Vertices, meteorColor)
	}

	if snap.Phase == session.PhasePlaying {
		p := snap.Player
		for _, s := range object.PterodactylShapes(p.X, p.Y, p.Width, p.Height) {
			g.fillPolygon(screen, s.Points, partColor(s.Part))
		}
	}

	for _, p := range v.Particles {
		if p.Visible() {
			r := float32(3 * p.Lifetime / p.MaxLifetime)
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), max(r, 1), particleColor, true)
		}
	}

	for _, line := range desktop.Lines(v) {
		text.Draw(screen, line.Text, basicfont.Face7x13, line.X, line.Y, styleColor(line.Style))
	}
}

// Layout implements ebiten.Game. The playfield is fixed; ebiten scales it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.PlayfieldWidth, config.PlayfieldHeight
}

func (g *Game) polygonPath(points []physics.Point) *vector.Path {
	path := &vector.Path{}
	for i, pt := range points {
		if i == 0 {
			path.MoveTo(float32(pt.X), float32(pt.Y))
		} else {
			path.LineTo(float32(pt.X), float32(pt.Y))
		}
	}
	path.Close()
	return path
}

func (g *Game) fillPolygon(dst *ebiten.Image, points []physics.Point, clr color.RGBA) {
	if len(points) < 3 {
		return
	}
	g.fillVs, g.fillIs = g.polygonPath(points).AppendVerticesAndIndicesForFilling(g.fillVs[:0], g.fillIs[:0])
	g.drawTriangles(dst, clr, &ebiten.DrawTrianglesOptions{AntiAlias: true, FillRule: ebiten.EvenOdd})
}

func (g *Game) strokePolygon(dst *ebiten.Image, points []physics.Point, width float32, clr color.RGBA) {
	if len(points) < 2 {
		return
	}
	g.fillVs, g.fillIs = g.polygonPath(points).AppendVerticesAndIndicesForStroke(g.fillVs[:0], g.fillIs[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})
	g.drawTriangles(dst, clr, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (g *Game) drawTriangles(dst *ebiten.Image, clr color.RGBA, opts *ebiten.DrawTrianglesOptions) {
	for i := range g.fillVs {
		g.fillVs[i].SrcX, g.fillVs[i].SrcY = 1, 1
		g.fillVs[i].ColorR = float32(clr.R) / 255
		g.fillVs[i].ColorG = float32(clr.G) / 255
		g.fillVs[i].ColorB = float32(clr.B) / 255
		g.fillVs[i].ColorA = float32(clr.A) / 255
	}
	dst.DrawTriangles(g.fillVs, g.fillIs, g.fillImg, opts)
}

func partColor(p object.Part) color.RGBA {
	switch p {
	case object.PartWing:
		return wingColor
	case object.PartBeak:
		return beakColor
	default:
		return bodyColor
	}
}

func styleColor(s desktop.Style) color.RGBA {
	switch s {
	case desktop.StyleTitle:
		return titleColor
	case desktop.StyleHint:
		return hintColor
	case desktop.StyleError:
		return errorColor
	default:
		return textColor
	}
}

// Run opens the window and blocks until it closes.
func Run(d *desktop.Driver) error {
	ebiten.SetWindowSize(config.PlayfieldWidth, config.PlayfieldHeight)
	ebiten.SetWindowTitle("Meteor Dodge")
	ebiten.SetTPS(config.TargetFPS)
	defer d.Close()

	err := ebiten.RunGame(New(d))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
