package draw

import (
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Shapes are given in logical coordinates and scaled to the
// terminal. Render only emits cells that changed since the previous frame.
type Canvas struct {
	termWidth      int    // Terminal columns
	termHeight     int    // Terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // [y * termWidth + x]
	prev           []rune // Cell contents on screen after the last Render

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // subPixelHeight / logicalHeight

	// 0-based terminal offset of the render area when it is centered.
	offsetCol int
	offsetRow int

	// Reusable buffers
	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
}

// NewScaledCanvas creates a canvas that maps logicalWidth x logicalHeight
// onto termWidth x termHeight cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// logical size. A size change forces a full redraw.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth, termHeight = max(termWidth, 0), max(termHeight, 0)
	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
		c.prev = make([]rune, termHeight*termWidth)
		c.ForceRedraw()
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// ForceRedraw makes the next Render write every cell. Call it after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	for i := range c.prev {
		c.prev[i] = 0
	}
}

// SetOffset sets the 0-based column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// TerminalWidth returns the render area width in columns.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the render area height in rows.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at sub-pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Pixel reports whether the sub-pixel at x, y is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// SetFloat sets the pixel under a logical coordinate.
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a closed polygon, optionally filled.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// DrawCircle draws a circle in logical space. Horizontal and vertical scale
// differ, so it is drawn as the ellipse that looks round on screen.
func (c *Canvas) DrawCircle(cx, cy, r float64, filled bool) {
	px, py := cx*c.scaleX, cy*c.scaleY
	rx, ry := r*c.scaleX, r*c.scaleY
	if rx <= 0 || ry <= 0 {
		return
	}

	yStart := int(math.Floor(py - ry))
	yEnd := int(math.Ceil(py + ry))
	for y := yStart; y <= yEnd; y++ {
		dy := (float64(y) + 0.5 - py) / ry
		if dy < -1 || dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		left := int(math.Ceil(px - half))
		right := int(math.Floor(px + half))
		if filled {
			for x := left; x <= right; x++ {
				c.setPixel(x, y)
			}
			continue
		}
		c.setPixel(left, y)
		c.setPixel(right, y)
	}
}

// fillPolygon fills a polygon using a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	n := len(scaled)
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5

		xs := c.intersectionBuf[:0]
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = xs

		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// cell returns the half-block character for a terminal cell.
func (c *Canvas) cell(col, row int) rune {
	top := c.pixels[row*2*c.termWidth+col]
	bottom := c.pixels[(row*2+1)*c.termWidth+col]
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	default:
		return BlockEmpty
	}
}

// Render writes the cells that changed since the last Render. Cells never
// rendered before are assumed blank on screen.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			ch := c.cell(col, row)
			idx := row*c.termWidth + col
			was := c.prev[idx]
			if was == ch || (was == 0 && ch == BlockEmpty) {
				c.prev[idx] = ch
				continue
			}
			c.prev[idx] = ch

			c.renderBuf.WriteString("\033[")
			c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row+1+c.offsetRow), 10))
			c.renderBuf.WriteByte(';')
			c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col+1+c.offsetCol), 10))
			c.renderBuf.WriteByte('H')
			c.renderBuf.WriteRune(ch)
		}
	}

	io.WriteString(w, c.renderBuf.String())
}

// RenderBorder draws a box around the render area when the terminal is
// larger than it: horizontal bars need a row offset, vertical bars a
// column offset.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	bar := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	if hasV {
		if hasH {
			buf.WriteString(cursor(top, left) + "┌" + bar + "┐")
			buf.WriteString(cursor(bottom, left) + "└" + bar + "┘")
		} else {
			buf.WriteString(cursor(top, c.offsetCol+1) + bar)
			buf.WriteString(cursor(bottom, c.offsetCol+1) + bar)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			buf.WriteString(cursor(row, left) + "│" + cursor(row, right) + "│")
		}
	}
	io.WriteString(w, buf.String())
}

func cursor(row, col int) string {
	return "\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

// LogicalToTerminal converts a logical coordinate to a 1-based cell inside
// the render area, for placing text next to drawn shapes.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}
