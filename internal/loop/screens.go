package loop

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomz197/meteordodge/internal/loop/config"
	"github.com/tomz197/meteordodge/internal/loop/form"
	"github.com/tomz197/meteordodge/internal/loop/session"
	"github.com/tomz197/meteordodge/internal/object"
	"github.com/tomz197/meteordodge/internal/score"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On screen transitions, do a full terminal clear so text from the
	// previous screen does not persist.
	phase := c.session.Phase
	if phase != c.state.prevPhase || c.state.isInactive != c.state.wasInactive ||
		c.state.shuttingDown != c.state.wasShutdown {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevPhase = phase
		c.state.wasInactive = c.state.isInactive
		c.state.wasShutdown = c.state.shuttingDown
		c.board = c.session.Leaderboard()
	}

	snap := c.session.Snapshot()

	c.canvas.Clear()
	c.drawScene(snap)
	c.canvas.Render(c.chunkWriter)
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI(snap)
	return c.chunkWriter.Flush()
}

// drawUI draws the text overlay for the current screen.
func (c *Client) drawUI(snap session.Snapshot) {
	centerX := c.canvas.TerminalWidth() / 2
	centerY := c.canvas.TerminalHeight() / 2

	if c.state.shuttingDown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}
	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch snap.Phase {
	case session.PhaseNotStarted:
		c.drawStartScreen(snap, centerX, centerY)
	case session.PhaseAwaitingIdentity:
		c.drawNameScreen(centerX, centerY)
	case session.PhasePlaying:
		c.drawPlayingHUD(snap)
	case session.PhaseEnded:
		c.drawGameOverScreen(snap, centerX, centerY)
	}
}

// blinkOn reports whether blinking prompts are visible this frame.
func (c *Client) blinkOn() bool {
	return object.ShouldRenderBlink(float64(c.state.frames)/config.TargetFPS, config.BlinkFrequency)
}

// pad centers s in a field of width cells so shorter text overwrites
// longer text from the previous frame.
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(snap session.Snapshot, centerX, centerY int) {
	cw := c.chunkWriter
	top := max(1, centerY-11)

	cw.WriteCentered(centerX, top, "M E T E O R   D O D G E")
	cw.WriteCentered(centerX, top+2, "~ Guide the pterodactyl through the meteor shower ~")

	cw.WriteCentered(centerX, top+4, "Controls")
	controls := []string{
		"W / I / Up  . . . Fly up",
		"S / K / Down  . Fly down",
		"SPACE / ENTER . . . Play",
		"Q . . . . . . . . . Quit",
	}
	for i, line := range controls {
		cw.WriteCentered(centerX, top+5+i, line)
	}

	prompt := ">>  Press SPACE to Start  <<"
	if !c.blinkOn() {
		prompt = ""
	}
	cw.WriteCentered(centerX, top+10, pad(prompt, 30))

	if snap.HasIdentity {
		cw.WriteCentered(centerX, top+11, "Playing as "+snap.Identity.FirstName+" "+strings.ToUpper(snap.Identity.LastInitial)+".")
	}

	c.drawLeaderboard(centerX, top+13)
}

// drawLeaderboard lists the stored top scores starting at row.
func (c *Client) drawLeaderboard(centerX, row int) {
	cw := c.chunkWriter
	cw.WriteCentered(centerX, row, "Leaderboard")
	board := c.board
	if len(board) == 0 {
		cw.WriteCentered(centerX, row+1, "No scores yet!")
		return
	}
	for i, e := range board {
		cw.WriteCentered(centerX, row+1+i, leaderboardLine(i, e))
	}
}

// leaderboardLine formats one ranked entry.
func leaderboardLine(rank int, e score.Entry) string {
	return fmt.Sprintf("%2d. %s", rank+1, e.String())
}

// drawNameScreen draws the name entry form.
func (c *Client) drawNameScreen(centerX, centerY int) {
	cw := c.chunkWriter
	f := &c.form

	cw.WriteCentered(centerX, centerY-5, "Who is flying?")

	fieldWidth := config.MaxFirstNameLen + 2
	cw.WriteCentered(centerX, centerY-2, "First name")
	cw.WriteCentered(centerX, centerY-1, pad(fieldText(f.FirstName(), f.Focus == form.FieldFirstName && c.blinkOn(), config.MaxFirstNameLen), fieldWidth))

	cw.WriteCentered(centerX, centerY+1, "Last initial")
	cw.WriteCentered(centerX, centerY+2, pad(fieldText(f.LastInitial(), f.Focus == form.FieldLastInitial && c.blinkOn(), 1), fieldWidth))

	cw.WriteCentered(centerX, centerY+4, "ENTER to continue  .  BACKSPACE to edit  .  ESC to go back")
	cw.WriteCentered(centerX, centerY+6, pad(f.Error, len(form.ErrorMessage)))
}

// fieldText renders a text field: [value___] with a cursor when shown.
func fieldText(value string, cursor bool, width int) string {
	n := len([]rune(value))
	fill := strings.Repeat("_", max(0, width-n))
	if cursor && fill != "" {
		fill = "|" + fill[1:]
	}
	return "[" + value + fill + "]"
}

// drawPlayingHUD draws the in-game HUD. The text is padded so a shorter
// value never leaves stale characters behind.
func (c *Client) drawPlayingHUD(snap session.Snapshot) {
	c.chunkWriter.WriteAt(2, 1, fmt.Sprintf("%-32s", fmt.Sprintf("Score: %d | Wave: %d", snap.Score, snap.Wave)))
}

// drawGameOverScreen draws the final score and the leaderboard.
func (c *Client) drawGameOverScreen(snap session.Snapshot, centerX, centerY int) {
	cw := c.chunkWriter
	top := max(1, centerY-10)

	cw.WriteCentered(centerX, top, "G A M E   O V E R")
	cw.WriteCentered(centerX, top+2, fmt.Sprintf("Final score: %d", snap.Score))
	cw.WriteCentered(centerX, top+3, fmt.Sprintf("Wave reached: %d", snap.Wave))

	prompt := "Press SPACE to play again"
	if !c.blinkOn() {
		prompt = ""
	}
	cw.WriteCentered(centerX, top+5, pad(prompt, 27))

	c.drawLeaderboard(centerX, top+7)
	c.drawCrashLabel(snap)
}

// crashLabel marks where the pterodactyl went down.
const crashLabel = "CRASH!"

// drawCrashLabel writes crashLabel just above the player's last position,
// skipping it when it would fall outside the render area.
func (c *Client) drawCrashLabel(snap session.Snapshot) {
	p := snap.Player
	col, row := c.canvas.LogicalToTerminal(p.X, p.Y-p.Height/2)
	col -= len(crashLabel) / 2
	if row < 1 || row > c.canvas.TerminalHeight() {
		return
	}
	if col < 1 || col+len(crashLabel) > c.canvas.TerminalWidth() {
		return
	}
	c.chunkWriter.WriteAt(col, row, crashLabel)
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	cw := c.chunkWriter
	cw.WriteCentered(centerX, centerY-2, "INACTIVITY WARNING")

	left := int(config.InactivityDisconnectUser - time.Since(c.lastInput).Seconds())
	msg := fmt.Sprintf("You have been inactive for too long. You will be disconnected in %3d seconds.", max(left, 0))
	cw.WriteCentered(centerX, centerY, msg)
	cw.WriteCentered(centerX, centerY+2, "Press any key to continue")
}

// drawShutdownScreen tells the player the server is going away.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	cw := c.chunkWriter
	cw.WriteCentered(centerX, centerY-2, "SERVER SHUTTING DOWN")
	cw.WriteCentered(centerX, centerY, "Thanks for playing! The server is restarting for maintenance.")
	cw.WriteCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %2d seconds", max(int(c.state.shutdownTimer), 0)))
}

// drawScene draws the playfield: clouds always, the game objects while a
// session is playing or has just ended.
func (c *Client) drawScene(snap session.Snapshot) {
	for _, anchor := range object.Clouds(c.state.frames, snap.Screen) {
		for _, puff := range object.CloudPuffs(anchor) {
			c.canvas.DrawCircle(puff.X, puff.Y, puff.R, false)
		}
	}

	if snap.Phase != session.PhasePlaying && snap.Phase != session.PhaseEnded {
		return
	}

	for _, m := range snap.Meteors {
		c.canvas.DrawPolygon(object.TrailOutline(m.X, m.Y, m.Size), false)
		c.canvas.DrawPolygon(m.Vertices, true)
	}

	if snap.Phase == session.PhasePlaying {
		p := snap.Player
		for _, s := range object.PterodactylShapes(p.X, p.Y, p.Width, p.Height) {
			c.canvas.DrawPolygon(s.Points, s.Part != object.PartWing)
		}
	}

	for _, p := range c.particles {
		if p.Visible() {
			c.canvas.SetFloat(p.X, p.Y)
		}
	}
}
