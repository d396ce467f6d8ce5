package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vovakirdan/nightwatch/internal/core"
	"github.com/vovakirdan/nightwatch/internal/encounter"
	"github.com/vovakirdan/nightwatch/internal/storage"
)

var threatArt = []string{
	` .---. `,
	`( o o )`,
	` )=#=( `,
	`/|   |\`,
	` /   \ `,
}

var jumpscareArt = []string{
	`   .-"""""-.   `,
	`  /  _   _  \  `,
	` |  (O) (O)  | `,
	` |    /_\    | `,
	`  \ |VVVVV| /  `,
	`   \|^^^^^|/   `,
	`    '-----'    `,
}

// drawArt draws lines centered in r.
func drawArt(s *core.Screen, r core.Rect, lines []string, c core.Color) {
	cx, cy := r.Center()
	top := cy - len(lines)/2
	for i, line := range lines {
		s.DrawTextColor(cx-len([]rune(line))/2, top+i, line, c)
	}
}

// drawCentered draws text centered in r on row y.
func drawCentered(s *core.Screen, r core.Rect, y int, text string, c core.Color) {
	cx, _ := r.Center()
	s.DrawTextColor(cx-len([]rune(text))/2, y, text, c)
}

// clockText formats the time left until morning as m:ss.
func clockText(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func drawMenu(s *core.Screen, l Layout, tally storage.Tally) {
	top := l.Start.Y - 5
	s.DrawTextCentered(top, "N I G H T W A T C H", core.ColorBrightRed)
	s.DrawTextCentered(top+2, "Night 1    12 AM to 6 AM", core.ColorGray)

	s.DrawButton(l.Start, "START NIGHT", core.ColorBrightWhite)
	s.DrawButton(l.Quit, "QUIT", core.ColorWhite)

	if tally.Played > 0 {
		line := fmt.Sprintf("nights %d   survived %d   longest %s   repelled %d",
			tally.Played, tally.Survived, clockText(tally.BestSurvived), tally.TotalRepels)
		s.DrawTextCentered(l.Quit.Bottom()+1, line, core.ColorGray)
	}
}

// drawHUD draws the status line at the top of the night screens.
func drawHUD(s *core.Screen, snap encounter.Snapshot) {
	s.DrawTextColor(1, 0, "NIGHT 1", core.ColorGray)

	if snap.Debug {
		dbg := fmt.Sprintf("threat@%d office=%s", snap.ThreatLocation, snap.Office)
		s.DrawTextCentered(0, dbg, core.ColorDim)
	}

	right := "6 AM in " + clockText(snap.Remaining)
	s.DrawTextColor(s.Width()-len(right)-1, 0, right, core.ColorWhite)
}

func drawToolbar(s *core.Screen, l Layout, snap encounter.Snapshot) {
	door, doorColor := "DOOR OPEN", core.ColorGray
	if snap.DoorClosed {
		door, doorColor = "DOOR SHUT", core.ColorYellow
	}
	s.DrawButton(l.Door, door, doorColor)

	cam, camColor := "CAMERAS", core.ColorGray
	if snap.CameraActive {
		cam, camColor = "LOWER", core.ColorCyan
	}
	s.DrawButton(l.Camera, cam, camColor)

	flashColor := core.ColorGray
	if snap.Flashing {
		flashColor = core.ColorBrightWhite
	}
	s.DrawButton(l.Flash, "FLASH", flashColor)
}

// doorwayRect returns the doorway drawn in the middle of the office.
func doorwayRect(scene core.Rect) core.Rect {
	w := core.Min(22, scene.W-4)
	h := scene.H - 2
	cx, _ := scene.Center()
	return core.NewRect(cx-w/2, scene.Y+1, w, h)
}

// drawOffice draws the office. It is dark until the flash lights it up;
// the light reveals the derived office state, fading with the flash.
func drawOffice(s *core.Screen, l Layout, snap encounter.Snapshot) {
	drawHUD(s, snap)

	s.Fill(l.Scene, '░', core.ColorDim)
	doorway := doorwayRect(l.Scene)
	s.DrawBox(doorway, core.ColorDim)

	if snap.Flashing && snap.FlashIntensity > 0 {
		drawOfficeLit(s, doorway, snap.Office, core.ShadeForIntensity(snap.FlashIntensity))
	}

	drawToolbar(s, l, snap)
}

func drawOfficeLit(s *core.Screen, doorway core.Rect, office encounter.OfficeState, c core.Color) {
	inner := core.NewRect(doorway.X+1, doorway.Y+1, doorway.W-2, doorway.H-2)
	if inner.Empty() {
		return
	}

	s.Fill(inner, ' ', c)
	s.DrawBox(doorway, c)

	switch office {
	case encounter.OfficeNormal:
		drawCentered(s, inner, inner.Bottom()-1, "empty hallway", c)
	case encounter.OfficeThreatPresent:
		drawArt(s, inner, threatArt, c)
	case encounter.OfficeTrapped:
		s.Fill(inner, '▓', c)
		drawCentered(s, inner, inner.Bottom()-1, " scratching ", c)
	case encounter.OfficeFalseAlarm:
		s.Fill(inner, '▓', c)
	}
}

// drawCamera draws the monitor: the selected feed and the camera buttons.
func drawCamera(s *core.Screen, l Layout, snap encounter.Snapshot) {
	drawHUD(s, snap)

	feed := l.Scene
	s.DrawBox(feed, core.ColorGreen)
	label := fmt.Sprintf(" CAM %d  %s ", snap.Camera+1, snap.CameraName)
	s.DrawTextColor(feed.X+2, feed.Y, label, core.ColorGreen)

	if snap.ThreatLocation == snap.Camera {
		drawArt(s, feed, threatArt, core.ColorWhite)
	} else {
		_, cy := feed.Center()
		drawCentered(s, feed, cy, "- no motion -", core.ColorGray)
	}

	for i, r := range l.Cams {
		c := core.ColorGray
		if i == snap.Camera {
			c = core.ColorBrightYellow
		}
		s.DrawButton(r, strconv.Itoa(i+1), c)
	}

	drawToolbar(s, l, snap)
}

func drawJumpscare(s *core.Screen, l Layout, snap encounter.Snapshot) {
	full := core.NewRect(0, 0, l.Width, l.Height)
	s.Fill(full, '▒', core.ColorRed)
	drawArt(s, full, jumpscareArt, core.ColorBrightRed)

	_, cy := full.Center()
	y := cy + len(jumpscareArt)/2 + 2
	drawCentered(s, full, y, " JUMPSCARE! YOU DIED! ", core.ColorBrightWhite)

	cause := " It came through the door. "
	if snap.Cause == encounter.CausePower {
		cause = " The power ran out. "
	}
	drawCentered(s, full, y+1, cause, core.ColorWhite)

	if snap.CanAcknowledge {
		drawCentered(s, full, y+3, " press any key or click to return to menu ", core.ColorGray)
	}
}

func drawWin(s *core.Screen, l Layout, snap encounter.Snapshot) {
	full := core.NewRect(0, 0, l.Width, l.Height)
	_, cy := full.Center()

	drawCentered(s, full, cy-3, "6:00 AM", core.ColorBrightYellow)
	drawCentered(s, full, cy-1, "YOU SURVIVED THE NIGHT!", core.ColorBrightWhite)

	stats := fmt.Sprintf("power left %d%%   repelled %d", int(snap.PowerPercent*100), snap.Repels)
	drawCentered(s, full, cy+1, stats, core.ColorGray)
	drawCentered(s, full, cy+3, "press any key or click to return to menu", core.ColorWhite)
}
