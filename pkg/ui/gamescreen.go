package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/golangdaddy/racinggame/pkg/app"
	"github.com/golangdaddy/racinggame/pkg/input"
	"github.com/golangdaddy/racinggame/pkg/models"
	"github.com/golangdaddy/racinggame/pkg/track"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

const (
	// carOffset is the distance of the car from the bottom of the screen
	carOffset = 120.0
	// maxSteerAngle is the sprite rotation at full lock, in degrees
	maxSteerAngle = 15.0
	// gaugeMaxSpeed is the speed at which the gauge is full
	gaugeMaxSpeed = 200.0
)

var (
	colorGrass      = color.RGBA{34, 139, 34, 255}
	colorGrassLight = color.RGBA{50, 160, 50, 255}
	colorAsphalt    = color.RGBA{64, 64, 64, 255}
	colorMarking    = color.RGBA{255, 255, 255, 255}
)

// GameScreen is the race itself. The player is ticked by the manager; this
// screen only reacts to what the player did during the frame.
type GameScreen struct {
	base
	ctx      *app.Context
	textures *textures

	lastSecond int
	lastLap    int
	offRoad    bool
	submitted  bool
	rank       int
}

func NewGameScreen(ctx *app.Context) *GameScreen {
	return &GameScreen{
		textures: newTextures(ctx.Dirs),
		rank:     -1,
	}
}

func (g *GameScreen) Kind() app.Kind { return app.KindGame }

func (g *GameScreen) OnEnter(ctx *app.Context) {
	g.ctx = ctx
	ctx.StartRace()
	g.lastSecond = int(models.StartCountdown / time.Second)
	g.lastLap = 1
	ctx.Sound.Play(app.SoundCountdown)
}

// OnPop drops the race and shows the table when the result was placed
func (g *GameScreen) OnPop(ctx *app.Context) {
	ctx.Player.Reset()
	if g.rank >= 0 {
		ctx.Manager.AddGameScreen(NewHighscores(ctx.Settings.Level, g.rank))
	}
}

func (g *GameScreen) Update(ctx *app.Context) error {
	p := ctx.Player

	if p.Finished() {
		if !g.submitted {
			g.submit(ctx)
		}
		if ctx.Input.JustPressed(input.Select) || ctx.Input.JustPressed(input.Back) {
			g.finish()
		}
		return nil
	}

	if ctx.Input.JustPressed(input.Back) {
		log.Info().Dur("race_time", p.RaceTime()).Msg("Race aborted")
		g.finish()
		return nil
	}

	if cd := p.Countdown(); cd > 0 {
		sec := int(math.Ceil(cd.Seconds()))
		if sec < g.lastSecond {
			g.lastSecond = sec
			ctx.Sound.Play(app.SoundCountdown)
		}
		return nil
	}
	if g.lastSecond > 0 {
		g.lastSecond = 0
		ctx.Sound.Play(app.SoundGo)
	}

	if lap, _ := p.Lap(); lap > g.lastLap {
		g.lastLap = lap
		ctx.Sound.Play(app.SoundLap)
	}
	if p.OffRoad && !g.offRoad {
		ctx.Sound.Play(app.SoundCrash)
	}
	g.offRoad = p.OffRoad
	return nil
}

func (g *GameScreen) submit(ctx *app.Context) {
	g.submitted = true
	p := ctx.Player
	entry := models.Highscore{
		Name:  ctx.Settings.PlayerName,
		Time:  p.RaceTime(),
		Car:   p.Car.Name(),
		Level: ctx.Settings.Level,
	}
	if ctx.Settings.Highscores == nil {
		ctx.Settings.Highscores = models.NewHighscores()
	}
	g.rank = ctx.Settings.Highscores.Add(entry)
	ctx.Sound.Play(app.SoundVictory)
	log.Info().
		Str("time", models.FormatRaceTime(entry.Time)).
		Str("level", entry.Level.String()).
		Int("rank", g.rank).
		Msg("Race finished")
}

func (g *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(colorGrass)
	if g.ctx == nil {
		return
	}
	p := g.ctx.Player
	if p.Track() == nil {
		return
	}

	g.drawRoad(screen, p)

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	clr := g.ctx.Assets.Palette.At(p.Color)
	drawCar(screen, g.textures.get(p.Car.Texture), width/2, height-carOffset, p.Steering*maxSteerAngle, 1, clr)

	g.drawHUD(screen, p)
}

// drawRoad renders the segments around the player. The camera follows the
// car: distance grows up the screen and the racing line moves sideways
// opposite to the car's lateral offset.
func (g *GameScreen) drawRoad(screen *ebiten.Image, p *models.Player) {
	t := p.Track()
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	carY := height - carOffset
	lineX := width/2 - p.Lateral

	first := math.Floor(p.Distance/track.SegmentLength) - 1
	for i := first; ; i++ {
		start := i * track.SegmentLength
		bottom := carY + (p.Distance - start)
		top := bottom - track.SegmentLength
		if bottom < 0 {
			break
		}
		if top > height {
			continue
		}

		// verge texture
		for y := math.Max(top, 0); y < math.Min(bottom, height); y += 16 {
			if int((start+bottom-y)/16)%3 == 0 {
				fillRect(screen, 0, y, width, 4, colorGrassLight)
			}
		}

		seg := t.SegmentAt(start)
		left, _ := seg.Bounds()
		for lane := 0; lane < seg.LaneCount; lane++ {
			roadType := "A"
			if lane < len(seg.RoadTypes) {
				roadType = seg.RoadTypes[lane]
			}
			laneX := lineX + left + float64(lane)*track.LaneWidth
			g.drawLane(screen, roadType, laneX, top, lane < seg.LaneCount-1)
		}

		if start >= 0 && math.Mod(start, t.Length()) == 0 {
			right := left + float64(seg.LaneCount)*track.LaneWidth
			drawFinishLine(screen, lineX+left, lineX+right, bottom)
		}
	}
}

func (g *GameScreen) drawLane(screen *ebiten.Image, roadType string, x, y float64, divider bool) {
	if tex := g.textures.road(roadType); tex != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(track.LaneWidth/float64(tex.Bounds().Dx()), track.SegmentLength/float64(tex.Bounds().Dy()))
		op.GeoM.Translate(x, y)
		screen.DrawImage(tex, op)
		return
	}

	fillRect(screen, x, y, track.LaneWidth, track.SegmentLength, colorAsphalt)
	if divider {
		for dy := 0.0; dy < track.SegmentLength; dy += 20 {
			fillRect(screen, x+track.LaneWidth-2, y+dy, 2, 10, colorMarking)
		}
	}
}

func drawFinishLine(screen *ebiten.Image, left, right, y float64) {
	const square = 10.0
	for row := 0; row < 2; row++ {
		for col := 0; left+float64(col)*square < right; col++ {
			clr := color.Color(color.Black)
			if (row+col)%2 == 0 {
				clr = color.White
			}
			w := math.Min(square, right-left-float64(col)*square)
			fillRect(screen, left+float64(col)*square, y-float64(row+1)*square, w, square, clr)
		}
	}
}

func (g *GameScreen) drawHUD(screen *ebiten.Image, p *models.Player) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	g.drawSpeedometer(screen, p.Speed)

	lap, laps := p.Lap()
	drawPanel(screen, width-200, 20, 180, 80)
	drawText(screen, fmt.Sprintf("LAP %d/%d", lap, laps), width-185, 32, 1.5, colorText, titleFace)
	drawText(screen, models.FormatRaceTime(p.RaceTime()), width-185, 64, 1.5, colorTitle, titleFace)

	for i, lt := range p.LapTimes() {
		drawText(screen, fmt.Sprintf("Lap %d  %s", i+1, models.FormatRaceTime(lt)), width-185, 110+float64(i)*16, 1, colorHint, smallFace)
	}

	if cd := p.Countdown(); cd > 0 {
		n := int(math.Ceil(cd.Seconds()))
		drawCentered(screen, fmt.Sprint(n), width/2, height/3, 8, colorTitle, titleFace)
	} else if p.RaceTime() < time.Second {
		drawCentered(screen, "GO!", width/2, height/3, 8, color.RGBA{100, 255, 100, 255}, titleFace)
	}

	if p.OffRoad {
		drawCentered(screen, "OFF ROAD", width/2, height/2, 2, color.RGBA{255, 100, 100, 255}, titleFace)
	}

	if p.Finished() {
		drawPanel(screen, width/2-220, height/2-90, 440, 180)
		drawCentered(screen, "FINISHED", width/2, height/2-70, 3, colorTitle, titleFace)
		drawCentered(screen, models.FormatRaceTime(p.RaceTime()), width/2, height/2-10, 2, colorText, titleFace)
		result := "Not fast enough for the highscores"
		if g.rank >= 0 {
			result = fmt.Sprintf("New highscore: place %d", g.rank+1)
		}
		drawCentered(screen, result, width/2, height/2+40, 1, colorButtonText, titleFace)
		drawCentered(screen, "Press ENTER", width/2, height/2+65, 1, colorHint, titleFace)
	}
}

// drawSpeedometer draws the speed panel in the top-left corner
func (g *GameScreen) drawSpeedometer(screen *ebiten.Image, speedMPH float64) {
	const (
		x      = 20.0
		y      = 20.0
		width  = 180.0
		height = 120.0
	)
	drawPanel(screen, x, y, width, height)

	var speedColor color.RGBA
	switch {
	case speedMPH < 80:
		speedColor = color.RGBA{100, 255, 100, 255}
	case speedMPH < 140:
		speedColor = color.RGBA{255, 255, 100, 255}
	default:
		speedColor = color.RGBA{255, 100, 100, 255}
	}
	drawCentered(screen, fmt.Sprintf("%.0f", speedMPH), x+width/2, y+20, 3, speedColor, titleFace)
	drawCentered(screen, "MPH", x+width/2, y+72, 1.5, color.RGBA{200, 200, 200, 255}, titleFace)

	g.drawSpeedGauge(screen, x+10, y+height-25, width-20, 15, speedMPH)
}

// drawSpeedGauge fills a bar from green through yellow to red
func (g *GameScreen) drawSpeedGauge(screen *ebiten.Image, x, y, width, height, speedMPH float64) {
	ratio := math.Min(speedMPH/gaugeMaxSpeed, 1.0)
	fillRect(screen, x, y, width, height, color.RGBA{40, 40, 40, 255})

	if filled := width * ratio; filled > 0 {
		var barColor color.RGBA
		if ratio < 0.5 {
			r := ratio / 0.5
			barColor = color.RGBA{uint8(100 + r*155), 255, 100, 255}
		} else {
			r := (ratio - 0.5) / 0.5
			barColor = color.RGBA{255, uint8(255 - r*155), uint8(100 - r*100), 255}
		}
		fillRect(screen, x, y, filled, height, barColor)
	}
	drawPanelBorder(screen, x, y, width, height)
}
