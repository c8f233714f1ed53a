// internal/ui/overlay.go
package ui

import (
	"fmt"
	"strconv"

	"go-dragon-shooter/internal/config"
	"go-dragon-shooter/pkg/render"
)

// HUDState — всё, что оверлей показывает в текущем кадре.
type HUDState struct {
	Width, Height float64
	Score         float64
	GameTime      float64 // мс
	Ammo          int
	Over          bool
	Won           bool
}

// Outcome messages: заголовок и подзаголовок.
const (
	WinHeadline  = "Inferno of Glory!"
	WinMessage   = "You scorched the skies, mighty dragon!"
	LoseHeadline = "Smoldering Embers!"
	LoseMessage  = "Sharpen your claws and try again!"
)

// Overlay рисует счёт, таймер, полоску патронов и итог забега.
type Overlay struct {
	Body     render.TextStyle
	Headline render.TextStyle
}

func NewOverlay() *Overlay {
	body := render.TextStyle{
		Size:         config.FontSize,
		Color:        config.TextLightColor,
		Shadow:       config.TextShadowColor,
		ShadowOffset: config.ShadowOffset,
	}
	headline := body
	headline.Size = config.HeadlineFontSize
	headline.Align = render.AlignCenter
	return &Overlay{Body: body, Headline: headline}
}

// ScoreText форматирует счёт без лишних нулей: 10 -> "10", 7.5 -> "7.5".
func ScoreText(score float64) string {
	return "Score: " + strconv.FormatFloat(score, 'f', -1, 64)
}

// TimerText показывает игровое время в секундах с одним знаком.
func TimerText(gameTime float64) string {
	return fmt.Sprintf("Timer: %.1f", gameTime*0.001)
}

func (o *Overlay) Draw(s render.Surface, st HUDState) {
	s.Text(ScoreText(st.Score), config.OverlayMarginX, config.ScoreTextY, o.Body)
	s.Text(TimerText(st.GameTime), config.OverlayMarginX, config.TimerTextY, o.Body)

	if st.Over {
		headline, message := LoseHeadline, LoseMessage
		if st.Won {
			headline, message = WinHeadline, WinMessage
		}
		centered := o.Body
		centered.Align = render.AlignCenter
		s.Text(headline, st.Width*0.5, st.Height*0.5-20, o.Headline)
		s.Text(message, st.Width*0.5, st.Height*0.5+20, centered)
	}

	// Полоска патронов: по прямоугольнику на каждый снаряд, с той же тенью.
	for i := 0; i < st.Ammo; i++ {
		bar := render.Rect{
			X: config.AmmoBarX + config.AmmoBarStep*float64(i),
			Y: config.AmmoBarY,
			W: config.AmmoBarWidth,
			H: config.AmmoBarHeight,
		}
		shadow := bar
		shadow.X += config.ShadowOffset
		shadow.Y += config.ShadowOffset
		s.FillRect(shadow, config.TextShadowColor)
		s.FillRect(bar, config.AmmoColor)
	}
}
