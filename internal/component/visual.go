// internal/component/visual.go
package component

// Animator переключает кадр спрайт-листа через фиксированный интервал.
type Animator struct {
	FrameX   int
	MaxFrame int
	Timer    float64 // мс, накопленные с последней смены кадра
	Interval float64 // мс на кадр
}

// NewAnimator создаёт аниматор с интервалом 1000/fps.
func NewAnimator(fps float64, maxFrame int) Animator {
	return Animator{
		MaxFrame: maxFrame,
		Interval: 1000 / fps,
	}
}

// Advance накапливает deltaTime; когда таймер превысил интервал, кадр
// сдвигается на один (после MaxFrame снова 0), а таймер обнуляется.
// В тике смены кадра deltaTime не накапливается.
func (a *Animator) Advance(deltaTime float64) {
	if a.Timer > a.Interval {
		if a.FrameX < a.MaxFrame {
			a.FrameX++
		} else {
			a.FrameX = 0
		}
		a.Timer = 0
	} else {
		a.Timer += deltaTime
	}
}
