package utils

// FrameClock превращает монотонные метки времени кадров (мс) в deltaTime.
// Предыдущая метка изначально равна 0, поэтому первый Tick возвращает саму метку.
type FrameClock struct {
	last float64
}

// Tick запоминает метку и возвращает время, прошедшее с предыдущей.
func (c *FrameClock) Tick(timestamp float64) float64 {
	delta := timestamp - c.last
	c.last = timestamp
	return delta
}
