package component

// Ammo — запас снарядов и таймер его пополнения.
type Ammo struct {
	Current  int
	Max      int
	Timer    float64 // мс
	Interval float64 // мс между пополнениями
}
