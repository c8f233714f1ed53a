package system

import "go-dragon-shooter/internal/component"

// CheckCollision — пересечение двух прямоугольников по осям.
// Все четыре сравнения строгие: касание краями не считается.
func CheckCollision(a, b component.Rect) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}
