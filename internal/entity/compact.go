package entity

// Deletable — сущность с флагом удаления.
type Deletable interface {
	Deleted() bool
}

// Sweep удаляет помеченные элементы на месте, сохраняя порядок остальных.
func Sweep[T Deletable](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if !it.Deleted() {
			kept = append(kept, it)
		}
	}
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}
