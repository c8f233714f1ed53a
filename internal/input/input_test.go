package input

import "testing"

func TestSnapshotHolding(t *testing.T) {
	s := Snapshot{Held: Up | Down}
	if !s.Holding(Up) || !s.Holding(Down) {
		t.Errorf("expected both directions held: %+v", s)
	}
	if (Snapshot{}).Holding(Up) {
		t.Error("empty snapshot reports Up held")
	}
	if (Snapshot{Held: Down}).Holding(Up) {
		t.Error("Down-only snapshot reports Up held")
	}
}
