package client

import "testing"

func TestGetCellsFromChar(t *testing.T) {
	if got := len(getCellsFromChar('8')); got != 13 {
		t.Fatalf("8 should light 13 cells, got %d", got)
	}
	if got := len(getCellsFromChar('1')); got != 8 {
		t.Fatalf("1 should light 8 cells, got %d", got)
	}
	for _, cell := range getCellsFromChar('0') {
		if cell[0] < 0 || cell[0] >= letterWidth || cell[1] < 0 || cell[1] >= 5 {
			t.Fatalf("cell %v outside the glyph box", cell)
		}
	}
	if getCellsFromChar('x') != nil {
		t.Fatalf("non digits have no glyph")
	}
}
