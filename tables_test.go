package ycbcr

import "testing"

func TestNewTablesDeterministic(t *testing.T) {
	a := NewTables()
	b := NewTables()
	if *a != *b {
		t.Fatal("two independent builds produced different tables")
	}
	if *a != *DefaultTables() {
		t.Fatal("shared tables differ from a fresh build")
	}
}

func TestTableBiases(t *testing.T) {
	tab := NewTables()

	if got := tab.yb[0]; got != fixHalf {
		t.Fatalf("yb[0] = %d, want rounding bias %d", got, fixHalf)
	}
	if got := tab.cbb[0]; got != cbCrOffset+fixHalf-1 {
		t.Fatalf("cbb[0] = %d, want %d", got, cbCrOffset+fixHalf-1)
	}
	// The -1 adjustment pins the maximum chroma sum just below 1<<24 so the
	// shift yields 255, not 256.
	if got := tab.cbb[255]; got != 1<<24-1 {
		t.Fatalf("cbb[255] = %d, want %d", got, 1<<24-1)
	}
	// Luma coefficients sum to exactly 1.0 in fixed point, so gray input
	// reproduces itself.
	if sum := fix(0.299) + fix(0.587) + fix(0.114); sum != 1<<fixBits {
		t.Fatalf("luma coefficients sum to %d, want %d", sum, 1<<fixBits)
	}
}

// TestChromaTableConsolidation pins the numeric equality the shared cbb
// table relies on: Cb's blue coefficient and Cr's red coefficient are the
// same 0.5. If either constant ever drifts, Cr must get its own table.
func TestChromaTableConsolidation(t *testing.T) {
	const (
		cbBlue = 0.5
		crRed  = 0.5
	)
	if fix(cbBlue) != fix(crRed) {
		t.Fatalf("fix(cbBlue) = %d, fix(crRed) = %d; shared table no longer valid", fix(cbBlue), fix(crRed))
	}

	tab := NewTables()
	for i := 0; i < 256; i++ {
		want := fix(crRed)*int32(i) + cbCrOffset + fixHalf - 1
		if tab.cbb[i] != want {
			t.Fatalf("cbb[%d] = %d, want %d as Cr red source", i, tab.cbb[i], want)
		}
	}
}
