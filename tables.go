package ycbcr

import "sync"

// Fixed-point layout. A coefficient c becomes fix(c) = round(c * 1<<fixBits);
// table entry i holds fix(c)*i, so a channel value is the sum of three table
// entries shifted back down by fixBits.
const (
	fixBits    = 16
	fixHalf    = 1 << (fixBits - 1) // rounding bias, folded into yb and cbb
	cbCrOffset = 128 << fixBits     // chroma re-centering, folded into cbb
)

// Tables holds the premultiplied transform coefficients for every 8-bit
// intensity. Built once and never mutated afterwards; a single instance may
// be shared across any number of goroutines without synchronization.
type Tables struct {
	yr, yg, yb [256]int32

	// cbb carries the 0.5 coefficient that Cb's blue term and Cr's red
	// term have in common, plus the chroma offset and rounding bias. The
	// trailing -1 keeps the maximum chroma sum at 1<<24 - 1, so a shift
	// never rounds up to 256 and no output clamp is needed.
	cbr, cbg, cbb [256]int32

	crg, crb [256]int32
}

func fix(x float64) int32 {
	return int32(x*(1<<fixBits) + 0.5)
}

// NewTables builds the coefficient tables. The result is deterministic and
// depends on nothing but the BT.601 full-range constants.
func NewTables() *Tables {
	t := &Tables{}
	for i := 0; i < 256; i++ {
		n := int32(i)
		t.yr[i] = fix(0.299) * n
		t.yg[i] = fix(0.587) * n
		t.yb[i] = fix(0.114)*n + fixHalf
		t.cbr[i] = -fix(0.168735892) * n
		t.cbg[i] = -fix(0.331264108) * n
		t.cbb[i] = fix(0.5)*n + cbCrOffset + fixHalf - 1
		t.crg[i] = -fix(0.418687589) * n
		t.crb[i] = -fix(0.081312411) * n
	}
	return t
}

var (
	defaultTables     *Tables
	defaultTablesOnce sync.Once
)

// DefaultTables returns the process-wide shared table set, building it on
// first use.
func DefaultTables() *Tables {
	defaultTablesOnce.Do(func() {
		defaultTables = NewTables()
	})
	return defaultTables
}
