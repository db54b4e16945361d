package ycbcr

// Half selects which half of a 16x16 macroblock a ConvertMacroRows call
// covers, and with it the rows of the shared chroma blocks the call fills.
type Half int

const (
	UpperHalf Half = iota // source rows 0-7, chroma rows 0-3
	LowerHalf             // source rows 8-15, chroma rows 4-7
)

// ConvertMacroRows converts 8 rows by 16 columns of packed RGB triples for
// 4:2:0 encoding. Luma stays at full resolution: columns 0-7 fill yLeft and
// columns 8-15 fill yRight. Each chroma sample covers a 2x2 source
// neighborhood and lands in rows 4*half..4*half+3 of cb and cr, so the
// upper and lower call of a macroblock converge on one chroma block pair.
//
// The chroma sample is computed from the box-averaged RGB triple, not by
// averaging four converted chroma values. The two orders differ by rounding;
// only averaging the inputs matches the reference encoder bit-for-bit.
func (t *Tables) ConvertMacroRows(pix []byte, stride int, half Half, yLeft, yRight, cb, cr *Block) {
	base := 32 * int(half)
	for j := 0; j < 4; j++ {
		row0 := pix[2*j*stride:]
		row1 := pix[(2*j+1)*stride:]
		for i := 0; i < 8; i++ {
			o := 6 * i
			p00 := row0[o:]
			p01 := row0[o+3:]
			p10 := row1[o:]
			p11 := row1[o+3:]

			yb, col := yLeft, 2*i
			if i >= 4 {
				yb, col = yRight, 2*i-8
			}
			yb[8*(2*j)+col] = t.Y(p00[0], p00[1], p00[2])
			yb[8*(2*j)+col+1] = t.Y(p01[0], p01[1], p01[2])
			yb[8*(2*j+1)+col] = t.Y(p10[0], p10[1], p10[2])
			yb[8*(2*j+1)+col+1] = t.Y(p11[0], p11[1], p11[2])

			r := (uint32(p00[0]) + uint32(p01[0]) + uint32(p10[0]) + uint32(p11[0])) / 4
			g := (uint32(p00[1]) + uint32(p01[1]) + uint32(p10[1]) + uint32(p11[1])) / 4
			b := (uint32(p00[2]) + uint32(p01[2]) + uint32(p10[2]) + uint32(p11[2])) / 4

			cbv, crv := t.CbCr(uint8(r), uint8(g), uint8(b))
			cb[base+8*j+i] = cbv
			cr[base+8*j+i] = crv
		}
	}
}

// ConvertMacroblock converts a full 16x16 macroblock in one call. Luma
// blocks come out in MCU order: top-left, top-right, bottom-left,
// bottom-right.
func (t *Tables) ConvertMacroblock(pix []byte, stride int, y *[4]Block, cb, cr *Block) {
	t.ConvertMacroRows(pix, stride, UpperHalf, &y[0], &y[1], cb, cr)
	t.ConvertMacroRows(pix[8*stride:], stride, LowerHalf, &y[2], &y[3], cb, cr)
}
