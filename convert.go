package ycbcr

// Block is one 8x8 plane of samples in row-major order, sized and typed for
// the downstream forward DCT.
type Block [64]int32

// Y computes the luma value for one pixel. The result is in [0,255] by
// construction of the table biases.
func (t *Tables) Y(r, g, b uint8) int32 {
	return (t.yr[r] + t.yg[g] + t.yb[b]) >> fixBits
}

// CbCr computes both chroma values for one pixel, skipping the luma work.
// The cbb table doubles as the Cr red coefficient source: Cb's blue
// coefficient and Cr's red coefficient are both exactly 0.5.
func (t *Tables) CbCr(r, g, b uint8) (int32, int32) {
	cb := (t.cbr[r] + t.cbg[g] + t.cbb[b]) >> fixBits
	cr := (t.cbb[r] + t.crg[g] + t.crb[b]) >> fixBits

	return cb, cr
}

// YCbCr computes all three channel values for one pixel.
func (t *Tables) YCbCr(r, g, b uint8) (int32, int32, int32) {
	y := (t.yr[r] + t.yg[g] + t.yb[b]) >> fixBits
	cb := (t.cbr[r] + t.cbg[g] + t.cbb[b]) >> fixBits
	cr := (t.cbb[r] + t.crg[g] + t.crb[b]) >> fixBits

	return y, cb, cr
}

// ConvertBlock converts an 8x8 region of packed RGB triples into one luma
// and two full-resolution chroma blocks. pix holds row-major RGB bytes with
// stride bytes between the starts of consecutive rows; pix[0:3] is the
// top-left pixel of the region.
func (t *Tables) ConvertBlock(pix []byte, stride int, yb, cb, cr *Block) {
	for j := 0; j < 8; j++ {
		row := pix[j*stride:]
		for i := 0; i < 8; i++ {
			p := row[3*i:]
			yv, cbv, crv := t.YCbCr(p[0], p[1], p[2])
			yb[8*j+i] = yv
			cb[8*j+i] = cbv
			cr[8*j+i] = crv
		}
	}
}
