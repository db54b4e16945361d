package ycbcr

import (
	"fmt"
	"image"
)

// ToYCbCr converts img to a planar YCbCr image at 4:4:4 or 4:2:0. Other
// subsample ratios are not supported. Partial blocks at the right and bottom
// edges are filled by replicating the nearest edge pixel, matching the
// behavior of the standard JPEG writer.
func ToYCbCr(img image.Image, ratio image.YCbCrSubsampleRatio) (*image.YCbCr, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewYCbCr(image.Rect(0, 0, w, h), ratio)
	t := DefaultTables()

	switch ratio {
	case image.YCbCrSubsampleRatio444:
		var tile [8 * 8 * 3]byte
		var yb, cb, cr Block
		for y := 0; y < h; y += 8 {
			for x := 0; x < w; x += 8 {
				extractTile(img, x, y, 8, tile[:])
				t.ConvertBlock(tile[:], 8*3, &yb, &cb, &cr)
				storeBlock(&yb, dst.Y, dst.YStride, x, y, w, h)
				storeBlock(&cb, dst.Cb, dst.CStride, x, y, w, h)
				storeBlock(&cr, dst.Cr, dst.CStride, x, y, w, h)
			}
		}
	case image.YCbCrSubsampleRatio420:
		cw, ch := (w+1)/2, (h+1)/2
		var tile [16 * 16 * 3]byte
		var yb [4]Block
		var cb, cr Block
		for y := 0; y < h; y += 16 {
			for x := 0; x < w; x += 16 {
				extractTile(img, x, y, 16, tile[:])
				t.ConvertMacroblock(tile[:], 16*3, &yb, &cb, &cr)
				storeBlock(&yb[0], dst.Y, dst.YStride, x, y, w, h)
				storeBlock(&yb[1], dst.Y, dst.YStride, x+8, y, w, h)
				storeBlock(&yb[2], dst.Y, dst.YStride, x, y+8, w, h)
				storeBlock(&yb[3], dst.Y, dst.YStride, x+8, y+8, w, h)
				storeBlock(&cb, dst.Cb, dst.CStride, x/2, y/2, cw, ch)
				storeBlock(&cr, dst.Cr, dst.CStride, x/2, y/2, cw, ch)
			}
		}
	default:
		return nil, fmt.Errorf("unsupported subsample ratio %v", ratio)
	}

	return dst, nil
}

// extractTile copies a size-by-size region of img with top-left (x0,y0),
// in img-local coordinates, into scratch as packed RGB triples. Source
// coordinates past the bounds are clamped to the last row/column.
func extractTile(img image.Image, x0, y0, size int, scratch []byte) {
	if m, ok := img.(*image.RGBA); ok {
		extractTileRGBA(m, x0, y0, size, scratch)
		return
	}

	b := img.Bounds()
	xmax, ymax := b.Max.X-1, b.Max.Y-1
	for j := 0; j < size; j++ {
		sy := b.Min.Y + y0 + j
		if sy > ymax {
			sy = ymax
		}
		for i := 0; i < size; i++ {
			sx := b.Min.X + x0 + i
			if sx > xmax {
				sx = xmax
			}
			r, g, bl, _ := img.At(sx, sy).RGBA()
			o := (j*size + i) * 3
			scratch[o] = uint8(r >> 8)
			scratch[o+1] = uint8(g >> 8)
			scratch[o+2] = uint8(bl >> 8)
		}
	}
}

// extractTileRGBA is the fast path for *image.RGBA, reading Pix directly.
func extractTileRGBA(m *image.RGBA, x0, y0, size int, scratch []byte) {
	b := m.Bounds()
	xmax, ymax := b.Dx()-1, b.Dy()-1
	for j := 0; j < size; j++ {
		sy := y0 + j
		if sy > ymax {
			sy = ymax
		}
		row := m.Pix[sy*m.Stride:]
		for i := 0; i < size; i++ {
			sx := x0 + i
			if sx > xmax {
				sx = xmax
			}
			p := row[sx*4 : sx*4+3]
			o := (j*size + i) * 3
			scratch[o], scratch[o+1], scratch[o+2] = p[0], p[1], p[2]
		}
	}
}

// storeBlock writes the in-range portion of blk into a plane of width w and
// height h at (x0,y0).
func storeBlock(blk *Block, plane []byte, stride, x0, y0, w, h int) {
	for j := 0; j < 8 && y0+j < h; j++ {
		row := plane[(y0+j)*stride:]
		for i := 0; i < 8 && x0+i < w; i++ {
			row[x0+i] = uint8(blk[8*j+i])
		}
	}
}
