package ycbcr_test

import (
	"fmt"
	"image"
	"image/color"

	"github.com/vearutop/ycbcr"
)

func ExampleTables_YCbCr() {
	t := ycbcr.DefaultTables()

	fmt.Println(t.YCbCr(255, 0, 0))
	fmt.Println(t.YCbCr(128, 128, 128))
	// Output:
	// 76 85 255
	// 128 128 128
}

func ExampleToYCbCr() {
	m := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			m.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	planar, err := ycbcr.ToYCbCr(m, image.YCbCrSubsampleRatio420)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(planar.SubsampleRatio, planar.Y[0], planar.Cb[0], planar.Cr[0])
	// Output:
	// YCbCrSubsampleRatio420 76 85 255
}

func ExampleTables_ConvertBlock() {
	t := ycbcr.DefaultTables()

	// One 8x8 tile of packed RGB triples, all mid-gray.
	pix := make([]byte, 8*8*3)
	for i := range pix {
		pix[i] = 128
	}

	var y, cb, cr ycbcr.Block
	t.ConvertBlock(pix, 8*3, &y, &cb, &cr)
	fmt.Println(y[0], cb[0], cr[0])
	// Output:
	// 128 128 128
}
