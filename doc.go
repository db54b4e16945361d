// Package ycbcr implements the RGB to YCbCr conversion stage of a baseline
// JPEG encoder.
//
// The conversion reproduces the reference fixed-point algorithm bit-for-bit:
// BT.601 full-range coefficients are premultiplied into 256-entry lookup
// tables scaled by 1<<16, with the rounding biases and the chroma offset
// folded into the tables, so converting one channel costs three loads, two
// adds and a shift. Output is 8x8 sample blocks ready for the forward DCT.
// Chroma subsampling (4:2:0) box-averages RGB over 2x2 neighborhoods before
// the transform is applied.
package ycbcr
