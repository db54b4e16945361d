// Command yccdump converts images to raw planar YCbCr dumps and inspects
// the conversion output.
package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder.
	_ "image/png"  // Register PNG decoder.
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/nfnt/resize"

	"github.com/vearutop/ycbcr"
	"github.com/vearutop/ycbcr/internal/jpegx"
)

const dumpMagic = "YCC1"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "convert":
		if err := runConvert(os.Args[2:]); err != nil {
			fail(err)
		}
	case "stat":
		if err := runStat(os.Args[2:]); err != nil {
			fail(err)
		}
	case "block":
		if err := runBlock(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: yccdump <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  convert -in input.png -out output.ycc [-ratio 420|444] [-w N -h N] [-zstd]")
	fmt.Fprintln(os.Stderr, "  stat    -in input.png [-ratio 420|444]")
	fmt.Fprintln(os.Stderr, "  block   -in input.png -x N -y N")
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	inPath := fs.String("in", "", "input PNG or JPEG")
	outPath := fs.String("out", "", "output planar dump")
	ratioName := fs.String("ratio", "420", "subsample ratio (420 or 444)")
	width := fs.Uint("w", 0, "pre-resize width (0 keeps source size)")
	height := fs.Uint("h", 0, "pre-resize height (0 keeps source size)")
	compress := fs.Bool("zstd", false, "zstd-compress the dump")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}
	ratio, err := parseRatio(*ratioName)
	if err != nil {
		return err
	}

	img, err := loadImage(*inPath)
	if err != nil {
		return err
	}
	if *width > 0 || *height > 0 {
		img = resize.Resize(*width, *height, img, resize.Lanczos3)
	}

	planar, err := ycbcr.ToYCbCr(img, ratio)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(*outPath))
	if err != nil {
		return err
	}
	defer f.Close()

	var out io.Writer = f
	var zw *zstd.Encoder
	if *compress {
		zw, err = zstd.NewWriter(f)
		if err != nil {
			return err
		}
		out = zw
	}
	bw := bufio.NewWriter(out)
	if err := writeDump(bw, planar, ratio); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			return err
		}
	}
	return f.Close()
}

func runStat(args []string) error {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	inPath := fs.String("in", "", "input PNG or JPEG")
	ratioName := fs.String("ratio", "420", "subsample ratio (420 or 444)")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}
	ratio, err := parseRatio(*ratioName)
	if err != nil {
		return err
	}

	img, err := loadImage(*inPath)
	if err != nil {
		return err
	}
	planar, err := ycbcr.ToYCbCr(img, ratio)
	if err != nil {
		return err
	}

	b := planar.Bounds()
	fmt.Fprintf(os.Stdout, "%dx%d %v\n", b.Dx(), b.Dy(), ratio)
	printPlaneStat("Y", planar.Y, planar.YStride, b.Dx(), b.Dy())
	cw, ch := chromaDims(b.Dx(), b.Dy(), ratio)
	printPlaneStat("Cb", planar.Cb, planar.CStride, cw, ch)
	printPlaneStat("Cr", planar.Cr, planar.CStride, cw, ch)
	return nil
}

func runBlock(args []string) error {
	fs := flag.NewFlagSet("block", flag.ContinueOnError)
	inPath := fs.String("in", "", "input PNG or JPEG")
	bx := fs.Int("x", 0, "block left edge in pixels")
	by := fs.Int("y", 0, "block top edge in pixels")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}

	img, err := loadImage(*inPath)
	if err != nil {
		return err
	}
	b := img.Bounds()
	if *bx < 0 || *by < 0 || *bx >= b.Dx() || *by >= b.Dy() {
		return fmt.Errorf("block origin (%d,%d) outside %dx%d image", *bx, *by, b.Dx(), b.Dy())
	}

	planar, err := ycbcr.ToYCbCr(img, image.YCbCrSubsampleRatio444)
	if err != nil {
		return err
	}

	var blk [jpegx.BlockSize]int32
	for j := 0; j < 8; j++ {
		sy := min(*by+j, b.Dy()-1)
		for i := 0; i < 8; i++ {
			sx := min(*bx+i, b.Dx()-1)
			blk[8*j+i] = int32(planar.Y[sy*planar.YStride+sx])
		}
	}

	fmt.Fprintln(os.Stdout, "luma block (natural order):")
	for j := 0; j < 8; j++ {
		for i := 0; i < 8; i++ {
			fmt.Fprintf(os.Stdout, "%4d", blk[8*j+i])
		}
		fmt.Fprintln(os.Stdout)
	}
	fmt.Fprintln(os.Stdout, "luma block (zig-zag order):")
	for z := 0; z < jpegx.BlockSize; z++ {
		fmt.Fprintf(os.Stdout, "%4d", blk[jpegx.Unzig[z]])
	}
	fmt.Fprintln(os.Stdout)
	return nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func parseRatio(name string) (image.YCbCrSubsampleRatio, error) {
	switch name {
	case "420":
		return image.YCbCrSubsampleRatio420, nil
	case "444":
		return image.YCbCrSubsampleRatio444, nil
	default:
		return 0, fmt.Errorf("unsupported ratio %q", name)
	}
}

func chromaDims(w, h int, ratio image.YCbCrSubsampleRatio) (int, int) {
	if ratio == image.YCbCrSubsampleRatio420 {
		return (w + 1) / 2, (h + 1) / 2
	}
	return w, h
}

// writeDump writes a small header followed by the three planes, rows packed
// to their plane width.
func writeDump(w io.Writer, planar *image.YCbCr, ratio image.YCbCrSubsampleRatio) error {
	b := planar.Bounds()
	if _, err := io.WriteString(w, dumpMagic); err != nil {
		return err
	}
	hdr := []any{uint32(b.Dx()), uint32(b.Dy()), uint8(ratio)}
	for _, v := range hdr {
		if err := binary.Write(w, binary.BigEndian, v); err != nil {
			return err
		}
	}
	cw, ch := chromaDims(b.Dx(), b.Dy(), ratio)
	if err := writePlane(w, planar.Y, planar.YStride, b.Dx(), b.Dy()); err != nil {
		return err
	}
	if err := writePlane(w, planar.Cb, planar.CStride, cw, ch); err != nil {
		return err
	}
	return writePlane(w, planar.Cr, planar.CStride, cw, ch)
}

func writePlane(w io.Writer, plane []byte, stride, width, height int) error {
	for y := 0; y < height; y++ {
		if _, err := w.Write(plane[y*stride : y*stride+width]); err != nil {
			return err
		}
	}
	return nil
}

func printPlaneStat(name string, plane []byte, stride, width, height int) {
	minV, maxV := 255, 0
	sum := 0
	for y := 0; y < height; y++ {
		for _, v := range plane[y*stride : y*stride+width] {
			if int(v) < minV {
				minV = int(v)
			}
			if int(v) > maxV {
				maxV = int(v)
			}
			sum += int(v)
		}
	}
	fmt.Fprintf(os.Stdout, "%-2s min=%d mean=%.1f max=%d\n", name, minV, float64(sum)/float64(width*height), maxV)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
