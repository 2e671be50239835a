// Command pixhuff compresses images (as 8-bit grayscale pixels) or raw
// files with the huffman package, and expands .pxh files back.
//
// Usage:
//
//     pixhuff [-raw] [-width N] [-compare] [-o out.pxh] <input>
//     pixhuff -d [-o out] <input.pxh>
//
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	huffman "github.com/chronos-tachyon/pixhuff"
)

const containerExt = ".pxh"

// Exit statuses, one per failure kind.
const (
	exitOK = iota
	exitUsage
	exitIO
	exitCorrupt
	exitSchema
	exitIntegrity
)

type options struct {
	decompress bool
	raw        bool
	compare    bool
	verbose    bool
	width      int
	output     string
	input      string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("pixhuff: ")

	var opts options
	flag.BoolVar(&opts.decompress, "d", false, "decompress a "+containerExt+" file")
	flag.BoolVar(&opts.raw, "raw", false, "compress the input file's bytes as-is instead of decoding it as an image")
	flag.BoolVar(&opts.compare, "compare", false, "also report the zstd-compressed size of the same bytes")
	flag.BoolVar(&opts.verbose, "v", false, "dump the code table to stderr")
	flag.IntVar(&opts.width, "width", 0, "downscale images wider than `N` pixels before compressing")
	flag.StringVar(&opts.output, "o", "", "output `path` (default derived from the input path)")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(exitUsage)
	}
	opts.input = flag.Arg(0)

	var err error
	if opts.decompress {
		err = runDecompress(opts, os.Stdout)
	} else {
		err = runCompress(opts, os.Stdout)
	}
	if err != nil {
		msg, code := describeError(err)
		log.Print(msg)
		os.Exit(code)
	}
}

func runCompress(opts options, w io.Writer) error {
	info, err := os.Stat(opts.input)
	if err != nil {
		return err
	}

	var data []byte
	if opts.raw {
		if data, err = os.ReadFile(opts.input); err != nil {
			return err
		}
	} else {
		img, err := loadImage(opts.input, opts.width)
		if err != nil {
			return err
		}
		data = grayPGM(img)
		if opts.verbose {
			b := img.Bounds()
			log.Printf("image %dx%d, %d grayscale bytes", b.Dx(), b.Dy(), len(data))
		}
	}

	start := time.Now()
	c, err := huffman.Encode(data)
	if err != nil {
		return err
	}
	raw, err := c.MarshalBinary()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if opts.verbose {
		table := huffman.NewCodeTable(huffman.BuildTree(c.Frequencies))
		if _, err := table.Dump(os.Stderr); err != nil {
			return err
		}
	}

	outPath := opts.output
	if outPath == "" {
		outPath = strings.TrimSuffix(opts.input, filepath.Ext(opts.input)) + containerExt
	}
	if err := os.WriteFile(outPath, raw, 0o644); err != nil {
		return err
	}

	stats, err := c.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s (%s) → %s (%s)\n", opts.input, formatSize(info.Size()), outPath, formatSize(int64(stats.ContainerBytes)))
	fmt.Fprintf(w, "pixel bytes=%s, coded bits=%d, symbols=%d, ratio=%.3f, time=%s\n",
		formatSize(int64(stats.OriginalBytes)), stats.EncodedBits, stats.Symbols, stats.Ratio(), elapsed)

	if opts.compare {
		size, err := zstdSize(data)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "zstd baseline: %s\n", formatSize(int64(size)))
	}
	return nil
}

func runDecompress(opts options, w io.Writer) error {
	raw, err := os.ReadFile(opts.input)
	if err != nil {
		return err
	}

	start := time.Now()
	data, err := huffman.Decompress(raw)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	outPath := opts.output
	if outPath == "" {
		ext := ".raw"
		if isPGM(data) {
			ext = ".pgm"
		}
		outPath = strings.TrimSuffix(opts.input, containerExt) + ext
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s (%s) → %s (%s), time=%s\n", opts.input, formatSize(int64(len(raw))), outPath, formatSize(int64(len(data))), elapsed)
	return nil
}

// zstdSize returns the size of data compressed with zstd at the default
// level, as a point of comparison.
func zstdSize(data []byte) (int, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return 0, err
	}
	defer enc.Close()
	return len(enc.EncodeAll(data, nil)), nil
}

func formatSize(size int64) string {
	if size < 1024*1024 {
		return fmt.Sprintf("%.2f KB", float64(size)/1024)
	}
	return fmt.Sprintf("%.2f MB", float64(size)/(1024*1024))
}

// describeError turns err into a user-facing message and exit status, with
// a distinct message for each kind of codec failure.
func describeError(err error) (string, int) {
	var (
		ie  *huffman.IntegrityError
		cde *huffman.CorruptDataError
		se  *huffman.SchemaError
	)
	switch {
	case errors.As(err, &se):
		return fmt.Sprintf("input is not a valid %s file (%v)", containerExt, err), exitSchema
	case errors.As(err, &cde):
		return fmt.Sprintf("compressed data is damaged or truncated (%v)", err), exitCorrupt
	case errors.As(err, &ie):
		return fmt.Sprintf("internal encoder error, please report this (%v)", err), exitIntegrity
	default:
		return err.Error(), exitIO
	}
}
