// Command segydump prints geometry metrics for a SEG-Y file: sorting
// direction, offsets-per-bin, inline/crossline counts, trace count, and
// the derived trace0/trace_bsize values.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	segy "github.com/scigolib/segy"
)

func main() {
	mmap := flag.Bool("mmap", false, "use the memory-mapped I/O substrate")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: segydump [flags] <file.sgy> [inline-byte crossline-byte]")
		fmt.Println("Flags:")
		flag.PrintDefaults()
		os.Exit(int(segy.InvalidArgs))
	}

	path := args[0]
	il, xl := 189, 193
	if len(args) >= 3 {
		var err error
		il, xl, err = parseFieldBytes(args[1], args[2])
		if err != nil {
			log.Printf("invalid field bytes: %v", err)
			os.Exit(int(segy.InvalidArgs))
		}
	}

	var opts []segy.Option
	if *mmap {
		opts = append(opts, segy.WithMmap())
	}

	f, err := segy.Open(path, "rb", opts...)
	if err != nil {
		log.Printf("open %s: %v", path, err)
		os.Exit(int(segy.CodeOf(err)))
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("close %s: %v", path, err)
		}
	}()

	if err := dump(f, il, xl); err != nil {
		log.Printf("dump %s: %v", path, err)
		os.Exit(int(segy.CodeOf(err)))
	}
}

func parseFieldBytes(ilArg, xlArg string) (int, int, error) {
	var il, xl int
	if _, err := fmt.Sscanf(ilArg, "%d", &il); err != nil {
		return 0, 0, fmt.Errorf("inline-byte %q: %w", ilArg, err)
	}
	if _, err := fmt.Sscanf(xlArg, "%d", &xl); err != nil {
		return 0, 0, fmt.Errorf("crossline-byte %q: %w", xlArg, err)
	}
	return il, xl, nil
}

func dump(f *segy.File, il, xl int) error {
	traceCount := f.TraceCount()
	fmt.Printf("trace0:       %d\n", f.Trace0())
	fmt.Printf("trace_bsize:  %d\n", f.TraceBodySize())
	fmt.Printf("trace_count:  %d\n", traceCount)
	fmt.Printf("sample_format: %d\n", f.SampleFormat())

	geom, err := f.AnalyzeGeometry(il, xl)
	if err != nil {
		return err
	}

	fmt.Printf("sorting:         %s\n", geom.Sorting)
	fmt.Printf("offsets:         %d\n", geom.Offsets)
	fmt.Printf("inline_count:    %d\n", geom.InlineCount)
	fmt.Printf("crossline_count: %d\n", geom.CrosslineCount)
	fmt.Printf("inline indices:    %v\n", geom.InlineIndices)
	fmt.Printf("crossline indices: %v\n", geom.CrosslineIndices)
	return nil
}
