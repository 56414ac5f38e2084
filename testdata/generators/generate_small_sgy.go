// Command generate_small_sgy writes testdata/small.sgy, a 25-trace,
// 50-sample, 5 inline x 5 crossline x 1 offset fixture. The package tests
// do not read this file; they build the same geometry themselves
// (buildSmallFixture in file_test.go).
package main

import (
	"log"
	"os"
	"path/filepath"

	segy "github.com/scigolib/segy"
	"github.com/scigolib/segy/internal/core"
)

const (
	samplesPerTrace  = 50
	sampleInterval   = 4000 // microseconds
	inlineCount      = 5
	crosslineCount   = 5
	inlineFieldID    = 189
	crosslineFieldID = 193
	offsetFieldID    = 37
)

func main() {
	outPath := filepath.Join("testdata", "small.sgy")
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := generate(outPath); err != nil {
		log.Fatalf("generate %s: %v", outPath, err)
	}
	log.Printf("wrote %s", outPath)
}

func generate(path string) error {
	f, err := segy.Create(path, segy.CreateTruncate, sampleInterval, samplesPerTrace, core.SampleFormatIEEEFloat)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	for il := 0; il < inlineCount; il++ {
		for xl := 0; xl < crosslineCount; xl++ {
			header := make([]byte, core.TraceHeaderSize)
			if err := core.SetTraceField(header, inlineFieldID, int32(il+1)); err != nil {
				return err
			}
			if err := core.SetTraceField(header, crosslineFieldID, int32(xl+20)); err != nil {
				return err
			}
			if err := core.SetTraceField(header, offsetFieldID, 0); err != nil {
				return err
			}

			samples := make([]float32, samplesPerTrace)
			base := traceBaseValue(il, xl)
			for k := range samples {
				samples[k] = base + float32(k)*1e-5
			}

			if err := f.AppendTrace(header, samples); err != nil {
				return err
			}
		}
	}
	return nil
}

// traceBaseValue reproduces the two worked examples' base sample values:
// trace 0 (il=0, xl=0) starts at 1.2; trace 6 (linear index 6, il=1,
// xl=1) starts at 2.21. Traces in between step linearly so the fixture
// stays distinguishable per trace.
func traceBaseValue(il, xl int) float32 {
	idx := il*crosslineCount + xl
	const (
		trace0Base = 1.2
		trace6Base = 2.21
		step       = (trace6Base - trace0Base) / 6
	)
	return trace0Base + float32(idx)*step
}
