// Package main provides a command-line tool for examining GRIB Edition 0
// files.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	grib0 "github.com/wx-ingest/grib0"
)

var (
	listFlag  = flag.Bool("list", false, "List all fields with basic info")
	statsFlag = flag.Bool("stats", false, "Show min/max/count statistics for each field")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <grib0-file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Decode a GRIB Edition 0 file and display its fields.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	fields, failures := readAll(filename)
	if len(fields) == 0 && failures == 0 {
		fmt.Println("No GRIB0 messages found in file")
		return
	}

	switch {
	case *listFlag:
		showList(fields)
	case *statsFlag:
		showStats(fields)
	default:
		showSummary(filename, fields, failures)
	}
}

// readAll decodes every field in filename, printing each message-level
// error to stderr and continuing, per the Pipeline's recovery contract:
// a bad message never stops the rest of the stream from decoding.
func readAll(filename string) ([]*grib0.DecodedField, int) {
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	p := grib0.NewPipeline(data)

	var fields []*grib0.DecodedField
	failures := 0
	for {
		field, err := p.Next()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			failures++
			continue
		}
		if field == nil {
			break
		}
		fields = append(fields, field)
	}
	return fields, failures
}

func showSummary(filename string, fields []*grib0.DecodedField, failures int) {
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Decoded fields: %d\n", len(fields))
	if failures > 0 {
		fmt.Printf("Messages that failed to decode: %d\n", failures)
	}

	elements := make(map[string]int)
	models := make(map[string]int)
	for _, f := range fields {
		elements[f.Element]++
		models[f.Model]++
	}

	fmt.Printf("\nModels present:\n")
	for m, n := range models {
		fmt.Printf("  %s (%d fields)\n", m, n)
	}
	fmt.Printf("\nElements present:\n")
	for e, n := range elements {
		fmt.Printf("  %s (%d fields)\n", e, n)
	}

	if len(fields) > 0 {
		f := fields[0]
		fmt.Printf("\nFirst field's grid: %dx%d, %s projection\n", f.Ni, f.Nj, f.MapProjection.Kind)
	}

	fmt.Printf("\nUse -list to see all fields, -stats for per-field statistics\n")
}

func showList(fields []*grib0.DecodedField) {
	fmt.Printf("%-4s %-20s %-15s %-10s %s\n", "Idx", "Element", "Level", "Grid", "Run / Valid")
	fmt.Println(strings.Repeat("-", 90))
	for i, f := range fields {
		gridStr := fmt.Sprintf("%dx%d", f.Ni, f.Nj)
		fmt.Printf("%-4d %-20s %-15s %-10s %s -> %s\n",
			i, f.Element, f.Level, gridStr, f.Run, f.ValidEnd)
	}
}

func showStats(fields []*grib0.DecodedField) {
	fmt.Printf("%-4s %-20s %-15s %12s %12s %8s\n", "Idx", "Element", "Level", "Min", "Max", "N")
	fmt.Println(strings.Repeat("-", 80))
	for i, f := range fields {
		minVal, maxVal := minMax(f.Data)
		fmt.Printf("%-4d %-20s %-15s %12.4f %12.4f %8d\n", i, f.Element, f.Level, minVal, maxVal, len(f.Data))
	}
}

func minMax(data []float64) (minVal, maxVal float64) {
	minVal = math.MaxFloat64
	maxVal = -math.MaxFloat64
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if len(data) == 0 {
		return 0, 0
	}
	return minVal, maxVal
}
