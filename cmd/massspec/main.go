// Command massspec sweeps the geometric mass spectrum and matches target
// mass ratios against it.
//
// Usage:
//
//	massspec [flags]
//
// By default it sweeps N=2..11999 anchored at the electron harmonic N=3
// and matches the muon/electron and tau/electron mass ratios.
//
// Examples:
//
//	massspec
//	massspec -max 2000 -targets 206.768
//	massspec -min 2 -max 11999 -anchor 3 -workers 8 -csv spectrum.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-harmonics/harmonic/spectrum"
)

// Standard Model lepton masses in MeV/c^2.
const (
	massElectronMeV = 0.510998
	massMuonMeV     = 105.658
	massTauMeV      = 1776.86
)

// Default sweep bounds of the reference spectrum run: indices 2 through
// 11999 inclusive, anchored at the electron harmonic.
const (
	defaultMinN    = 2
	defaultMaxN    = 11999
	defaultAnchorN = 3
)

type target struct {
	name  string
	ratio float64
}

func main() {
	minN := flag.Int("min", defaultMinN, "sweep start index")
	maxN := flag.Int("max", defaultMaxN, "sweep end index (inclusive)")
	anchorN := flag.Int("anchor", defaultAnchorN, "anchor index (ratio 1.0)")
	workers := flag.Int("workers", 1, "parallel solver workers")
	csvPath := flag.String("csv", "", "write the full curve to this CSV file")
	targetsFlag := flag.String("targets", "", "comma-separated target ratios (default: muon and tau over electron)")
	skip := flag.Bool("skip-divergent", false, "skip indices whose solve diverges instead of aborting")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: massspec [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Sweeps the geometric mass spectrum and matches target mass ratios.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  massspec\n")
		fmt.Fprintf(os.Stderr, "  massspec -max 2000 -targets 206.768\n")
		fmt.Fprintf(os.Stderr, "  massspec -workers 8 -csv spectrum.csv\n")
	}
	flag.Parse()

	targets, err := resolveTargets(*targetsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var opts []spectrum.Option
	if *workers > 1 {
		opts = append(opts, spectrum.WithWorkers(*workers))
	}

	if *skip {
		opts = append(opts, spectrum.WithSkipDivergent())
	}

	curve, err := spectrum.Generate(*minN, *maxN, *anchorN, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printMatches(curve, targets)

	if *csvPath != "" {
		if err := writeCSV(*csvPath, curve); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("curve written to %s\n", *csvPath)
	}
}

// resolveTargets parses the -targets flag, falling back to the lepton
// mass ratios the sweep was built to probe.
func resolveTargets(s string) ([]target, error) {
	if s == "" {
		return []target{
			{"muon/electron", massMuonMeV / massElectronMeV},
			{"tau/electron", massTauMeV / massElectronMeV},
		}, nil
	}

	var targets []target

	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		ratio, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid target ratio %q: %w", field, err)
		}

		targets = append(targets, target{field, ratio})
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("no target ratios in %q", s)
	}

	return targets, nil
}

func printMatches(curve *spectrum.Curve, targets []target) {
	anchor, _ := curve.Lookup(curve.AnchorN())

	fmt.Printf("swept %d indices, anchor N=%d (proxy %.6f)\n\n", curve.Len(), curve.AnchorN(), anchor.Proxy)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Target\tRatio\tMatched N\tMatched Ratio\tError [%%]\n")
	fmt.Fprintf(tw, "------\t-----\t---------\t-------------\t---------\n")

	for _, t := range targets {
		res, err := curve.Match(t.ratio)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: match %s: %v\n", t.name, err)
			continue
		}

		fmt.Fprintf(tw, "%s\t%.4f\t%d\t%.4f\t%.4f\n", t.name, t.ratio, res.N, res.Ratio, res.FracError*100)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func writeCSV(path string, curve *spectrum.Curve) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := writeCurve(f, curve); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func writeCurve(f *os.File, curve *spectrum.Curve) error {
	w := csv.NewWriter(f)

	if err := w.Write([]string{"n", "root", "proxy", "ratio"}); err != nil {
		return err
	}

	for _, e := range curve.Entries() {
		record := []string{
			strconv.Itoa(e.N),
			strconv.FormatFloat(e.Root, 'g', -1, 64),
			strconv.FormatFloat(e.Proxy, 'g', -1, 64),
			strconv.FormatFloat(e.Ratio, 'g', -1, 64),
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
