// Command bbinfo prints black-body radiation properties.
//
// Usage:
//
//	bbinfo [flags] temperature [temperature ...]
//
// Temperatures are in Kelvin. With -from/-to the table gains a column
// with the share of the flux emitted in that wavelength band.
//
// Examples:
//
//	bbinfo 5778
//	bbinfo -from 400 -to 780 5778 9940 3042
//	bbinfo -plot sun.png 5778
//	bbinfo -from 400 -to 780 -plot visible.png -xlsx sun.xlsx 5778
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"gonum.org/v1/plot"

	"github.com/cwbudde/algo-blackbody/export"
	"github.com/cwbudde/algo-blackbody/measure/flux"
	"github.com/cwbudde/algo-blackbody/radiation/star"
	"github.com/cwbudde/algo-blackbody/radiation/wien"
	"github.com/cwbudde/algo-blackbody/render"
)

func main() {
	from := flag.Float64("from", 0, "lower band wavelength in nm")
	to := flag.Float64("to", 0, "upper band wavelength in nm")
	plotPath := flag.String("plot", "", "write a figure for the first temperature to this path")
	xlsxPath := flag.String("xlsx", "", "write a workbook for the first temperature to this path")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bbinfo [flags] temperature [temperature ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints black-body radiation properties for temperatures in Kelvin.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bbinfo 5778\n")
		fmt.Fprintf(os.Stderr, "  bbinfo -from 400 -to 780 5778 9940 3042\n")
		fmt.Fprintf(os.Stderr, "  bbinfo -plot sun.png 5778\n")
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	hasBand := *from != 0 || *to != 0

	temps := make([]float64, 0, flag.NArg())

	for _, arg := range flag.Args() {
		temp, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fatalf("invalid temperature %q: %v", arg, err)
		}

		temps = append(temps, temp)
	}

	printTable(temps, hasBand, *from, *to)

	if *plotPath != "" {
		if err := writeFigure(*plotPath, temps[0], hasBand, *from, *to); err != nil {
			fatalf("%v", err)
		}
	}

	if *xlsxPath != "" {
		if err := export.Save(*xlsxPath, temps[0]); err != nil {
			fatalf("%v", err)
		}
	}
}

func printTable(temps []float64, hasBand bool, from, to float64) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	header := "T (K)\tClass\tPeak (nm)\tFlux (erg s^-1 cm^-2)"
	if hasBand {
		header += fmt.Sprintf("\t%g-%g nm (%%)", from, to)
	}

	fmt.Fprintln(w, header)

	for _, temp := range temps {
		peak, err := wien.PeakWavelength(temp)
		if err != nil {
			fatalf("T=%g: %v", temp, err)
		}

		total, err := flux.Total(temp)
		if err != nil {
			fatalf("T=%g: %v", temp, err)
		}

		row := fmt.Sprintf("%g\t%s\t%.3f\t%.4e", temp, star.Classify(temp), peak, total)

		if hasBand {
			pct, err := flux.Fraction(temp, from, to)
			if err != nil {
				fatalf("T=%g: %v", temp, err)
			}

			row += fmt.Sprintf("\t%.4f", pct)
		}

		fmt.Fprintln(w, row)
	}

	w.Flush()
}

func writeFigure(path string, tempK float64, hasBand bool, from, to float64) error {
	var (
		p   *plot.Plot
		err error
	)

	if hasBand {
		p, err = render.EnergyInRange(tempK, from, to)
	} else {
		p, err = render.ByTemperature(tempK)
	}

	if err != nil {
		return err
	}

	return render.Save(p, path)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "bbinfo: "+format+"\n", args...)
	os.Exit(1)
}
