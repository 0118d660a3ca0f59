// pi accumulates the Leibniz series in fixed-point arithmetic at a few
// different wordlengths and tabulates how close each one lands. It is
// a demonstration of how rounding bias cancellation and wraparound
// behave over a very long accumulation.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pfcm/qfix"
)

var termsFlag = flag.Int("terms", 10_000_000, "number of series terms to accumulate")

// leibniz sums the series 4 - 4/3 + 4/5 - ... with an accumulator of
// shape A and terms of shape T. Terms are always built from the
// positive 4/(2k+1) and alternately added and subtracted, so their
// rounding biases cancel pairwise.
func leibniz[A, T qfix.Shape](terms int) float64 {
	var acc qfix.Q[A]
	for k := 0; k < terms; k++ {
		t := qfix.FromFloat[T](4.0 / float64(2*k+1))
		if k%2 == 0 {
			acc = qfix.Add(acc, t)
		} else {
			acc = qfix.Sub(acc, t)
		}
	}
	return qfix.Float[float64](acc)
}

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("pi: ")

	runs := []struct {
		name string
		f    func(int) float64
	}{
		{"Q3x32 acc, Q3x30 terms", leibniz[qfix.S3x32, qfix.S3x30]},
		{"Q3x32 acc, Q3x32 terms", leibniz[qfix.S3x32, qfix.S3x32]},
		{"Q3x30 acc, Q3x30 terms", leibniz[qfix.S3x30, qfix.S3x30]},
		// Pi does not fit two integer bits, so this one can only show
		// where the wraparound puts it.
		{"Q2x30 acc, Q2x30 terms", leibniz[qfix.S2x30, qfix.S2x30]},
	}

	results := make([]float64, len(runs))
	var g errgroup.Group
	for i, r := range runs {
		i, r := i, r
		g.Go(func() error {
			results[i] = r.f(*termsFlag)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	p := message.NewPrinter(language.English)
	w := tabwriter.NewWriter(os.Stdout, 8, 1, 2, ' ', 0)
	p.Fprintf(w, "%d terms:\n", *termsFlag)
	fmt.Fprintln(w, "shapes\tvalue\terror")
	for i, r := range runs {
		fmt.Fprintf(w, "%s\t%.10f\t%+.3g\n", r.name, results[i], results[i]-math.Pi)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}
