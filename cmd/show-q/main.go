// show-q shows the fixed-point representations of numbers at the
// predeclared shapes, mostly for debugging rounding and overflow
// behaviour.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pfcm/qfix"
)

var shapesFlag = flag.String("shapes", "", "comma separated list of `shape names` to show. Leave empty to show all shapes")

type shape struct {
	name string
	conv func(w io.Writer, a float64)
	ops  func(w io.Writer, a, b float64)
}

// mk builds the display hooks for one shape. Everything interesting
// happens through the generic instantiation, the closures just hold on
// to it.
func mk[S qfix.Shape](name string) shape {
	return shape{
		name: name,
		conv: func(w io.Writer, a float64) {
			q := qfix.FromFloat[S](a)
			fmt.Fprintf(w, "%s\t%v\t%.12g\n", name, q, qfix.Float[float64](q))
		},
		ops: func(w io.Writer, a, b float64) {
			qa, qb := qfix.FromFloat[S](a), qfix.FromFloat[S](b)
			quot := "n/a"
			if !qfix.Equal(qb, qfix.Q[S]{}) {
				quot = qfix.Div(qa, qb).String()
			}
			fmt.Fprintf(w, "%s\t%v\t%v\t%v\t%s\n",
				name, qfix.Add(qa, qb), qfix.Sub(qa, qb), qfix.Mul[S](qa, qb), quot)
		},
	}
}

var shapes = []shape{
	mk[qfix.S0x32]("Q0x32"),
	mk[qfix.S1x31]("Q1x31"),
	mk[qfix.S2x30]("Q2x30"),
	mk[qfix.S4x28]("Q4x28"),
	mk[qfix.S8x8]("Q8x8"),
	mk[qfix.S8x24]("Q8x24"),
	mk[qfix.S10x10]("Q10x10"),
	mk[qfix.S12x12]("Q12x12"),
	mk[qfix.S16x16]("Q16x16"),
	mk[qfix.S20x20]("Q20x20"),
	mk[qfix.S24x8]("Q24x8"),
	mk[qfix.S26x6]("Q26x6"),
	mk[qfix.S32x0]("Q32x0"),
	mk[qfix.S32x32]("Q32x32"),
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if n := flag.NArg(); n < 1 || n > 2 {
		fail("Need exactly one or two arguments.")
	}

	show, err := parseShapes(*shapesFlag)
	if err != nil {
		fail(err.Error())
	}
	a, err := strconv.ParseFloat(flag.Arg(0), 64)
	if err != nil {
		fail(err.Error())
	}

	p := message.NewPrinter(language.English)
	w := tabwriter.NewWriter(os.Stdout, 8, 1, 2, ' ', 0)

	p.Fprintf(w, "%v:\n", a)
	for _, s := range shapes {
		if show[s.name] {
			s.conv(w, a)
		}
	}

	if flag.NArg() == 2 {
		b, err := strconv.ParseFloat(flag.Arg(1), 64)
		if err != nil {
			fail(err.Error())
		}
		p.Fprintf(w, "\n%v:\n", b)
		for _, s := range shapes {
			if show[s.name] {
				s.conv(w, b)
			}
		}
		p.Fprintf(w, "\n%v op %v:\n", a, b)
		fmt.Fprintln(w, "\ta+b\ta-b\ta*b\ta/b")
		for _, s := range shapes {
			if show[s.name] {
				s.ops(w, a, b)
			}
		}
	}

	if err := w.Flush(); err != nil {
		fail(err.Error())
	}
}

func parseShapes(ss string) (map[string]bool, error) {
	all := make(map[string]bool)
	for _, s := range shapes {
		all[s.name] = true
	}
	if ss == "" {
		return all, nil
	}
	result := make(map[string]bool)
	for _, s := range strings.Split(ss, ",") {
		if !all[s] {
			return nil, fmt.Errorf("unknown shape %q", s)
		}
		result[s] = true
	}
	return result, nil
}

func fail(reason string) {
	fmt.Fprintln(os.Stderr, reason)
	fmt.Fprint(os.Stderr, help+"\n")
	os.Exit(1)
}

const help = `show-q shows the fixed-point representations of the same number at
various shapes.
Usage:
	show-q [-shapes] num [num]

Where num is a floating point literal in Go syntax. If a second number
is provided, also shows the results of the operators between them.
`
