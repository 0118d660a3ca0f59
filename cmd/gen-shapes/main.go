// gen-shapes generates shapes.go, the predeclared Shape types and the
// aliases for their Q instantiations.
package main

import (
	"bytes"
	"flag"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"text/template"
)

var dirFlag = flag.String("dir", "", "directory in which to write shapes.go")

// widths lists the predeclared shapes. Anything not here is a two-line
// type at the use site, so the list only carries widths that come up
// often.
var widths = [][2]int{
	{0, 32}, {1, 31}, {2, 30}, {3, 30}, {3, 32}, {4, 28},
	{8, 8}, {8, 24}, {10, 10}, {12, 12}, {16, 16}, {20, 20},
	{24, 8}, {26, 6}, {32, 0}, {32, 32},
}

var tmpl = template.Must(template.New("shapes").Parse(`// Code generated by gen-shapes. DO NOT EDIT.

package qfix
{{range .}}
// S{{.I}}x{{.F}} declares {{.I}} integer and {{.F}} fractional bits.
type S{{.I}}x{{.F}} struct{}

// Bits returns {{.I}} integer and {{.F}} fractional bits.
func (S{{.I}}x{{.F}}) Bits() (int, int) { return {{.I}}, {{.F}} }

// Q{{.I}}x{{.F}} is a fixed-point number with {{.I}} integer and {{.F}} fractional bits.
type Q{{.I}}x{{.F}} = Q[S{{.I}}x{{.F}}]
{{end}}`))

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("gen-shapes: ")

	type shape struct{ I, F int }
	shapes := make([]shape, len(widths))
	for i, w := range widths {
		shapes[i] = shape{w[0], w[1]}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, shapes); err != nil {
		log.Fatal(err)
	}
	b, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}

	path := filepath.Join(*dirFlag, "shapes.go")
	if err := os.WriteFile(path, b, 0666); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s", path)
}
