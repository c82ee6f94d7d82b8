// gen is a codegen cmd for generating the typed enum constructors from template.
package main

import (
	"bytes"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/byBretema/enumc/schema/enum"
)

func main() {
	buf, err := os.ReadFile("internal/numeric.tmpl")
	if err != nil {
		log.Fatal("reading template file:", err)
	}
	titleCaser := cases.Title(language.English)
	intTmpl := template.Must(template.New("numeric").
		Funcs(template.FuncMap{"title": titleCaser.String, "hasPrefix": strings.HasPrefix}).
		Parse(string(buf)))
	b := &bytes.Buffer{}
	if err = intTmpl.Execute(b, struct {
		Ints []enum.Type
	}{
		Ints: []enum.Type{
			enum.TypeInt,
			enum.TypeInt8,
			enum.TypeInt16,
			enum.TypeInt32,
			enum.TypeInt64,
			enum.TypeUint,
			enum.TypeUint8,
			enum.TypeUint16,
			enum.TypeUint32,
			enum.TypeUint64,
		},
	}); err != nil {
		log.Fatal("executing template:", err)
	}
	if buf, err = format.Source(b.Bytes()); err != nil {
		log.Fatal("formatting output:", err)
	}
	if err = os.WriteFile("numeric.go", buf, 0o644); err != nil {
		log.Fatal("writing go file:", err)
	}
}
