// Command gentuple writes the per-arity tuple composites of package channel.
package main

import (
	"bytes"
	"flag"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

const (
	minArity = 2
	maxArity = 6
)

// Member is one position of a tuple.
type Member struct {
	Field string // Field name, A..F.
	Var   string // Lower case variable name.
}

// Data is the element type parameter of the member.
func (m Member) Data() string {
	return "D" + m.Field
}

// Channel is the channel type parameter of the member.
func (m Member) Channel() string {
	return "C" + m.Field
}

// Tuple is one generated arity.
type Tuple struct {
	Arity   int
	Members []Member
}

func (t Tuple) join(each func(m Member) string) string {
	parts := make([]string, len(t.Members))
	for n, m := range t.Members {
		parts[n] = each(m)
	}
	return strings.Join(parts, ", ")
}

// DataParams is "DA, DB, ..." for declarations and instantiations.
func (t Tuple) DataParams() string {
	return t.join(Member.Data)
}

// TypeParams is the full type parameter list of TupleN.
func (t Tuple) TypeParams() string {
	return t.DataParams() + " any, " + t.join(func(m Member) string {
		return m.Channel() + " Channels[" + m.Data() + ", " + m.Channel() + "]"
	})
}

// TypeArgs instantiates TupleN with its own parameters.
func (t Tuple) TypeArgs() string {
	return t.DataParams() + ", " + t.join(Member.Channel)
}

// Args is the NewTupleN argument list.
func (t Tuple) Args() string {
	return t.join(func(m Member) string {
		return m.Var + " " + m.Channel()
	})
}

const source = `// Code generated by "gentuple"; DO NOT EDIT.

package channel
{{range .}}
// Values{{.Arity}} is the element value of a Tuple{{.Arity}}.
type Values{{.Arity}}[{{.DataParams}} any] struct {
{{- range .Members}}
	{{.Field}} {{.Data}}
{{- end}}
}

// Ptrs{{.Arity}} is the write handle of a Tuple{{.Arity}} element: one handle per member.
type Ptrs{{.Arity}}[{{.DataParams}} any] struct {
{{- range .Members}}
	{{.Field}} WritePtr[{{.Data}}]
{{- end}}
}

// Write stores each part of value through its member handle.
func (p Ptrs{{.Arity}}[{{.DataParams}}]) Write(value Values{{.Arity}}[{{.DataParams}}]) {
{{- range .Members}}
	p.{{.Field}}.Write(value.{{.Field}})
{{- end}}
}

// Refs{{.Arity}} holds the address of each member's element at one offset.
type Refs{{.Arity}}[{{.DataParams}} any] struct {
{{- range .Members}}
	{{.Field}} *{{.Data}}
{{- end}}
}

// Tuple{{.Arity}} drives {{.Arity}} co-indexed channels as one unit.
type Tuple{{.Arity}}[{{.TypeParams}}] struct {
{{- range .Members}}
	{{.Field}} {{.Channel}}
{{- end}}
}

// NewTuple{{.Arity}} groups {{.Arity}} channels that share an offset range.
func NewTuple{{.Arity}}[{{.TypeParams}}]({{.Args}}) Tuple{{.Arity}}[{{.TypeArgs}}] {
	return Tuple{{.Arity}}[{{.TypeArgs}}]{ {{- range $n, $m := .Members}}{{if $n}}, {{end}}{{$m.Field}}: {{$m.Var}}{{end -}} }
}

// Filled returns a new tuple whose members are each filled with their part of value.
func (t Tuple{{.Arity}}[{{.TypeArgs}}]) Filled(value Values{{.Arity}}[{{.DataParams}}], length int) Tuple{{.Arity}}[{{.TypeArgs}}] {
	return Tuple{{.Arity}}[{{.TypeArgs}}]{
{{- range .Members}}
		{{.Field}}: t.{{.Field}}.Filled(value.{{.Field}}, length),
{{- end}}
	}
}

// ResetValues resets each member with its part of value.
func (t Tuple{{.Arity}}[{{.TypeArgs}}]) ResetValues(value Values{{.Arity}}[{{.DataParams}}]) {
{{- range .Members}}
	t.{{.Field}}.ResetValues(value.{{.Field}})
{{- end}}
}

// Len returns the length of the first member.
func (t Tuple{{.Arity}}[{{.TypeArgs}}]) Len() int {
	return t.A.Len()
}

// Get reads every member at offset.
func (t Tuple{{.Arity}}[{{.TypeArgs}}]) Get(offset int) Values{{.Arity}}[{{.DataParams}}] {
	return Values{{.Arity}}[{{.DataParams}}]{
{{- range .Members}}
		{{.Field}}: t.{{.Field}}.Get(offset),
{{- end}}
	}
}

// Set writes each part of value to its member at offset.
func (t Tuple{{.Arity}}[{{.TypeArgs}}]) Set(offset int, value Values{{.Arity}}[{{.DataParams}}]) {
{{- range .Members}}
	t.{{.Field}}.Set(offset, value.{{.Field}})
{{- end}}
}

// Ptr returns the member write handles for offset.
func (t Tuple{{.Arity}}[{{.TypeArgs}}]) Ptr(offset int) WritePtr[Values{{.Arity}}[{{.DataParams}}]] {
	return Ptrs{{.Arity}}[{{.DataParams}}]{
{{- range .Members}}
		{{.Field}}: t.{{.Field}}.Ptr(offset),
{{- end}}
	}
}

// GetRef returns the element address of every member at offset. The
// elements must not be modified through them.
func (t Tuple{{.Arity}}[{{.TypeArgs}}]) GetRef(offset int) Refs{{.Arity}}[{{.DataParams}}] {
	return Refs{{.Arity}}[{{.DataParams}}]{
{{- range .Members}}
		{{.Field}}: refOf[{{.Data}}](t.{{.Field}}, offset),
{{- end}}
	}
}

// GetMut returns the element address of every member at offset for
// modification.
func (t Tuple{{.Arity}}[{{.TypeArgs}}]) GetMut(offset int) Refs{{.Arity}}[{{.DataParams}}] {
	return Refs{{.Arity}}[{{.DataParams}}]{
{{- range .Members}}
		{{.Field}}: mutOf[{{.Data}}](t.{{.Field}}, offset),
{{- end}}
	}
}
{{end -}}
`

func tuples() (list []Tuple) {
	const fields = "ABCDEF"
	for arity := minArity; arity <= maxArity; arity++ {
		tuple := Tuple{Arity: arity}
		for _, field := range fields[:arity] {
			tuple.Members = append(tuple.Members, Member{
				Field: string(field),
				Var:   strings.ToLower(string(field)),
			})
		}
		list = append(list, tuple)
	}
	return
}

func main() {
	var output string

	flag.StringVar(&output, "o", "tuple_gen.go", "output file")

	flag.Parse()

	tmpl := template.Must(template.New("tuple").Parse(source))

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, tuples())
	if err != nil {
		log.Fatalf("gentuple: %v", err)
	}

	code, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("gentuple: %v", err)
	}

	err = os.WriteFile(output, code, 0o644)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
