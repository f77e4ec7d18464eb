package codegen

const fileText = `{{ .Header }}

{{ if .Constraint }}//go:build {{ .Constraint }}

{{ end }}package {{ .Package }}
{{ if .Imports }}
import (
{{- range .Imports }}
	{{ if .Name }}{{ .Name }} {{ end }}"{{ .Path }}"
{{- end }}
)
{{ end }}
{{- range .Types }}
{{ template "body" . }}
{{- end }}
`

const coreBody = `
// New{{ .Name }} returns v tagged as a {{ .Name }}.
func New{{ .Name }}(v {{ .Value }}) {{ .Name }} {
	return {{ .Name }}{ {{- .Field }}: v}
}

// From returns v tagged as a {{ .Name }}.
func ({{ .Name }}) From(v {{ .Value }}) {{ .Name }} {
	return New{{ .Name }}(v)
}

// Tagged returns the value as a tagged.Tagged carrying {{ .Name }} as its tag.
func (t {{ .Name }}) Tagged() tagged.Tagged[{{ .Value }}, {{ .Name }}] {
	return tagged.New[{{ .Name }}](t.{{ .Field }})
}

func (t *{{ .Name }}) setTagged(v tagged.Tagged[{{ .Value }}, {{ .Name }}]) {
	t.{{ .Field }} = v.Unwrap()
}

func (t {{ .Name }}) Get() {{ .Value }} {
	return t.Tagged().Get()
}

func (t {{ .Name }}) Unwrap() {{ .Value }} {
	return t.Tagged().Unwrap()
}

func (t *{{ .Name }}) Take() {{ .Value }} {
	v := t.Tagged()
	out := v.Take()
	t.setTagged(v)
	return out
}

func (t *{{ .Name }}) Set(v {{ .Value }}) {
	tv := t.Tagged()
	tv.Set(v)
	t.setTagged(tv)
}

func (t {{ .Name }}) Equal(other {{ .Name }}) bool {
	return t.Tagged().Equal(other.Tagged())
}

func (t {{ .Name }}) String() string {
	return t.Tagged().String()
}

func (t {{ .Name }}) Format(f fmt.State, verb rune) {
	t.Tagged().Format(f, verb)
}

func (t {{ .Name }}) InnerTypeName() string {
	return t.Tagged().InnerTypeName()
}
{{- if .Ordered }}

func (t {{ .Name }}) Compare(other {{ .Name }}) int {
	return tagged.Compare(t.Tagged(), other.Tagged())
}
{{- end }}
{{- if .Hashable }}

func (t {{ .Name }}) Hash(seed maphash.Seed) uint64 {
	return tagged.Hash(seed, t.Tagged())
}
{{- end }}
{{- if .Slice }}

func (t {{ .Name }}) Values() iter.Seq[{{ .Elem }}] {
	return tagged.Values(t.Tagged())
}

func (t {{ .Name }}) All() iter.Seq2[int, {{ .Elem }}] {
	return tagged.All(t.Tagged())
}

// Drain resets the value and returns a one-shot sequence over the elements it held.
func (t *{{ .Name }}) Drain() iter.Seq[{{ .Elem }}] {
	v := t.Tagged()
	seq := tagged.Drain(&v)
	t.setTagged(v)
	return seq
}
{{- end }}
`

const jsonBody = `
func (t {{ .Name }}) MarshalJSON() ([]byte, error) {
	return t.Tagged().MarshalJSON()
}

func (t *{{ .Name }}) UnmarshalJSON(data []byte) error {
	v := t.Tagged()
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	t.setTagged(v)
	return nil
}
`

const yamlBody = `
func (t {{ .Name }}) MarshalYAML() (interface{}, error) {
	return t.Tagged().MarshalYAML()
}

func (t *{{ .Name }}) UnmarshalYAML(node *yaml.Node) error {
	v := t.Tagged()
	if err := v.UnmarshalYAML(node); err != nil {
		return err
	}
	t.setTagged(v)
	return nil
}
`

const msgpackBody = `
func (t {{ .Name }}) EncodeMsgpack(enc *msgpack.Encoder) error {
	return t.Tagged().EncodeMsgpack(enc)
}

func (t *{{ .Name }}) DecodeMsgpack(dec *msgpack.Decoder) error {
	v := t.Tagged()
	if err := v.DecodeMsgpack(dec); err != nil {
		return err
	}
	t.setTagged(v)
	return nil
}
`

const bsonBody = `
func (t {{ .Name }}) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return t.Tagged().MarshalBSONValue()
}

func (t *{{ .Name }}) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	v := t.Tagged()
	if err := v.UnmarshalBSONValue(typ, data); err != nil {
		return err
	}
	t.setTagged(v)
	return nil
}
`

const sqlBody = `
func (t *{{ .Name }}) Scan(src any) error {
	v := t.Tagged()
	if err := v.Scan(src); err != nil {
		return err
	}
	t.setTagged(v)
	return nil
}

func (t {{ .Name }}) Value() (driver.Value, error) {
	return t.Tagged().Value()
}
`

const cqlBody = `
func (t {{ .Name }}) MarshalCQL(info gocql.TypeInfo) ([]byte, error) {
	return t.Tagged().MarshalCQL(info)
}

func (t *{{ .Name }}) UnmarshalCQL(info gocql.TypeInfo, data []byte) error {
	v := t.Tagged()
	if err := v.UnmarshalCQL(info, data); err != nil {
		return err
	}
	t.setTagged(v)
	return nil
}
`
