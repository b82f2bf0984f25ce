package extract

import (
	"bytes"
	"encoding/json"

	"github.com/KSP08-life/document-processing-assistant/constants"
)

// Provenance flags how a field value was obtained, so downstream consumers
// can tell a label-anchored match from a best-guess fallback.
type Provenance string

const (
	ByLabel     Provenance = "label"
	ByHeuristic Provenance = "heuristic"
)

// Field is one extracted name/value pair. Value is a string, float64 or int.
type Field struct {
	Name   string
	Value  any
	Source Provenance
}

// DocumentTypeField is present in every record.
const DocumentTypeField = "DocumentType"

// Record is the insertion-ordered field mapping extracted from one document.
// It always carries DocumentType and is never mutated after the extractor
// returns it.
type Record struct {
	fields []Field
	index  map[string]int
}

func NewRecord(docType constants.DocumentType) *Record {
	r := &Record{index: make(map[string]int)}
	r.Set(DocumentTypeField, string(docType), ByLabel)
	return r
}

// Set adds a field or overwrites an existing one in place, keeping the
// original insertion position.
func (r *Record) Set(name string, value any, source Provenance) {
	if i, ok := r.index[name]; ok {
		r.fields[i].Value = value
		r.fields[i].Source = source
		return
	}
	r.index[name] = len(r.fields)
	r.fields = append(r.fields, Field{Name: name, Value: value, Source: source})
}

func (r *Record) Get(name string) (any, bool) {
	if i, ok := r.index[name]; ok {
		return r.fields[i].Value, true
	}
	return nil, false
}

// Fields returns the fields in insertion order. The slice is a copy.
func (r *Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

func (r *Record) Len() int {
	return len(r.fields)
}

// DocumentType returns the record's canonical document type label.
func (r *Record) DocumentType() constants.DocumentType {
	v, _ := r.Get(DocumentTypeField)
	s, _ := v.(string)
	t, _ := constants.Canonicalize(s)
	return t
}

// MarshalJSON renders the record as a JSON object whose keys appear in
// insertion order. Provenance is deliberately not part of the wire shape.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
