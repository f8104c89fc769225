package codereview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies the shape of a section value.
type Kind int

// Content kinds.
const (
	KindEmpty Kind = iota
	KindText
	KindList
	KindDiagnostic
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindText:
		return "text"
	case KindList:
		return "list"
	case KindDiagnostic:
		return "diagnostic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// diagnosticKeys are the fields a reviewer uses for output it could not
// structure, highest priority first.
var diagnosticKeys = []string{"_raw_model_output", "raw_output", "error"}

// Content is a classified section value. The service may return any shape
// for any section, so values are classified once with Classify and every
// consumer switches on Kind.
type Content struct {
	Kind  Kind
	Text  string   // Set for KindText and KindDiagnostic
	Items []string // Set for KindList, possibly empty

	raw json.RawMessage // JSON the value was classified from, if any
}

// NewText returns text content. An empty string yields empty content.
func NewText(s string) Content {
	if s == "" {
		return Content{}
	}
	return Content{Kind: KindText, Text: s}
}

// NewList returns list content holding items in order.
func NewList(items ...string) Content {
	if items == nil {
		items = []string{}
	}
	return Content{Kind: KindList, Items: items}
}

// NewDiagnostic returns diagnostic content carrying raw reviewer output.
func NewDiagnostic(s string) Content {
	return Content{Kind: KindDiagnostic, Text: s}
}

// IsEmpty reports whether the content carries no details.
func (c Content) IsEmpty() bool {
	return c.Kind == KindEmpty
}

// Classify turns a raw JSON section value into Content. It never fails:
// missing values, null, false and "" are empty (the number 0 is not),
// objects are diagnostics, arrays are lists, other scalars are text, and
// bytes that are not valid JSON are kept as a diagnostic.
func Classify(raw json.RawMessage) Content {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Content{}
	}
	if !json.Valid(trimmed) {
		return Content{Kind: KindDiagnostic, Text: string(trimmed)}
	}

	v, err := decodeValue(trimmed)
	if err != nil {
		return Content{Kind: KindDiagnostic, Text: string(trimmed)}
	}

	c := classifyValue(v)
	c.raw = append(json.RawMessage(nil), trimmed...)
	return c
}

func classifyValue(v any) Content {
	switch t := v.(type) {
	case nil:
		return Content{}
	case bool:
		if !t {
			return Content{}
		}
		return Content{Kind: KindText, Text: "true"}
	case string:
		return NewText(t)
	case json.Number:
		return Content{Kind: KindText, Text: t.String()}
	case []any:
		items := make([]string, 0, len(t))
		for _, item := range t {
			items = append(items, textOf(item))
		}
		return Content{Kind: KindList, Items: items}
	case map[string]any:
		return Content{Kind: KindDiagnostic, Text: diagnosticText(t)}
	default:
		return Content{Kind: KindText, Text: fmt.Sprint(t)}
	}
}

// diagnosticText returns the highest priority diagnostic field that is set,
// falling back to the serialized object.
func diagnosticText(obj map[string]any) string {
	for _, key := range diagnosticKeys {
		if v, ok := obj[key]; ok && truthy(v) {
			return textOf(v)
		}
	}
	return compactJSON(obj)
}

// hasDiagnostic reports whether any diagnostic field of obj is set.
func hasDiagnostic(fields map[string]json.RawMessage) bool {
	for _, key := range diagnosticKeys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		v, err := decodeValue(raw)
		if err == nil && truthy(v) {
			return true
		}
	}
	return false
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}

func textOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return compactJSON(t)
	}
}

func compactJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func decodeValue(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// UnmarshalJSON implements json.Unmarshaler by classifying the value.
func (c *Content) UnmarshalJSON(data []byte) error {
	*c = Classify(data)
	return nil
}

// MarshalJSON implements json.Marshaler. Classified content marshals back
// to the JSON it came from.
func (c Content) MarshalJSON() ([]byte, error) {
	if len(c.raw) > 0 {
		return c.raw, nil
	}
	switch c.Kind {
	case KindText:
		return json.Marshal(c.Text)
	case KindList:
		items := c.Items
		if items == nil {
			items = []string{}
		}
		return json.Marshal(items)
	case KindDiagnostic:
		return json.Marshal(map[string]string{"raw_output": c.Text})
	default:
		return []byte("null"), nil
	}
}
