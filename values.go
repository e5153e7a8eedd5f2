package gcl

import (
	"fmt"
	"sort"
)

// Kind represents the kind of a Value.
type Kind int

// Value kinds. The set is closed by the format's design; KindFloat is
// part of the document model even though the tokenizer never produces
// float literals.
const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindDict
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindDict:
		return "dict"
	default:
		return "kind"
	}
}

// Value is a document node: a scalar or a container, discriminated by
// kind. The zero Value is KindUndefined. Containers exclusively own
// their entries; the grammar cannot produce sharing or cycles.
type Value struct {
	s    string
	a    []Value
	d    *Dict
	i    int64
	f    float64
	b    bool
	kind Kind
}

// Null returns a null Value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns an integer Value.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float returns a float Value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// ArrayOf returns an array Value holding the given elements in order.
func ArrayOf(elems ...Value) Value {
	return Value{kind: KindArray, a: elems}
}

// DictOf returns a dict Value wrapping d. A nil d yields an empty dict.
func DictOf(d *Dict) Value {
	if d == nil {
		d = NewDict()
	}

	return Value{kind: KindDict, d: d}
}

// Kind returns the kind of the Value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the Value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean payload, or ErrTypeMismatch.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, v.mismatch(KindBool)
	}

	return v.b, nil
}

// AsInt returns the integer payload, or ErrTypeMismatch.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, v.mismatch(KindInt)
	}

	return v.i, nil
}

// AsFloat returns the float payload, or ErrTypeMismatch.
func (v Value) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, v.mismatch(KindFloat)
	}

	return v.f, nil
}

// AsString returns the string payload, or ErrTypeMismatch.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", v.mismatch(KindString)
	}

	return v.s, nil
}

// AsArray returns the array payload, or ErrTypeMismatch.
func (v Value) AsArray() ([]Value, error) {
	if v.kind != KindArray {
		return nil, v.mismatch(KindArray)
	}

	return v.a, nil
}

// AsDict returns the dict payload, or ErrTypeMismatch.
func (v Value) AsDict() (*Dict, error) {
	if v.kind != KindDict {
		return nil, v.mismatch(KindDict)
	}

	return v.d, nil
}

// mismatch formats an accessor failure.
func (v Value) mismatch(want Kind) error {
	return fmt.Errorf("%w: have %s, want %s", ErrTypeMismatch, v.kind, want)
}

// Equal reports whether two Values hold the same kind and payload.
// Containers compare element-wise; dict entries compare in key order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s

	case KindArray:
		if len(v.a) != len(o.a) {
			return false
		}
		for i := range v.a {
			if !v.a[i].Equal(o.a[i]) {
				return false
			}
		}
		return true

	case KindDict:
		if v.d.Len() != o.d.Len() {
			return false
		}
		for i, e := range v.d.entries {
			oe := o.d.entries[i]
			if e.Key != oe.Key || !e.Value.Equal(oe.Value) {
				return false
			}
		}
		return true

	default:
		return true
	}
}

// Visitor visits a Value polymorphically over the closed set of kinds.
type Visitor interface {
	VisitUndefined()
	VisitNull()
	VisitBool(b bool)
	VisitInt(i int64)
	VisitFloat(f float64)
	VisitString(s string)
	VisitArray(a []Value)
	VisitDict(d *Dict)
}

// Accept dispatches to the visitor method matching the current kind.
func (v Value) Accept(vis Visitor) {
	switch v.kind {
	case KindNull:
		vis.VisitNull()
	case KindBool:
		vis.VisitBool(v.b)
	case KindInt:
		vis.VisitInt(v.i)
	case KindFloat:
		vis.VisitFloat(v.f)
	case KindString:
		vis.VisitString(v.s)
	case KindArray:
		vis.VisitArray(v.a)
	case KindDict:
		vis.VisitDict(v.d)
	default:
		vis.VisitUndefined()
	}
}

// DictEntry is a single key/value pair of a Dict.
type DictEntry struct {
	Key   string // Entry key
	Value Value  // Entry value
}

// Dict is a mapping from identifier to Value with unique keys and
// key-sorted iteration order. Entries are kept sorted at insert time so
// traversal is deterministic for consumers that rely on it.
type Dict struct {
	entries []DictEntry
}

// NewDict creates an empty Dict.
func NewDict() *Dict {
	return &Dict{}
}

// Insert adds a key/value pair and reports whether the key was new.
// A second insert of the same key leaves the dict unchanged.
func (d *Dict) Insert(key string, v Value) bool {
	i := d.search(key)
	if i < len(d.entries) && d.entries[i].Key == key {
		return false
	}

	d.entries = append(d.entries, DictEntry{})
	copy(d.entries[i+1:], d.entries[i:])
	d.entries[i] = DictEntry{Key: key, Value: v}

	return true
}

// Get returns the value for key and whether it is present.
func (d *Dict) Get(key string) (Value, bool) {
	i := d.search(key)
	if i < len(d.entries) && d.entries[i].Key == key {
		return d.entries[i].Value, true
	}

	return Value{}, false
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	return len(d.entries)
}

// Keys returns the keys in sorted order.
func (d *Dict) Keys() []string {
	keys := make([]string, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.Key
	}

	return keys
}

// Entries returns the entries in key order. The slice is shared with
// the dict and must not be mutated.
func (d *Dict) Entries() []DictEntry {
	return d.entries
}

// search returns the insertion index for key.
func (d *Dict) search(key string) int {
	return sort.Search(len(d.entries), func(i int) bool {
		return d.entries[i].Key >= key
	})
}
