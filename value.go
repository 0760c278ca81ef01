package docopt

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// Kind identifies which variant of Value is populated.
type Kind int

const (
	// Empty is the zero Value: no default and nothing was supplied.
	Empty Kind = iota
	KindBool
	KindInt
	KindString
	KindList
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a tagged union holding one of {empty, boolean, integer, string,
// list of strings}. Its kind is fixed at construction; equality and
// hashing are structural and respect the tag.
type Value struct {
	kind Kind
	b    bool
	n    int
	s    string
	list []string
}

// EmptyValue is the falsy placeholder used when nothing was declared or
// supplied.
func EmptyValue() Value { return Value{kind: Empty} }

// BoolValue constructs a boolean Value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// IntValue constructs an integer Value.
func IntValue(n int) Value { return Value{kind: KindInt, n: n} }

// StringValue constructs a string Value.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// ListValue constructs a list-of-strings Value. The given slice is copied.
func ListValue(items ...string) Value {
	cp := make([]string, len(items))
	copy(cp, items)
	return Value{kind: KindList, list: cp}
}

// Kind reports which variant is populated.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether v carries no content at all.
func (v Value) IsEmpty() bool { return v.kind == Empty }

// Bool returns the boolean payload; only meaningful when Kind() == KindBool.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload; only meaningful when Kind() == KindInt.
func (v Value) Int() int { return v.n }

// RawString returns the string payload when Kind() == KindString, else "".
// Use String (or Render) to get the docopt-style textual form for any kind.
func (v Value) RawString() string { return v.s }

// String implements fmt.Stringer using the docopt-style textual rendering
// rules: Bool→true|false, Int→decimal, Str→"quoted", List→[ "q1", "q2" ],
// Empty→null.
func (v Value) String() string { return v.Render() }

// List returns the list payload; only meaningful when Kind() == KindList.
func (v Value) List() []string {
	if v.list == nil {
		return nil
	}
	cp := make([]string, len(v.list))
	copy(cp, v.list)
	return cp
}

// AsInt converts a Str-kind Value to an int, per the conversion rule in the
// data model: the entire string must parse as a signed decimal, or the
// conversion fails. Int-kind values convert trivially.
func (v Value) AsInt() (int, error) {
	switch v.kind {
	case KindInt:
		return v.n, nil
	case KindString:
		n, err := strconv.Atoi(v.s)
		if err != nil {
			return 0, errors.Wrapf(err, "value %q is not a signed decimal integer", v.s)
		}
		return n, nil
	default:
		return 0, errors.Errorf("cannot convert %s value to int", v.kind)
	}
}

// Bytes parses a Str-kind Value as a human-readable byte quantity (e.g.
// "10MB"), the way an option like --chunk-size=<n> would want its argument
// interpreted.
func (v Value) Bytes() (uint64, error) {
	if v.kind != KindString {
		return 0, errors.Errorf("cannot parse %s value as a byte quantity", v.kind)
	}
	n, err := humanize.ParseBytes(v.s)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %q as a byte quantity", v.s)
	}
	return n, nil
}

// Equal reports structural equality, respecting the kind tag.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case Empty:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.n == o.n
	case KindString:
		return v.s == o.s
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i, s := range v.list {
			if o.list[i] != s {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// hash agrees with Equal: equal values hash equal.
func (v Value) hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|", v.kind)
	switch v.kind {
	case KindBool:
		fmt.Fprintf(h, "%v", v.b)
	case KindInt:
		fmt.Fprintf(h, "%d", v.n)
	case KindString:
		h.Write([]byte(v.s))
	case KindList:
		for _, s := range v.list {
			h.Write([]byte(s))
			h.Write([]byte{0})
		}
	}
	return h.Sum64()
}

// Render produces the docopt-style textual form: Bool→true|false,
// Int→decimal, Str→"quoted", List→[ "q1", "q2" ], Empty→null.
func (v Value) Render() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.Itoa(v.n)
	case KindString:
		return strconv.Quote(v.s)
	case KindList:
		parts := make([]string, len(v.list))
		for i, s := range v.list {
			parts[i] = strconv.Quote(s)
		}
		if len(parts) == 0 {
			return "[]"
		}
		return "[ " + strings.Join(parts, ", ") + " ]"
	default:
		return "null"
	}
}

// GoString supports %#v debugging output.
func (v Value) GoString() string {
	switch v.kind {
	case KindBool:
		return fmt.Sprintf("docopt.BoolValue(%v)", v.b)
	case KindInt:
		return fmt.Sprintf("docopt.IntValue(%d)", v.n)
	case KindString:
		return fmt.Sprintf("docopt.StringValue(%q)", v.s)
	case KindList:
		return fmt.Sprintf("docopt.ListValue(%#v...)", v.list)
	default:
		return "docopt.EmptyValue()"
	}
}
