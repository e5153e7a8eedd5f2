package gcl

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"
)

// Encode renders a Value to writer.
func Encode(w io.Writer, v Value, opt *FormatOptions) error {
	fopt := opt.normalize()
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, indent: fopt.Indent}
	if err := wr.writeValue(v); err != nil {
		return err
	}

	return bw.Flush()
}

// EncodeFile renders a Value to a file.
func EncodeFile(path string, v Value, opt *FormatOptions) error {
	b, err := Format(v, opt)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

// Format renders a Value to bytes. The output parses back to an equal
// Value for any tree free of Undefined and Float nodes.
func Format(v Value, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writer renders a Value tree to a writer.
type writer struct {
	w      io.Writer // Writer to write to
	indent string    // Indentation string
	cache  []string  // Cache of indentation strings
	level  int       // Current nesting level
}

// writeValue writes a value at the current nesting level.
func (w *writer) writeValue(v Value) error {
	switch v.kind {
	case KindNull:
		return w.writeString("null")

	case KindBool:
		if v.b {
			return w.writeString("true")
		}
		return w.writeString("false")

	case KindInt:
		var buf [20]byte
		b := strconv.AppendInt(buf[:0], v.i, 10)
		_, err := w.w.Write(b)
		return err

	case KindFloat:
		var buf [32]byte
		b := strconv.AppendFloat(buf[:0], v.f, 'g', -1, 64)
		_, err := w.w.Write(b)
		return err

	case KindString:
		return w.writeQuoted(v.s)

	case KindArray:
		return w.writeArray(v.a)

	case KindDict:
		return w.writeDict(v.d)

	default:
		return w.writeString("undefined")
	}
}

// writeArray writes an array, one element per line.
func (w *writer) writeArray(elems []Value) error {
	if len(elems) == 0 {
		return w.writeString("[]")
	}

	if err := w.writeString("[\n"); err != nil {
		return err
	}

	w.level++
	for i, e := range elems {
		if err := w.writeIndent(); err != nil {
			return err
		}
		if err := w.writeValue(e); err != nil {
			return err
		}
		if i < len(elems)-1 {
			if err := w.writeString(","); err != nil {
				return err
			}
		}
		if err := w.writeString("\n"); err != nil {
			return err
		}
	}
	w.level--

	if err := w.writeIndent(); err != nil {
		return err
	}

	return w.writeString("]")
}

// writeDict writes a dict, one pair per line in key order.
func (w *writer) writeDict(d *Dict) error {
	if d.Len() == 0 {
		return w.writeString("{}")
	}

	if err := w.writeString("{\n"); err != nil {
		return err
	}

	w.level++
	for i, e := range d.Entries() {
		if err := w.writeIndent(); err != nil {
			return err
		}
		if err := w.writeString(e.Key); err != nil {
			return err
		}
		if err := w.writeString(": "); err != nil {
			return err
		}
		if err := w.writeValue(e.Value); err != nil {
			return err
		}
		if i < d.Len()-1 {
			if err := w.writeString(","); err != nil {
				return err
			}
		}
		if err := w.writeString("\n"); err != nil {
			return err
		}
	}
	w.level--

	if err := w.writeIndent(); err != nil {
		return err
	}

	return w.writeString("}")
}

// writeQuoted writes a quoted string, re-applying the escape set.
func (w *writer) writeQuoted(s string) error {
	if err := w.writeString("\""); err != nil {
		return err
	}

	start := 0
	for i := 0; i < len(s); i++ {
		var esc string
		switch s[i] {
		case '\n':
			esc = `\n`
		case '\t':
			esc = `\t`
		case '\\':
			esc = `\\`
		case '"':
			esc = `\"`
		default:
			continue
		}

		if err := w.writeString(s[start:i]); err != nil {
			return err
		}
		if err := w.writeString(esc); err != nil {
			return err
		}
		start = i + 1
	}
	if err := w.writeString(s[start:]); err != nil {
		return err
	}

	return w.writeString("\"")
}

// writeIndent writes the current indentation level to the writer.
func (w *writer) writeIndent() error {
	if w.level <= 0 {
		return nil
	}

	// Cache repeated indentation strings per nesting level.
	return w.writeString(w.indentFor(w.level))
}

// writeString writes a string to the writer.
func (w *writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}

// indentFor returns the indentation string for a nesting level.
func (w *writer) indentFor(level int) string {
	if level <= 0 {
		return ""
	}

	if len(w.cache) <= level {
		w.cache = append(w.cache, make([]string, level-len(w.cache)+1)...)
	}
	if w.cache[level] == "" {
		// Cache computed indentation for this level.
		w.cache[level] = strings.Repeat(w.indent, level)
	}

	return w.cache[level]
}
