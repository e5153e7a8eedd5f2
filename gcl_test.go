package gcl

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{"null", `null`, Null()},
		{"true", `true`, Bool(true)},
		{"false", `false`, Bool(false)},
		{"string", `"abc"`, String("abc")},
		{"string_escapes", `"a\nb\tc\\d\"e"`, String("a\nb\tc\\d\"e")},
		{"empty_string", `""`, String("")},
		{"int", `123`, Int(123)},
		{"negative_int", `-123`, Int(-123)},
		{"positive_int", `+123`, Int(123)},
		{"zero", `0`, Int(0)},
		{"hex", `0x1F`, Int(31)},
		{"hex_lower", `0x1f`, Int(31)},
		{"binary", `0b101`, Int(5)},
		{"negative_hex", `-0x10`, Int(-16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse([]byte(tt.input), nil)
			require.NoError(t, err)
			assert.True(t, v.Equal(tt.want), "got kind %s", v.Kind())
		})
	}
}

func TestParseArray(t *testing.T) {
	v, err := Parse([]byte(`[]`), nil)
	require.NoError(t, err)
	elems, err := v.AsArray()
	require.NoError(t, err)
	assert.Empty(t, elems)

	v, err = Parse([]byte(`[1, 2, 3]`), nil)
	require.NoError(t, err)
	elems, err = v.AsArray()
	require.NoError(t, err)
	require.Len(t, elems, 3)
	for i, want := range []int64{1, 2, 3} {
		got, err := elems[i].AsInt()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	v, err = Parse([]byte(`[[1], [2, 3], "x", {a: true}]`), nil)
	require.NoError(t, err)
	elems, err = v.AsArray()
	require.NoError(t, err)
	assert.Len(t, elems, 4)
}

func TestParseDict(t *testing.T) {
	v, err := Parse([]byte(`{}`), nil)
	require.NoError(t, err)
	d, err := v.AsDict()
	require.NoError(t, err)
	assert.Zero(t, d.Len())

	// Iteration order is key-sorted, not insertion order.
	v, err = Parse([]byte(`{b: 2, a: 1}`), nil)
	require.NoError(t, err)
	d, err = v.AsDict()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, d.Keys())

	a, ok := d.Get("a")
	require.True(t, ok)
	i, err := a.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(1), i)

	_, ok = d.Get("missing")
	assert.False(t, ok)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantID  ErrorID
		wantIs  error
		contain string
	}{
		{"duplicate_key", `{a: 1, a: 2}`, ErrIDKeyAlreadyDefined, ErrParse, "`a`"},
		{"missing_rbrace", `{a: 1`, ErrIDExpectedPunctuaction, ErrParse, "`,`"},
		{"missing_colon", `{a 1}`, ErrIDExpectedPunctuaction, ErrParse, "`:`"},
		{"dict_bad_separator", `{a: 1 b: 2}`, ErrIDExpectedPunctuaction, ErrParse, "`,`"},
		{"non_ident_key", `{1: 2}`, ErrIDExpectedPunctuaction, ErrParse, "`}`"},
		{"unterminated_string", `"unterminated`, ErrIDExpectedStringEnd, ErrLex, "string end"},
		{"string_raw_newline", "\"one\ntwo\"", ErrIDExpectedStringEnd, ErrLex, "string end"},
		{"invalid_escape", `"bad\q"`, ErrIDInvalidEscape, ErrLex, "`q`"},
		{"invalid_digit", `123abc`, ErrIDInvalidDigit, ErrLex, "`a`"},
		{"invalid_binary_digit", `0b102`, ErrIDInvalidDigit, ErrLex, "base 2"},
		{"empty_base_prefix", `0x`, ErrIDInvalidDigit, ErrLex, "base 16"},
		{"bare_sign", `-x`, ErrIDInvalidDigit, ErrLex, "base 10"},
		{"unknown_char", `@`, ErrIDUnknownChar, ErrLex, "`@`"},
		{"empty_input", ``, ErrIDExpectedValue, ErrParse, "`eof`"},
		{"bare_identifier", `foo`, ErrIDExpectedValue, ErrParse, "`foo`"},
		{"unclosed_array", `[`, ErrIDExpectedValue, ErrParse, "`eof`"},
		{"array_bad_separator", `[1 2]`, ErrIDExpectedPunctuaction, ErrParse, "`,`"},
		{"array_trailing_comma", `[1,]`, ErrIDExpectedValue, ErrParse, "`]`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input), nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantIs)

			var gerr *Error
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, tt.wantID, gerr.ID)
			assert.Contains(t, gerr.Message, tt.contain)
		})
	}
}

func TestDiagnosticSpanWithinInput(t *testing.T) {
	inputs := []string{
		`{a: 1, a: 2}`,
		`{a: 1`,
		`"unterminated`,
		`123abc`,
		"[1,\n 2,\n oops]",
		"{\n  a: 1,\n  b: @\n}",
	}

	for _, input := range inputs {
		_, err := Parse([]byte(input), nil)
		require.Error(t, err, "input %q", input)

		var gerr *Error
		require.ErrorAs(t, err, &gerr)

		lines := strings.Count(input, "\n") + 1
		sp := gerr.Span
		assert.GreaterOrEqual(t, sp.BeginLine, 1, "input %q", input)
		assert.LessOrEqual(t, sp.EndLine, lines, "input %q", input)
		assert.GreaterOrEqual(t, sp.BeginCol, 0, "input %q", input)
		assert.LessOrEqual(t, sp.EndCol, len(input), "input %q", input)
	}
}

func TestTrailingTokens(t *testing.T) {
	// Anything after a complete document is ignored by default.
	v, err := Parse([]byte(`1 2 3`), nil)
	require.NoError(t, err)
	i, err := v.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(1), i)

	_, err = Parse([]byte(`1 2 3`), &ParseOptions{DisableTrailing: true})
	require.Error(t, err)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, ErrIDExpectedPunctuaction, gerr.ID)
	assert.Contains(t, gerr.Message, "end of input")

	_, err = Parse([]byte("{a: 1} # comment\n"), &ParseOptions{DisableTrailing: true})
	assert.NoError(t, err)
}

func TestComments(t *testing.T) {
	input := "# leading comment\n[1, # inline\n2] # trailing"
	v, err := Parse([]byte(input), nil)
	require.NoError(t, err)
	elems, err := v.AsArray()
	require.NoError(t, err)
	assert.Len(t, elems, 2)

	_, err = Parse([]byte(input), &ParseOptions{DisableComments: true})
	require.Error(t, err)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, ErrIDUnknownChar, gerr.ID)
}

func TestParseSamples(t *testing.T) {
	v, err := DecodeFile(filepath.Join("testdata", "config.gcl"), nil)
	require.NoError(t, err)

	d, err := v.AsDict()
	require.NoError(t, err)

	name, ok := d.Get("name")
	require.True(t, ok)
	s, err := name.AsString()
	require.NoError(t, err)
	assert.Equal(t, "relay", s)

	flags, ok := d.Get("flags")
	require.True(t, ok)
	i, err := flags.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(0b1011), i)

	motd, ok := d.Get("motd")
	require.True(t, ok)
	s, err = motd.AsString()
	require.NoError(t, err)
	assert.Equal(t, "hello\tworld\nbye \"friend\"", s)

	v, err = DecodeFile(filepath.Join("testdata", "minimal.gcl"), nil)
	require.NoError(t, err)
	assert.Equal(t, KindArray, v.Kind())
}

func TestDecode(t *testing.T) {
	v, err := Decode(strings.NewReader(`{a: [true, null]}`), nil)
	require.NoError(t, err)
	assert.Equal(t, KindDict, v.Kind())
}

func TestFormatGolden(t *testing.T) {
	d := NewDict()
	require.True(t, d.Insert("b", Int(2)))
	require.True(t, d.Insert("a", ArrayOf(Int(1), Int(2))))
	require.True(t, d.Insert("c", DictOf(nil)))

	out, err := Format(DictOf(d), nil)
	require.NoError(t, err)

	want := `{
    a: [
        1,
        2
    ],
    b: 2,
    c: {}
}`
	assert.Equal(t, want, string(out))
}

func TestFormatIndent(t *testing.T) {
	out, err := Format(ArrayOf(Int(1)), &FormatOptions{Indent: "\t"})
	require.NoError(t, err)
	assert.Equal(t, "[\n\t1\n]", string(out))
}

func TestRoundTrip(t *testing.T) {
	v, err := DecodeFile(filepath.Join("testdata", "config.gcl"), nil)
	require.NoError(t, err)

	out, err := Format(v, nil)
	require.NoError(t, err)

	v2, err := Parse(out, nil)
	require.NoError(t, err)
	assert.True(t, v.Equal(v2), "round-trip mismatch:\n%s", out)
}

func TestEncodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gcl")
	require.NoError(t, EncodeFile(path, ArrayOf(String("x"), Null()), nil))

	v, err := DecodeFile(path, nil)
	require.NoError(t, err)
	assert.True(t, v.Equal(ArrayOf(String("x"), Null())))
}

func TestErrorRendering(t *testing.T) {
	_, err := Parse([]byte(`{a: 1, a: 2}`), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
	assert.Contains(t, err.Error(), "parse error at ")
	assert.Contains(t, err.Error(), "key `a` already defined")

	_, err = Parse([]byte("  @"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLex))
	assert.Contains(t, err.Error(), "lex error at 1:2")
}
