package gcl

// ParseOptions controls parsing behavior.
type ParseOptions struct {
	// DisableComments disables # line comments; a # then fails the
	// lex as an unknown character.
	DisableComments bool
	// DisableTrailing rejects tokens after the top-level value.
	// By default anything past a complete document is ignored.
	DisableTrailing bool
}

// FormatOptions controls writer formatting.
type FormatOptions struct {
	// Indent is the indentation string for nested containers (default is four spaces).
	Indent string
}

// normalize normalizes the ParseOptions.
func (o *ParseOptions) normalize() ParseOptions {
	if o == nil {
		return ParseOptions{}
	}

	return *o
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{Indent: "    "}
	}

	out := *o
	if out.Indent == "" {
		out.Indent = "    "
	}

	return out
}
