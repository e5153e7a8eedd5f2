/*
Package gcl parses GCL, a JSON-like textual configuration language, into
an in-memory document tree.

A document is a single value: null, true/false, an integer (decimal,
0b binary, or 0x hexadecimal), a quoted string, a bracketed array, or a
braced dict with identifier keys. Comments run from # to the end of the
line. Dict keys are unique and iterate in sorted key order.

Reader example:

	v, err := gcl.DecodeFile("config.gcl", nil)
	if err != nil {
		// handle error
	}
	d, err := v.AsDict()

Writer example:

	out, err := gcl.Format(v, nil)
	if err != nil {
		// handle error
	}

Diagnostics are structured: every failure carries an error kind and the
source span that triggered it.

	if _, err := gcl.Parse(data, nil); err != nil {
		var gerr *gcl.Error
		if errors.As(err, &gerr) {
			_ = gerr.ID   // e.g. gcl.ErrIDKeyAlreadyDefined
			_ = gerr.Span // source range of the failure
		}
	}
*/
package gcl
