/*
Package luadata converts Lua-style dynamic tables to and from several
textual interchange formats: JSON, TOML, XML and YAML.

The central type is Table, an order-preserving associative container whose
keys are integers or strings and whose values are dynamically typed, with
no inherent distinction between "list" and "map". Each format lives in its
own subpackage with an API mirroring the standard encoding packages:

	t := luadata.New()
	t.SetField("name", "luadata")
	t.SetField("tags", seq) // seq is another *luadata.Table

	out, err := json.Marshal(t)
	if err != nil {
		// handle error
	}

	v, err := json.Unmarshal(out)
	// v is a *luadata.Table again

Whether a table serializes as an array or an object is decided per table:
a table whose keys are exactly the integers 1..n with no holes is treated
as a sequence, anything else as a mapping. Cyclic tables are detected and
rejected; a table shared between two branches of the same value is legal.

The formats differ where their type systems differ. JSON preserves the
integer/float distinction. YAML types untagged scalars heuristically and
omits null-valued mapping entries. TOML has no null and always decodes
into a table. XML works on a fixed element schema (tag, attr, text,
children) rather than arbitrary tables; see the xml subpackage.

All failures are reported as returned errors; the typed errors in this
package (CycleError, UnsupportedTypeError, KeyTypeError, SyntaxError and
ErrEmptyInput) are shared by every format.
*/
package luadata
