package yaml_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TerameTechYT/luadata"
	"github.com/TerameTechYT/luadata/yaml"
)

func TestMarshal(t *testing.T) {
	t.Run("numbers always serialize as floats", func(t *testing.T) {
		tbl := luadata.New()
		tbl.SetField("n", int64(1))

		out, err := yaml.Marshal(tbl)
		require.NoError(t, err)
		require.Equal(t, "n: 1.0\n", string(out))
	})

	t.Run("empty table is a sequence", func(t *testing.T) {
		out, err := yaml.Marshal(luadata.New())
		require.NoError(t, err)
		require.Equal(t, "[]\n", string(out))
	})

	t.Run("null mapping entries are dropped", func(t *testing.T) {
		tbl := luadata.New()
		tbl.SetField("keep", "v")
		tbl.SetField("drop", nil)

		out, err := yaml.Marshal(tbl)
		require.NoError(t, err)
		require.Contains(t, string(out), "keep")
		require.NotContains(t, string(out), "drop")
	})

	t.Run("null sequence entries are kept", func(t *testing.T) {
		tbl := luadata.New()
		tbl.SetInt(1, float64(1))
		tbl.SetInt(2, nil)
		tbl.SetInt(3, float64(3))

		out, err := yaml.Marshal(tbl)
		require.NoError(t, err)
		require.Contains(t, string(out), "null")
	})

	t.Run("strings that look like other scalars are quoted", func(t *testing.T) {
		tbl := luadata.New()
		tbl.SetField("s", "42")

		out, err := yaml.Marshal(tbl)
		require.NoError(t, err)
		require.Contains(t, string(out), `"42"`)
	})

	t.Run("cyclic table fails", func(t *testing.T) {
		tbl := luadata.New()
		tbl.SetField("self", tbl)

		_, err := yaml.Marshal(tbl)
		var cycleErr *luadata.CycleError
		require.ErrorAs(t, err, &cycleErr)
	})

	t.Run("unsupported type fails", func(t *testing.T) {
		tbl := luadata.New()
		tbl.SetField("ch", make(chan int))

		_, err := yaml.Marshal(tbl)
		var typeErr *luadata.UnsupportedTypeError
		require.ErrorAs(t, err, &typeErr)
	})

	t.Run("indent option", func(t *testing.T) {
		inner := luadata.New()
		inner.SetField("k", "v")
		tbl := luadata.New()
		tbl.SetField("outer", inner)

		out, err := yaml.Marshal(tbl, yaml.Indent(4))
		require.NoError(t, err)
		require.Contains(t, string(out), "\n    k:")

		_, err = yaml.Marshal(tbl, yaml.Indent(0))
		require.Error(t, err)
	})
}

func TestUnmarshal(t *testing.T) {
	t.Run("scalar coercion order", func(t *testing.T) {
		v, err := yaml.Unmarshal([]byte("- true\n- TRUE\n- false\n- 42\n- 3.14\n- hello\n"))
		require.NoError(t, err)
		tbl := v.(*luadata.Table)

		want := []any{true, true, false, float64(42), 3.14, "hello"}
		for i, w := range want {
			got, ok := tbl.GetInt(int64(i) + 1)
			require.True(t, ok)
			require.Equal(t, w, got)
		}
	})

	t.Run("quoting does not exempt a scalar from coercion", func(t *testing.T) {
		v, err := yaml.Unmarshal([]byte("v: \"true\"\nn: '7'\n"))
		require.NoError(t, err)
		tbl := v.(*luadata.Table)

		b, _ := tbl.GetField("v")
		require.Equal(t, true, b)
		n, _ := tbl.GetField("n")
		require.Equal(t, float64(7), n)
	})

	t.Run("null mapping values are dropped", func(t *testing.T) {
		v, err := yaml.Unmarshal([]byte("a: null\nb: 1\nc: ~\n"))
		require.NoError(t, err)
		tbl := v.(*luadata.Table)

		require.Equal(t, 1, tbl.Len())
		_, ok := tbl.GetField("a")
		require.False(t, ok)
	})

	t.Run("null sequence elements are explicit entries", func(t *testing.T) {
		v, err := yaml.Unmarshal([]byte("- 1\n- null\n- 3\n"))
		require.NoError(t, err)
		tbl := v.(*luadata.Table)

		require.Equal(t, 3, tbl.Len())
		elem, ok := tbl.GetInt(2)
		require.True(t, ok)
		require.Nil(t, elem)
	})

	t.Run("aliases resolve", func(t *testing.T) {
		v, err := yaml.Unmarshal([]byte("a: &x 1\nb: *x\n"))
		require.NoError(t, err)
		tbl := v.(*luadata.Table)

		a, _ := tbl.GetField("a")
		b, _ := tbl.GetField("b")
		require.Equal(t, float64(1), a)
		require.Equal(t, a, b)
	})

	t.Run("non-scalar mapping keys fail", func(t *testing.T) {
		_, err := yaml.Unmarshal([]byte("? [1, 2]\n: value\n"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "mapping keys must be scalars")
	})

	t.Run("scalar document", func(t *testing.T) {
		v, err := yaml.Unmarshal([]byte("hello\n"))
		require.NoError(t, err)
		require.Equal(t, "hello", v)
	})

	t.Run("empty input fails", func(t *testing.T) {
		_, err := yaml.Unmarshal(nil)
		require.ErrorIs(t, err, luadata.ErrEmptyInput)
	})

	t.Run("syntax errors surface", func(t *testing.T) {
		_, err := yaml.Unmarshal([]byte("a: [1, 2\n"))
		var synErr *luadata.SyntaxError
		require.ErrorAs(t, err, &synErr)
	})

	t.Run("max depth fails fast", func(t *testing.T) {
		_, err := yaml.Unmarshal([]byte("- - - - 1\n"), yaml.MaxDepth(2))
		require.Error(t, err)
		require.Contains(t, err.Error(), "maximum nesting depth exceeded")
	})
}

func TestRoundTrip(t *testing.T) {
	list := luadata.New()
	list.SetInt(1, float64(1))
	list.SetInt(2, nil)
	list.SetInt(3, "true") // decodes back as a boolean, so keep it out of Equal

	tbl := luadata.New()
	tbl.SetField("name", "luadata")
	tbl.SetField("ok", true)
	tbl.SetField("ratio", 2.5)

	inner := luadata.New()
	inner.SetInt(1, float64(1))
	inner.SetInt(2, nil)
	tbl.SetField("items", inner)

	out, err := yaml.Marshal(tbl)
	require.NoError(t, err)

	v, err := yaml.Unmarshal(out)
	require.NoError(t, err)

	back, ok := v.(*luadata.Table)
	require.True(t, ok)
	require.True(t, tbl.Equal(back))

	// The coercion heuristic is lossy for strings spelled like other
	// scalars; they come back as the coerced kind.
	strOut, err := yaml.Marshal(list)
	require.NoError(t, err)
	v, err = yaml.Unmarshal(strOut)
	require.NoError(t, err)
	third, _ := v.(*luadata.Table).GetInt(3)
	require.Equal(t, true, third)
}
