package catalog_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/creational/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParsePattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    catalog.Pattern
		wantErr bool
	}{
		{"factory-method", catalog.FactoryMethod, false},
		{"factory_method", catalog.FactoryMethod, false},
		{"FactoryMethod", catalog.FactoryMethod, false},
		{"abstract-factory", catalog.AbstractFactory, false},
		{"AbstractFactory", catalog.AbstractFactory, false},
		{" builder ", catalog.Builder, false},
		{"Prototype", catalog.Prototype, false},
		{"singleton", catalog.Singleton, false},
		{"observer", catalog.FactoryMethod, true},
		{"", catalog.FactoryMethod, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			got, err := catalog.ParsePattern(tc.in)
			if tc.wantErr {
				var pe *catalog.ParseError
				require.True(t, errors.As(err, &pe))
				assert.Equal(t, tc.in, pe.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestPattern_StringRoundTrip pins the canonical names of every constant.
func TestPattern_StringRoundTrip(t *testing.T) {
	t.Parallel()

	want := []string{"factory-method", "abstract-factory", "builder", "prototype", "singleton"}
	for i, p := range catalog.All() {
		require.True(t, p.Valid())
		require.Equal(t, want[i], p.String())

		parsed, err := catalog.ParsePattern(p.String())
		require.NoError(t, err)
		require.Equal(t, p, parsed)
	}

	bad := catalog.Pattern(42)
	require.False(t, bad.Valid())
	require.Equal(t, "unknown", bad.String())
	_, err := bad.MarshalText()
	var me *catalog.MarshalError
	require.ErrorAs(t, err, &me)
	require.Equal(t, 42, me.Value)
}

func TestParsePatternList(t *testing.T) {
	t.Parallel()

	got, err := catalog.ParsePatternList("builder, prototype,,singleton")
	require.NoError(t, err)
	require.Equal(t, []catalog.Pattern{catalog.Builder, catalog.Prototype, catalog.Singleton}, got)

	got, err = catalog.ParsePatternList("")
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = catalog.ParsePatternList("builder,visitor")
	var pe *catalog.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "visitor", pe.Value)
}

func TestPattern_YAML(t *testing.T) {
	t.Parallel()

	out, err := yaml.Marshal([]catalog.Pattern{catalog.Builder, catalog.Singleton})
	require.NoError(t, err)
	require.Equal(t, "- builder\n- singleton\n", string(out))

	var ps []catalog.Pattern
	require.NoError(t, yaml.Unmarshal([]byte("[Prototype, abstract_factory]"), &ps))
	require.Equal(t, []catalog.Pattern{catalog.Prototype, catalog.AbstractFactory}, ps)

	var p catalog.Pattern
	err = yaml.Unmarshal([]byte("{a: b}"), &p)
	var pe *catalog.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestPattern_Text(t *testing.T) {
	t.Parallel()

	var p catalog.Pattern
	require.NoError(t, p.UnmarshalText([]byte("singleton")))
	require.Equal(t, catalog.Singleton, p)

	txt, err := catalog.AbstractFactory.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "abstract-factory", string(txt))

	require.Error(t, p.UnmarshalText([]byte("nope")))
	require.Equal(t, catalog.Singleton, p, "failed unmarshal leaves the value untouched")
}
