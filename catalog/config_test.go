package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/creational/catalog"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := catalog.DefaultConfig()
	require.Equal(t, catalog.All(), cfg.Patterns)
	require.True(t, cfg.Banner)
	require.NoError(t, cfg.Validate())
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		want    catalog.Config
		wantErr error
	}{
		{
			name: "empty document keeps defaults",
			doc:  "",
			want: catalog.DefaultConfig(),
		},
		{
			name: "subset without banner",
			doc:  "patterns: [builder, prototype]\nbanner: false\n",
			want: catalog.Config{Patterns: []catalog.Pattern{catalog.Builder, catalog.Prototype}},
		},
		{
			name: "banner only",
			doc:  "banner: false\n",
			want: catalog.Config{Patterns: catalog.All()},
		},
		{
			name:    "empty selection",
			doc:     "patterns: []\n",
			wantErr: catalog.ErrInvalidConfig,
		},
		{
			name:    "duplicate",
			doc:     "patterns: [builder, Builder]\n",
			wantErr: catalog.ErrDuplicatePattern,
		},
		{
			name:    "unknown key",
			doc:     "patterns: [builder]\nverbose: true\n",
			wantErr: catalog.ErrInvalidConfig,
		},
		{
			name:    "unknown pattern",
			doc:     "patterns: [observer]\n",
			wantErr: catalog.ErrInvalidConfig,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := catalog.ParseConfig([]byte(tc.doc))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseConfig_UnknownPatternIsParseError(t *testing.T) {
	t.Parallel()

	_, err := catalog.ParseConfig([]byte("patterns: [observer]\n"))
	var pe *catalog.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "observer", pe.Value)
}

func TestConfig_ValidateRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	err := catalog.Config{Patterns: []catalog.Pattern{catalog.Pattern(-1)}}.Validate()
	require.ErrorIs(t, err, catalog.ErrInvalidConfig)
	require.EqualError(t, err, "catalog: invalid config: invalid pattern -1")

	var me *catalog.MarshalError
	require.False(t, errors.As(err, &me), "validation is not a marshaling failure")
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("patterns: [singleton]\n"), 0o600))

	cfg, err := catalog.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, []catalog.Pattern{catalog.Singleton}, cfg.Patterns)
	require.True(t, cfg.Banner)

	_, err = catalog.LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
