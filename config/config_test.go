package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Borislavv/go-ash-state/config"
)

func TestOptions_LookupFirstMatch(t *testing.T) {
	opts := config.Options{
		config.With("unknown", 1),
		config.With(config.KeyTableOptionsAlias, "alias"),
		config.With(config.KeyTableOptions, "primary"),
		config.With(config.KeyTableOptionsAlias, "late"),
	}

	v, ok := opts.Lookup(config.KeyTableOptions, config.KeyTableOptionsAlias)
	require.True(t, ok)
	assert.Equal(t, "alias", v)

	_, ok = opts.Lookup(config.KeyHooks)
	assert.False(t, ok)

	_, ok = config.Options(nil).Lookup(config.KeyHooks)
	assert.False(t, ok)
}

func TestCoerce(t *testing.T) {
	list := config.Options{config.With(config.KeyTransactions, true)}

	tests := []struct {
		name string
		raw  any
		want config.Options
	}{
		{name: "options", raw: list, want: list},
		{name: "option slice", raw: []config.Option(list), want: list},
		{name: "nil", raw: nil, want: config.Options{}},
		{name: "string", raw: "transactions", want: config.Options{}},
		{name: "integer", raw: 42, want: config.Options{}},
		{
			name: "map in sorted key order",
			raw:  map[string]any{"limit": 10, "default-ttl": 5},
			want: config.Options{config.With(config.KeyDefaultTTL, 5), config.With(config.KeyLimit, 10)},
		},
		{
			name: "list of single-key maps",
			raw:  []any{map[string]any{"hooks": 1}, map[string]any{"hooks": 2}},
			want: config.Options{config.With(config.KeyHooks, 1), config.With(config.KeyHooks, 2)},
		},
		{
			name: "list of options",
			raw:  []any{config.With(config.KeyLimit, 1)},
			want: config.Options{config.With(config.KeyLimit, 1)},
		},
		{name: "list with garbage", raw: []any{map[string]any{"hooks": 1}, 5}, want: config.Options{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, config.Coerce(tt.raw))
		})
	}
}

func TestLoadOptions_YAMLKeepsOrder(t *testing.T) {
	path := writeFile(t, "opts.yaml", `
ttl-interval: -1
default-ttl: 500
limit:
  size: 100
  policy: listing
record-stats: true
`)

	opts, err := config.LoadOptions(path)
	require.NoError(t, err)
	require.Len(t, opts, 4)

	assert.Equal(t, config.KeyTTLInterval, opts[0].Key)
	assert.Equal(t, -1, opts[0].Value)
	assert.Equal(t, config.KeyDefaultTTL, opts[1].Key)
	assert.Equal(t, 500, opts[1].Value)
	assert.Equal(t, map[string]any{"size": 100, "policy": "listing"}, opts[2].Value)
	assert.Equal(t, true, opts[3].Value)
}

func TestLoadOptions_YAMLSequence(t *testing.T) {
	path := writeFile(t, "opts.yml", `
- transactions: "yes"
- transactions: true
`)

	opts, err := config.LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, config.Options{
		config.With(config.KeyTransactions, "yes"),
		config.With(config.KeyTransactions, true),
	}, opts)
}

func TestLoadOptions_YAMLEmpty(t *testing.T) {
	opts, err := config.LoadOptions(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestLoadOptions_TOML(t *testing.T) {
	path := writeFile(t, "opts.toml", `
default-ttl = 250
disable-ode = true

[limit]
size = 10
`)

	opts, err := config.LoadOptions(path)
	require.NoError(t, err)
	require.Len(t, opts, 3)

	assert.Equal(t, config.With(config.KeyDefaultTTL, int64(250)), opts[0])
	assert.Equal(t, config.With(config.KeyDisableODE, true), opts[1])
	assert.Equal(t, config.KeyLimit, opts[2].Key)
	assert.Equal(t, map[string]any{"size": int64(10)}, opts[2].Value)
}

func TestLoadOptions_JSON(t *testing.T) {
	path := writeFile(t, "opts.json", `{"ttl-interval": 0, "fallback-args": [1, "a"]}`)

	opts, err := config.LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, config.Options{
		config.With(config.KeyFallbackArgs, []any{json.Number("1"), "a"}),
		config.With(config.KeyTTLInterval, json.Number("0")),
	}, opts)
}

func TestLoadOptions_Errors(t *testing.T) {
	_, err := config.LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.LoadOptions(writeFile(t, "opts.ini", "a=b"))
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.LoadOptions(writeFile(t, "bad.yaml", "- a: 1\n- 2\n"))
	require.Error(t, err)

	_, err = config.LoadOptions(writeFile(t, "bad.json", "{"))
	require.Error(t, err)
}

func TestState_TTLInterval(t *testing.T) {
	var st config.State
	_, ok := st.TTLInterval()
	assert.False(t, ok)
	assert.False(t, st.HasDefaultTTL())

	st.Janitor = &config.JanitorCfg{Interval: 0}
	interval, ok := st.TTLInterval()
	assert.True(t, ok)
	assert.Zero(t, interval)

	st.DefaultTTL = time.Second
	assert.True(t, st.HasDefaultTTL())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
