package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandSubstitutesWithFlagPrefix(t *testing.T) {
	out, err := Expand(
		"tool {arg}",
		map[string]string{"arg": "--input="},
		map[string]string{"arg": "data.csv"},
	)
	require.NoError(t, err)
	assert.Equal(t, `tool --input="data.csv"`, out)
}

func TestExpandMissingArgBecomesEmpty(t *testing.T) {
	out, err := Expand("run {a} {b}", nil, map[string]string{"a": "x"})
	require.NoError(t, err)
	assert.Equal(t, `run "x" `, out)
}

func TestExpandNoPlaceholdersReturnsUnchanged(t *testing.T) {
	out, err := Expand("plain command -v", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "plain command -v", out)
}

func TestExpandNestedBraces(t *testing.T) {
	// The outer group is the placeholder; inner braces belong to its
	// name and the whole group degrades to empty when unsupplied.
	out, err := Expand("awk {prog {x}} done", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "awk  done", out)
}

func TestExpandUnbalancedBraces(t *testing.T) {
	for _, tmpl := range []string{"tool {arg", "tool arg}", "a {b {c} d"} {
		_, err := Expand(tmpl, nil, nil)
		require.Error(t, err, "template %q", tmpl)
		var terr *Error
		assert.ErrorAs(t, err, &terr)
	}
}

func TestExpandQuotesEmbeddedQuote(t *testing.T) {
	out, err := Expand("echo {msg}", nil, map[string]string{"msg": `say "hi"`})
	require.NoError(t, err)
	assert.Equal(t, `echo "say \"hi\""`, out)
}

func TestExpandMultipleArgs(t *testing.T) {
	out, err := Expand(
		"viewer {file} {mode} {unused}",
		map[string]string{"mode": "-m "},
		map[string]string{"file": "panel.ui", "mode": "expert"},
	)
	require.NoError(t, err)
	assert.Equal(t, `viewer "panel.ui" -m "expert" `, out)
}

func TestPlaceholders(t *testing.T) {
	names, err := Placeholders("a {one} b {two {three}} c")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two {three}"}, names)

	names, err = Placeholders("no groups")
	require.NoError(t, err)
	assert.Empty(t, names)
}
