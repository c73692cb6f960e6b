package source

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"menu":[]}`), 0o644))

	r := New(dir)
	stream, err := r.Resolve("menu.json")
	require.NoError(t, err)
	defer stream.Close()

	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, `{"menu":[]}`, string(data))
}

func TestResolveMissingFileReportsNotFound(t *testing.T) {
	r := New(t.TempDir())
	_, err := r.Resolve("missing.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveAbsolutePathIgnoresBase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abs.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	r := New("/nonexistent/base")
	stream, err := r.Resolve(path)
	require.NoError(t, err)
	stream.Close()
}

func TestResolveHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/menus/root.json":
			io.WriteString(w, `{"menu":[{"type":"separator"}]}`)
		default:
			http.NotFound(w, req)
		}
	}))
	defer srv.Close()

	r := New(srv.URL + "/menus/")
	stream, err := r.Resolve("root.json")
	require.NoError(t, err)
	data, err := io.ReadAll(stream)
	stream.Close()
	require.NoError(t, err)
	assert.Contains(t, string(data), "separator")

	err = r.Check("gone.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveHTTPUnreachable(t *testing.T) {
	r := New("")
	_, err := r.Resolve("http://127.0.0.1:1/menu.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestCheckClosesStream(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.json"), []byte("{}"), 0o644))
	r := New(dir)
	assert.NoError(t, r.Check("ok.json"))
	assert.Error(t, r.Check("nope.json"))
}

func TestName(t *testing.T) {
	cases := []struct {
		ref  string
		want string
	}{
		{"menus/operators.json", "operators"},
		{"/abs/path/root.json", "root"},
		{"http://example.com/a/b/expert.json?v=1", "expert"},
		{"plain", "plain"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Name(tc.ref), "ref %q", tc.ref)
	}
}

func TestJoinURLBase(t *testing.T) {
	r := New("http://example.com/menus/")
	assert.Equal(t, "http://example.com/menus/sub.json", r.Join("sub.json"))
	assert.Equal(t, "http://other.com/x.json", r.Join("http://other.com/x.json"))
}
