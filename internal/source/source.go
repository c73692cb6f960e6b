// Package source resolves menu document references to readable streams.
// A reference is either an http(s) URL or a local file path; relative
// paths are joined with the configured base. Resolution is one-shot:
// callers read the stream fully and close it before parsing continues.
package source

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound marks references whose target does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrUnreachable marks references that could not be fetched due to a
	// transport failure.
	ErrUnreachable = errors.New("document unreachable")
)

// Resolver locates menu documents relative to a base path or URL.
type Resolver struct {
	Base string

	// Client is used for http(s) references. The default client is used
	// when nil.
	Client *http.Client
}

// New returns a Resolver rooted at base.
func New(base string) *Resolver {
	return &Resolver{Base: base}
}

// Resolve opens the referenced document for reading. The caller owns the
// returned stream and must close it.
func (r *Resolver) Resolve(ref string) (io.ReadCloser, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("empty document reference: %w", ErrNotFound)
	}
	full := r.Join(ref)
	if isURL(full) {
		return r.fetch(full)
	}
	return openFile(full)
}

// Check probes the referenced document for existence without parsing it.
// Used for file-choice validation, where only reachability matters.
func (r *Resolver) Check(ref string) error {
	stream, err := r.Resolve(ref)
	if err != nil {
		return err
	}
	return stream.Close()
}

// Join combines the resolver base with a reference. Absolute paths and
// URLs are returned unchanged.
func (r *Resolver) Join(ref string) string {
	ref = strings.TrimSpace(ref)
	if isURL(ref) || filepath.IsAbs(ref) || r.Base == "" {
		return ref
	}
	if isURL(r.Base) {
		base, err := url.Parse(r.Base)
		if err != nil {
			return ref
		}
		joined, err := base.Parse(ref)
		if err != nil {
			return ref
		}
		return joined.String()
	}
	return filepath.Join(r.Base, ref)
}

func (r *Resolver) fetch(rawURL string) (io.ReadCloser, error) {
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %v: %w", rawURL, err, ErrUnreachable)
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %q: %w", rawURL, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %q: status %s: %w", rawURL, resp.Status, ErrUnreachable)
	}
	return resp.Body, nil
}

func openFile(path string) (io.ReadCloser, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		abs = path
	}
	f, err := os.Open(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("open %q: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("open %q: %v: %w", path, err, ErrUnreachable)
	}
	return f, nil
}

func isURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Name returns the display name for a reference: the base name with the
// extension stripped. Used as the default menu title.
func Name(ref string) string {
	base := filepath.Base(strings.TrimSpace(ref))
	if u, err := url.Parse(ref); err == nil && u.Path != "" && isURL(ref) {
		base = filepath.Base(u.Path)
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
