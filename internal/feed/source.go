package feed

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
)

// Source opens the raw JSON document for a feed name such as "news".
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Location describes where name is read from, for logs and messages.
	Location(name string) string
}

// DirSource reads <name>.json from a directory tree.
type DirSource struct {
	fsys fs.FS
	root string
}

func NewDirSource(dir string) *DirSource {
	return &DirSource{fsys: os.DirFS(dir), root: dir}
}

// NewFSSource reads feeds from an arbitrary file system (embedded fixtures, tests).
func NewFSSource(fsys fs.FS) *DirSource {
	return &DirSource{fsys: fsys, root: "."}
}

func (s *DirSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.fsys.Open(name + ".json")
}

func (s *DirSource) Location(name string) string {
	return path.Join(s.root, name+".json")
}

// HTTPSource fetches <base>/<name>.json. Any non-2xx answer is a failure.
type HTTPSource struct {
	client *http.Client
	base   *url.URL
}

func NewHTTPSource(client *http.Client, base string) (*HTTPSource, error) {
	u, err := url.Parse(strings.TrimSuffix(base, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid data url: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{client: client, base: u}, nil
}

func (s *HTTPSource) Location(name string) string {
	return s.base.ResolveReference(&url.URL{Path: name + ".json"}).String()
}

func (s *HTTPSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return getURL(ctx, s.client, s.Location(name))
}

func getURL(ctx context.Context, client *http.Client, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &statusError{code: resp.StatusCode, status: resp.Status}
	}
	return resp.Body, nil
}
