package notify

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

var uriValidator = validator.New()

// ParseURI resolves an element value to an absolute URI. Absolute local
// paths are accepted and converted to file URIs; anything else must carry a
// scheme.
func ParseURI(raw string) (*url.URL, error) {
	if filepath.IsAbs(raw) {
		return fileURL(raw), nil
	}
	if err := uriValidator.Var(raw, "required,uri"); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURI, raw)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURI, raw)
	}
	return u, nil
}

func fileURL(path string) *url.URL {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		// drive-letter paths: C:/x -> /C:/x
		p = "/" + p
	}
	return &url.URL{Scheme: "file", Path: p}
}

// localPath returns the filesystem path behind a file URI.
func localPath(u *url.URL) (string, bool) {
	if u == nil || u.Scheme != "file" || u.Path == "" {
		return "", false
	}
	p := u.Path
	// /C:/x -> C:/x
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	return filepath.FromSlash(p), true
}
