// Package browser opens feed links in the user's browser.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNoLink reports a record without a usable link ("", "#").
var ErrNoLink = errors.New("no link to open")

// start launches the platform opener; tests replace it.
var start = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Resolve turns a feed link into an absolute http(s) URL. Relative links such
// as "news.html" or "players/profile.html?handle=x" resolve against base.
func Resolve(base, link string) (string, error) {
	link = strings.TrimSpace(link)
	if link == "" || link == "#" {
		return "", ErrNoLink
	}
	ref, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if !ref.IsAbs() {
		if base == "" {
			return "", fmt.Errorf("relative link %q needs a site address in the config", link)
		}
		b, err := url.Parse(base)
		if err != nil {
			return "", fmt.Errorf("invalid site address: %w", err)
		}
		ref = b.ResolveReference(ref)
	}
	return ref.String(), nil
}

// Open resolves link against base and opens it.
func Open(base, link string) error {
	rawURL, err := Resolve(base, link)
	if err != nil {
		return err
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}

	switch runtime.GOOS {
	case "darwin":
		return start("open", rawURL)
	case "windows":
		// Use rundll32 instead of cmd /c start to avoid shell interpretation
		return start("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		return start("xdg-open", rawURL)
	}
}
