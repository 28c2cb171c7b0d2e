// Package browser opens task links in the system browser.
package browser

import (
	"errors"
	"fmt"
	"io"

	"github.com/pkg/browser"

	"github.com/simonbystrom/commandcenter/internal/task"
)

// ErrUnsafeLink is returned for links that are not absolute http(s) URLs.
var ErrUnsafeLink = errors.New("refusing to open non-http(s) link")

// Opener abstracts link opening so the TUI can be tested without a browser.
type Opener interface {
	Open(link task.Link) error
}

// System opens links with the platform's default browser. The browser runs
// as a separate process with no handle back to the dashboard.
type System struct{}

func init() {
	// The launcher's own output would land on the TUI's alternate screen.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

func (System) Open(link task.Link) error {
	if !link.Safe() {
		return fmt.Errorf("%w: %q", ErrUnsafeLink, link.URL)
	}
	if err := browser.OpenURL(link.URL); err != nil {
		return fmt.Errorf("open %s: %w", link.URL, err)
	}
	return nil
}
