// Package clipboard provides clipboard operations via platform-specific commands.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"

	"github.com/wikilens/wikilens"
)

// Compile-time interface verification.
var (
	_ wikilens.Clipboard = (*PBCopy)(nil)
	_ wikilens.Clipboard = (*XClip)(nil)
	_ wikilens.Clipboard = (*WLCopy)(nil)
)

// New returns a clipboard for the current platform, trying the commands
// actually present on the system.
func New() (wikilens.Clipboard, error) {
	if runtime.GOOS == "darwin" {
		return NewPBCopy(), nil
	}
	if _, err := exec.LookPath("wl-copy"); err == nil {
		return NewWLCopy(), nil
	}
	if _, err := exec.LookPath("xclip"); err == nil {
		return NewXClip(), nil
	}
	return nil, errors.New("no clipboard command found (need pbcopy, wl-copy, or xclip)")
}

// PBCopy implements Clipboard using the macOS pbcopy command.
type PBCopy struct{}

// NewPBCopy returns a new PBCopy clipboard.
func NewPBCopy() *PBCopy {
	return &PBCopy{}
}

// Copy writes content to the system clipboard using pbcopy.
func (p *PBCopy) Copy(content string) error {
	return pipe(content, "pbcopy")
}

// XClip implements Clipboard using the X11 xclip command.
type XClip struct{}

// NewXClip returns a new XClip clipboard.
func NewXClip() *XClip {
	return &XClip{}
}

// Copy writes content to the system clipboard using xclip.
func (x *XClip) Copy(content string) error {
	return pipe(content, "xclip", "-selection", "clipboard")
}

// WLCopy implements Clipboard using the Wayland wl-copy command.
type WLCopy struct{}

// NewWLCopy returns a new WLCopy clipboard.
func NewWLCopy() *WLCopy {
	return &WLCopy{}
}

// Copy writes content to the system clipboard using wl-copy.
func (w *WLCopy) Copy(content string) error {
	return pipe(content, "wl-copy")
}

func pipe(content, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(content)
	return cmd.Run()
}
