// Package clipboard provides clipboard operations via platform-specific commands.
package clipboard

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/fwojciec/codereview"
)

// ErrUnavailable is returned when no clipboard command is installed.
var ErrUnavailable = errors.New("no clipboard command available")

// Ensure Command implements the Clipboard interface.
var _ codereview.Clipboard = (*Command)(nil)

// Command implements Clipboard by piping content into an external command
// such as pbcopy, wl-copy or xclip.
type Command struct {
	name string
	args []string
}

// NewCommand returns a clipboard that runs name with args.
func NewCommand(name string, args ...string) *Command {
	return &Command{name: name, args: args}
}

// NewPBCopy returns a clipboard using the macOS pbcopy command.
func NewPBCopy() *Command {
	return NewCommand("pbcopy")
}

// Detect picks the clipboard command for the current platform. The returned
// clipboard reports ErrUnavailable on Copy when nothing suitable is installed.
func Detect() *Command {
	for _, c := range candidates(runtime.GOOS, os.Getenv("WAYLAND_DISPLAY") != "") {
		if _, err := exec.LookPath(c.name); err == nil {
			return c
		}
	}
	return &Command{}
}

func candidates(goos string, wayland bool) []*Command {
	switch goos {
	case "darwin":
		return []*Command{NewPBCopy()}
	case "windows":
		return []*Command{NewCommand("clip.exe")}
	default:
		var cs []*Command
		if wayland {
			cs = append(cs, NewCommand("wl-copy"))
		}
		return append(cs,
			NewCommand("xclip", "-selection", "clipboard"),
			NewCommand("xsel", "--clipboard", "--input"),
		)
	}
}

// Name returns the command in use, or "" when none was found.
func (c *Command) Name() string {
	return c.name
}

// Copy writes content to the system clipboard.
func (c *Command) Copy(content string) error {
	if c.name == "" {
		return ErrUnavailable
	}
	cmd := exec.Command(c.name, c.args...)
	cmd.Stdin = strings.NewReader(content)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", c.name, err, strings.TrimSpace(string(out)))
	}
	return nil
}
