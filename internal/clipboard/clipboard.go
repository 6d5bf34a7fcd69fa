// Package clipboard copies rendered output to the system clipboard.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// CopyText attempts to copy plain text to the system clipboard.
func CopyText(text string) error {
	return copyWith(runtime.GOOS, text)
}

func copyWith(goos, text string) error {
	tools := toolsFor(goos)
	if len(tools) == 0 {
		return fmt.Errorf("unsupported platform: %s", goos)
	}

	var tried []string
	for _, tool := range tools {
		tried = append(tried, tool[0])
		if !isCommandAvailable(tool[0]) {
			continue
		}
		cmd := exec.Command(tool[0], tool[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return fmt.Errorf("no suitable clipboard tool found (tried: %s)", strings.Join(tried, ", "))
}

// toolsFor lists clipboard commands in order of preference. Each reads the
// text from stdin.
func toolsFor(goos string) [][]string {
	switch goos {
	case "linux":
		return [][]string{
			{"wl-copy"},                          // Wayland
			{"xclip", "-selection", "clipboard"}, // X11
			{"xsel", "--clipboard", "--input"},   // X11 alternative
		}
	case "darwin":
		return [][]string{{"pbcopy"}}
	case "windows":
		return [][]string{
			{"powershell", "-NoProfile", "-Command", "$input | Set-Clipboard"},
			{"clip"},
		}
	default:
		return nil
	}
}

var isCommandAvailable = func(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
