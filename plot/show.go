package plot

import (
	"os/exec"
	"runtime"
)

// openImage launches the platform image viewer for path. Display is best
// effort: every failure is discarded, so a machine without a display
// surface never affects the saved file or the caller's result.
func openImage(path string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return
	}
	// Detach; the viewer's exit status is irrelevant.
	_ = cmd.Process.Release()
}
