// Package notify wraps the desktop notification capability. The planner only
// uses the yes/no outcome to gate a UI affordance; nothing else depends on it.
package notify

import (
	"os/exec"
	"runtime"
)

func notifier() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "osascript", []string{"-e"}
	default:
		return "notify-send", nil
	}
}

// Available reports whether a desktop notifier exists on this system.
func Available() bool {
	bin, _ := notifier()
	_, err := exec.LookPath(bin)
	return err == nil
}

// Request asks for permission to notify. On the desktop there is no prompt
// to show: the outcome is simply whether a notifier is present.
func Request() bool { return Available() }

// Send fires a best-effort notification. Failures are ignored.
func Send(title, body string) {
	bin, prefix := notifier()
	var args []string
	if runtime.GOOS == "darwin" {
		args = append(prefix, `display notification "`+body+`" with title "`+title+`"`)
	} else {
		args = []string{title, body}
	}
	cmd := exec.Command(bin, args...)
	_ = cmd.Start()
}
