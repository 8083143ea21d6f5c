package validate

import (
	"fmt"
	"strings"
)

// dangerousActions are dispatchers that execute shell commands.
var dangerousActions = map[string]struct{}{
	"exec":  {},
	"execr": {},
}

// CheckDangerousAction returns an advisory warning when action can run
// arbitrary commands. It never blocks: exec bindings are legitimate, the
// caller just gets something to show the user.
func CheckDangerousAction(action, params string) string {
	if _, ok := dangerousActions[strings.ToLower(action)]; ok {
		return fmt.Sprintf("%q executes shell commands. Please verify: %s", action, params)
	}
	return ""
}
