package launcher

import "strings"

// shellTokens are the syntax fragments that force shell interpretation.
var shellTokens = []string{"&", "|", ">", "<", ";", "$(", "`"}

// HasShellSyntax reports whether the command needs a shell to run, rather
// than a direct program+argv launch.
func HasShellSyntax(command string) bool {
	for _, tok := range shellTokens {
		if strings.Contains(command, tok) {
			return true
		}
	}
	return false
}

// splitArgs splits a command line into an argument vector. Double-quoted
// segments are kept as single arguments with the quotes stripped.
func splitArgs(command string) []string {
	var (
		args    []string
		current strings.Builder
		quoted  bool
		started bool
	)

	for _, r := range command {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case !quoted && (r == ' ' || r == '\t'):
			if started {
				args = append(args, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if started {
		args = append(args, current.String())
	}
	return args
}
