package command

import "strings"

// quoteWindows wraps a path in double quotes, doubling embedded
// backslashes so the shell-level parser reproduces the original path.
func quoteWindows(path string) string {
	return `"` + strings.ReplaceAll(path, `\`, `\\`) + `"`
}

// quoteSingle wraps a path in single quotes. Embedded single quotes use
// the '"'"' idiom: close the quote, emit a double-quoted quote, reopen.
func quoteSingle(path string) string {
	return `'` + strings.ReplaceAll(path, `'`, `'"'"'`) + `'`
}

// quoteDouble wraps a path in plain double quotes.
func quoteDouble(path string) string {
	return `"` + path + `"`
}
