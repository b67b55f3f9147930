package logger

import (
	"fmt"
	"io"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Tag colors for each severity. Only the tag is colored, the message stays plain.
var (
	okTag    = color.New(color.FgGreen).SprintFunc()
	warnTag  = color.New(color.FgYellow).SprintFunc()
	errorTag = color.New(color.FgRed).SprintFunc()
	debugTag = color.New(color.FgCyan).SprintFunc()
)

// OK prints a success line prefixed with a green [OK] tag.
func OK(format string, a ...any) { emit(okTag("[OK]"), format, a...) }

// Warn prints a warning line prefixed with a yellow [WARN] tag.
// It is used for conflict prompts, so it does not imply anything went wrong.
func Warn(format string, a ...any) { emit(warnTag("[WARN]"), format, a...) }

// Error prints a red [ERROR] line. Callers print it once, right before giving up.
func Error(format string, a ...any) { emit(errorTag("[ERROR]"), format, a...) }

// Info prints an untagged progress line.
func Info(format string, a ...any) {
	_, _ = fmt.Fprintf(color.Output, format+"\n", a...)
}

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It is reassigned by Init based on the --debug flag.
var Debug = func(format string, a ...any) {}

// Init initializes the logger package, specifically enabling or disabling debug logging.
// When enabled, Debug prints [DEBUG] lines; when disabled it silently ignores them.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = func(format string, a ...any) { emit(debugTag("[DEBUG]"), format, a...) }
	} else {
		Debug = func(format string, a ...any) {}
	}
}

// DisableColor strips ANSI colors from every tag regardless of terminal detection.
func DisableColor() {
	color.NoColor = true
}

// SetOutput redirects all log lines to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := color.Output
	color.Output = w
	return prev
}

// Output returns the writer log lines currently go to.
func Output() io.Writer {
	return color.Output
}

// render renders a tagged line without printing it.
func render(tag, format string, a ...any) string {
	return tag + " " + fmt.Sprintf(format, a...) + "\n"
}

func emit(tag, format string, a ...any) {
	_, _ = io.WriteString(color.Output, render(tag, format, a...))
}
