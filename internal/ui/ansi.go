package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// SetColorMode forces or disables color. "auto" leaves detection to lipgloss.
func SetColorMode(mode string) {
	switch strings.ToLower(mode) {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func OK(msg string) { fmt.Println(current.Success.Render(current.SymCheck + " " + msg)) }
func Fail(msg string) {
	fmt.Fprintln(os.Stderr, current.Error.Render(current.SymCross+" "+msg))
}
