package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	skipStyle = lipgloss.NewStyle().Faint(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

func OkLine(w io.Writer, document, output string) {
	fmt.Fprintln(w, okStyle.Render("ok")+"    "+document+" -> "+output)
}

func SkipLine(w io.Writer, document string) {
	fmt.Fprintln(w, skipStyle.Render("skip")+"  "+document)
}

func FailLine(w io.Writer, document string, err error) {
	fmt.Fprintf(w, "%s  %s: %v\n", failStyle.Render("fail"), document, err)
}

func WarnLine(w io.Writer, text string) {
	fmt.Fprintln(w, warnStyle.Render("warn")+"  "+text)
}

func SummaryLine(w io.Writer, generated, skipped, failed int) {
	fmt.Fprintf(w, "generated %d, skipped %d, failed %d\n", generated, skipped, failed)
}
