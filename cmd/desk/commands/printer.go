package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/ui/output"
	"go.trai.ch/desk/internal/ui/style"
)

// printer writes one status line per event.
type printer struct {
	out *termenv.Output
}

func newPrinter(w io.Writer) *printer {
	return &printer{out: output.New(w)}
}

func (p *printer) line(icon string, color lipgloss.Color, format string, args ...any) {
	styled := p.out.String(icon).Foreground(p.out.Color(string(color))).String()
	_, _ = fmt.Fprintf(p.out, "%s %s\n", styled, fmt.Sprintf(format, args...))
}

func (p *printer) result(input string, result domain.ValidationResult) {
	if result.Valid {
		p.line(style.Check, style.Green, "%q is %s", input, result.Amount.PlainString())
		return
	}
	p.line(style.Cross, style.Red, "%q: %s", input, message(result))
}

// message falls back to the reason when no localizer produced a text.
func message(result domain.ValidationResult) string {
	if result.Message != "" {
		return result.Message
	}
	return string(result.Reason)
}
