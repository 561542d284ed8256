// Package printer provides styled, user-facing console output for commands.
// Log output goes to the log file; anything the user is meant to read goes
// through a Printer.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/docketcli/docket/internal/core/styles"
)

// Printer writes user-facing messages to the console.
type Printer struct {
	out    io.Writer
	errOut io.Writer
}

// New creates a Printer writing to the given streams.
func New(out, errOut io.Writer) *Printer {
	return &Printer{out: out, errOut: errOut}
}

type ctxKey struct{}

// WithPrinter returns a context carrying p.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer carried by ctx, or a default stdout/stderr
// printer when none was attached.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout, os.Stderr)
}

// Success prints a check-marked message with optional detail lines.
func (p *Printer) Success(msg string, details ...string) {
	fmt.Fprintln(p.out, styles.SuccessStyle.Render("✓"), msg)
	for _, d := range details {
		fmt.Fprintln(p.out, styles.SubtleStyle.Render("  "+d))
	}
}

// Successf prints a check-marked formatted message.
func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintln(p.out, styles.SuccessStyle.Render("✓"), fmt.Sprintf(format, args...))
}

// Infof prints an informational message.
func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintln(p.out, fmt.Sprintf(format, args...))
}

// Warnf prints a warning message.
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintln(p.out, styles.WarningStyle.Render("!"), fmt.Sprintf(format, args...))
}

// Errorf prints an error message to the error stream.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintln(p.errOut, styles.ErrorStyle.Render("✗"), fmt.Sprintf(format, args...))
}

// Printf prints a plain line.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintln(p.out, fmt.Sprintf(format, args...))
}

// Section prints a styled section header.
func (p *Printer) Section(name string) {
	fmt.Fprintln(p.out, styles.TitleStyle.Render(name))
}

// CheckItem prints an indented passing check with optional detail.
func (p *Printer) CheckItem(label, detail string) {
	p.item(styles.SuccessStyle.Render("✔"), label, detail)
}

// WarnItem prints an indented warning check with optional detail.
func (p *Printer) WarnItem(label, detail string) {
	p.item(styles.WarningStyle.Render("●"), label, detail)
}

// FailItem prints an indented failing check with optional detail.
func (p *Printer) FailItem(label, detail string) {
	p.item(styles.ErrorStyle.Render("✘"), label, detail)
}

func (p *Printer) item(icon, label, detail string) {
	if detail != "" {
		detail = " " + styles.SubtleStyle.Render(detail)
	}
	fmt.Fprintf(p.out, "  %s %s%s\n", icon, label, detail)
}
