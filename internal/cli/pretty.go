package cli

import (
	"io"

	"github.com/fatih/color"
)

// printer styles human output. Colors are dropped unless out is a terminal.
type printer struct {
	out   io.Writer
	title *color.Color
	faint *color.Color
	good  *color.Color
	bad   *color.Color
}

func newPrinter(out io.Writer) *printer {
	p := &printer{
		out:   out,
		title: color.New(color.Bold, color.Underline),
		faint: color.New(color.Faint),
		good:  color.New(color.FgGreen, color.Bold),
		bad:   color.New(color.FgRed, color.Bold),
	}
	if !isTerminal(out) {
		for _, c := range []*color.Color{p.title, p.faint, p.good, p.bad} {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) TitleWithCount(title string, count int) error {
	if _, err := p.title.Fprint(p.out, title); err != nil {
		return err
	}
	_, err := p.faint.Fprintf(p.out, " (%d)\n", count)
	return err
}

func (p *printer) Faintln(text string) error {
	_, err := p.faint.Fprintln(p.out, text)
	return err
}

func (p *printer) Goodln(text string) error {
	_, err := p.good.Fprintln(p.out, text)
	return err
}

func (p *printer) Badf(format string, args ...any) error {
	_, err := p.bad.Fprintf(p.out, format, args...)
	return err
}
