package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"literal-generator/internal/diagnostic"
)

// Printer writes command results and diagnostics, colored when the output is
// a terminal.
type Printer struct {
	Out io.Writer
	Err io.Writer

	errColor  *color.Color
	warnColor *color.Color
	infoColor *color.Color
	addColor  *color.Color
	delColor  *color.Color
}

// NewPrinter creates a printer. Colors are used only when noColor is unset
// and w is a terminal.
func NewPrinter(out, errOut io.Writer, noColor bool) *Printer {
	p := &Printer{
		Out:       out,
		Err:       errOut,
		errColor:  color.New(color.FgRed, color.Bold),
		warnColor: color.New(color.FgYellow),
		infoColor: color.New(color.Faint),
		addColor:  color.New(color.FgGreen),
		delColor:  color.New(color.FgRed),
	}

	enabled := !noColor && isTerminal(out)

	for _, c := range []*color.Color{p.errColor, p.warnColor, p.infoColor, p.addColor, p.delColor} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Diagnostics prints errors, warnings and, when verbose, infos.
func (p *Printer) Diagnostics(d *diagnostic.Diagnostics, verbose bool) {
	if d == nil {
		return
	}

	for _, e := range d.Errors {
		fmt.Fprintf(p.Err, "%s %s\n", p.errColor.Sprint("error:"), e)
	}

	for _, w := range d.Warnings {
		fmt.Fprintf(p.Err, "%s %s\n", p.warnColor.Sprint("warning:"), w)
	}

	if !verbose {
		return
	}

	for _, i := range d.Infos {
		fmt.Fprintln(p.Err, p.infoColor.Sprintf("info: %s", i))
	}
}

// Diff prints a line diff produced by gen.LineDiff.
func (p *Printer) Diff(filename, diff string) {
	fmt.Fprintf(p.Out, "--- %s\n+++ %s (generated)\n", filename, filename)

	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case line == "":
		case strings.HasPrefix(line, "+"):
			p.addColor.Fprint(p.Out, line)
		case strings.HasPrefix(line, "-"):
			p.delColor.Fprint(p.Out, line)
		default:
			fmt.Fprint(p.Out, line)
		}
	}
}

// newLogger builds a console logger writing to w, at debug level when verbose
// and warnings only otherwise.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)

	return zap.New(core)
}
