// Package output handles what linctl writes where: JSON values on stdout,
// everything else on stderr. Success prints the value, failure prints an
// object with a single error field; both are the machine surface of the
// tool, so stdout never carries anything else.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Printer writes command results.
type Printer struct {
	out io.Writer
	err io.Writer
}

// NewPrinter creates a printer bound to stdout and stderr.
func NewPrinter() *Printer {
	return &Printer{out: os.Stdout, err: os.Stderr}
}

// NewPrinterWithWriters creates a printer with custom writers (for testing)
func NewPrinterWithWriters(out, err io.Writer) *Printer {
	return &Printer{out: out, err: err}
}

// JSON prints v as indented JSON on stdout. An empty slice prints as [],
// never null, so listings stay iterable for consumers.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// Error prints err as a JSON error object on stdout. The caller is
// expected to exit non-zero afterwards.
func (p *Printer) Error(err error) {
	payload := map[string]string{"error": err.Error()}
	data, marshalErr := json.MarshalIndent(payload, "", "  ")
	if marshalErr != nil {
		_, _ = fmt.Fprintf(p.out, "{\"error\": %q}\n", err.Error())
		return
	}
	_, _ = fmt.Fprintln(p.out, string(data))
}

// Notice prints a human-facing message on stderr, out of band of the JSON
// surface.
func (p *Printer) Notice(format string, args ...any) {
	_, _ = fmt.Fprintf(p.err, format+"\n", args...)
}
