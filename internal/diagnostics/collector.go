package diagnostics

import (
	"errors"
	"fmt"
	"io"

	"github.com/HicaroD/monkey/internal/lexer/token"
)

var (
	ERR_PARSE_ERROR_FOUND = errors.New("parse error found")
)

type Diag struct {
	Message string
	Pos     token.Pos
}

func (diag Diag) String() string {
	if diag.Pos.Filename == "" {
		return diag.Message
	}
	return fmt.Sprintf("%s: %s", diag.Pos, diag.Message)
}

type Collector struct {
	Diags []Diag

	out io.Writer
}

func New() *Collector {
	return &Collector{
		Diags: nil,
	}
}

// NewWithOutput returns a collector that also echoes every diagnostic to
// out as soon as it is reported.
func NewWithOutput(out io.Writer) *Collector {
	return &Collector{out: out}
}

func (collector *Collector) ReportAndSave(diag Diag) {
	if collector.out != nil {
		fmt.Fprintln(collector.out, diag)
	}
	collector.Diags = append(collector.Diags, diag)
}

func (collector *Collector) HasErrors() bool {
	return len(collector.Diags) > 0
}

// Messages returns the diagnostic messages in report order.
func (collector *Collector) Messages() []string {
	messages := make([]string, 0, len(collector.Diags))
	for _, diag := range collector.Diags {
		messages = append(messages, diag.Message)
	}
	return messages
}
