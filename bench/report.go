package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Report is the complete outcome of a benchmark invocation.
type Report struct {
	CPU     []string       `json:"cpu" yaml:"cpu"`
	Samples []SampleResult `json:"samples" yaml:"samples"`
}

// TextWriter prints sample results in the classic layout, one block per sample:
//
//	Random Characters
//	=================
//	use_branches : 3703617 found in 81234567ns
type TextWriter struct {
	w     io.Writer
	width int
	n     int
}

// NewTextWriter returns a TextWriter that aligns names to the widest strategy.
func NewTextWriter(w io.Writer, strategies []Strategy) *TextWriter {
	width := 0
	for _, s := range strategies {
		width = max(width, len(s.Name))
	}
	return &TextWriter{w: w, width: width}
}

// WriteSample prints one sample block, preceded by a blank line unless it is the first.
func (tw *TextWriter) WriteSample(res SampleResult) error {
	var sb strings.Builder
	if tw.n > 0 {
		sb.WriteByte('\n')
	}
	tw.n++

	sb.WriteString(res.Title)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("=", len(res.Title)))
	sb.WriteByte('\n')
	for _, r := range res.Results {
		fmt.Fprintf(&sb, "%-*s : %d found in %dns\n", tw.width, r.Strategy, r.Count, r.Elapsed.Nanoseconds())
	}

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// WriteText prints every sample of rep in the classic layout.
func WriteText(w io.Writer, rep Report) error {
	var width int
	for _, smp := range rep.Samples {
		for _, r := range smp.Results {
			width = max(width, len(r.Strategy))
		}
	}
	tw := &TextWriter{w: w, width: width}
	for _, smp := range rep.Samples {
		if err := tw.WriteSample(smp); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON encodes rep as indented JSON.
func WriteJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// WriteYAML encodes rep as YAML.
func WriteYAML(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}
