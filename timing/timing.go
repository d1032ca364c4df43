//
// Copyright (c) 2020-2025 Markku Rossi
//
// All rights reserved.
//

// Package timing records timing samples of engine operations and
// renders them as a report table.
package timing

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// Timing records timing samples and renders a profiling report.
type Timing struct {
	Start   time.Time
	Headers []string
	Samples []*Sample
}

// NewTiming creates a new Timing instance. The headers name the extra
// data columns of the samples.
func NewTiming(headers ...string) *Timing {
	return &Timing{
		Start:   time.Now(),
		Headers: headers,
	}
}

// Sample adds a timing sample with label and data columns. The sample
// starts where the previous sample ended.
func (t *Timing) Sample(label string, cols []string) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Start: start,
		End:   time.Now(),
		Cols:  cols,
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Total returns the duration of all samples.
func (t *Timing) Total() time.Duration {
	if len(t.Samples) == 0 {
		return 0
	}
	return t.Samples[len(t.Samples)-1].End.Sub(t.Start)
}

// Print prints the profiling report to the writer.
func (t *Timing) Print(w io.Writer) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	for _, hdr := range t.Headers {
		tab.Header(hdr).SetAlign(tabulate.MR)
	}

	total := t.Total()
	for _, sample := range t.Samples {
		row := tab.Row()
		row.Column(sample.Label)

		duration := sample.End.Sub(sample.Start)
		row.Column(duration.String())
		row.Column(percent(duration, total))

		for _, col := range sample.Cols {
			row.Column(col)
		}

		for idx, sub := range sample.Samples {
			row := tab.Row()

			var prefix string
			if idx+1 >= len(sample.Samples) {
				prefix = "\u2570\u2574"
			} else {
				prefix = "\u251C\u2574"
			}
			row.Column(prefix + sub.Label).SetFormat(tabulate.FmtItalic)

			d := sub.Duration()
			row.Column(d.String()).SetFormat(tabulate.FmtItalic)
			row.Column(percent(d, duration)).SetFormat(tabulate.FmtItalic)

			for _, col := range sub.Cols {
				row.Column(col).SetFormat(tabulate.FmtItalic)
			}
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)

	tab.Print(w)
}

func percent(d, total time.Duration) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", float64(d)/float64(total)*100)
}

// Sample contains information about one timing sample.
type Sample struct {
	Label   string
	Start   time.Time
	End     time.Time
	Abs     time.Duration
	Cols    []string
	Samples []*Sample
}

// Duration returns the sample duration.
func (s *Sample) Duration() time.Duration {
	if s.Abs > 0 {
		return s.Abs
	}
	return s.End.Sub(s.Start)
}

// SubSample adds a sub-sample for a timing sample.
func (s *Sample) SubSample(label string, end time.Time, cols ...string) {
	start := s.Start
	if len(s.Samples) > 0 {
		start = s.Samples[len(s.Samples)-1].End
	}
	s.Samples = append(s.Samples, &Sample{
		Label: label,
		Start: start,
		End:   end,
		Cols:  cols,
	})
}

// AbsSubSample adds an absolute sub-sample for a timing sample.
func (s *Sample) AbsSubSample(label string, duration time.Duration,
	cols ...string) {
	s.Samples = append(s.Samples, &Sample{
		Label: label,
		Abs:   duration,
		Cols:  cols,
	})
}
