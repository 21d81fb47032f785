package bench

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testReport() Report {
	return Report{
		CPU: []string{"avx2"},
		Samples: []SampleResult{
			{
				Name:  "random",
				Title: "Random Characters",
				Seed:  1,
				Results: []Result{
					{Strategy: "use_branches", Count: 14, Elapsed: 1500 * time.Nanosecond},
					{Strategy: "use_table", Count: 14, Elapsed: 900 * time.Nanosecond},
				},
			},
			{
				Name:  "alternating",
				Title: "Alternating Whitespace",
				Seed:  2,
				Results: []Result{
					{Strategy: "use_branches", Count: 50, Elapsed: 2 * time.Microsecond},
					{Strategy: "use_table", Count: 50, Elapsed: time.Microsecond},
				},
			},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, testReport()))

	want := `Random Characters
=================
use_branches : 14 found in 1500ns
use_table    : 14 found in 900ns

Alternating Whitespace
======================
use_branches : 50 found in 2000ns
use_table    : 50 found in 1000ns
`
	assert.Equal(t, want, buf.String())
}

func TestTextWriterWidth(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTextWriter(&buf, Strategies())
	require.NoError(t, tw.WriteSample(SampleResult{
		Title:   "T",
		Results: []Result{{Strategy: "use_crt", Count: 1, Elapsed: 3}},
	}))
	assert.Equal(t, "T\n=\nuse_crt      : 1 found in 3ns\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, testReport()))

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testReport(), got)
	assert.Contains(t, buf.String(), `"elapsed_ns": 1500`)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, testReport()))

	var got Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testReport(), got)
	assert.Contains(t, buf.String(), "title: Alternating Whitespace")
}
