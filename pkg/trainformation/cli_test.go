package trainformation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/formation/pkg/formation"
)

func TestWriteOutput(t *testing.T) {
	sections := formation.Decode("@A[1:1]")

	tests := []struct {
		format   string
		contains string
	}{
		{format: "json", contains: `"Sector": "A"`},
		{format: "yaml", contains: "sector: A"},
		{format: "pretty", contains: `Sector:`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buffer bytes.Buffer

			require.NoError(t, writeOutput(&buffer, tt.format, sections))
			assert.Contains(t, buffer.String(), tt.contains)
		})
	}
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	var buffer bytes.Buffer

	assert.Error(t, writeOutput(&buffer, "xml", nil))
}
