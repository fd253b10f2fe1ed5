package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatContext_sampleRecord(t *testing.T) {
	got := FormatContext(SampleRecord())

	assert.Contains(t, got, "**Personal Information:**")
	assert.Contains(t, got, "Name: John Doe")
	assert.Contains(t, got, "Location: San Francisco, CA")
	assert.Contains(t, got, "• Senior Software Engineer at Tech Corp (2021-2024)")
	assert.Contains(t, got, "  Led development of scalable web applications using Python and React")
	assert.Contains(t, got, "**Certifications:**")
	assert.Contains(t, got, "• AWS Certified Developer")
}

func TestFormatContext_idempotent(t *testing.T) {
	rec := SampleRecord()
	assert.Equal(t, FormatContext(rec), FormatContext(rec))
}

func TestFormatContext_omitsEmptySections(t *testing.T) {
	rec := Record{
		Name:  "Jane Smith",
		Email: ValueNotFound,
		Phone: ValueNotFound,
	}
	got := FormatContext(rec)

	assert.Contains(t, got, "**Personal Information:**")
	assert.NotContains(t, got, "**Work Experience:**")
	assert.NotContains(t, got, "**Education:**")
	assert.NotContains(t, got, "**Technical Skills:**")
	assert.NotContains(t, got, "**Certifications:**")
	assert.NotContains(t, got, "Location:")
}

func TestFormatContext_sectionOrder(t *testing.T) {
	got := FormatContext(SampleRecord())

	headers := []string{
		"**Personal Information:**",
		"**Work Experience:**",
		"**Education:**",
		"**Technical Skills:**",
		"**Certifications:**",
	}
	last := -1
	for _, h := range headers {
		idx := strings.Index(got, h)
		require.GreaterOrEqual(t, idx, 0, "missing header %s", h)
		assert.Greater(t, idx, last, "header %s out of order", h)
		last = idx
	}
}
