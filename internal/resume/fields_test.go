package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFields_basicContact(t *testing.T) {
	rec := ExtractFields("Jane Smith\nEmail: jane@x.com\n555-123-4567")

	assert.Equal(t, "Jane Smith", rec.Name)
	assert.Equal(t, "jane@x.com", rec.Email)
	assert.Equal(t, "555-123-4567", rec.Phone)
}

func TestExtractFields_emptyInput(t *testing.T) {
	rec := ExtractFields("")

	assert.Equal(t, NameUnknown, rec.Name)
	assert.Equal(t, ValueNotFound, rec.Email)
	assert.Equal(t, ValueNotFound, rec.Phone)
	assert.Empty(t, rec.Skills)
	assert.Empty(t, rec.Experience)
	assert.Empty(t, rec.Education)
	assert.Empty(t, rec.Sections)
}

func TestExtractFields_allFieldsPresent(t *testing.T) {
	// Every field must carry a value or a sentinel, never be absent.
	rec := ExtractFields("some text without anything useful in it")

	assert.NotNil(t, rec.Skills)
	assert.NotNil(t, rec.Experience)
	assert.NotNil(t, rec.Education)
	assert.NotNil(t, rec.Certifications)
	assert.NotNil(t, rec.Sections)
}

func TestExtractName_skipsContactLines(t *testing.T) {
	lines := []string{"jane@x.com", "Phone: 555", "Jane Smith"}
	assert.Equal(t, "Jane Smith", extractName(lines))
}

func TestExtractName_fallsBackToFirstLine(t *testing.T) {
	// No line in the first three qualifies; the very first line wins.
	lines := []string{"email: jane@x.com", "tel 555", "linkedin.com/in/jane"}
	assert.Equal(t, "email: jane@x.com", extractName(lines))
}

func TestExtractName_rejectsLongLines(t *testing.T) {
	lines := []string{"Senior staff software engineer with ten years", "Jane Smith"}
	assert.Equal(t, "Jane Smith", extractName(lines))
}

func TestExtractPhone_patternOrder(t *testing.T) {
	// The dashed pattern is tried first, so it wins even when a
	// parenthesized number appears earlier in the text.
	text := "(111) 222-3333 and 555-123-4567"
	assert.Equal(t, "555-123-4567", extractPhone(text))
}

func TestExtractPhone_parenthesized(t *testing.T) {
	assert.Equal(t, "(555) 123-4567", extractPhone("call (555) 123-4567"))
}

func TestExtractPhone_international(t *testing.T) {
	assert.Equal(t, "+1-555-123-4567", extractPhone("reach me at +1-555-123-4567"))
}

func TestIdentifySections_firstMatchPerCategory(t *testing.T) {
	text := "Jane\nWORK HISTORY\nmore\nEDUCATION\nProfessional Experience"
	rec := ExtractFields(text)

	require.Contains(t, rec.Sections, "experience")
	require.Contains(t, rec.Sections, "education")
	// "Professional Experience" on line 4 must not overwrite line 1.
	assert.Equal(t, 1, rec.Sections["experience"])
	assert.Equal(t, 3, rec.Sections["education"])
}

func TestExtractSkills_delimitersAndDedup(t *testing.T) {
	text := "Jane\nSKILLS\nGo, Python, Docker\nTechnologies\nGo; Kubernetes"
	rec := ExtractFields(text)

	assert.Contains(t, rec.Skills, "Go")
	assert.Contains(t, rec.Skills, "Python")
	assert.Contains(t, rec.Skills, "Docker")
	assert.Contains(t, rec.Skills, "Kubernetes")
	// "Go" appears under both indicator lines but is kept once.
	count := 0
	for _, s := range rec.Skills {
		if s == "Go" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractSkills_wholeLineWhenShort(t *testing.T) {
	text := "Jane\nTechnical Skills\nMachine Learning"
	rec := ExtractFields(text)
	assert.Contains(t, rec.Skills, "Machine Learning")
}

func TestExtractSkills_windowIsFourLines(t *testing.T) {
	text := "SKILLS\na\nb\nc\nd\nOutOfWindow"
	rec := ExtractFields(text)
	assert.NotContains(t, rec.Skills, "OutOfWindow")
}

func TestExtractExperience_requiresTitleKeyword(t *testing.T) {
	text := "Jane\nEXPERIENCE\nSenior Software Engineer at Tech Corp\nSome unrelated line here\nProduct Manager at Acme Inc"
	rec := ExtractFields(text)

	require.Len(t, rec.Experience, 2)
	assert.Equal(t, "Senior Software Engineer at Tech Corp", rec.Experience[0].Heading)
	assert.Equal(t, "Product Manager at Acme Inc", rec.Experience[1].Heading)
}

func TestExtractExperience_shortLinesSkipped(t *testing.T) {
	text := "EXPERIENCE\nLead Engineer" // only two tokens
	rec := ExtractFields(text)
	assert.Empty(t, rec.Experience)
}

func TestExtractEducation_degreeKeyword(t *testing.T) {
	text := "Jane\nEDUCATION\nBachelor of Science in Computer Science\nUniversity of Somewhere"
	rec := ExtractFields(text)

	require.NotEmpty(t, rec.Education)
	assert.Contains(t, rec.Education, "Bachelor of Science in Computer Science")
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("  a  \n\n\nb\n   \nc")
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}
