package resume

import "strings"

// FormatContext renders a Record as the text block handed to the AI provider
// as background. Section order is fixed; sections with no content are
// omitted. Formatting the same Record twice yields identical output.
func FormatContext(rec Record) string {
	var parts []string

	parts = append(parts, "**Personal Information:**")
	parts = append(parts, "Name: "+rec.Name)
	parts = append(parts, "Email: "+rec.Email)
	parts = append(parts, "Phone: "+rec.Phone)
	if rec.Location != "" {
		parts = append(parts, "Location: "+rec.Location)
	}
	parts = append(parts, "")

	if len(rec.Experience) > 0 {
		parts = append(parts, "**Work Experience:**")
		for _, exp := range rec.Experience {
			parts = append(parts, "• "+exp.Heading)
			if exp.Description != "" {
				parts = append(parts, "  "+exp.Description)
			}
		}
		parts = append(parts, "")
	}

	if len(rec.Education) > 0 {
		parts = append(parts, "**Education:**")
		for _, edu := range rec.Education {
			parts = append(parts, "• "+edu)
		}
		parts = append(parts, "")
	}

	if len(rec.Skills) > 0 {
		parts = append(parts, "**Technical Skills:**")
		parts = append(parts, "• "+strings.Join(rec.Skills, ", "))
		parts = append(parts, "")
	}

	if len(rec.Certifications) > 0 {
		parts = append(parts, "**Certifications:**")
		for _, cert := range rec.Certifications {
			parts = append(parts, "• "+cert)
		}
		parts = append(parts, "")
	}

	return strings.TrimSpace(strings.Join(parts, "\n"))
}
