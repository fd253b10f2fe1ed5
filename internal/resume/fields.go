package resume

import (
	"regexp"
	"strings"
)

// Field extraction is a fixed sequence of keyword/regex heuristics over the
// résumé's line list. Each rule is independent and best-effort; rules never
// fail, they just return sentinels or empty collections.

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// phonePatterns are tried in order; the first pattern with any match wins.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),                 // 123-456-7890 or 123.456.7890
	regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.]?\d{4}`),                   // (123) 456-7890
	regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`), // +1-123-456-7890
}

// sectionCategories is the fixed category order; a line is credited to the
// first category it matches.
var sectionCategories = []string{"experience", "education", "skills", "projects", "certifications", "summary"}

var sectionKeywords = map[string][]string{
	"experience":     {"experience", "work history", "employment", "professional experience"},
	"education":      {"education", "academic", "degree", "university", "college"},
	"skills":         {"skills", "technical skills", "competencies", "technologies"},
	"projects":       {"projects", "personal projects", "key projects"},
	"certifications": {"certifications", "certificates", "licenses"},
	"summary":        {"summary", "objective", "profile", "about"},
}

var (
	nameExclusions       = []string{"@", "phone", "tel", "email", "linkedin"}
	skillIndicators      = []string{"skills", "technologies", "programming", "software", "tools"}
	skillDelimiters      = []string{",", "•", "|", ";"}
	experienceIndicators = []string{"experience", "work", "employment", "professional"}
	jobTitleKeywords     = []string{"engineer", "developer", "manager", "analyst", "coordinator", "specialist"}
	educationIndicators  = []string{"education", "degree", "university", "college", "bachelor", "master", "phd"}
	degreeKeywords       = []string{"bachelor", "master", "phd", "bs", "ms", "ba", "ma"}
)

// SplitLines splits text into non-empty trimmed lines, preserving order.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ExtractFields runs all heuristic rules over the text and returns a fully
// populated Record. Pure and deterministic; no I/O.
func ExtractFields(text string) Record {
	lines := SplitLines(text)
	return Record{
		Name:           extractName(lines),
		Email:          extractEmail(text),
		Phone:          extractPhone(text),
		Skills:         extractSkills(lines),
		Experience:     extractExperience(lines),
		Education:      extractEducation(lines),
		Certifications: []string{},
		Sections:       identifySections(lines),
	}
}

// extractName scans the first three lines for something that looks like a
// person's name: no contact-info markers, 1-4 words, more than 2 characters.
func extractName(lines []string) string {
	if len(lines) == 0 {
		return NameUnknown
	}
	limit := len(lines)
	if limit > 3 {
		limit = 3
	}
	for _, line := range lines[:limit] {
		if containsAny(strings.ToLower(line), nameExclusions) {
			continue
		}
		tokens := len(strings.Fields(line))
		if tokens >= 1 && tokens <= 4 && len(line) > 2 {
			return line
		}
	}
	return lines[0]
}

func extractEmail(text string) string {
	if m := emailPattern.FindString(text); m != "" {
		return m
	}
	return ValueNotFound
}

func extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		if m := pattern.FindString(text); m != "" {
			return m
		}
	}
	return ValueNotFound
}

// identifySections records the index of the first line matching each section
// category, scanning top to bottom. A line counts for at most one category.
func identifySections(lines []string) map[string]int {
	sections := make(map[string]int)
	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, category := range sectionCategories {
			if containsAny(lower, sectionKeywords[category]) {
				if _, seen := sections[category]; !seen {
					sections[category] = i
				}
				break
			}
		}
	}
	return sections
}

// extractSkills looks at up to four lines after each skill-indicator line.
// Candidate lines are split on every delimiter present; a line with no
// delimiter counts as a single skill when it has at most three words.
// The aggregate is deduplicated, keeping first-seen order.
func extractSkills(lines []string) []string {
	var collected []string
	for i, line := range lines {
		if !containsAny(strings.ToLower(line), skillIndicators) {
			continue
		}
		end := i + 5
		if end > len(lines) {
			end = len(lines)
		}
		for _, candidate := range lines[i+1 : end] {
			if containsAny(strings.ToLower(candidate), skillIndicators) {
				continue
			}
			var parts []string
			for _, delim := range skillDelimiters {
				if strings.Contains(candidate, delim) {
					for _, p := range strings.Split(candidate, delim) {
						if p = strings.TrimSpace(p); p != "" {
							parts = append(parts, p)
						}
					}
				}
			}
			switch {
			case len(parts) > 0:
				collected = append(collected, parts...)
			case len(strings.Fields(candidate)) <= 3:
				collected = append(collected, candidate)
			}
		}
	}
	skills := []string{}
	seen := make(map[string]bool)
	for _, s := range collected {
		if !seen[s] {
			seen[s] = true
			skills = append(skills, s)
		}
	}
	return skills
}

// extractExperience looks at up to nine lines after each experience-indicator
// line for entries that have more than two words and mention a job title.
// Overlapping indicator windows may yield duplicates; that is accepted.
func extractExperience(lines []string) []ExperienceEntry {
	entries := []ExperienceEntry{}
	for i, line := range lines {
		if !containsAny(strings.ToLower(line), experienceIndicators) {
			continue
		}
		end := i + 10
		if end > len(lines) {
			end = len(lines)
		}
		for _, candidate := range lines[i+1 : end] {
			if len(strings.Fields(candidate)) <= 2 {
				continue
			}
			if containsAny(strings.ToLower(candidate), jobTitleKeywords) {
				entries = append(entries, ExperienceEntry{Heading: candidate})
			}
		}
	}
	return entries
}

// extractEducation inspects each education-indicator line and the four lines
// after it for entries that mention a degree.
func extractEducation(lines []string) []string {
	education := []string{}
	for i, line := range lines {
		if !containsAny(strings.ToLower(line), educationIndicators) {
			continue
		}
		end := i + 5
		if end > len(lines) {
			end = len(lines)
		}
		for _, candidate := range lines[i:end] {
			if containsAny(strings.ToLower(candidate), degreeKeywords) {
				education = append(education, candidate)
			}
		}
	}
	return education
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
