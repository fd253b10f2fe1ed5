package resume

// Sentinel values for fields that could not be extracted. Every Record field
// always carries a value or one of these, never an absent/null field.
const (
	NameUnknown   = "Unknown"
	ValueNotFound = "Not found"
)

// ExperienceEntry is a single work-experience item. Heuristic extraction only
// fills Heading; structured sources (the built-in sample) also carry a
// description rendered on an indented line.
type ExperienceEntry struct {
	Heading     string `json:"heading"`
	Description string `json:"description,omitempty"`
}

// Record is the structured result of résumé field extraction.
type Record struct {
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Location       string            `json:"location,omitempty"`
	Skills         []string          `json:"skills"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []string          `json:"education"`
	Certifications []string          `json:"certifications"`
	Sections       map[string]int    `json:"sections"`
}

// Parsed is the full result of parsing an uploaded résumé file.
type Parsed struct {
	RawText   string   `json:"raw_text"`
	Extracted Record   `json:"extracted_info"`
	FileInfo  FileInfo `json:"file_info"`
}

type FileInfo struct {
	Filename   string `json:"filename"`
	FileType   string `json:"file_type"`
	TotalLines int    `json:"total_lines"`
}

// SampleRecord returns the built-in sample résumé used when chatting before
// any upload has happened.
func SampleRecord() Record {
	return Record{
		Name:     "John Doe",
		Email:    "john.doe@email.com",
		Phone:    "+1 (555) 123-4567",
		Location: "San Francisco, CA",
		Skills: []string{
			"Python", "JavaScript", "React", "FastAPI", "PostgreSQL",
			"Docker", "AWS", "Git", "REST APIs", "Microservices",
		},
		Experience: []ExperienceEntry{
			{
				Heading:     "Senior Software Engineer at Tech Corp (2021-2024)",
				Description: "Led development of scalable web applications using Python and React",
			},
			{
				Heading:     "Software Engineer at StartupXYZ (2019-2021)",
				Description: "Developed REST APIs and microservices",
			},
		},
		Education: []string{
			"Bachelor of Science in Computer Science - University of Technology (2019)",
		},
		Certifications: []string{
			"AWS Certified Developer",
			"Google Cloud Professional",
		},
		Sections: map[string]int{},
	}
}
