// Package types provides type definitions for structured data used throughout the ATS scanner.
package types

// PersonalInfo holds the contact block of a resume. Every field is optional;
// the editing UI may send partially filled records.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	JobTitle string `json:"job_title,omitempty"`
	Location string `json:"location,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// ExperienceEntry is a single work-experience position.
type ExperienceEntry struct {
	JobTitle         string   `json:"job_title,omitempty"`
	Company          string   `json:"company,omitempty"`
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
	Location         string   `json:"location,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// EducationEntry is a single education record.
type EducationEntry struct {
	Degree         string `json:"degree,omitempty"`
	Institution    string `json:"institution,omitempty"`
	GraduationYear string `json:"graduation_year,omitempty"`
	GPA            string `json:"gpa,omitempty"`
	Location       string `json:"location,omitempty"`
}

// Skill is a named skill with a self-assessed proficiency level (0-100).
type Skill struct {
	Name  string `json:"name,omitempty"`
	Level int    `json:"level,omitempty"`
}

// Certification type constants for CourseOrCertification.Type.
const (
	EntryTypeCourse        = "course"
	EntryTypeCertification = "certification"
)

// CourseOrCertification is a course or certification entry.
type CourseOrCertification struct {
	Title       string `json:"title,omitempty"`
	Provider    string `json:"provider,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
}

// ResumeRecord is the structured resume as produced by the editing UI.
// All fields are optional; absent sections score as missing, never as errors.
type ResumeRecord struct {
	PersonalInfo             PersonalInfo            `json:"personal_info,omitempty"`
	Summary                  string                  `json:"summary,omitempty"`
	WorkExperience           []ExperienceEntry       `json:"work_experience,omitempty"`
	Education                []EducationEntry        `json:"education,omitempty"`
	Skills                   []Skill                 `json:"skills,omitempty"`
	CoursesAndCertifications []CourseOrCertification `json:"courses_and_certifications,omitempty"`
}

// Normalize coerces nil collections to empty ones so scoring code never
// branches on nil. Called once at the API boundary.
func (r *ResumeRecord) Normalize() {
	if r.WorkExperience == nil {
		r.WorkExperience = []ExperienceEntry{}
	}
	for i := range r.WorkExperience {
		if r.WorkExperience[i].Responsibilities == nil {
			r.WorkExperience[i].Responsibilities = []string{}
		}
	}
	if r.Education == nil {
		r.Education = []EducationEntry{}
	}
	if r.Skills == nil {
		r.Skills = []Skill{}
	}
	if r.CoursesAndCertifications == nil {
		r.CoursesAndCertifications = []CourseOrCertification{}
	}
}
