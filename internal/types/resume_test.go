package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeRecord_Normalize(t *testing.T) {
	var rec ResumeRecord
	rec.Normalize()

	assert.NotNil(t, rec.WorkExperience)
	assert.NotNil(t, rec.Education)
	assert.NotNil(t, rec.Skills)
	assert.NotNil(t, rec.CoursesAndCertifications)
	assert.Empty(t, rec.WorkExperience)
}

func TestResumeRecord_NormalizeResponsibilities(t *testing.T) {
	rec := ResumeRecord{
		WorkExperience: []ExperienceEntry{{JobTitle: "Engineer"}},
	}
	rec.Normalize()

	require.Len(t, rec.WorkExperience, 1)
	assert.NotNil(t, rec.WorkExperience[0].Responsibilities)
}

func TestResumeRecord_NormalizeKeepsData(t *testing.T) {
	rec := ResumeRecord{
		PersonalInfo: PersonalInfo{Name: "Dana"},
		Skills:       []Skill{{Name: "Go", Level: 90}},
	}
	rec.Normalize()

	assert.Equal(t, "Dana", rec.PersonalInfo.Name)
	require.Len(t, rec.Skills, 1)
	assert.Equal(t, 90, rec.Skills[0].Level)
}

func TestResumeRecord_JSONRoundTrip(t *testing.T) {
	raw := `{
		"personal_info": {"name": "Dana", "job_title": "Engineer"},
		"work_experience": [{"job_title": "Dev", "company": "Acme", "responsibilities": ["Did things"]}],
		"courses_and_certifications": [{"title": "CKA", "type": "certification"}]
	}`

	var rec ResumeRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	assert.Equal(t, "Dana", rec.PersonalInfo.Name)
	require.Len(t, rec.WorkExperience, 1)
	assert.Equal(t, []string{"Did things"}, rec.WorkExperience[0].Responsibilities)
	require.Len(t, rec.CoursesAndCertifications, 1)
	assert.Equal(t, EntryTypeCertification, rec.CoursesAndCertifications[0].Type)
}
