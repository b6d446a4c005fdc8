package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanRequest_Validate(t *testing.T) {
	req := ScanRequest{Resume: &ResumeRecord{}}
	assert.NoError(t, req.Validate())
}

func TestScanRequest_MissingResume(t *testing.T) {
	req := ScanRequest{JobDescription: "some job"}
	assert.Error(t, req.Validate())
}

func TestScanRequest_JobDescriptionTooLong(t *testing.T) {
	req := ScanRequest{
		Resume:         &ResumeRecord{},
		JobDescription: strings.Repeat("x", 20001),
	}
	assert.Error(t, req.Validate())
}

func TestScanResult_EnsureLists(t *testing.T) {
	var res ScanResult
	res.EnsureLists()

	assert.NotNil(t, res.Strengths)
	assert.NotNil(t, res.Suggestions)
	assert.NotNil(t, res.Warnings)
	assert.NotNil(t, res.MatchedKeywords)
	assert.NotNil(t, res.MissingKeywords)
}

func TestScanResult_EnsureListsKeepsExisting(t *testing.T) {
	res := ScanResult{Strengths: []string{"keep me"}}
	res.EnsureLists()

	assert.Equal(t, []string{"keep me"}, res.Strengths)
}
