package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"job_url": "https://example.com/job",
		"format_score": 80,
		"use_browser": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/job", cfg.JobURL)
	assert.Equal(t, 80, cfg.FormatScore)
	assert.True(t, cfg.UseBrowser)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		Job:    "job.txt",
		JobURL: "https://example.com/job",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_FormatScoreRange(t *testing.T) {
	err := (&Config{FormatScore: -1}).Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "format_score")

	err = (&Config{FormatScore: 101}).Validate()
	assert.Error(t, err)

	assert.NoError(t, (&Config{FormatScore: 100}).Validate())
}

func TestValidate_ResumeFileMissing(t *testing.T) {
	cfg := &Config{Resume: "/nonexistent/resume.json"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		JobURL:      "https://example.com/job",
		FormatScore: 70,
	}

	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Resume:      "resume.json",
		APIKey:      "default-key",
		FormatScore: 70,
	}

	partial := Config{
		APIKey: "custom-key",
		JobURL: "https://example.com/job",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom-key", merged.APIKey)
	assert.Equal(t, "https://example.com/job", merged.JobURL)

	// Default values should fill in empty fields
	assert.Equal(t, "resume.json", merged.Resume)
	assert.Equal(t, 70, merged.FormatScore)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Resume: "my-resume.json",
		Job:    "job.txt",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "my-resume.json", merged.Resume)
	assert.Equal(t, "job.txt", merged.Job)
}
