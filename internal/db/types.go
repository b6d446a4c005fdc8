package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/ats-scanner/internal/types"
)

// Scan is a persisted scan: the resume and job description that were scored
// plus the full result.
type Scan struct {
	ID             uuid.UUID          `json:"id"`
	Resume         types.ResumeRecord `json:"resume"`
	JobDescription string             `json:"job_description,omitempty"`
	Result         types.ScanResult   `json:"result"`
	OverallScore   int                `json:"overall_score"`
	AIAssisted     bool               `json:"ai_assisted"`
	CreatedAt      time.Time          `json:"created_at"`
}

// ScanSummary is the listing view of a scan: enough to identify it without
// hauling full resume and result payloads.
type ScanSummary struct {
	ID           uuid.UUID `json:"id"`
	OverallScore int       `json:"overall_score"`
	AIAssisted   bool      `json:"ai_assisted"`
	CreatedAt    time.Time `json:"created_at"`
}
