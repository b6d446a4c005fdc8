package types

import (
	"github.com/go-playground/validator/v10"
)

// ScanRequest is the request body for the scan endpoints.
type ScanRequest struct {
	Resume         *ResumeRecord `json:"resume" validate:"required"`
	JobDescription string        `json:"job_description,omitempty" validate:"omitempty,max=20000"`
}

// ScanResponse wraps a scan result with its stored identifier, when history
// persistence is enabled.
type ScanResponse struct {
	ScanID string      `json:"scan_id,omitempty"`
	Result *ScanResult `json:"result"`
}

// Validate validates the ScanRequest using the validator.
func (r *ScanRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
