package audit

type AttemptResponse struct {
	Username      string  `json:"username"`
	SourceAddress *string `json:"source_address,omitempty"`
	Success       bool    `json:"success"`
	FailureReason *string `json:"failure_reason,omitempty"`
	AttemptedAt   string  `json:"attempted_at"`
}
