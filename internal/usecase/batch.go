package usecase

// BatchFailure identifies one entity a batch operation could not process.
type BatchFailure struct {
	ID  string `json:"id"`
	Err string `json:"error"`
}

// BatchResult reports the outcome of a batch operation (auto-billing,
// overdue sweep). Items are processed independently: one failure never
// blocks the rest of the run.
type BatchResult struct {
	Succeeded int            `json:"succeeded"`
	Failures  []BatchFailure `json:"failures,omitempty"`
}
