package health

import "time"

// Status values follow the draft health check response format
// (application/health+json).
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
)

type LivenessResponse struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version,omitempty"`
}

type ReadinessResponse struct {
	Status    Status                   `json:"status"`
	Version   string                   `json:"version"`
	ReleaseID string                   `json:"releaseId,omitempty"`
	Notes     []string                 `json:"notes,omitempty"`
	Checks    map[string][]CheckDetail `json:"checks"`
}

// CheckDetail reports one component. ObservedValue is the check latency in
// milliseconds.
type CheckDetail struct {
	ComponentID   string    `json:"componentId"`
	ComponentType string    `json:"componentType"`
	Status        Status    `json:"status"`
	ObservedValue float64   `json:"observedValue"`
	ObservedUnit  string    `json:"observedUnit"`
	Time          time.Time `json:"time"`
	Output        string    `json:"output,omitempty"`
}
