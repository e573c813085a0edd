package models

// JobStatus is the lifecycle state of a maintenance job.
type JobStatus string

const (
	JobStatusOpen       JobStatus = "Open"
	JobStatusInProgress JobStatus = "In Progress"
	JobStatusCompleted  JobStatus = "Completed"
	JobStatusCancelled  JobStatus = "Cancelled"
)

// JobPriority ranks a job's urgency.
type JobPriority string

const (
	JobPriorityHigh   JobPriority = "High"
	JobPriorityMedium JobPriority = "Medium"
	JobPriorityLow    JobPriority = "Low"
)

// Job is a scheduled or ongoing maintenance task. Type is free text (e.g.
// "Inspection"). The referential fields are not validated at write time.
type Job struct {
	ID                 string      `json:"id"`
	ComponentID        string      `json:"componentId"`
	ShipID             string      `json:"shipId"`
	Type               string      `json:"type"`
	Priority           JobPriority `json:"priority"`
	Status             JobStatus   `json:"status"`
	AssignedEngineerID string      `json:"assignedEngineerId"`
	ScheduledDate      string      `json:"scheduledDate"`
	Description        string      `json:"description,omitempty"`
}
