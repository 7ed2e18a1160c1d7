package job

// ===============================
// Job Status
// ===============================

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Jobs deliberately carry no transition guard: the admin console may move a
// job to any status at any time, so the only check is that the value is one
// of the known statuses.
func IsKnownStatus(s string) bool {
	switch Status(s) {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusActive
}
