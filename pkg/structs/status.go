package structs

import (
	"strings"
)

type Status string

const (
	// transient states
	PENDING Status = "PENDING"
	RUNNING Status = "RUNNING"

	// end states
	COMPLETED Status = "COMPLETED"
	ERRORED   Status = "ERRORED"
	SKIPPED   Status = "SKIPPED"
)

func IsFinalStatus(status Status) bool {
	switch status {
	case COMPLETED, ERRORED, SKIPPED:
		return true
	default:
		return false
	}
}

func ToStatus(s string) Status {
	switch strings.ToUpper(s) {
	case "PENDING":
		return PENDING
	case "RUNNING":
		return RUNNING
	case "COMPLETED":
		return COMPLETED
	case "ERRORED":
		return ERRORED
	case "SKIPPED":
		return SKIPPED
	default:
		return ""
	}
}
