package workflow

import (
	"github.com/resiops/resiops/internal/domain/tasks"
	"github.com/resiops/resiops/internal/domain/ward"
)

// PriorityForSeverity maps a clinical severity code to a task priority.
// Unrecognized or empty codes map to low; the function is total and never
// fails, so it stays safe against malformed historical data.
func PriorityForSeverity(severidad string) string {
	switch severidad {
	case ward.SeverityIV:
		return tasks.PriorityHigh
	case ward.SeverityIII:
		return tasks.PriorityMedium
	default:
		return tasks.PriorityLow
	}
}
