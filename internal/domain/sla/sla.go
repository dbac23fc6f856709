// Package sla evaluates complaint resolution deadlines. All functions are
// pure: results depend only on the arguments, never on the wall clock.
package sla

import (
	"fmt"
	"math"
	"time"
)

type Status string

const (
	StatusOnTrack  Status = "on-track"
	StatusAtRisk   Status = "at-risk"
	StatusBreached Status = "breached"
)

func (s Status) String() string {
	return string(s)
}

const (
	// RiskFraction is the share of the assigned window below which a
	// complaint is considered at risk.
	RiskFraction = 0.5

	// WarningFraction is the share of the assigned window below which a
	// warning notification is due.
	WarningFraction = 0.2

	// StalledFraction is the share of the assigned window after which a
	// complaint with no status movement counts as stalled.
	StalledFraction = 0.7
)

// Evaluation is the derived SLA state of a complaint at a given instant.
type Evaluation struct {
	Status         Status
	RemainingHours float64
	Deadline       time.Time
	Progress       float64
}

// Evaluate derives the SLA state from the assigned window and its deadline.
// RemainingHours is not clamped: it goes negative once the deadline passes.
// Progress is the elapsed share of the window in percent, clamped to [0,100].
func Evaluate(assignedHours float64, deadline time.Time, now time.Time) Evaluation {
	remaining := deadline.Sub(now).Hours()

	var status Status
	switch {
	case remaining <= 0:
		status = StatusBreached
	case remaining < assignedHours*RiskFraction:
		status = StatusAtRisk
	default:
		status = StatusOnTrack
	}

	progress := 0.0
	if assignedHours > 0 {
		windowStart := deadline.Add(-time.Duration(assignedHours * float64(time.Hour)))
		elapsed := now.Sub(windowStart).Hours()
		progress = elapsed / assignedHours * 100
	}
	progress = math.Min(100, math.Max(0, progress))

	return Evaluation{
		Status:         status,
		RemainingHours: remaining,
		Deadline:       deadline,
		Progress:       progress,
	}
}

// DeadlineFrom anchors a fresh SLA window of assignedHours at the given instant.
// Used at complaint creation and again whenever the priority is reclassified.
func DeadlineFrom(anchor time.Time, assignedHours float64) time.Time {
	return anchor.Add(time.Duration(assignedHours * float64(time.Hour)))
}

// ScaledDeadline stretches the original window by the ratio of the new and old
// assigned hours, keeping the original anchor. This reproduces a legacy
// reclassification behavior that leaks already-elapsed time into the new
// window. Kept for comparison only; DeadlineFrom is the supported behavior.
func ScaledDeadline(originalDeadline time.Time, oldHours, newHours float64) time.Time {
	if oldHours <= 0 {
		return originalDeadline
	}
	windowStart := originalDeadline.Add(-time.Duration(oldHours * float64(time.Hour)))
	return windowStart.Add(time.Duration(oldHours * (newHours / oldHours) * float64(time.Hour)))
}

// InWarningWindow reports whether the remaining time has dropped to or below
// the warning share of the window without the deadline having passed yet.
func InWarningWindow(assignedHours float64, deadline time.Time, now time.Time) bool {
	remaining := deadline.Sub(now).Hours()
	return remaining > 0 && remaining <= assignedHours*WarningFraction
}

// IsStalled reports whether a complaint has breached its deadline or has seen
// no status movement for at least the stalled share of its window.
func IsStalled(assignedHours float64, deadline time.Time, lastStatusChange time.Time, now time.Time) bool {
	if !deadline.After(now) {
		return true
	}
	if assignedHours <= 0 {
		return false
	}
	idle := now.Sub(lastStatusChange).Hours()
	return idle >= assignedHours*StalledFraction
}

// FormatRemaining renders remaining hours for display. Negative values are
// reported as overdue; sub-hour values are shown in minutes.
func FormatRemaining(remainingHours float64) string {
	if remainingHours <= 0 {
		overdue := -remainingHours
		if overdue < 1 {
			return fmt.Sprintf("overdue by %d minutes", int(math.Round(overdue*60)))
		}
		if overdue < 24 {
			return fmt.Sprintf("overdue by %d hours", int(math.Round(overdue)))
		}
		return fmt.Sprintf("overdue by %d days", int(math.Round(overdue/24)))
	}
	if remainingHours < 1 {
		return fmt.Sprintf("%d minutes remaining", int(math.Round(remainingHours*60)))
	}
	if remainingHours < 24 {
		return fmt.Sprintf("%d hours remaining", int(math.Round(remainingHours)))
	}
	return fmt.Sprintf("%d days remaining", int(math.Round(remainingHours/24)))
}

// DisplayRemainingHours clamps remaining hours at zero for presentation.
// Status computation must use the unclamped value.
func DisplayRemainingHours(remainingHours float64) float64 {
	return math.Max(0, remainingHours)
}
