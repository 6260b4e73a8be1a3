package services

import "github.com/dmitrijs2005/taskdeck/internal/client/models"

// ANSI colours used for status labels.
const (
	colorReset  = "\033[0m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGreen  = "\033[32m"
	colorGray   = "\033[90m"
)

// StatusLabel returns the human-readable text for s.
func StatusLabel(s models.Status) string {
	switch s {
	case models.StatusPending:
		return "pending"
	case models.StatusInProgress:
		return "in progress"
	case models.StatusCompleted:
		return "completed"
	}
	return "unknown"
}

// StatusColor returns the terminal colour for s; unknown statuses are gray.
func StatusColor(s models.Status) string {
	switch s {
	case models.StatusPending:
		return colorYellow
	case models.StatusInProgress:
		return colorBlue
	case models.StatusCompleted:
		return colorGreen
	}
	return colorGray
}

// ColoredStatus wraps StatusLabel in StatusColor when color is true.
func ColoredStatus(s models.Status, color bool) string {
	if !color {
		return StatusLabel(s)
	}
	return StatusColor(s) + StatusLabel(s) + colorReset
}
