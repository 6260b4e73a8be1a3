package services

import (
	"testing"

	"github.com/dmitrijs2005/taskdeck/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status models.Status
		label  string
		color  string
	}{
		{models.StatusPending, "pending", colorYellow},
		{models.StatusInProgress, "in progress", colorBlue},
		{models.StatusCompleted, "completed", colorGreen},
		{models.Status("archived"), "unknown", colorGray},
		{"", "unknown", colorGray},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.label, StatusLabel(tt.status))
			assert.Equal(t, tt.color, StatusColor(tt.status))
			assert.Equal(t, tt.label, ColoredStatus(tt.status, false))
			assert.Equal(t, tt.color+tt.label+colorReset, ColoredStatus(tt.status, true))
		})
	}
}
