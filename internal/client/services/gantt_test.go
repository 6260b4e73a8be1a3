package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskdeck/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) models.Time {
	return models.NewTime(time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC))
}

func TestRenderGantt(t *testing.T) {
	tasks := []models.GanttTask{
		{ID: "b", Name: "Build", Start: day(11), End: day(21), Progress: 0, Dependencies: []string{"a"}},
		{ID: "a", Name: "Design", Start: day(1), End: day(11), Progress: 0.5},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderGantt(&buf, tasks, 34))

	want := strings.Join([]string{
		"        2025-01-01 .. 2025-01-21",
		"Design |=====-----          |  50%",
		"Build  |          ----------|   0%  after Design",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRenderGantt_SameStartOrderedByName(t *testing.T) {
	tasks := []models.GanttTask{
		{ID: "2", Name: "beta", Start: day(1), End: day(5)},
		{ID: "1", Name: "alpha", Start: day(1), End: day(3)},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderGantt(&buf, tasks, 60))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "alpha"))
	assert.True(t, strings.HasPrefix(lines[2], "beta"))
}

func TestRenderGantt_Edges(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderGantt(&buf, nil, 80))
		assert.Equal(t, "no tasks\n", buf.String())
	})

	t.Run("no dates", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderGantt(&buf, []models.GanttTask{{ID: "x", Name: "Plan"}}, 80))
		assert.Equal(t, "Plan  (no dates)\n", buf.String())
	})

	t.Run("progress clamped and unknown dependency kept", func(t *testing.T) {
		var buf bytes.Buffer
		tasks := []models.GanttTask{{ID: "x", Name: "Ship", Start: day(1), End: day(2), Progress: 7, Dependencies: []string{"ghost"}}}
		require.NoError(t, RenderGantt(&buf, tasks, 0))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[1], "100%")
		assert.Contains(t, lines[1], "after ghost")
		assert.NotContains(t, lines[1], "-")
		assert.Len(t, lines[1], 80+len("  after ghost"))
	})

	t.Run("long names truncated", func(t *testing.T) {
		var buf bytes.Buffer
		tasks := []models.GanttTask{{ID: "x", Name: strings.Repeat("n", 40), Start: day(1), End: day(2)}}
		require.NoError(t, RenderGantt(&buf, tasks, 80))
		assert.Contains(t, buf.String(), strings.Repeat("n", 23)+"~ |")
	})
}
