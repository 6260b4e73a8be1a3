package services

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskdeck/internal/client/models"
)

const (
	ganttDefaultWidth = 80
	ganttMinBar       = 10
	ganttMaxName      = 24
	ganttDateLayout   = "2006-01-02"
)

// RenderGantt writes a text timeline of tasks to w. Bars are scaled between
// the earliest start and the latest end; the completed share of each bar is
// drawn with '=' and the rest with '-'. width is the total line width; values
// below the minimum usable width fall back to 80 columns.
func RenderGantt(w io.Writer, tasks []models.GanttTask, width int) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "no tasks")
		return err
	}

	rows := append([]models.GanttTask(nil), tasks...)
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Start.Equal(rows[j].Start.Time) {
			return rows[i].Start.Before(rows[j].Start.Time)
		}
		return rows[i].Name < rows[j].Name
	})

	names := make(map[string]string, len(rows))
	nameCol := 4
	for _, t := range rows {
		names[t.ID] = t.Name
		if n := len([]rune(t.Name)); n > nameCol {
			nameCol = n
		}
	}
	nameCol = min(nameCol, ganttMaxName)

	// name + " |" + bar + "| " + "100%"
	barWidth := width - nameCol - 8
	if barWidth < ganttMinBar {
		barWidth = ganttDefaultWidth - nameCol - 8
	}

	from, to, ok := ganttSpan(rows)
	if !ok {
		for _, t := range rows {
			if _, err := fmt.Fprintf(w, "%s  (no dates)\n", pad(t.Name, nameCol)); err != nil {
				return err
			}
		}
		return nil
	}

	header := fmt.Sprintf("%s  %s .. %s", pad("", nameCol), from.Format(ganttDateLayout), to.Format(ganttDateLayout))
	if _, err := fmt.Fprintln(w, strings.TrimRight(header, " ")); err != nil {
		return err
	}

	span := to.Sub(from)
	for _, t := range rows {
		line := pad(t.Name, nameCol) + " |" + ganttBar(t, from, span, barWidth) + "| " + fmt.Sprintf("%3d%%", percent(t.Progress))
		if deps := dependencyNames(t.Dependencies, names); deps != "" {
			line += "  after " + deps
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// ganttSpan returns the earliest start and the latest end of dated tasks.
func ganttSpan(tasks []models.GanttTask) (from, to time.Time, ok bool) {
	for _, t := range tasks {
		start, end := taskBounds(t)
		if start.IsZero() {
			continue
		}
		if !ok || start.Before(from) {
			from = start
		}
		if !ok || end.After(to) {
			to = end
		}
		ok = true
	}
	if ok && !to.After(from) {
		to = from.Add(24 * time.Hour)
	}
	return from, to, ok
}

// taskBounds normalises a task's dates: a missing or inverted end collapses
// onto the start.
func taskBounds(t models.GanttTask) (start, end time.Time) {
	start, end = t.Start.Time, t.End.Time
	if start.IsZero() {
		start = end
	}
	if end.IsZero() || end.Before(start) {
		end = start
	}
	return start, end
}

func ganttBar(t models.GanttTask, from time.Time, span time.Duration, width int) string {
	start, end := taskBounds(t)
	if start.IsZero() {
		return strings.Repeat(" ", width)
	}

	offset := scale(start.Sub(from), span, width)
	length := max(scale(end.Sub(from), span, width)-offset, 1)
	if offset+length > width {
		offset = width - length
	}
	filled := int(math.Round(clamp01(t.Progress) * float64(length)))

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", offset))
	b.WriteString(strings.Repeat("=", filled))
	b.WriteString(strings.Repeat("-", length-filled))
	b.WriteString(strings.Repeat(" ", width-offset-length))
	return b.String()
}

func scale(d, span time.Duration, width int) int {
	return int(math.Round(float64(d) / float64(span) * float64(width)))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func percent(progress float64) int {
	return int(math.Round(clamp01(progress) * 100))
}

func dependencyNames(ids []string, names map[string]string) string {
	if len(ids) == 0 {
		return ""
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if n, ok := names[id]; ok && n != "" {
			out = append(out, n)
			continue
		}
		out = append(out, id)
	}
	return strings.Join(out, ", ")
}

// pad truncates or right-pads s to exactly n runes.
func pad(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		if n <= 1 {
			return string(r[:n])
		}
		return string(r[:n-1]) + "~"
	}
	return s + strings.Repeat(" ", n-len(r))
}
