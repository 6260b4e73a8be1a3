package services

import (
	"sort"

	"github.com/dmitrijs2005/taskdeck/internal/client/models"
)

// TaskNode is a task with its subtasks resolved.
type TaskNode struct {
	Task     models.Task
	Children []*TaskNode
}

// BuildTaskTree arranges a flat task list into parent/child order. Tasks whose
// parent is not in the list are treated as roots. Siblings are ordered by
// start date, then name.
func BuildTaskTree(tasks []models.Task) []*TaskNode {
	nodes := make(map[string]*TaskNode, len(tasks))
	for _, t := range tasks {
		nodes[t.ID] = &TaskNode{Task: t}
	}

	var roots []*TaskNode
	parentOf := make(map[string]string, len(tasks))
	for _, t := range tasks {
		n := nodes[t.ID]
		if t.IsSubtask() {
			pid := *t.ParentTaskID
			if parent, ok := nodes[pid]; ok && !createsCycle(parentOf, t.ID, pid) {
				parentOf[t.ID] = pid
				parent.Children = append(parent.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}

	sortNodes(roots)
	return roots
}

func createsCycle(parentOf map[string]string, child, parent string) bool {
	for p, ok := parent, true; ok; p, ok = parentOf[p] {
		if p == child {
			return true
		}
	}
	return false
}

func sortNodes(nodes []*TaskNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i].Task, nodes[j].Task
		if !a.StartDate.Equal(b.StartDate.Time) {
			return a.StartDate.Before(b.StartDate.Time)
		}
		return a.Name < b.Name
	})
	for _, n := range nodes {
		sortNodes(n.Children)
	}
}

// Walk visits nodes depth-first, passing the nesting depth.
func Walk(nodes []*TaskNode, fn func(n *TaskNode, depth int)) {
	var walk func([]*TaskNode, int)
	walk = func(ns []*TaskNode, depth int) {
		for _, n := range ns {
			fn(n, depth)
			walk(n.Children, depth+1)
		}
	}
	walk(nodes, 0)
}
