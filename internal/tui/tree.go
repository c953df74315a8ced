package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/leo/claude-sessions/internal/agent"
)

// ClampCursor keeps the cursor inside [0, total).
func ClampCursor(cursor, total int) int {
	if total == 0 || cursor < 0 {
		return 0
	}
	if cursor >= total {
		return total - 1
	}
	return cursor
}

// IndexOfPath returns the row showing path, or -1.
func IndexOfPath(workspaces []agent.Workspace, path string) int {
	for i, ws := range workspaces {
		if ws.Path == path {
			return i
		}
	}
	return -1
}

// RenderWorkspace renders a single list row: badge, short name, branch.
func RenderWorkspace(ws agent.Workspace, selected bool, width int) string {
	prefix := " "
	icon := "●"
	avail := width - len(prefix) - 2 - 1 // icon+space, 1 trailing minimum
	name := ws.ShortPath
	branch := ws.GitBranch

	if branch != "" {
		needed := len(name) + 1 + len(branch)
		if needed > avail {
			// Step 1: truncate the branch name
			branchAvail := avail - len(name) - 1
			if branchAvail >= 4 { // room for at least "x..."
				branch = truncate(branch, branchAvail)
			} else {
				// Step 2: drop branch entirely, show only name
				branch = ""
			}
		}
	}
	if branch == "" {
		name = truncate(name, avail)
	}

	gap := max(avail-len(name)-len(branch), 0)
	text := " " + name + strings.Repeat(" ", gap)

	if selected {
		return selectedStyle.Render(prefix) + activeIconSelectedStyle.Render(icon) +
			selectedStyle.Render(text) + branchSelectedStyle.Render(branch+" ")
	}
	return workspaceStyle.Render(prefix) + activeIconStyle.Render(icon) +
		workspaceStyle.Render(text) + branchStyle.Render(branch+" ")
}

// RenderDetail renders the detail pane for one workspace.
func RenderDetail(ws agent.Workspace, now time.Time) string {
	branch := ws.GitBranch
	if branch == "" {
		branch = dimStyle.Render("-")
	}
	last := dimStyle.Render("unknown")
	if !ws.LastActive.IsZero() {
		last = formatElapsed(now.Sub(ws.LastActive)) + " ago"
	}
	rows := []string{
		labelStyle.Render("Path") + ws.Path,
		labelStyle.Render("Branch") + branch,
		labelStyle.Render("Last prompt") + last,
		labelStyle.Render("Session") + activeIconStyle.Render("● active"),
	}
	return strings.Join(rows, "\n")
}

// truncate shortens s to maxLen, adding ellipsis if needed.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// formatElapsed returns a human-readable short duration string.
func formatElapsed(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		h := int(d.Hours())
		m := int(d.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	default:
		return fmt.Sprintf("%dd", int(d.Hours())/24)
	}
}

// VisibleSlice returns the start index for scrolling the list.
func VisibleSlice(total, cursor, height int) int {
	if total <= height {
		return 0
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	if start+height > total {
		start = total - height
	}
	return start
}
