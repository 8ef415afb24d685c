// Package tui provides the terminal user interface for pushit.
//
// It handles:
//   - Yes/no and free-text prompts (using bubbletea and survey)
//   - Labeled console output and file logging (Splog)
//   - Terminal styling and colors (using lipgloss)
package tui
