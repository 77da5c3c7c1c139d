// ABOUTME: Build constraint file to pin tool dependencies in go.mod.
// ABOUTME: Keeps the Charm TUI libraries available for interactive mode.

//go:build tools

package tools

import (
	_ "github.com/charmbracelet/bubbles"
	_ "github.com/charmbracelet/bubbletea"
	_ "github.com/charmbracelet/huh"
	_ "github.com/charmbracelet/lipgloss"
)
