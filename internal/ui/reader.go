package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"postgrid/internal/domain"
)

// ErrNoProgram is returned when the viewer has no program to hand the terminal back to
var ErrNoProgram = errors.New("program not set")

// Viewer shows long content full screen
type Viewer interface {
	Show(content string) error
}

// OvViewer shows content in the ov pager
type OvViewer struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewOvViewer creates a new ov viewer
func NewOvViewer() *OvViewer {
	return &OvViewer{}
}

// SetProgram sets the program whose terminal ov borrows
func (v *OvViewer) SetProgram(p *tea.Program) {
	v.program = p
}

// Show runs ov over content until the user quits it
func (v *OvViewer) Show(content string) error {
	if v.program == nil {
		return ErrNoProgram
	}

	// Release terminal control to run ov
	if err := v.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = v.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// RenderPost formats a post for reading in the pager
func RenderPost(p domain.Post) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	metaStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	tagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("33"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title))
	b.WriteString("\n")

	var meta []string
	if p.Author != "" {
		meta = append(meta, p.Author)
	}
	if !p.Published.IsZero() {
		meta = append(meta, p.Published.Format("Monday, 2 January 2006"))
	}
	if p.Slug != "" {
		meta = append(meta, "/"+p.Slug)
	}
	if len(meta) > 0 {
		b.WriteString(metaStyle.Render(strings.Join(meta, " · ")))
		b.WriteString("\n")
	}
	if len(p.Tags) > 0 {
		tags := make([]string, len(p.Tags))
		for i, t := range p.Tags {
			tags[i] = "#" + t
		}
		b.WriteString(tagStyle.Render(strings.Join(tags, " ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(strings.TrimRight(p.Body, "\n"))
	b.WriteString("\n")
	return b.String()
}
