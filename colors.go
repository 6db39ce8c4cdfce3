// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/treetrace/tree"
)

// ANSI escapes for plain terminal output. Set by InitializeColors.
var Green, Info, Warning, Error, Reset string

type ColorScheme struct {
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	// RedNode and BlackNode are the fills of tree nodes.
	RedNode   lipgloss.Color
	BlackNode lipgloss.Color
	OnNode    lipgloss.Color
	Highlight lipgloss.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		// COLORFGBG is "foreground;background"
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(env)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Border:      lipgloss.Color("8"),
		BorderFocus: lipgloss.Color("4"),
		Text:        lipgloss.Color("0"),
		TextMuted:   lipgloss.Color("240"),
		RedNode:     lipgloss.Color("160"),
		BlackNode:   lipgloss.Color("236"),
		OnNode:      lipgloss.Color("15"),
		Highlight:   lipgloss.Color("3"),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Border:      lipgloss.Color("240"),
		BorderFocus: lipgloss.Color("62"),
		Text:        lipgloss.Color("15"),
		TextMuted:   lipgloss.Color("245"),
		RedNode:     lipgloss.Color("196"),
		BlackNode:   lipgloss.Color("238"),
		OnNode:      lipgloss.Color("15"),
		Highlight:   lipgloss.Color("11"),
	}
}

// InitializeColors detects terminal mode and sets up the color scheme and
// the ANSI escapes.
func InitializeColors() {
	detectedMode = detectTerminalMode()

	switch detectedMode {
	case TerminalModeLight:
		currentColorScheme = createLightColorScheme()
	default:
		currentColorScheme = createDarkColorScheme()
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// GetColorScheme returns the current color scheme
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

// GetANSIColors returns darker escapes for light terminals and brighter
// ones for dark terminals.
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = "\033[0m"
	return
}

// NodeStyle renders a node badge in its tree color. Highlighted nodes are
// the ones the current step touched.
func NodeStyle(c tree.Color, highlighted bool) lipgloss.Style {
	scheme := GetColorScheme()
	fill := scheme.BlackNode
	if c == tree.Red {
		fill = scheme.RedNode
	}
	style := lipgloss.NewStyle().
		Foreground(scheme.OnNode).
		Background(fill).
		Bold(true)
	if highlighted {
		style = style.Underline(true).Foreground(scheme.Highlight)
	}
	return style
}
