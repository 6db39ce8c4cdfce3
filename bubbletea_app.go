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
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/cybrota/treetrace/sequence"
	"github.com/cybrota/treetrace/tree"
)

const (
	focusInput = iota
	focusTree
	focusStep
)

// tickMsg advances autoplay. generation ties it to the history it was
// scheduled for.
type tickMsg struct {
	generation int
}

// Model is the step player state.
type Model struct {
	ready bool

	// Components
	textInput    textinput.Model
	treeViewport viewport.Model
	stepViewport viewport.Model

	// Data
	engine  tree.Engine[int]
	cursor  *tree.Cursor
	renders *cache.Cache
	config  *Config
	library *sequence.Library
	options []tree.Option
	log     zerolog.Logger

	// State
	focusIndex int
	generation int
	autoplay   bool
	status     string
	statusErr  bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// InitialModel creates the player around an engine that may already hold a
// history. The cursor starts at the last step.
func InitialModel(e tree.Engine[int], cfg *Config, lib *sequence.Library, opts []tree.Option, log zerolog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 10 20 30; delete 20"
	ti.Prompt = "› "
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	treeViewport := viewport.New(0, 0)
	stepViewport := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		textInput:       ti,
		treeViewport:    treeViewport,
		stepViewport:    stepViewport,
		engine:          e,
		cursor:          tree.NewCursor(e),
		renders:         NewRenderCache(),
		config:          cfg,
		library:         lib,
		options:         opts,
		log:             log,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.textInput.PromptStyle = m.styles.InputPrompt
	m.refresh()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) tick() tea.Cmd {
	gen := m.generation
	return tea.Tick(time.Duration(m.config.Player.AutoplayMs)*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{generation: gen}
	})
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.setFocus((m.focusIndex + 1) % 3)
			return m, nil
		case "f2":
			m.switchVariant()
			return m, nil
		case "ctrl+r":
			m.engine.Reset()
			m.historyChanged()
			m.setStatus("Tree reset", false)
			return m, nil
		case "ctrl+s":
			m.saveSequence()
			return m, nil
		case "ctrl+y":
			m.copyExport()
			return m, nil
		}

		if m.focusIndex == focusInput {
			return m.updateInput(msg)
		}
		return m.updateNavigation(msg)

	case tickMsg:
		if !m.autoplay || msg.generation != m.generation {
			return m, nil
		}
		if !m.cursor.Next() {
			m.autoplay = false
			return m, nil
		}
		m.refresh()
		if m.cursor.AtEnd() {
			m.autoplay = false
			return m, nil
		}
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refresh()
		m.ready = true
	}

	return m, cmd
}

// updateInput handles keys while the script input is focused.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if msg.String() == "enter" {
		m.applyScript(m.textInput.Value())
		return m, nil
	}
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// updateNavigation handles keys while the tree or the step panel is focused.
func (m Model) updateNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	moved := false

	switch msg.String() {
	case "left", "h":
		moved = m.cursor.Previous()
	case "right", "l":
		moved = m.cursor.Next()
	case "home", "g":
		m.cursor.First()
		moved = true
	case "end", "G":
		m.cursor.Last()
		moved = true
	case " ":
		m.autoplay = !m.autoplay
		if m.autoplay {
			if m.cursor.AtEnd() {
				m.cursor.First()
				m.refresh()
			}
			return m, m.tick()
		}
		return m, nil
	default:
		if m.focusIndex == focusTree {
			m.treeViewport, cmd = m.treeViewport.Update(msg)
		} else {
			m.stepViewport, cmd = m.stepViewport.Update(msg)
		}
		return m, cmd
	}

	if moved {
		m.autoplay = false
		m.refresh()
	}
	return m, nil
}

func (m *Model) setFocus(i int) {
	m.focusIndex = i
	if i == focusInput {
		m.textInput.Focus()
	} else {
		m.textInput.Blur()
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// historyChanged invalidates renderings of the previous history and jumps
// to its last step.
func (m *Model) historyChanged() {
	m.generation++
	m.autoplay = false
	m.cursor.Last()
	m.refresh()
}

// applyScript runs the typed operations on the live tree. Steps are always
// appended to the end of the history, whatever step is being viewed.
func (m *Model) applyScript(script string) {
	ops, err := parseScript(script)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if len(ops) == 0 {
		return
	}
	before := m.engine.StepCount()
	applied := applyOperations(m.engine, ops)
	m.textInput.SetValue("")
	m.generation++
	m.autoplay = false
	// Show the first new step so the operation can be followed from there.
	m.cursor.Goto(min(before, m.engine.StepCount()-1))
	m.refresh()
	m.setStatus(fmt.Sprintf("Applied %d of %d operations, %d new steps", applied, len(ops), m.engine.StepCount()-before), false)
}

// switchVariant replays the operations recorded so far on the next variant.
func (m *Model) switchVariant() {
	next := tree.Variants[(slices.Index(tree.Variants, m.engine.Variant())+1)%len(tree.Variants)]
	e, err := tree.New[int](next, m.options...)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if _, err := sequence.Replay(e, sequence.FromSteps(m.engine.Steps())); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.engine = e
	m.cursor = tree.NewCursor(e)
	m.historyChanged()
	m.setStatus(fmt.Sprintf("Switched to %s", next), false)
}

func (m *Model) saveSequence() {
	if m.library == nil {
		m.setStatus("Sequence library is unavailable", true)
		return
	}
	ops := sequence.FromSteps(m.engine.Steps())
	name := fmt.Sprintf("%s %s", m.engine.Variant(), time.Now().Format("2006-01-02 15:04:05"))
	id, err := m.library.Save(name, "", m.engine.Variant(), ops)
	if err != nil {
		m.log.Error().Err(err).Msg("saving sequence")
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(fmt.Sprintf("Saved %d operations as %s", len(ops), id), false)
}

func (m *Model) copyExport() {
	text, err := renderExport(m.engine, formatTree, time.Now())
	if err == nil {
		err = clipboard.WriteAll(text)
	}
	if err != nil {
		m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
		return
	}
	m.setStatus("📋 Tree export copied to clipboard", false)
}

// refresh renders the step under the cursor into the viewports.
func (m *Model) refresh() {
	idx := m.cursor.Index()
	step, ok := m.engine.StepAt(idx)
	if !ok {
		m.treeViewport.SetContent("(no steps)")
		m.stepViewport.SetContent("")
		return
	}

	treeText := GetOrRender(m.renders, renderKey("tree", m.generation, idx), func() string {
		return renderTree(step.Tree, m.config.Layout, step.Affected)
	})
	m.treeViewport.SetContent(treeText)

	stepText := GetOrRender(m.renders, renderKey("step", m.generation, idx), func() string {
		md := renderStep(step, m.engine.StepCount(), m.engine.Variant())
		if m.glamourRenderer == nil {
			return md
		}
		if rendered, err := m.glamourRenderer.Render(md); err == nil {
			return rendered
		}
		return md
	})
	m.stepViewport.SetContent(stepText)
}

// View renders the player: script input and tree on the left, the step
// description and pseudocode on the right.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	treeHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 6 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	boxStyle := func(i int) (lipgloss.Style, string) {
		if m.focusIndex == i {
			return m.styles.BorderFocused, " (Active)"
		}
		return m.styles.BorderBlurred, ""
	}

	inputStyle, active := boxStyle(focusInput)
	inputBox := inputStyle.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" ⌨️  Operations"+active),
			m.textInput.View(),
		))

	treeStyle, active := boxStyle(focusTree)
	autoplay := ""
	if m.autoplay {
		autoplay = " ▶"
	}
	treeTitle := fmt.Sprintf(" 🌳 %s tree · step %d/%d%s%s", m.engine.Variant(), m.cursor.Index(), m.engine.StepCount()-1, autoplay, active)
	treeBox := treeStyle.
		Width(leftWidth).
		Height(treeHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(treeTitle),
			m.treeViewport.View(),
		))

	stepStyle, active := boxStyle(focusStep)
	stepBox := stepStyle.
		Width(rightWidth).
		Height(treeHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" 📖 Step"+active),
			m.stepViewport.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, treeBox),
		stepBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatus(),
		m.renderHelp(),
	)
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	style := m.styles.SuccessMessage
	if m.statusErr {
		style = m.styles.ErrorMessage
	}
	return lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(style.Render(m.status))
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	treeHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 6 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.textInput.Width = leftWidth - 6
	m.treeViewport.Width = leftWidth - 2
	m.treeViewport.Height = max(treeHeight-2, 1)
	m.stepViewport.Width = rightWidth - 2
	m.stepViewport.Height = max(treeHeight+inputHeight, 1)
}

// renderHelp renders the key help footer
func (m Model) renderHelp() string {
	type binding struct{ key, desc string }
	bindings := []binding{
		{"enter", "apply"},
		{"←/→", "step"},
		{"home/end", "first/last"},
		{"space", "autoplay"},
		{"tab", "switch focus"},
		{"f2", "next variant"},
		{"ctrl+r", "reset"},
		{"ctrl+s", "save"},
		{"ctrl+y", "copy export"},
		{"esc", "quit"},
	}

	var helpEntries []string
	for _, b := range bindings {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(b.key),
				m.styles.HelpDesc.Render(b.desc)))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(e tree.Engine[int], cfg *Config, lib *sequence.Library, opts []tree.Option, log zerolog.Logger) error {
	InitializeColors()

	model := InitialModel(e, cfg, lib, opts, log)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
