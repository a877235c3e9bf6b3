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
	"bytes"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/arbor/menu"
	"github.com/cybrota/arbor/render"
	"github.com/cybrota/arbor/tree"
)

// TreeView is what the right pane shows
type TreeView int

const (
	ViewReport TreeView = iota
	ViewSideways
	ViewUsage
)

func (v TreeView) String() string {
	switch v {
	case ViewReport:
		return "report"
	case ViewSideways:
		return "sideways"
	case ViewUsage:
		return "usage"
	default:
		return "unknown"
	}
}

// maxOperations bounds the operation log in the left column.
const maxOperations = 200

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	commandInput   textinput.Model
	operationsList list.Model
	treeViewport   viewport.Model

	// Data
	tree        *tree.Tree
	session     *menu.Session
	output      *bytes.Buffer
	renderCache *cache.Cache
	config      *Config

	// State
	view       TreeView
	operations []list.Item
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
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
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
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// operationItem is one applied command in the operation log
type operationItem struct {
	line   string
	result string
}

func (i operationItem) FilterValue() string { return i.line }
func (i operationItem) Title() string       { return i.line }
func (i operationItem) Description() string { return i.result }

// InitialModel creates the initial model
func InitialModel(t *tree.Tree, config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "a 5 3 8, d 3, f 4, c, x..."
	ti.Prompt = "menu> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	operationsList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	operationsList.SetShowTitle(false)
	operationsList.SetShowHelp(false)
	operationsList.SetFilteringEnabled(false)

	treeViewport := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	// Prompts read from an empty reader, so commands must carry their keys.
	output := &bytes.Buffer{}
	session := menu.NewSession(t, strings.NewReader(""), output,
		menu.WithCapacity(config.Tree.SnapshotCapacity),
	)

	m := Model{
		commandInput:    ti,
		operationsList:  operationsList,
		treeViewport:    treeViewport,
		tree:            t,
		session:         session,
		output:          output,
		renderCache:     NewRenderCache(),
		config:          config,
		view:            ViewReport,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.updateStatus()
	m.refreshTreeView()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			if m.view == ViewReport {
				m.view = ViewSideways
			} else {
				m.view = ViewReport
			}
			m.refreshTreeView()
			return m, nil

		case "f1":
			if m.view == ViewUsage {
				m.view = ViewReport
			} else {
				m.view = ViewUsage
			}
			m.refreshTreeView()
			return m, nil

		case "ctrl+y":
			keys := m.tree.Inorder()
			text := render.FormatArray(keys)
			if err := copyToClipboard(text); err != nil {
				m.setStatus(fmt.Sprintf("copy failed: %v", err), true)
			} else {
				m.setStatus(fmt.Sprintf("copied %d keys", len(keys)), false)
			}
			return m, nil

		case "pgup", "pgdown", "up", "down":
			m.treeViewport, cmd = m.treeViewport.Update(msg)
			return m, cmd

		case "enter":
			line := m.commandInput.Value()
			m.commandInput.SetValue("")
			if quit := m.execute(line); quit {
				return m, tea.Quit
			}
			return m, nil
		}

		m.commandInput, cmd = m.commandInput.Update(msg)
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshTreeView()
		m.ready = true
	}

	return m, tea.Batch(cmds...)
}

// execute runs one menu line against the session. It reports whether the
// line asked to quit.
func (m *Model) execute(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	in := menu.NewInput(strings.Fields(line))
	switch in.Choice() {
	case "a", "d", "f":
		if !in.HasArgs() {
			m.setStatus(fmt.Sprintf("%s needs at least one key, e.g. %s 5", in.Key, in.Choice()), true)
			return false
		}
	case "t":
		m.view = ViewReport
	case "s":
		m.view = ViewSideways
	}

	m.output.Reset()
	quit, err := m.session.Exec(line)
	if err != nil {
		m.setStatus(err.Error(), true)
		m.logOperation(line, err.Error())
		return false
	}
	if quit {
		return true
	}

	result := lastLine(m.output.String())
	if result == "" || in.Choice() == "t" || in.Choice() == "s" || in.Choice() == "m" {
		result = fmt.Sprintf("size %d, height %d", m.tree.Size(), m.tree.Height())
	}
	m.logOperation(line, result)
	m.updateStatus()
	if strings.HasPrefix(result, "Error") || strings.HasPrefix(result, "Unknown") {
		m.setStatus(result, true)
	}
	m.refreshTreeView()
	return false
}

func (m *Model) logOperation(line, result string) {
	m.operations = append([]list.Item{operationItem{line: line, result: result}}, m.operations...)
	if len(m.operations) > maxOperations {
		m.operations = m.operations[:maxOperations]
	}
	m.operationsList.SetItems(m.operations)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// updateStatus summarises the tree and its invariants
func (m *Model) updateStatus() {
	if err := m.tree.Validate(); err != nil {
		m.setStatus(fmt.Sprintf("invariant violated: %v", err), true)
		return
	}
	m.setStatus(fmt.Sprintf("valid %s · size %d · height %d", m.tree.Mode(), m.tree.Size(), m.tree.Height()), false)
}

// refreshTreeView fills the right pane from the render cache
func (m *Model) refreshTreeView() {
	var content string
	switch m.view {
	case ViewSideways:
		content = GetOrFillRender(m.renderCache, m.view.String(), m.tree, func(t *tree.Tree) string {
			return t.String()
		})
	case ViewUsage:
		content = usageMarkdown()
		if m.glamourRenderer != nil {
			if rendered, err := m.glamourRenderer.Render(content); err == nil {
				content = rendered
			}
		}
	default:
		capacity := m.config.Tree.SnapshotCapacity
		content = GetOrFillRender(m.renderCache, m.view.String(), m.tree, func(t *tree.Tree) string {
			return render.Report(t, render.Options{Capacity: capacity})
		})
	}
	m.treeViewport.SetContent(content)
	m.treeViewport.GotoTop()
}

// View renders the two panes and the help footer
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	// Ensure we have minimum dimensions
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.commandInput.Width = leftWidth - 4

	inputBox := m.styles.BorderFocused.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(fmt.Sprintf(" 🌳 %s tree\n", strings.ToUpper(m.tree.Mode().String()))),
			m.commandInput.View(),
		))

	operationsBox := m.styles.BorderBlurred.
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(" 📋 Operations "),
			m.operationsList.View(),
		))

	var viewTitle string
	switch m.view {
	case ViewSideways:
		viewTitle = " 🌲 Sideways (tab: 2D report) "
	case ViewUsage:
		viewTitle = " 📖 Usage (F1: back) "
	default:
		viewTitle = " 🌲 Tree 2D (tab: sideways) "
	}

	treeBox := m.styles.BorderBlurred.
		Width(rightWidth).
		Height(listHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(viewTitle),
			m.treeViewport.View(),
		))

	leftColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		inputBox,
		operationsBox,
	)

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftColumn,
		treeBox,
	)

	statusStyle := m.styles.SuccessMessage
	if m.statusErr {
		statusStyle = m.styles.ErrorMessage
	}
	status := lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(statusStyle.Render(m.status))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		status,
		m.renderHelp(),
	)
}

// updateLayout sizes the components to the window
func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.commandInput.Width = leftWidth - 4
	m.operationsList.SetSize(leftWidth-2, listHeight-2)
	m.treeViewport.Width = rightWidth - 2
	m.treeViewport.Height = listHeight + inputHeight
}

// renderHelp renders the help footer
func (m Model) renderHelp() string {
	keys := []string{"enter", "tab", "f1", "ctrl+y", "pgup/pgdown", "esc"}
	descs := []string{"run command", "switch view", "usage", "copy inorder", "scroll tree", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// lastLine returns the last non-blank line of text
func lastLine(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(t *tree.Tree, config *Config) error {
	model := InitialModel(t, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
