package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sevigo/snippet-warden/internal/app"
)

const asciiLogo = `
╔══════════════════════════════════════════════════╗
║                                                  ║
║    SNIPPET-WARDEN  ::  AI CODE REVIEW CONSOLE    ║
║                                                  ║
╚══════════════════════════════════════════════════╝
`

type model struct {
	styles styles
	app    *app.App

	// UI Components
	viewport  viewport.Model
	textarea  textarea.Model
	spinner   spinner.Model
	isLoading bool

	history []string
	cleanup func()
}

func initialModel(theme ThemeName) *model {
	styles := GetTheme(theme)
	ta := textarea.New()
	ta.Placeholder = "Paste a code snippet, then press Ctrl+S to review it..."
	ta.Focus()
	ta.Prompt = styles.prompt.Render("│ ")
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(8)
	ta.ShowLineNumbers = true

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	return &model{
		styles:    styles,
		textarea:  ta,
		spinner:   sp,
		isLoading: true,
		history:   []string{styles.ascii.Render(asciiLogo), "", "Connecting to the generation model..."},
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(initializeAppCmd(), m.spinner.Tick)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	m.spinner, spCmd = m.spinner.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, m.quit()
		case tea.KeyCtrlL:
			m.textarea.Reset()
			return m, nil
		case tea.KeyCtrlS:
			code := m.textarea.Value()
			if strings.TrimSpace(code) == "" || m.isLoading || m.app == nil {
				return m, nil
			}
			m.isLoading = true
			m.appendHistory(m.styles.command.Render("→ Sending snippet for review..."))
			return m, tea.Batch(m.spinner.Tick, reviewSnippetCmd(m.app, code))
		}

	case appInitializedMsg:
		m.isLoading = false
		if msg.err != nil {
			m.appendHistory(m.styles.error.Render("STARTUP FAILED: " + msg.err.Error()))
			return m, nil
		}
		m.app = msg.app
		m.cleanup = msg.cleanup
		m.appendHistory(
			m.styles.success.Render("✓ MODEL CONNECTED"),
			m.styles.inactive.Render("Paste code below. Ctrl+S reviews, Ctrl+L clears, Esc quits."),
		)
		return m, nil

	case reviewCompleteMsg:
		m.isLoading = false
		m.textarea.Reset()
		m.appendHistory(
			"",
			msg.rendered,
			m.styles.inactive.Render(fmt.Sprintf("Review finished in %s.", msg.elapsed)),
		)
		return m, nil

	case errorMsg:
		m.isLoading = false
		m.appendHistory("", m.styles.error.Render("⚠ "+msg.err.Error()))
		return m, nil

	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 14
		m.textarea.SetWidth(msg.Width - 10)
		m.viewport.SetContent(strings.Join(m.history, "\n"))
	}

	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

func (m *model) View() string {
	if m.app == nil && m.isLoading {
		return fmt.Sprintf("\n  %s STARTING SNIPPET-WARDEN...\n\n", m.spinner.View())
	}

	var statusParts []string
	if m.app != nil && m.app.Cfg != nil {
		statusParts = append(statusParts,
			fmt.Sprintf("MODEL: %s (%s)", m.app.Cfg.AI.GeneratorModel, m.app.Cfg.AI.LLMProvider))
	}
	if m.isLoading {
		statusParts = append(statusParts, m.styles.success.Render("● REVIEWING"))
	} else {
		statusParts = append(statusParts, m.styles.inactive.Render("○ IDLE"))
	}
	status := m.styles.inactive.Render(strings.Join(statusParts, " │ "))

	var loadingIndicator string
	if m.isLoading {
		loadingIndicator = " " + m.spinner.View() + " " + m.styles.success.Render("WAITING FOR MODEL...")
	}

	return m.styles.app.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.styles.viewport.Render(m.viewport.View()),
			"",
			m.styles.footer.Render(
				lipgloss.JoinVertical(lipgloss.Left,
					m.textarea.View(),
					loadingIndicator,
				),
			),
			status,
		),
	)
}

// quit releases application resources before stopping the program.
func (m *model) quit() tea.Cmd {
	if m.cleanup != nil {
		m.cleanup()
	}
	return tea.Quit
}

func (m *model) appendHistory(lines ...string) {
	m.history = append(m.history, lines...)
	m.viewport.SetContent(strings.Join(m.history, "\n"))
	m.viewport.GotoBottom()
}
