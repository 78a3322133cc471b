// Command hkwatch is a small TUI that shows global hotkey presses and
// releases as they happen, with per-hotkey counters.
//
//	hkwatch "ctrl+shift+KeyD" "alt+F9"
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	globalhotkey "github.com/tauri-apps/global-hotkey"
	"github.com/tauri-apps/global-hotkey/hotkey"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	pressedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	releasedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

type row struct {
	hk      hotkey.HotKey
	count   int
	pressed bool
}

type model struct {
	rx   *globalhotkey.Receiver
	rows []*row
	byID map[uint32]*row
}

type pollMsg struct{}

func poll() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

func (m model) Init() tea.Cmd {
	return poll()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case pollMsg:
		for {
			ev, ok := m.rx.TryRecv()
			if !ok {
				break
			}
			r, known := m.byID[ev.ID]
			if !known {
				continue
			}
			switch ev.State {
			case globalhotkey.StatePressed:
				r.pressed = true
				r.count++
			case globalhotkey.StateReleased:
				r.pressed = false
			}
		}
		return m, poll()
	}
	return m, nil
}

func (m model) View() string {
	s := titleStyle.Render("global hotkeys") + "\n\n"
	for _, r := range m.rows {
		state := releasedStyle.Render("up")
		if r.pressed {
			state = pressedStyle.Render("DOWN")
		}
		s += fmt.Sprintf("  %-30s %-6s pressed %d times\n", r.hk, state, r.count)
	}
	s += "\n" + helpStyle.Render("q to quit")
	return s
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hkwatch <hotkey> [<hotkey>...]")
		os.Exit(2)
	}

	m := model{byID: make(map[uint32]*row)}
	var hks []hotkey.HotKey
	for _, spec := range flag.Args() {
		hk, err := hotkey.Parse(spec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot parse %q: %v\n", spec, err)
			os.Exit(2)
		}
		hks = append(hks, hk)
		r := &row{hk: hk}
		m.rows = append(m.rows, r)
		m.byID[hk.ID()] = r
	}

	manager, err := globalhotkey.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot start hotkey manager: %v\n", err)
		os.Exit(1)
	}
	defer manager.Close()

	if err := manager.RegisterAll(hks); err != nil {
		fmt.Fprintf(os.Stderr, "cannot register hotkeys: %v\n", err)
		os.Exit(1)
	}
	m.rx = manager.Receiver()

	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "hkwatch: %v\n", err)
		os.Exit(1)
	}
}
