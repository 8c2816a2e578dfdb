package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/module/lr35902/cpu"
)

// model is the bubbletea model for the interactive debugger: a page of
// memory around the program counter, a register/flag panel, and a dump of
// the instruction about to execute.
type model struct {
	core   *cpu.Cpu
	prevPC uint16
	err    error
}

const pageRows = 8

// Init performs no initial command; the core is already loaded by main.
func (m model) Init() tea.Cmd { return nil }

// Update steps the core by one full instruction on space or "j", quits on
// "q", and records any error so View and the post-Run caller can report it.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "j":
		m.prevPC = m.core.PC.Value()
		if err := m.core.StepInstruction(); err != nil {
			m.err = err
			return m, tea.Quit
		}
	}
	return m, nil
}

// renderPage renders the 16 bytes starting at start as one line, bracketing
// the byte the PC currently points at.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04X | ", start)
	for i := 0; i < 16; i++ {
		b := m.core.Memory.Read(start + uint16(i))
		if start+uint16(i) == m.core.PC.Value() {
			s += fmt.Sprintf("[%02X] ", b)
		} else {
			s += fmt.Sprintf(" %02X  ", b)
		}
	}
	return s
}

func (m model) pageTable() string {
	header := "addr | "
	for col := 0; col < 16; col++ {
		header += fmt.Sprintf(" %01X   ", col)
	}
	lines := []string{header}
	base := m.core.PC.Value() &^ 0x0F
	for row := -pageRows / 2; row < pageRows/2; row++ {
		lines = append(lines, m.renderPage(base+uint16(row*16)))
	}
	return strings.Join(lines, "\n")
}

func (m model) status() string {
	snap := m.core.Snapshot()
	flagChar := func(set bool, ch string) string {
		if set {
			return ch
		}
		return "-"
	}
	return fmt.Sprintf(`
 PC: %04X (was %04X)
 SP: %04X
 AF: %04X  BC: %04X
 DE: %04X  HL: %04X
IME: %v  HALT: %v  STOP: %v
Z N H C
%s %s %s %s
`,
		snap.PC, m.prevPC,
		snap.SP,
		snap.AF, snap.BC,
		snap.DE, snap.HL,
		snap.IME, snap.Halted, snap.Stopped,
		flagChar(snap.Z, "Z"), flagChar(snap.N, "N"), flagChar(snap.H, "H"), flagChar(snap.C, "C"),
	)
}

// View lays the page table and status panel side by side above a spew dump
// of the instruction sitting at the current PC.
func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(m.core.PeekNext()),
		"space/j: step one instruction   q: quit",
	)
}

// runDebugger starts the interactive TUI against core and reports any error
// the core raised before the user quit.
func runDebugger(core *cpu.Cpu) error {
	final, err := tea.NewProgram(model{core: core}).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok {
		return m.err
	}
	return nil
}
