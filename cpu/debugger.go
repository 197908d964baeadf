package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// An interactive single-step debugger. Space or j executes one instruction,
// q quits; the view shows the memory around the program counter, the stack
// page, the register file, and the decoded opcode about to run.

type model struct {
	cpu *Cpu

	halt   int // opcode to stop at, <0 for none
	halted bool
	err    error
}

var (
	pcStyle    = lipgloss.NewStyle().Reverse(true)
	paneStyle  = lipgloss.NewStyle().PaddingRight(2)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j":
			if m.halted {
				return m, nil
			}
			if err := m.cpu.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			if m.halt >= 0 && m.cpu.Read(m.cpu.PC) == byte(m.halt) {
				m.halted = true
			}
		}
	}
	return m, nil
}

// renderRow renders 16 bytes of bus memory as one hex line, highlighting the
// byte under the program counter.
func (m model) renderRow(start uint16) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04x |", start)
	for i := uint16(0); i < 16; i++ {
		cell := fmt.Sprintf(" %02x", m.cpu.Read(start+i))
		if start+i == m.cpu.PC {
			cell = " " + pcStyle.Render(fmt.Sprintf("%02x", m.cpu.Read(start+i)))
		}
		b.WriteString(cell)
	}
	return b.String()
}

// window renders rows rows of memory starting at the row containing addr.
func (m model) window(addr uint16, rows int) string {
	start := addr &^ 0x000F
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = m.renderRow(start + uint16(i*16))
	}
	return strings.Join(lines, "\n")
}

// stackWindow picks the row holding the stack pointer plus the row above it,
// clamped to page $01.
func (m model) stackWindow() uint16 {
	start := stackPage + (uint16(m.cpu.SP) &^ 0x000F)
	if start > stackPage {
		start -= 0x10
	}
	return start
}

func (m model) registers() string {
	return fmt.Sprintf(
		"PC: %04x (%04x)\n A: %02x\n X: %02x\n Y: %02x\nSP: %02x\n\n%s",
		m.cpu.PC, m.cpu.CurrentPC,
		m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.SP,
		m.cpu.Status,
	)
}

func (m model) View() string {
	memory := lipgloss.JoinVertical(
		lipgloss.Left,
		faintStyle.Render("zero page"),
		m.window(0x0000, 2),
		faintStyle.Render("stack"),
		m.window(m.stackWindow(), 2),
		faintStyle.Render("program"),
		m.window(m.cpu.PC, 4),
	)

	var next string
	if op, ok := m.cpu.Lookup(m.cpu.Read(m.cpu.PC)); ok {
		next = spew.Sdump(op)
	} else {
		next = fmt.Sprintf("illegal opcode $%02X\n", m.cpu.Read(m.cpu.PC))
	}

	status := m.registers()
	if m.halted {
		status += "\n\nhalted (q to quit)"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			paneStyle.Render(memory),
			status,
		),
		"",
		m.cpu.TraceLine(),
		next,
	)
}

// Debug runs the Cpu under the interactive debugger. haltOn < 0 disables the
// halt sentinel. The error returned is the one that stopped execution, if
// any.
func (c *Cpu) Debug(haltOn int) error {
	final, err := tea.NewProgram(model{cpu: c, halt: haltOn}).Run()
	if err != nil {
		return err
	}
	return final.(model).err
}
