package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// inspectorModel is a bubbletea model driving a single-step interactive
// view over a Cpu: one page-table frame around PC, the register/flag
// block, and a dump of the opcode about to execute.
type inspectorModel struct {
	cpu *Cpu

	prevPC uint16
	halted bool
	err    error
}

// Init does nothing; Inspect has already loaded and reset the Cpu before
// the model starts.
func (m inspectorModel) Init() tea.Cmd { return nil }

func (m inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			if m.halted {
				return m, nil
			}
			m.prevPC = m.cpu.PC
			halted, err := m.cpu.Step()
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.halted = halted
		}
	}
	return m, nil
}

// renderPage renders the 16 bytes starting at start as one line, with
// the byte at PC bracketed.
func (m inspectorModel) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		b := m.cpu.Mem.Read(start + i)
		if start+i == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m inspectorModel) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}
	rows := []string{header}
	base := m.cpu.PC &^ 0x0F
	for p := -2; p <= 2; p++ {
		rows = append(rows, m.renderPage(base+uint16(p*16)))
	}
	return strings.Join(rows, "\n")
}

func (m inspectorModel) status() string {
	var flags string
	for _, set := range []byte{
		m.cpu.GetNegative(),
		m.cpu.GetOverflow(),
		1, // unused bit is always shown as set, whatever bit 5 of P holds
		m.cpu.GetBreak(),
		m.cpu.GetDecimal(),
		m.cpu.GetInterruptDisable(),
		m.cpu.GetZero(),
		m.cpu.GetCarry(),
	} {
		if set != 0 {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
 S: %02x
N V _ B D I Z C
`,
		m.cpu.PC, m.prevPC,
		m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.S,
	) + flags
}

func (m inspectorModel) View() string {
	next := "(halted)"
	if !m.halted {
		if op, ok := opcodes[m.cpu.Mem.Read(m.cpu.PC)]; ok {
			next = spew.Sdump(op)
		}
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		next,
	)
}

// Inspect loads program into c, resets it, and starts an interactive
// single-step TUI over it. Space or j steps one instruction; q quits.
func Inspect(c *Cpu, program []byte) error {
	if err := c.Load(program); err != nil {
		return err
	}
	c.Reset()

	final, err := tea.NewProgram(inspectorModel{cpu: c}).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(inspectorModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
