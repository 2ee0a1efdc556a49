package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lmeert/tick/internal/store"
	"github.com/lmeert/tick/internal/tui"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

func fail(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✖ "+msg))
}

// Options tune behavior from root flags.
type Options struct {
	Theme string // classic, neon or mono
	Debug bool   // write the UI event log to tick-debug.log
}

// Run dispatches and returns an exit code (0 ok, 1 error, 2 usage).
// With no arguments it starts the interactive list.
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		return doUI(opt)
	}

	switch args[0] {
	case "help", "-h", "--help":
		PrintHelp()
		return 0
	}

	fail("unknown subcommand: " + args[0])
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`tick - a tiny interactive todo list

Usage:
  tick [flags]

Flags:
  -theme <name>   Color theme: classic, neon or mono
  -debug          Write the UI event log to tick-debug.log

Keys:
  enter           Add the typed item (blank input is ignored)
  up/down         Move through the list
  esc, ctrl+c     Quit

The list lives in memory only; quitting discards it.
`)
}

func doUI(opt Options) int {
	if opt.Debug {
		f, err := tea.LogToFile("tick-debug.log", "tick")
		if err != nil {
			fail("debug log: " + err.Error())
			return 1
		}
		defer f.Close()
	}

	s := store.New()
	if err := tui.Run(s, tui.Options{Theme: opt.Theme}); err != nil {
		fail("ui: " + err.Error())
		return 1
	}
	return 0
}
