// Package prompt asks the user questions on the terminal.
package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"obenseuer-installer/internal/logger"
)

// Prompter asks for confirmation and waits for key presses. When questions are
// skipped or stdin is not a terminal every question is answered with yes and
// nothing waits for input.
type Prompter struct {
	In            *os.File
	Interactive   bool
	SkipQuestions bool
}

// New returns a prompter reading from stdin.
func New(skipQuestions bool) *Prompter {
	return &Prompter{
		In:            os.Stdin,
		Interactive:   term.IsTerminal(int(os.Stdin.Fd())),
		SkipQuestions: skipQuestions,
	}
}

func (p *Prompter) asks() bool {
	return p.Interactive && !p.SkipQuestions
}

// Confirm asks a yes/no question. Aborting the form (Ctrl+C) counts as no.
func (p *Prompter) Confirm(title, description string) (bool, error) {
	if !p.asks() {
		logger.Debug("[DEBUG] Auto-confirming: %s\n", title)
		return true, nil
	}

	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return ok, nil
}

// WaitForKey prints "Press any key to continue..." and blocks until one key is pressed.
func (p *Prompter) WaitForKey() error {
	if !p.asks() {
		return nil
	}
	logger.Plain("Press any key to continue...\n")

	fd := int(p.In.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to switch terminal to raw mode: %w", err)
	}
	defer func() {
		if rerr := term.Restore(fd, state); rerr != nil {
			logger.Warn("[WARN] Failed to restore terminal: %v\n", rerr)
		}
	}()

	buf := make([]byte, 1)
	_, err = p.In.Read(buf)
	return err
}
