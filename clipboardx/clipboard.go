package clipboardx

import (
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
)

// Clipboard moves text in and out of the editor.
type Clipboard interface {
	Copy(text string) error
	Paste() (string, error)
}

// System uses the desktop clipboard and keeps an in-process copy for when
// none is reachable. Term, when set, also receives an OSC 52 sequence so
// copies work over ssh.
type System struct {
	Term     io.Writer
	internal string
}

func (s *System) Copy(text string) error {
	s.internal = text
	ok := clipboard.WriteAll(text) == nil
	if writeWithCommands(text) {
		ok = true
	}
	if s.Term != nil && text != "" {
		if _, err := io.WriteString(s.Term, ansi.SetSystemClipboard(text)); err == nil {
			ok = true
		}
	}
	if !ok {
		return errors.New("no system clipboard, copied locally")
	}
	return nil
}

func (s *System) Paste() (string, error) {
	if text, err := clipboard.ReadAll(); err == nil && text != "" {
		return text, nil
	}
	if text, ok := readWithCommands(); ok && text != "" {
		return text, nil
	}
	return s.internal, nil
}

// Memory is a clipboard private to the process.
type Memory struct {
	text string
}

func (m *Memory) Copy(text string) error {
	m.text = text
	return nil
}

func (m *Memory) Paste() (string, error) {
	return m.text, nil
}

func writeWithCommands(text string) bool {
	commands := []struct {
		name string
		args []string
	}{
		{name: "wl-copy", args: []string{}},
		{name: "xclip", args: []string{"-selection", "clipboard"}},
		{name: "xsel", args: []string{"--clipboard", "--input"}},
		{name: "pbcopy", args: []string{}},
	}

	for _, cmdCfg := range commands {
		if _, err := exec.LookPath(cmdCfg.name); err != nil {
			continue
		}
		cmd := exec.Command(cmdCfg.name, cmdCfg.args...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return true
		}
	}
	return false
}

func readWithCommands() (string, bool) {
	commands := []struct {
		name string
		args []string
	}{
		{name: "wl-paste", args: []string{"--no-newline"}},
		{name: "xclip", args: []string{"-o", "-selection", "clipboard"}},
		{name: "xsel", args: []string{"--clipboard", "--output"}},
		{name: "pbpaste", args: []string{}},
	}

	for _, cmdCfg := range commands {
		if _, err := exec.LookPath(cmdCfg.name); err != nil {
			continue
		}
		out, err := exec.Command(cmdCfg.name, cmdCfg.args...).Output()
		if err == nil && len(out) > 0 {
			return string(out), true
		}
	}
	return "", false
}
