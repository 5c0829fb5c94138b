package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Prompt is the modal line input shared by save-as and find. The message
// bar shows Format with the current input substituted for %s.
type Prompt struct {
	Format string
	Input  string

	// OnKey runs after every key, including the one that ends the prompt.
	OnKey    func(input string, ev *tcell.EventKey)
	OnSubmit func(value string)
	OnCancel func()
}

func NewPrompt(format string) *Prompt {
	return &Prompt{Format: format}
}

func (p *Prompt) Message() string {
	return fmt.Sprintf(p.Format, p.Input)
}

// HandleKey applies one key and reports whether the prompt has ended.
func (p *Prompt) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		p.notify(ev)
		if p.OnCancel != nil {
			p.OnCancel()
		}
		return true
	case tcell.KeyEnter:
		p.notify(ev)
		if p.Input == "" {
			if p.OnCancel != nil {
				p.OnCancel()
			}
			return true
		}
		if p.OnSubmit != nil {
			p.OnSubmit(p.Input)
		}
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		if runes := []rune(p.Input); len(runes) > 0 {
			p.Input = string(runes[:len(runes)-1])
		}
	case tcell.KeyTab:
		p.Input += "\t"
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
			p.Input += string(ev.Rune())
		}
	}
	p.notify(ev)
	return false
}

func (p *Prompt) notify(ev *tcell.EventKey) {
	if p.OnKey != nil {
		p.OnKey(p.Input, ev)
	}
}
