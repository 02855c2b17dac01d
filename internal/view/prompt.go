package view

import (
	"unicode"

	"github.com/Drawing-master/Drawing-Master/internal/editor"
)

// MaxPromptRunes caps the text typed into a prompt.
const MaxPromptRunes = 256

// Prompt collects typed text for a pending text request.
type Prompt struct {
	Request editor.TextRequest
	input   []rune
}

// NewPrompt starts an empty prompt for req.
func NewPrompt(req editor.TextRequest) *Prompt {
	return &Prompt{Request: req}
}

// Insert appends r. Control characters are ignored.
func (p *Prompt) Insert(r rune) {
	if !unicode.IsPrint(r) || len(p.input) >= MaxPromptRunes {
		return
	}
	p.input = append(p.input, r)
}

// Backspace removes the last rune.
func (p *Prompt) Backspace() {
	if len(p.input) > 0 {
		p.input = p.input[:len(p.input)-1]
	}
}

// Text returns the typed text.
func (p *Prompt) Text() string { return string(p.input) }
