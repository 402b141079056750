package translations

import (
	"strings"

	"github.com/reusee/stenowiki/strokes"
)

// Session owns one output buffer and is not safe for concurrent use.
type Session struct {
	translator Translator
	lookuper   ReverseLookuper
	buffer     []rune
}

func NewSession(translator Translator, lookuper ReverseLookuper) *Session {
	return &Session{
		translator: translator,
		lookuper:   lookuper,
	}
}

func (s *Session) Reset() {
	s.buffer = s.buffer[:0]
	s.translator.Reset()
}

func (s *Session) Feed(stroke strokes.Stroke) {
	s.apply(s.translator.Translate(stroke))
}

func (s *Session) apply(edit Edit) {
	for _, n := range edit.Deletes {
		if n <= 0 {
			continue
		}
		if n > len(s.buffer) {
			n = len(s.buffer)
		}
		s.buffer = s.buffer[:len(s.buffer)-n]
	}
	for _, str := range edit.Appends {
		s.buffer = append(s.buffer, []rune(str)...)
	}
}

// Text strips the leading space of the word join convention.
func (s *Session) Text() string {
	return strings.TrimPrefix(string(s.buffer), " ")
}

func (s *Session) ReverseLookup(word string) []strokes.Sequence {
	if s.lookuper == nil {
		return nil
	}
	return s.lookuper.ReverseLookup(word)
}

// Translate resets the session and feeds seq in order.
func (s *Session) Translate(seq strokes.Sequence) string {
	s.Reset()
	for _, stroke := range seq {
		s.Feed(stroke)
	}
	return s.Text()
}
