// Package lexicon exposes the formal and informal Russian vocabulary
// sets used by the formality metric. Sets are assembled once at startup
// and read-only afterwards, so unsynchronized concurrent reads are safe.
package lexicon

import "strings"

// Provider exposes immutable membership lookup over the two vocabulary sets.
type Provider interface {
	IsFormal(word string) bool
	IsInformal(word string) bool
}

// Static is the default Provider backed by in-memory sets.
type Static struct {
	formal   map[string]struct{}
	informal map[string]struct{}
}

// builtinFormal is the seed vocabulary of bookish and bureaucratic markers.
var builtinFormal = []string{
	"следовательно", "соответственно", "вследствие", "осуществлять",
	"являться", "настоящий", "данный", "присутствовать", "отсутствовать",
	"вышеуказанный", "нижеследующий", "надлежащий", "установленный",
	"обусловливать", "характеризоваться", "представляться",
}

// builtinInformal is the seed vocabulary of colloquial fillers.
var builtinInformal = []string{
	"короче", "типа", "как бы", "вот", "это", "ну", "так сказать",
	"знаешь", "понимаешь", "слушай", "кстати", "вообще",
}

// NewStatic builds a provider from the built-in sets plus any extra words.
// All words are lowercased on insertion so membership tests stay
// case-insensitive against the lowercased token stream.
func NewStatic(extraFormal, extraInformal []string) *Static {
	s := &Static{
		formal:   make(map[string]struct{}, len(builtinFormal)+len(extraFormal)),
		informal: make(map[string]struct{}, len(builtinInformal)+len(extraInformal)),
	}
	for _, w := range builtinFormal {
		s.formal[w] = struct{}{}
	}
	for _, w := range builtinInformal {
		s.informal[w] = struct{}{}
	}
	for _, w := range extraFormal {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			s.formal[w] = struct{}{}
		}
	}
	for _, w := range extraInformal {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			s.informal[w] = struct{}{}
		}
	}
	return s
}

// IsFormal implements Provider.
func (s *Static) IsFormal(word string) bool {
	_, ok := s.formal[word]
	return ok
}

// IsInformal implements Provider.
func (s *Static) IsInformal(word string) bool {
	_, ok := s.informal[word]
	return ok
}

// FormalCount returns the size of the formal set.
func (s *Static) FormalCount() int { return len(s.formal) }

// InformalCount returns the size of the informal set.
func (s *Static) InformalCount() int { return len(s.informal) }
