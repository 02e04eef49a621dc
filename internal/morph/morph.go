// Package morph provides part-of-speech tagging for Russian words.
// The core analysis treats the tagger as a black box: any per-word
// failure is recovered by the caller with the UNKN tag.
package morph

import (
	"fmt"
	"strings"

	"github.com/texttuner/texttuner/schema"
)

// Tagger maps a single lowercase word to its part-of-speech tag.
type Tagger interface {
	// Tag returns the part-of-speech tag for the given word.
	// It may fail per call; callers are expected to substitute
	// schema.TagUnknown and continue.
	Tag(word string) (schema.POSTag, error)
}

// TagError reports a word the tagger could not classify.
type TagError struct {
	Word   string
	Reason string
}

func (e *TagError) Error() string {
	return fmt.Sprintf("cannot tag %q: %s", e.Word, e.Reason)
}

// closedClass maps function words to their tags. Function words resist
// suffix analysis, so exact lookup comes first.
var closedClass = map[string]schema.POSTag{
	// Prepositions
	"в": schema.TagPreposition, "на": schema.TagPreposition, "за": schema.TagPreposition,
	"по": schema.TagPreposition, "из": schema.TagPreposition, "от": schema.TagPreposition,
	"до": schema.TagPreposition, "без": schema.TagPreposition, "при": schema.TagPreposition,
	"про": schema.TagPreposition, "для": schema.TagPreposition, "над": schema.TagPreposition,
	"под": schema.TagPreposition, "через": schema.TagPreposition, "между": schema.TagPreposition,
	"перед": schema.TagPreposition, "около": schema.TagPreposition, "вследствие": schema.TagPreposition,

	// Conjunctions
	"и": schema.TagConjunction, "но": schema.TagConjunction, "или": schema.TagConjunction,
	"что": schema.TagConjunction, "чтобы": schema.TagConjunction, "если": schema.TagConjunction,
	"когда": schema.TagConjunction, "хотя": schema.TagConjunction, "либо": schema.TagConjunction,
	"тоже": schema.TagConjunction, "также": schema.TagConjunction, "потому": schema.TagConjunction,
	"поэтому": schema.TagConjunction, "однако": schema.TagConjunction,

	// Particles
	"не": schema.TagParticle, "ни": schema.TagParticle, "же": schema.TagParticle,
	"ли": schema.TagParticle, "бы": schema.TagParticle, "вот": schema.TagParticle,
	"ведь": schema.TagParticle, "лишь": schema.TagParticle, "только": schema.TagParticle,
	"даже": schema.TagParticle, "уже": schema.TagParticle, "ну": schema.TagParticle,
	"типа": schema.TagParticle,

	// Pronouns
	"я": schema.TagPronoun, "ты": schema.TagPronoun, "он": schema.TagPronoun,
	"она": schema.TagPronoun, "оно": schema.TagPronoun, "мы": schema.TagPronoun,
	"вы": schema.TagPronoun, "они": schema.TagPronoun, "это": schema.TagPronoun,
	"этот": schema.TagPronoun, "тот": schema.TagPronoun, "его": schema.TagPronoun,
	"ее": schema.TagPronoun, "её": schema.TagPronoun, "их": schema.TagPronoun,
	"мой": schema.TagPronoun, "твой": schema.TagPronoun, "наш": schema.TagPronoun,
	"ваш": schema.TagPronoun, "свой": schema.TagPronoun, "кто": schema.TagPronoun,
	"себя": schema.TagPronoun, "весь": schema.TagPronoun, "который": schema.TagPronoun,
	"такой": schema.TagPronoun, "сам": schema.TagPronoun,

	// Interjections
	"ой": schema.TagInterjection, "ах": schema.TagInterjection, "ох": schema.TagInterjection,
	"эй": schema.TagInterjection, "ура": schema.TagInterjection, "увы": schema.TagInterjection,

	// Numerals
	"один": schema.TagNumeral, "одна": schema.TagNumeral, "одно": schema.TagNumeral,
	"два": schema.TagNumeral, "две": schema.TagNumeral, "три": schema.TagNumeral,
	"четыре": schema.TagNumeral, "пять": schema.TagNumeral, "шесть": schema.TagNumeral,
	"семь": schema.TagNumeral, "восемь": schema.TagNumeral, "девять": schema.TagNumeral,
	"десять": schema.TagNumeral, "сто": schema.TagNumeral, "тысяча": schema.TagNumeral,
}

// suffixRule associates a word ending with a tag guess.
type suffixRule struct {
	suffix string
	tag    schema.POSTag
}

// suffixRules are checked in order, so longer and more specific endings
// must come before shorter ones. The order resolves ambiguous endings
// the way pymorphy usually does ("ими" is adjectival, "ит" is verbal).
var suffixRules = []suffixRule{
	// Reflexive and infinitive verb forms
	{"ться", schema.TagVerb},
	{"тся", schema.TagVerb},
	{"лась", schema.TagVerb},
	{"лось", schema.TagVerb},
	{"лись", schema.TagVerb},
	{"лся", schema.TagVerb},

	// Adverbs derived from adjectives
	{"ически", schema.TagAdverb},
	{"тельно", schema.TagAdverb},
	{"енно", schema.TagAdverb},

	// Abstract noun suffixes, common in formal registers
	{"ость", schema.TagNoun},
	{"ение", schema.TagNoun},
	{"ание", schema.TagNoun},
	{"ство", schema.TagNoun},
	{"ация", schema.TagNoun},
	{"ции", schema.TagNoun},
	{"изм", schema.TagNoun},
	{"тель", schema.TagNoun},

	// Adjective endings
	{"ический", schema.TagAdjective},
	{"ного", schema.TagAdjective},
	{"ной", schema.TagAdjective},
	{"ный", schema.TagAdjective},
	{"ние", schema.TagNoun},
	{"ский", schema.TagAdjective},
	{"ская", schema.TagAdjective},
	{"ское", schema.TagAdjective},
	{"ские", schema.TagAdjective},
	{"ими", schema.TagAdjective},
	{"ыми", schema.TagAdjective},
	{"ого", schema.TagAdjective},
	{"его", schema.TagAdjective},
	{"ому", schema.TagAdjective},
	{"ему", schema.TagAdjective},
	{"ая", schema.TagAdjective},
	{"яя", schema.TagAdjective},
	{"ое", schema.TagAdjective},
	{"ее", schema.TagAdjective},
	{"ые", schema.TagAdjective},
	{"ый", schema.TagAdjective},
	{"ий", schema.TagAdjective},
	{"ых", schema.TagAdjective},

	// Finite verb endings
	{"ует", schema.TagVerb},
	{"уют", schema.TagVerb},
	{"ешь", schema.TagVerb},
	{"ишь", schema.TagVerb},
	{"ете", schema.TagVerb},
	{"ите", schema.TagVerb},
	{"ают", schema.TagVerb},
	{"яют", schema.TagVerb},
	{"ть", schema.TagVerb},
	{"ет", schema.TagVerb},
	{"ит", schema.TagVerb},
	{"ат", schema.TagVerb},
	{"ят", schema.TagVerb},
	{"ют", schema.TagVerb},
	{"ем", schema.TagVerb},
	{"ал", schema.TagVerb},
	{"ил", schema.TagVerb},
	{"ял", schema.TagVerb},
	{"ала", schema.TagVerb},
	{"или", schema.TagVerb},
	{"али", schema.TagVerb},
}

// HeuristicTagger guesses part of speech from closed-class lookup and
// suffix analysis. It holds no state and is safe for concurrent use.
type HeuristicTagger struct{}

// NewHeuristicTagger creates the default suffix-based tagger.
func NewHeuristicTagger() *HeuristicTagger {
	return &HeuristicTagger{}
}

// Tag implements Tagger.
func (t *HeuristicTagger) Tag(word string) (schema.POSTag, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return schema.TagUnknown, &TagError{Word: word, Reason: "empty word"}
	}
	if !isCyrillic(word) {
		return schema.TagUnknown, &TagError{Word: word, Reason: "not a Cyrillic word"}
	}

	if tag, ok := closedClass[word]; ok {
		return tag, nil
	}

	for _, rule := range suffixRules {
		if strings.HasSuffix(word, rule.suffix) && word != rule.suffix {
			return rule.tag, nil
		}
	}

	// Nouns dominate open-class Russian vocabulary, so they are the
	// default guess for anything left over.
	return schema.TagNoun, nil
}

// isCyrillic reports whether the word consists only of Russian letters.
func isCyrillic(word string) bool {
	for _, r := range word {
		if r != 'ё' && (r < 'а' || r > 'я') {
			return false
		}
	}
	return true
}
