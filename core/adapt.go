package core

import (
	"regexp"
	"strings"

	"github.com/texttuner/texttuner/schema"
)

// AdaptationRule rewrites one stylistic pattern. The guard decides from the
// current metric snapshot whether the rewrite applies; guards never look at
// the text itself.
type AdaptationRule struct {
	Description string
	Guard       func(*schema.StyleMetrics) bool
	Rewrite     func(string) string
}

// cyrWordRe matches whole Cyrillic words. RE2 word boundaries are
// ASCII-only, so token-level replacement walks the words instead.
var cyrWordRe = regexp.MustCompile(`[а-яА-ЯёЁ]+`)

var (
	exclamationRe  = regexp.MustCompile(`[!?]+`)
	singlePeriodRe = regexp.MustCompile(`([^.])\.($|[^.])`)
	periodRe       = regexp.MustCompile(`\.`)
)

// replaceWords returns a rewrite that swaps whole words, matched
// case-insensitively, for the replacement.
func replaceWords(replacement string, words ...string) func(string) string {
	targets := make(map[string]struct{}, len(words))
	for _, w := range words {
		targets[w] = struct{}{}
	}
	return func(text string) string {
		return cyrWordRe.ReplaceAllStringFunc(text, func(match string) string {
			if _, ok := targets[strings.ToLower(match)]; ok {
				return replacement
			}
			return match
		})
	}
}

func always(*schema.StyleMetrics) bool { return true }

// adaptationRules is the ordered rule table per target style. Rules apply
// top to bottom, each seeing the previous rule's output.
var adaptationRules = map[schema.StyleName][]AdaptationRule{
	schema.ScientificStyle: {
		{
			Description: "Замена местоимения \"я\" на безличную форму",
			Guard:       func(m *schema.StyleMetrics) bool { return m.FormalityScore < 0.7 },
			Rewrite:     replaceWords("автор", "я"),
		},
		{
			Description: "Замена восклицательных и вопросительных знаков на точки",
			Guard:       always,
			Rewrite: func(text string) string {
				return exclamationRe.ReplaceAllString(text, ".")
			},
		},
		{
			Description: "Замена эмоциональных наречий на более точные",
			Guard:       always,
			Rewrite:     replaceWords("значительно", "очень", "весьма"),
		},
	},
	schema.LiteraryStyle: {
		{
			Description: "Добавление многоточий для создания напряжения",
			Guard:       func(m *schema.StyleMetrics) bool { return m.LexicalDiversity < 0.5 },
			Rewrite: func(text string) string {
				return singlePeriodRe.ReplaceAllString(text, "$1...$2")
			},
		},
		{
			Description: "Замена простых глаголов на более образные",
			Guard:       func(m *schema.StyleMetrics) bool { return m.LexicalDiversity < 0.7 },
			Rewrite:     replaceWords("превратился", "был", "стал"),
		},
	},
	schema.OfficialStyle: {
		{
			Description: "Замена личных местоимений на официальные формы",
			Guard:       always,
			Rewrite:     replaceWords("организация", "я", "мы"),
		},
		{
			Description: "Замена разговорных форм на официальные",
			Guard:       always,
			Rewrite:     replaceWords("необходимо", "нужно", "надо"),
		},
	},
	schema.ColloquialStyle: {
		{
			Description: "Замена официальных форм на разговорные",
			Guard:       func(m *schema.StyleMetrics) bool { return m.FormalityScore > 0.3 },
			Rewrite:     replaceWords("нужно", "необходимо", "следует"),
		},
		{
			Description: "Добавление восклицательных знаков для эмоциональности",
			Guard:       func(m *schema.StyleMetrics) bool { return m.FormalityScore >= 0.6 },
			Rewrite: func(text string) string {
				return periodRe.ReplaceAllString(text, "!")
			},
		},
	},
}

// StyleRules returns the ordered adaptation rules for one style.
// The returned slice is shared and must not be modified.
func StyleRules(style schema.StyleName) []AdaptationRule {
	return adaptationRules[style]
}

// AdaptText applies the style's adaptation rules to a text, gated on the
// metric snapshot taken before any rewriting. It returns the rewritten text
// and the descriptions of the rules that changed something.
func AdaptText(text string, metrics *schema.StyleMetrics, style schema.StyleName) (string, []string) {
	adapted := text
	var applied []string

	for _, rule := range adaptationRules[style] {
		if !rule.Guard(metrics) {
			continue
		}
		rewritten := rule.Rewrite(adapted)
		if rewritten != adapted {
			applied = append(applied, rule.Description)
			adapted = rewritten
		}
	}

	return adapted, applied
}
