package core

import (
	"strings"

	"github.com/texttuner/texttuner/schema"
)

// synonymTable maps a handful of common words to style-appropriate
// alternatives. It is a curated seed list, not a thesaurus.
var synonymTable = map[schema.StyleName]map[string][]string{
	schema.ScientificStyle: {
		"большой":   {"значительный", "крупный", "масштабный"},
		"маленький": {"незначительный", "небольшой", "минимальный"},
		"хороший":   {"эффективный", "оптимальный", "удовлетворительный"},
		"плохой":    {"неудовлетворительный", "неэффективный", "негативный"},
	},
	schema.LiteraryStyle: {
		"большой":   {"огромный", "громадный", "колоссальный", "исполинский"},
		"маленький": {"крошечный", "миниатюрный", "малюсенький", "небольшой"},
		"хороший":   {"прекрасный", "замечательный", "чудесный", "восхитительный"},
		"плохой":    {"ужасный", "отвратительный", "скверный", "невыносимый"},
	},
	schema.OfficialStyle: {
		"дать":    {"предоставить", "выделить", "назначить"},
		"взять":   {"получить", "принять", "заимствовать"},
		"сделать": {"осуществить", "выполнить", "реализовать"},
		"сказать": {"сообщить", "проинформировать", "уведомить"},
	},
	schema.ColloquialStyle: {
		"человек": {"парень", "мужик", "тип", "товарищ"},
		"девушка": {"девчонка", "деваха", "барышня"},
		"хороший": {"классный", "клевый", "отличный", "нормальный"},
		"плохой":  {"отстойный", "так себе", "не очень"},
	},
}

// SuggestSynonyms returns style-appropriate synonyms for a word, or nil
// when the word is not in the table for that style.
func SuggestSynonyms(word string, style schema.StyleName) []string {
	return synonymTable[style][strings.ToLower(strings.TrimSpace(word))]
}
