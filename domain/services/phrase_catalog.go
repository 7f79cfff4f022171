package services

import (
	"strings"

	"github.com/MauGud/amanda-project/domain/entities"
)

// DedupePhrases drops phrases that repeat an already-seen identifier or an
// already-seen normalized title, keeping the first occurrence in the
// original order. Seed data in the phrases table has accumulated duplicate
// rows over time; display must collapse them.
func DedupePhrases(phrases []entities.Phrase) []entities.Phrase {
	seenIDs := make(map[int64]struct{}, len(phrases))
	seenTitles := make(map[string]struct{}, len(phrases))

	unique := make([]entities.Phrase, 0, len(phrases))
	for _, phrase := range phrases {
		if _, ok := seenIDs[phrase.ID]; phrase.ID != 0 && ok {
			continue
		}

		title := NormalizeTitle(phrase.Title)
		if _, ok := seenTitles[title]; title != "" && ok {
			continue
		}

		if phrase.ID != 0 {
			seenIDs[phrase.ID] = struct{}{}
		}
		if title != "" {
			seenTitles[title] = struct{}{}
		}
		unique = append(unique, phrase)
	}

	return unique
}

// NormalizeTitle trims, lowercases and collapses internal whitespace so
// that case- and spacing-variants of a title compare equal.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), " "))
}
