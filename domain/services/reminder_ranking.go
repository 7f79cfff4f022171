package services

import (
	"sort"
	"time"

	"github.com/MauGud/amanda-project/domain/entities"
)

// SortRemindersForDisplay returns a stably ordered copy of reminders:
// important ones first, recently-marked-important before older ones, and
// the rest by creation time, newest first. A missing importance timestamp
// sorts after any present one.
func SortRemindersForDisplay(reminders []entities.Reminder) []entities.Reminder {
	sorted := make([]entities.Reminder, len(reminders))
	copy(sorted, reminders)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		if a.IsImportant != b.IsImportant {
			return a.IsImportant
		}

		if a.IsImportant && b.IsImportant {
			return importantAtOf(a).After(importantAtOf(b))
		}

		return a.CreatedAt.After(b.CreatedAt)
	})

	return sorted
}

func importantAtOf(r entities.Reminder) time.Time {
	if r.ImportantAt == nil {
		return time.Time{}
	}
	return *r.ImportantAt
}
