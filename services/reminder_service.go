package services

import (
	"time"
)

const reminderDateLayout = "2006-01-02"

// Reminder schedule anchored to the invoice due date: every 15 days before,
// the due date itself, then a short post-due tail.
var (
	preDueOffsets  = []int{90, 75, 60, 45, 30, 15}
	postDueOffsets = []int{3, 7, 15}
)

// NextReminderDate returns the next ISO date a reminder should fire for the
// given due date, or nil when the cycle is exhausted. Pre-due offsets are
// scanned largest-first so the earliest upcoming reminder wins; dates already
// in sentDates are skipped. Comparison is at day granularity.
func NextReminderDate(dueDate string, sentDates []string, now time.Time) *string {
	if dueDate == "" {
		return nil
	}
	due, err := time.Parse(reminderDateLayout, dueDate)
	if err != nil {
		return nil
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	sent := make(map[string]bool, len(sentDates))
	for _, d := range sentDates {
		sent[d] = true
	}

	for _, days := range preDueOffsets {
		candidate := due.AddDate(0, 0, -days)
		if !candidate.Before(today) && !sent[candidate.Format(reminderDateLayout)] {
			iso := candidate.Format(reminderDateLayout)
			return &iso
		}
	}

	if !due.Before(today) && !sent[dueDate] {
		iso := due.Format(reminderDateLayout)
		return &iso
	}

	for _, days := range postDueOffsets {
		candidate := due.AddDate(0, 0, days)
		if !candidate.Before(today) && !sent[candidate.Format(reminderDateLayout)] {
			iso := candidate.Format(reminderDateLayout)
			return &iso
		}
	}

	return nil
}
