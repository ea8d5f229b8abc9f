package services

import (
	"testing"
	"time"
)

func TestNextReminderDate(t *testing.T) {
	// Fixed clock: Jan 10, 2026.
	now := time.Date(2026, 1, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dueDate string
		sent    []string
		want    string // empty means nil
	}{
		{
			name:    "empty due date",
			dueDate: "",
			want:    "",
		},
		{
			name:    "malformed due date",
			dueDate: "not-a-date",
			want:    "",
		},
		{
			name:    "far future due date picks 90 day mark",
			dueDate: "2026-06-01", // 90 days before = 2026-03-03
			want:    "2026-03-03",
		},
		{
			name:    "90 day mark already sent moves to 75",
			dueDate: "2026-06-01",
			sent:    []string{"2026-03-03"},
			want:    "2026-03-18",
		},
		{
			name:    "past offsets are skipped",
			dueDate: "2026-02-01", // 90..30 day marks are before Jan 10
			want:    "2026-01-17", // 15 days before due
		},
		{
			name:    "all pre-due sent falls back to due date",
			dueDate: "2026-01-20",
			sent:    []string{"2026-01-05"}, // the only reachable pre-due mark (15d)
			want:    "2026-01-20",
		},
		{
			name:    "overdue moves into post-due tail",
			dueDate: "2026-01-08",
			want:    "2026-01-11", // due+3
		},
		{
			name:    "post-due dates sent advance the tail",
			dueDate: "2026-01-01",
			sent:    []string{"2026-01-04", "2026-01-08"},
			want:    "2026-01-16", // due+15
		},
		{
			name:    "exhausted cycle returns nil",
			dueDate: "2025-10-01",
			want:    "",
		},
		{
			name:    "due today with nothing sent fires today",
			dueDate: "2026-01-10",
			want:    "2026-01-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextReminderDate(tt.dueDate, tt.sent, now)
			if tt.want == "" {
				if got != nil {
					t.Errorf("NextReminderDate() = %q, want nil", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("NextReminderDate() = nil, want %q", tt.want)
			}
			if *got != tt.want {
				t.Errorf("NextReminderDate() = %q, want %q", *got, tt.want)
			}
		})
	}
}

func TestNextReminderDateIdempotent(t *testing.T) {
	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	sent := []string{"2026-03-03"}

	first := NextReminderDate("2026-06-01", sent, now)
	second := NextReminderDate("2026-06-01", sent, now)
	if first == nil || second == nil || *first != *second {
		t.Errorf("repeated calls disagree: %v vs %v", first, second)
	}
}
