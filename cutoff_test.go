package accrual

import (
	"testing"
	"time"

	"github.com/etnz/accrual/date"
)

func TestNewPolicy_CutoffBoundary(t *testing.T) {
	tests := []struct {
		name string
		on   date.Date
		want time.Month
	}{
		{"14th excludes current month", date.New(2025, time.July, 14), time.June},
		{"15th includes current month", date.New(2025, time.July, 15), time.July},
		{"late month includes current month", date.New(2025, time.July, 28), time.July},
		{"early January wraps to December", date.New(2025, time.January, 3), time.December},
		{"January 14th still wraps", date.New(2025, time.January, 14), time.December},
		{"January 15th is January", date.New(2025, time.January, 15), time.January},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolicy(tt.on)
			if p.Cutoff != tt.want {
				t.Errorf("NewPolicy(%s).Cutoff = %s, want %s", tt.on, p.Cutoff, tt.want)
			}
		})
	}
}

func TestPolicy_Months(t *testing.T) {
	p := NewPolicy(date.New(2025, time.March, 20))
	want := []string{"JANUARY", "FEBRUARY", "MARCH"}
	got := p.Months()
	if len(got) != len(want) {
		t.Fatalf("Months() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Months()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPolicy_JanuaryWrapCoversFullYear(t *testing.T) {
	p := NewPolicy(date.New(2026, time.January, 5))
	if len(p.Months()) != 12 {
		t.Fatalf("early January window = %d months, want 12", len(p.Months()))
	}
	if !p.Includes("DECEMBER") {
		t.Errorf("early January run should still include DECEMBER")
	}
}

func TestPolicy_Includes_CaseInsensitive(t *testing.T) {
	p := NewPolicy(date.New(2025, time.June, 20))
	for _, label := range []string{"january", "JANUARY", "January", " June "} {
		if !p.Includes(label) {
			t.Errorf("Includes(%q) = false, want true", label)
		}
	}
	if p.Includes("JULY") {
		t.Errorf("Includes(JULY) = true, want false for a June cutoff")
	}
}

func TestMonthLabel(t *testing.T) {
	if got, ok := MonthLabel(" february "); !ok || got != "FEBRUARY" {
		t.Errorf("MonthLabel(february) = %q, %v", got, ok)
	}
	if _, ok := MonthLabel("VENDOR"); ok {
		t.Errorf("MonthLabel(VENDOR) unexpectedly matched")
	}
	if _, ok := MonthLabel(""); ok {
		t.Errorf("MonthLabel(empty) unexpectedly matched")
	}
}
