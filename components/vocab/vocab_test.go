package vocab_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-internform/components/vocab"
)

func TestListsPreserveOrderAndSentinelPlacement(t *testing.T) {
	lists := map[string][]string{
		"industries":         vocab.Industries(),
		"workingDays":        vocab.WorkingDays(),
		"transportationFees": vocab.TransportationFees(),
		"periods":            vocab.Periods(),
		"positions":          vocab.Positions(),
		"grades":             vocab.Grades(),
		"salaries":           vocab.Salaries(),
		"selectionProcesses": vocab.SelectionProcesses(),
	}

	for name, options := range lists {
		if len(options) == 0 {
			t.Fatalf("%s: empty list", name)
		}
		if !vocab.HasOther(options) {
			t.Fatalf("%s: missing %q sentinel", name, vocab.OptionOther)
		}
		if got := options[len(options)-1]; got != vocab.OptionOther {
			t.Fatalf("%s: sentinel not last, got %q", name, got)
		}
	}

	if vocab.HasOther(vocab.WorkTypes()) {
		t.Fatal("workTypes: unexpected sentinel")
	}
}

func TestIndustriesFirstOption(t *testing.T) {
	if got := vocab.Industries()[0]; got != "IT / Technology" {
		t.Fatalf("first industry = %q", got)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	first := vocab.Positions()
	first[0] = "mutated"

	if got := vocab.Positions()[0]; got == "mutated" {
		t.Fatal("shared table mutated through accessor result")
	}
}

func TestTimeSlotsTotalAndDeterministic(t *testing.T) {
	slots := vocab.TimeSlots()

	if len(slots) != 48 {
		t.Fatalf("len(slots) = %d, want 48", len(slots))
	}
	if slots[0] != "00:00" {
		t.Fatalf("first slot = %q", slots[0])
	}
	if slots[len(slots)-1] != "23:30" {
		t.Fatalf("last slot = %q", slots[len(slots)-1])
	}

	seen := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		if _, dup := seen[slot]; dup {
			t.Fatalf("duplicate slot %q", slot)
		}
		seen[slot] = struct{}{}
	}

	if diff := cmp.Diff(slots, vocab.TimeSlots()); diff != "" {
		t.Fatalf("generation not deterministic (-first +second):\n%s", diff)
	}
}

func TestTimeSlotsWithFlexible(t *testing.T) {
	slots := vocab.TimeSlotsWithFlexible()
	if len(slots) != 49 {
		t.Fatalf("len(slots) = %d, want 49", len(slots))
	}
	if got := slots[len(slots)-1]; got != vocab.FlexibleSchedule {
		t.Fatalf("last slot = %q, want %q", got, vocab.FlexibleSchedule)
	}
}

func TestFilter(t *testing.T) {
	cases := []struct {
		name    string
		options []string
		query   string
		want    []string
	}{
		{
			name:    "empty query returns all",
			options: []string{"a", "b"},
			query:   "  ",
			want:    []string{"a", "b"},
		},
		{
			name:    "case insensitive substring",
			options: []string{"Engineer", "Designer", "Marketing"},
			query:   "design",
			want:    []string{"Designer"},
		},
		{
			name:    "order preserved",
			options: vocab.TimeSlots(),
			query:   "09:",
			want:    []string{"09:00", "09:30"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := vocab.Filter(tc.options, tc.query)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("filter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
