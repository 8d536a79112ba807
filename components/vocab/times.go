package vocab

import "fmt"

// slotMinutes is the fixed granularity of the generated time vocabulary.
const slotMinutes = 30

// TimeSlots generates every HH:MM combination across 24 hours at 30-minute
// granularity, in chronological order. The generation is total: 48 entries,
// no gaps, no duplicates.
func TimeSlots() []string {
	slots := make([]string, 0, 24*60/slotMinutes)
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute += slotMinutes {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}

// TimeSlotsWithFlexible appends the flexible-schedule sentinel so it can be
// offered as a selectable endpoint.
func TimeSlotsWithFlexible() []string {
	return append(TimeSlots(), FlexibleSchedule)
}
