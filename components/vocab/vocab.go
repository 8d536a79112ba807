// Package vocab holds the fixed option vocabularies used by the internship
// posting schema. Every list is ordered: insertion order is the display and
// selection order. Accessors hand out copies so the shared tables stay
// immutable at run time.
package vocab

// OptionOther is the sentinel escape appearing at the end of lists that
// accept a free-text replacement. The collection layer must substitute the
// user's text for it before validation; a resolved value must never be the
// sentinel itself.
const OptionOther = "Other"

// FlexibleSchedule is the sentinel accepted for time endpoints when a posting
// has no fixed start or end time.
const FlexibleSchedule = "flexible schedule"

var industries = []string{
	"IT / Technology",
	"Finance / Insurance",
	"Manufacturing",
	"Trading / Distribution",
	"Services",
	"Advertising / Marketing",
	"Consulting",
	"Media / Entertainment",
	"Retail",
	"Real Estate / Construction",
	"Healthcare",
	"Education",
	"Energy / Resources",
	"Transport / Logistics",
	OptionOther,
}

var workTypes = []string{
	"On-site",
	"Remote",
	"Hybrid",
}

var workingDays = []string{
	"1 day/week",
	"2 days/week",
	"3 days/week",
	"4 days/week",
	"5 days/week",
	"1+ days/week",
	"2+ days/week",
	"3+ days/week",
	"4+ days/week",
	"5+ days/week",
	OptionOther,
}

var transportationFees = []string{
	"Not covered",
	"Partially covered",
	"Fully covered",
	OptionOther,
}

var periods = []string{
	"1 day",
	"2 days",
	"3 days",
	"1 week",
	"2 weeks",
	"3 weeks",
	"1 month",
	"2 months",
	"3 months",
	"Summer (Jul-Aug)",
	"Winter (Dec-Jan)",
	"Spring (Mar-Apr)",
	"Year-round",
	OptionOther,
}

var positions = []string{
	"Engineer",
	"Designer",
	"Marketing",
	"Sales",
	"Planning",
	"Human Resources",
	"Accounting / Finance",
	"Legal",
	OptionOther,
}

var grades = []string{
	"1st-year undergraduate",
	"2nd-year undergraduate",
	"3rd-year undergraduate",
	"4th-year undergraduate",
	"1st-year graduate",
	"2nd-year graduate",
	OptionOther,
}

var salaries = []string{
	"Unpaid",
	"1,000 yen/hour",
	"1,500 yen/hour",
	"2,000 yen/hour",
	"10,000 yen/day",
	"15,000 yen/day",
	OptionOther,
}

var selectionProcesses = []string{
	"Document screening → Interview",
	"Document screening → Group discussion → Interview",
	"Document screening → Written test → Interview",
	"Document screening → Group work → Interview",
	OptionOther,
}

// Industries returns the industry options.
func Industries() []string { return clone(industries) }

// WorkTypes returns the work format options.
func WorkTypes() []string { return clone(workTypes) }

// WorkingDays returns the weekly working-day pattern options.
func WorkingDays() []string { return clone(workingDays) }

// TransportationFees returns the transportation allowance policy options.
func TransportationFees() []string { return clone(transportationFees) }

// Periods returns the internship period options.
func Periods() []string { return clone(periods) }

// Positions returns the role options.
func Positions() []string { return clone(positions) }

// Grades returns the target grade options.
func Grades() []string { return clone(grades) }

// Salaries returns the salary band options.
func Salaries() []string { return clone(salaries) }

// SelectionProcesses returns the selection flow templates.
func SelectionProcesses() []string { return clone(selectionProcesses) }

// HasOther reports whether a list carries the free-text escape sentinel.
func HasOther(options []string) bool {
	for _, option := range options {
		if option == OptionOther {
			return true
		}
	}
	return false
}

func clone(options []string) []string {
	return append([]string{}, options...)
}
