package schema

import "github.com/goliatone/go-internform/components/vocab"

// Field keys of the built-in internship posting schema. Sinks map these onto
// their target columns/properties at configuration time, so the key set is
// fixed per deployment.
const (
	KeyCompany           = "company"
	KeyIndustry          = "industry"
	KeyWorkType          = "work_type"
	KeyLocation          = "location"
	KeyNearestStation    = "nearest_station"
	KeyPeriod            = "period"
	KeyPosition          = "position"
	KeyGrades            = "grades"
	KeySalary            = "salary"
	KeyTransportationFee = "transportation_fee"
	KeyStartTime         = "start_time"
	KeyEndTime           = "end_time"
	KeyWorkingDays       = "working_days"
	KeyWeeklyHours       = "weekly_hours"
	KeyRequiredSkills    = "required_skills"
	KeyPreferredSkills   = "preferred_skills"
	KeySelectionProcess  = "selection_process"
	KeyDeadline          = "deadline"
	KeyStartDate         = "start_date"
	KeyHeadcount         = "headcount"
)

// Default returns the built-in internship posting schema. Deployments with
// extra fields or reworded labels load their own document instead of forking
// the code.
func Default() FormSchema {
	return FormSchema{
		Name: "internship-posting",
		Fields: []FieldDef{
			{Key: KeyCompany, Label: "Company", Kind: FieldKindText, Required: true, Placeholder: "e.g. Acme Inc."},
			{Key: KeyIndustry, Label: "Industry", Kind: FieldKindSelect, Options: vocab.Industries()},
			{Key: KeyWorkType, Label: "Format", Kind: FieldKindSelect, Options: vocab.WorkTypes()},
			{Key: KeyLocation, Label: "Location", Kind: FieldKindText, Required: true, Placeholder: "e.g. 1-2-3 Dogenzaka, Shibuya, Tokyo"},
			{Key: KeyNearestStation, Label: "Nearest Station", Kind: FieldKindText, Placeholder: "e.g. 1 min walk from Shibuya Station"},
			{Key: KeyPeriod, Label: "Period", Kind: FieldKindSelect, Options: vocab.Periods()},
			{Key: KeyPosition, Label: "Role", Kind: FieldKindSelect, Options: vocab.Positions()},
			{Key: KeyGrades, Label: "Target Grades", Kind: FieldKindMultiSelect, Options: vocab.Grades()},
			{Key: KeySalary, Label: "Compensation", Kind: FieldKindSelect, Options: vocab.Salaries()},
			{Key: KeyTransportationFee, Label: "Transportation Allowance", Kind: FieldKindSelect, Options: vocab.TransportationFees()},
			{Key: KeyStartTime, Label: "Start Time", Kind: FieldKindSelect, Options: vocab.TimeSlotsWithFlexible()},
			{Key: KeyEndTime, Label: "End Time", Kind: FieldKindSelect, Options: vocab.TimeSlotsWithFlexible()},
			{Key: KeyWorkingDays, Label: "Working Days", Kind: FieldKindSelect, Options: vocab.WorkingDays()},
			{Key: KeyWeeklyHours, Label: "Weekly Hours", Kind: FieldKindInt, Placeholder: "e.g. 15"},
			{Key: KeyRequiredSkills, Label: "Required Skills", Kind: FieldKindTextArea, Required: true, Placeholder: "e.g. experience building web applications"},
			{Key: KeyPreferredSkills, Label: "Preferred Skills", Kind: FieldKindTextArea, Placeholder: "e.g. team development with GitHub"},
			{Key: KeySelectionProcess, Label: "Selection Process", Kind: FieldKindSelect, Options: vocab.SelectionProcesses()},
			{Key: KeyDeadline, Label: "Application Deadline", Kind: FieldKindDate, Placeholder: "YYYY-MM-DD"},
			{Key: KeyStartDate, Label: "Start Date", Kind: FieldKindDate, Placeholder: "YYYY-MM-DD"},
			{Key: KeyHeadcount, Label: "Headcount", Kind: FieldKindInt, Placeholder: "e.g. 3"},
		},
	}
}
