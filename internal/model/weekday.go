package model

import "strings"

// Weekday is one of the seven planner columns.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists the columns in display order, Monday first.
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Index returns the day's position in the week, Monday = 0.
// Unknown values sort after Sunday.
func (d Weekday) Index() int {
	for i, day := range Weekdays {
		if day == d {
			return i
		}
	}
	return len(Weekdays)
}

// ParseWeekday matches a day name case-insensitively.
func ParseWeekday(s string) (Weekday, bool) {
	name := strings.TrimSpace(s)
	for _, day := range Weekdays {
		if strings.EqualFold(name, string(day)) {
			return day, true
		}
	}
	return "", false
}
