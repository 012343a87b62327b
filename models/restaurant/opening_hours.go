package restaurant

import (
	"strconv"
	"strings"
	"time"
)

// DayHours holds "HH:MM" open and close markers for a single day.
type DayHours struct {
	Open  string `json:"open,omitempty" bson:"open,omitempty"`
	Close string `json:"close,omitempty" bson:"close,omitempty"`
}

type OpeningHours struct {
	Monday    *DayHours `json:"monday,omitempty" bson:"monday,omitempty"`
	Tuesday   *DayHours `json:"tuesday,omitempty" bson:"tuesday,omitempty"`
	Wednesday *DayHours `json:"wednesday,omitempty" bson:"wednesday,omitempty"`
	Thursday  *DayHours `json:"thursday,omitempty" bson:"thursday,omitempty"`
	Friday    *DayHours `json:"friday,omitempty" bson:"friday,omitempty"`
	Saturday  *DayHours `json:"saturday,omitempty" bson:"saturday,omitempty"`
	Sunday    *DayHours `json:"sunday,omitempty" bson:"sunday,omitempty"`
}

// EveryDay returns opening hours with the same window on all seven days.
func EveryDay(open, close string) OpeningHours {
	h := func() *DayHours { return &DayHours{Open: open, Close: close} }
	return OpeningHours{
		Monday: h(), Tuesday: h(), Wednesday: h(), Thursday: h(),
		Friday: h(), Saturday: h(), Sunday: h(),
	}
}

// For returns the entry for the given weekday, or nil.
func (o OpeningHours) For(day time.Weekday) *DayHours {
	switch day {
	case time.Monday:
		return o.Monday
	case time.Tuesday:
		return o.Tuesday
	case time.Wednesday:
		return o.Wednesday
	case time.Thursday:
		return o.Thursday
	case time.Friday:
		return o.Friday
	case time.Saturday:
		return o.Saturday
	case time.Sunday:
		return o.Sunday
	}
	return nil
}

// IsOpenAt reports whether the restaurant is open at now's wall-clock time.
// Windows are same-day only: a close marker numerically below the open
// marker never matches, so hours past midnight read as closed.
func (r *Restaurant) IsOpenAt(now time.Time) bool {
	hours := r.OpeningHours.For(now.Weekday())
	if hours == nil || hours.Open == "" || hours.Close == "" {
		return false
	}

	open, ok := timeMarker(hours.Open)
	if !ok {
		return false
	}
	closing, ok := timeMarker(hours.Close)
	if !ok {
		return false
	}

	current := now.Hour()*100 + now.Minute()
	return current >= open && current <= closing
}

// timeMarker turns "HH:MM" into HH*100+MM.
func timeMarker(hhmm string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 24 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*100 + m, true
}
