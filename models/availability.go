package models

// WeekAvailability is a tutor's full weekly schedule: for each weekday an
// ordered list of 30-minute slot start times in 24-hour "HH:MM" format.
type WeekAvailability struct {
	Monday    []string `bson:"monday" json:"monday"`
	Tuesday   []string `bson:"tuesday" json:"tuesday"`
	Wednesday []string `bson:"wednesday" json:"wednesday"`
	Thursday  []string `bson:"thursday" json:"thursday"`
	Friday    []string `bson:"friday" json:"friday"`
	Saturday  []string `bson:"saturday" json:"saturday"`
	Sunday    []string `bson:"sunday" json:"sunday"`
}

// DayNames lists the weekday keys in display order.
var DayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Day returns the slot list for the given lower-case weekday name.
func (w *WeekAvailability) Day(name string) []string {
	switch name {
	case "monday":
		return w.Monday
	case "tuesday":
		return w.Tuesday
	case "wednesday":
		return w.Wednesday
	case "thursday":
		return w.Thursday
	case "friday":
		return w.Friday
	case "saturday":
		return w.Saturday
	case "sunday":
		return w.Sunday
	}
	return nil
}

func (w *WeekAvailability) setDay(name string, slots []string) {
	switch name {
	case "monday":
		w.Monday = slots
	case "tuesday":
		w.Tuesday = slots
	case "wednesday":
		w.Wednesday = slots
	case "thursday":
		w.Thursday = slots
	case "friday":
		w.Friday = slots
	case "saturday":
		w.Saturday = slots
	case "sunday":
		w.Sunday = slots
	}
}

// NormalizeWeek coerces an untyped JSON mapping (typically the interpreter's
// raw output) into a WeekAvailability. Every weekday ends up with a non-nil
// slice: a missing or non-array day value becomes empty, and non-string
// elements are dropped. Slot strings themselves are passed through as-is,
// even when malformed.
func NormalizeWeek(raw map[string]interface{}) *WeekAvailability {
	week := &WeekAvailability{}
	for _, day := range DayNames {
		slots := []string{}
		if entries, ok := raw[day].([]interface{}); ok {
			for _, entry := range entries {
				if s, ok := entry.(string); ok {
					slots = append(slots, s)
				}
			}
		}
		week.setDay(day, slots)
	}
	return week
}

// Normalized returns a copy with every nil day slice replaced by an empty
// one, so persisted documents always carry all seven day arrays.
func (w *WeekAvailability) Normalized() *WeekAvailability {
	out := &WeekAvailability{}
	for _, day := range DayNames {
		slots := w.Day(day)
		if slots == nil {
			slots = []string{}
		}
		out.setDay(day, slots)
	}
	return out
}
