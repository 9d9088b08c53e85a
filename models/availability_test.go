package models

import (
	"reflect"
	"testing"
)

func TestNormalizeWeekAlwaysHasSevenDays(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]interface{}
	}{
		{name: "nil input", raw: nil},
		{name: "empty input", raw: map[string]interface{}{}},
		{
			name: "partial input",
			raw: map[string]interface{}{
				"monday": []interface{}{"09:00", "09:30"},
			},
		},
		{
			name: "non-array day values",
			raw: map[string]interface{}{
				"monday":  "09:00",
				"tuesday": 42,
				"friday":  map[string]interface{}{"start": "09:00"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := NormalizeWeek(tt.raw)
			for _, day := range DayNames {
				if week.Day(day) == nil {
					t.Errorf("day %q is nil, want empty slice", day)
				}
			}
		})
	}
}

func TestNormalizeWeekKeepsSlotOrder(t *testing.T) {
	raw := map[string]interface{}{
		"monday": []interface{}{"10:00", "09:00", "09:30"},
	}
	week := NormalizeWeek(raw)
	want := []string{"10:00", "09:00", "09:30"}
	if !reflect.DeepEqual(week.Monday, want) {
		t.Fatalf("monday = %v, want %v (slots must not be reordered)", week.Monday, want)
	}
}

func TestNormalizeWeekDropsNonStringEntries(t *testing.T) {
	raw := map[string]interface{}{
		"tuesday": []interface{}{"14:00", 1430, nil, "14:30"},
	}
	week := NormalizeWeek(raw)
	want := []string{"14:00", "14:30"}
	if !reflect.DeepEqual(week.Tuesday, want) {
		t.Fatalf("tuesday = %v, want %v", week.Tuesday, want)
	}
}

func TestNormalizeWeekPassesMalformedSlotsThrough(t *testing.T) {
	raw := map[string]interface{}{
		"sunday": []interface{}{"9am", "25:99", "12:00"},
	}
	week := NormalizeWeek(raw)
	want := []string{"9am", "25:99", "12:00"}
	if !reflect.DeepEqual(week.Sunday, want) {
		t.Fatalf("sunday = %v, want %v (malformed slots must pass through)", week.Sunday, want)
	}
}

func TestNormalizedReplacesNilDays(t *testing.T) {
	week := (&WeekAvailability{Monday: []string{"09:00"}}).Normalized()
	if !reflect.DeepEqual(week.Monday, []string{"09:00"}) {
		t.Fatalf("monday = %v, want the original slots", week.Monday)
	}
	for _, day := range DayNames[1:] {
		slots := week.Day(day)
		if slots == nil || len(slots) != 0 {
			t.Errorf("day %q = %v, want empty slice", day, slots)
		}
	}
}
