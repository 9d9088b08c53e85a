package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// splitSlot parses an "HH:MM" slot into hour and minute components.
func splitSlot(slot string) (hour, minute int, ok bool) {
	parts := strings.Split(slot, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}

// slotMinutes converts an "HH:MM" slot to minutes since midnight.
func slotMinutes(slot string) (int, bool) {
	h, m, ok := splitSlot(slot)
	if !ok {
		return 0, false
	}
	return h*60 + m, true
}

// GroupSlots splits an ordered slot list into maximal runs of consecutive
// 30-minute slots. The gap check is a plain difference: a day ending at
// "23:30" followed by "00:00" is a backward jump and starts a new group,
// midnight is treated as the start of the schedule rather than a
// continuation. Unparsable slots always start a new group.
func GroupSlots(slots []string) [][]string {
	if len(slots) == 0 {
		return [][]string{}
	}

	groups := [][]string{}
	current := []string{slots[0]}

	for i := 1; i < len(slots); i++ {
		prev, okPrev := slotMinutes(slots[i-1])
		curr, okCurr := slotMinutes(slots[i])
		if okPrev && okCurr && curr-prev == 30 {
			current = append(current, slots[i])
		} else {
			groups = append(groups, current)
			current = []string{slots[i]}
		}
	}
	return append(groups, current)
}

// EndTime returns the end of a 30-minute slot given its start, wrapping
// "23:30" to "00:00". Unparsable slots are returned unchanged.
func EndTime(slot string) string {
	h, m, ok := splitSlot(slot)
	if !ok {
		return slot
	}
	m += 30
	if m >= 60 {
		m -= 60
		h++
	}
	if h >= 24 {
		h = 0
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// FormatTime12Hour converts a 24-hour "HH:MM" slot to a 12-hour display
// string, e.g. "13:00" -> "1:00 PM" and "00:00" -> "12:00 AM".
func FormatTime12Hour(slot string) string {
	h, m, ok := splitSlot(slot)
	if !ok {
		return slot
	}
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	displayHour := h % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, m, period)
}

// DisplayRanges renders one compact label per group: a lone slot shows its
// start time, a run shows "first start - last end".
func DisplayRanges(slots []string) []string {
	groups := GroupSlots(slots)
	labels := make([]string, 0, len(groups))
	for _, group := range groups {
		if len(group) == 1 {
			labels = append(labels, FormatTime12Hour(group[0]))
			continue
		}
		labels = append(labels, fmt.Sprintf("%s - %s",
			FormatTime12Hour(group[0]),
			FormatTime12Hour(EndTime(group[len(group)-1]))))
	}
	return labels
}
