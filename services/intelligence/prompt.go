package intelligence

import "fmt"

// availabilityPrompt instructs the model to emit the weekly schedule as a
// bare JSON object: all seven days present, 24-hour HH:MM start times at
// 30-minute granularity, chronological order per day, "to"/"until" ranges
// start-inclusive and end-exclusive.
func availabilityPrompt(description string) string {
	return fmt.Sprintf(`You are an expert at parsing natural language availability descriptions into structured time slots.

Given this availability description: "%s"

Parse it into a structured JSON response with this exact format:
{
  "monday": ["09:00", "09:30", "10:00"],
  "tuesday": ["14:00", "14:30"],
  "wednesday": ["21:00", "21:30", "22:00"],
  "thursday": [],
  "friday": [],
  "saturday": ["12:00", "12:30", "13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00"],
  "sunday": ["12:00", "12:30", "13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00"]
}

IMPORTANT RULES:
1. Use 24-hour format (HH:MM)
2. Use 30-minute intervals (e.g., 09:00, 09:30, 10:00)
3. Return ONLY the JSON object, no explanation text
4. All 7 days must be present, even if empty []
5. Times must be in chronological order within each day
6. Ranges like "9 to 11" are start-inclusive and end-exclusive: the last slot starts 30 minutes before the end time
7. "noon" = 12:00, "midnight" = 00:00 (or 23:30 as last slot)
8. "weekends" = Saturday and Sunday
9. "after X pm" means starting from X pm until a reasonable end time
10. "otherwise" or "other days" means all days not specifically mentioned

Return ONLY valid JSON, no other text.`, description)
}
