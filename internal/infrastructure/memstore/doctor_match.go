package memstore

import (
	"strconv"
	"strings"

	"smart-clinic-portal/internal/domain/entity"
)

// matchesDoctor applies every non-empty criterion of f
func matchesDoctor(d entity.Doctor, f entity.DoctorFilter) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Specialty != "" && !strings.EqualFold(d.Specialty, f.Specialty) {
		return false
	}
	if f.Time != "" && !matchesTime(d.Availability, f.Time) {
		return false
	}
	return true
}

// matchesTime treats "AM" and "PM" as half-day buckets over slot start hours.
// Anything else is matched as a substring of a slot.
func matchesTime(slots []string, value string) bool {
	period := strings.ToUpper(strings.TrimSpace(value))
	for _, slot := range slots {
		switch period {
		case "AM", "PM":
			hour, ok := startHour(slot)
			if !ok {
				continue
			}
			if (period == "AM") == (hour < 12) {
				return true
			}
		default:
			if strings.Contains(strings.ToLower(slot), strings.ToLower(value)) {
				return true
			}
		}
	}
	return false
}

// startHour finds the first HH:MM in a slot such as "Monday 09:00-12:00"
func startHour(slot string) (int, bool) {
	idx := strings.Index(slot, ":")
	if idx < 1 {
		return 0, false
	}
	start := idx - 2
	if start < 0 || slot[start] < '0' || slot[start] > '9' {
		start = idx - 1
	}
	hour, err := strconv.Atoi(slot[start:idx])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}
