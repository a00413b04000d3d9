package merge

import (
	"regexp"
	"strings"

	"github.com/jonathan/site-importer/internal/types"
)

var weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// weekdayRes capture the hours text following each weekday name, up to
// the next separator.
var weekdayRes = func() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(weekdays))
	for _, day := range weekdays {
		res[day] = regexp.MustCompile(`(?i)` + day + `s?\s*:?\s*([^,;\n]+)`)
	}
	return res
}()

// MergeContactInfo fills contact fields from suggestions without ever
// overwriting a populated existing field. Hours are special: the
// free-text value must parse into at least one weekday entry or no
// update occurs at all. Filled and Skipped report exactly what changed
// and why the rest was untouched.
func MergeContactInfo(suggestions []types.ContactSuggestion, existing types.ContactInfo) types.ContactMergeResult {
	result := types.ContactMergeResult{
		Filled:  make([]string, 0),
		Skipped: make([]string, 0),
	}

	seen := make(map[types.ContactType]bool)
	for _, suggestion := range suggestions {
		value := strings.TrimSpace(suggestion.Value)
		if value == "" || seen[suggestion.Type] {
			continue
		}

		switch suggestion.Type {
		case types.ContactPhone:
			seen[suggestion.Type] = true
			if existing.Phone != "" {
				result.Skipped = append(result.Skipped, "phone")
				continue
			}
			result.Updates.Phone = value
			result.Filled = append(result.Filled, "phone")

		case types.ContactEmail:
			seen[suggestion.Type] = true
			if existing.Email != "" {
				result.Skipped = append(result.Skipped, "email")
				continue
			}
			result.Updates.Email = value
			result.Filled = append(result.Filled, "email")

		case types.ContactAddress:
			seen[suggestion.Type] = true
			if existing.Address != "" {
				result.Skipped = append(result.Skipped, "address")
				continue
			}
			result.Updates.Address = value
			result.Filled = append(result.Filled, "address")

		case types.ContactHours:
			seen[suggestion.Type] = true
			if len(existing.Hours) > 0 {
				result.Skipped = append(result.Skipped, "hours")
				continue
			}
			hours := ParseHours(value)
			if len(hours) == 0 {
				// Unparseable free text never becomes an update.
				result.Skipped = append(result.Skipped, "hours")
				continue
			}
			result.Updates.Hours = hours
			result.Filled = append(result.Filled, "hours")
		}
	}

	return result
}

// ParseHours extracts a weekday→hours map from free text like
// "Monday: 9am-5pm, Tuesday: 10am-6pm". Days that do not appear are
// absent from the map; text with no recognizable weekday yields an
// empty map.
func ParseHours(value string) map[string]string {
	hours := make(map[string]string)
	for _, day := range weekdays {
		m := weekdayRes[day].FindStringSubmatch(value)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[1])
		if text != "" {
			hours[day] = text
		}
	}
	return hours
}
