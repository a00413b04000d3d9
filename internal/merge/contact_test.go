package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/site-importer/internal/types"
)

func contact(ct types.ContactType, value string) types.ContactSuggestion {
	return types.ContactSuggestion{Type: ct, Value: value, SourcePageURL: "https://example.com", Confidence: 0.8}
}

func TestMergeContactInfo_FillsEmptyField(t *testing.T) {
	result := MergeContactInfo(
		[]types.ContactSuggestion{contact(types.ContactPhone, "555-1234")},
		types.ContactInfo{},
	)

	assert.Equal(t, "555-1234", result.Updates.Phone)
	assert.Equal(t, []string{"phone"}, result.Filled)
	assert.Empty(t, result.Skipped)
}

func TestMergeContactInfo_NeverOverwritesPopulatedField(t *testing.T) {
	result := MergeContactInfo(
		[]types.ContactSuggestion{contact(types.ContactPhone, "555-1234")},
		types.ContactInfo{Phone: "555-0000"},
	)

	assert.Empty(t, result.Updates.Phone)
	assert.Empty(t, result.Filled)
	assert.Equal(t, []string{"phone"}, result.Skipped)
}

func TestMergeContactInfo_FillsMultipleFields(t *testing.T) {
	result := MergeContactInfo(
		[]types.ContactSuggestion{
			contact(types.ContactEmail, "info@example.com"),
			contact(types.ContactAddress, "12 Main St"),
		},
		types.ContactInfo{Phone: "555-0000"},
	)

	assert.Equal(t, "info@example.com", result.Updates.Email)
	assert.Equal(t, "12 Main St", result.Updates.Address)
	assert.ElementsMatch(t, []string{"email", "address"}, result.Filled)
	// Phone was not suggested, so it is neither filled nor skipped.
	assert.Empty(t, result.Skipped)
}

func TestMergeContactInfo_FirstSuggestionPerTypeWins(t *testing.T) {
	result := MergeContactInfo(
		[]types.ContactSuggestion{
			contact(types.ContactEmail, "first@example.com"),
			contact(types.ContactEmail, "second@example.com"),
		},
		types.ContactInfo{},
	)

	assert.Equal(t, "first@example.com", result.Updates.Email)
	assert.Equal(t, []string{"email"}, result.Filled)
}

func TestMergeContactInfo_ParsesHours(t *testing.T) {
	result := MergeContactInfo(
		[]types.ContactSuggestion{contact(types.ContactHours, "Monday: 9am-5pm, Tuesday: 10am-6pm")},
		types.ContactInfo{},
	)

	require.NotNil(t, result.Updates.Hours)
	assert.Contains(t, result.Updates.Hours["Monday"], "9am")
	assert.Contains(t, result.Updates.Hours["Tuesday"], "10am")
	assert.Equal(t, []string{"hours"}, result.Filled)
}

func TestMergeContactInfo_UnparseableHoursSkipped(t *testing.T) {
	result := MergeContactInfo(
		[]types.ContactSuggestion{contact(types.ContactHours, "open whenever we feel like it")},
		types.ContactInfo{},
	)

	assert.Nil(t, result.Updates.Hours)
	assert.Empty(t, result.Filled)
	assert.Equal(t, []string{"hours"}, result.Skipped)
}

func TestMergeContactInfo_ExistingHoursSkipped(t *testing.T) {
	result := MergeContactInfo(
		[]types.ContactSuggestion{contact(types.ContactHours, "Monday: 9am-5pm")},
		types.ContactInfo{Hours: map[string]string{"Monday": "8am-4pm"}},
	)

	assert.Nil(t, result.Updates.Hours)
	assert.Equal(t, []string{"hours"}, result.Skipped)
}

func TestParseHours_AllWeekdays(t *testing.T) {
	hours := ParseHours("Monday 9-5; Tuesday 9-5; Wednesday 9-5; Thursday 9-5; Friday 9-6; Saturday 10-4; Sunday closed")

	assert.Len(t, hours, 7)
	assert.Equal(t, "closed", hours["Sunday"])
}

func TestParseHours_NoWeekdays(t *testing.T) {
	assert.Empty(t, ParseHours("call for availability"))
}
