package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "owner and repo", input: "octo/cards", expected: "cards"},
		{name: "no owner", input: "cards", expected: "cards"},
		{name: "empty", input: "", expected: ""},
		{name: "nested separators use the last one", input: "a/b/c", expected: "c"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ShortName(tc.input))
			assert.Equal(t, tc.expected, Repository{NameWithOwner: tc.input}.ShortName())
		})
	}
}

func TestLanguageColor(t *testing.T) {
	assert.Equal(t, "#00ADD8", LanguageColor("Go"))
	assert.Equal(t, "#3776AB", LanguageColor("Python"))
	assert.Equal(t, AccentColor, LanguageColor(""))
	assert.Equal(t, AccentColor, LanguageColor("Brainfuck"))
	// Lookup is case-sensitive, matching the names GitHub reports.
	assert.Equal(t, AccentColor, LanguageColor("go"))
}

func TestLanguageLabel(t *testing.T) {
	assert.Equal(t, "Go", LanguageLabel("Go"))
	assert.Equal(t, Unclassified, LanguageLabel(""))
}

func TestProfile_DisplayName(t *testing.T) {
	var nilProfile *Profile
	assert.Equal(t, "", nilProfile.DisplayName())
	assert.Equal(t, "octo", (&Profile{Login: "octo"}).DisplayName())
	assert.Equal(t, "Octo Cat", (&Profile{Login: "octo", Name: "Octo Cat"}).DisplayName())
}

func TestFormatDate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "UTC timestamp", input: "2026-10-01T10:00:00Z", expected: "2026-10-01"},
		{name: "offset is normalised to UTC", input: "2026-10-01T23:30:00-03:00", expected: "2026-10-02"},
		{name: "absent", input: "", expected: Placeholder},
		{name: "unparsable", input: "yesterday", expected: Placeholder},
		{name: "date without time is unparsable", input: "2026-10-01", expected: Placeholder},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatDate(tc.input))
		})
	}
}
