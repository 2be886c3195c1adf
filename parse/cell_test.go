package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tidbyt.dev/diagram/model"
)

func TestParseTime(t *testing.T) {
	p := DefaultProfile()

	for _, tc := range []struct {
		name      string
		fragments []string
		expected  model.StopStatus
	}{
		{
			"blank",
			nil,
			model.StopStatus{Type: model.StopTypeOutOfRoute},
		},

		{
			"empty fragment",
			[]string{""},
			model.StopStatus{Type: model.StopTypeOutOfRoute},
		},

		{
			"pass",
			[]string{"レ"},
			model.StopStatus{Type: model.StopTypePass},
		},

		{
			"not via",
			[]string{"||"},
			model.StopStatus{Type: model.StopTypeOutOfRoute},
		},

		{
			"terminates",
			[]string{"┐"},
			model.StopStatus{Type: model.StopTypeOutOfRoute},
		},

		{
			"other line",
			[]string{"＝"},
			model.StopStatus{Type: model.StopTypeOutOfRoute},
		},

		{
			"unknown mark",
			[]string{"◇"},
			model.StopStatus{Type: model.StopTypeOutOfRoute},
		},

		{
			"time",
			[]string{"0905"},
			model.StopStatus{
				Type: model.StopTypeStop,
				Time: model.Time{Hour: 9, Minute: 5},
				Note: []string{},
			},
		},

		{
			"time with notes",
			[]string{"2359", "", "始発", "臨時"},
			model.StopStatus{
				Type: model.StopTypeStop,
				Time: model.Time{Hour: 23, Minute: 59},
				Note: []string{"始発", "臨時"},
			},
		},

		{
			"time with surrounding marks",
			[]string{"(1210)"},
			model.StopStatus{
				Type: model.StopTypeStop,
				Time: model.Time{Hour: 12, Minute: 10},
				Note: []string{},
			},
		},

		{
			// Hour and minute come from the digits wherever they
			// sit in the cell, not from its first characters.
			"time after label",
			[]string{"着0612"},
			model.StopStatus{
				Type: model.StopTypeStop,
				Time: model.Time{Hour: 6, Minute: 12},
				Note: []string{},
			},
		},

		{
			"time after other digits",
			[]string{"2番 1745発"},
			model.StopStatus{
				Type: model.StopTypeStop,
				Time: model.Time{Hour: 17, Minute: 45},
				Note: []string{},
			},
		},

		{
			"three digits",
			[]string{"905"},
			model.StopStatus{Type: model.StopTypeOutOfRoute},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseTime(p, tc.fragments...))
		})
	}
}

func TestParseTrackNumber(t *testing.T) {
	p := DefaultProfile()

	track := func(s string) *string { return &s }

	for _, tc := range []struct {
		name     string
		text     string
		expected *string
	}{
		{"blank", "", nil},
		{"continues", "↓", nil},
		{"plain", "3", track("3")},
		{"parenthesized", "(12)", track("12")},
		{"only opening", "(A", track("A")},
		{"named", "新幹線11", track("新幹線11")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			status := ParseTrackNumber(p, tc.text)
			assert.Equal(t, model.StopTypeTrack, status.Type)
			assert.Equal(t, tc.expected, status.Track)
		})
	}
}
