package parse

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Labels and marks used by a timetable site. The defaults match the
// Japanese timetable pages the tool was written for.
type Profile struct {
	// Number of leading header cells on every row. The first holds
	// the row title, the second the subtitle (arrival/departure).
	HeadColumns int `yaml:"head_columns"`

	TrainNumberTitle string `yaml:"train_number_title"`
	TrainNameTitle   string `yaml:"train_name_title"`
	FacilitiesTitle  string `yaml:"facilities_title"`
	CalendarTitle    string `yaml:"calendar_title"`
	OnboardSaleTitle string `yaml:"onboard_sale_title"`

	// Track number rows are titled "<station><TrackSuffix>".
	TrackSuffix string `yaml:"track_suffix"`

	DepartureLabel string `yaml:"departure_label"`
	ArrivalLabel   string `yaml:"arrival_label"`

	PassMarks          []string `yaml:"pass_marks"`
	TrackContinueMarks []string `yaml:"track_continue_marks"`
	OnboardSaleMark    string   `yaml:"onboard_sale_mark"`
}

func DefaultProfile() Profile {
	return Profile{
		HeadColumns:        2,
		TrainNumberTitle:   "列車番号",
		TrainNameTitle:     "列車名",
		FacilitiesTitle:    "設備",
		CalendarTitle:      "運転日",
		OnboardSaleTitle:   "車内販売",
		TrackSuffix:        "番線",
		DepartureLabel:     "発",
		ArrivalLabel:       "着",
		PassMarks:          []string{"レ"},
		TrackContinueMarks: []string{"↓"},
		OnboardSaleMark:    "○",
	}
}

// Reads a YAML profile. Keys missing from the document keep their
// default value.
func LoadProfile(r io.Reader) (Profile, error) {
	p := DefaultProfile()

	err := yaml.NewDecoder(r).Decode(&p)
	if err != nil && err != io.EOF {
		return Profile{}, fmt.Errorf("decoding profile: %w", err)
	}

	if p.HeadColumns < 2 {
		return Profile{}, fmt.Errorf("head_columns must be >= 2, got %d", p.HeadColumns)
	}

	return p, nil
}

func (p Profile) isPass(text string) bool {
	for _, mark := range p.PassMarks {
		if text == mark {
			return true
		}
	}
	return false
}

func (p Profile) isTrackContinue(text string) bool {
	for _, mark := range p.TrackContinueMarks {
		if text == mark {
			return true
		}
	}
	return false
}
