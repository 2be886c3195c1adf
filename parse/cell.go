package parse

import (
	"regexp"
	"strconv"
	"strings"

	"tidbyt.dev/diagram/model"
)

var timePattern = regexp.MustCompile(`[0-9]{4}`)

// Parses the fragments of an arrival or departure cell. The first
// fragment holds the time (HHMM) or a mark, the rest are notes.
//
// Blank cells and marks other than a pass mark ("||", "┐", "＝")
// mean the train doesn't run there.
func ParseTime(p Profile, fragments ...string) model.StopStatus {
	if len(fragments) == 0 || fragments[0] == "" {
		return model.StopStatus{Type: model.StopTypeOutOfRoute}
	}

	text := fragments[0]
	if p.isPass(text) {
		return model.StopStatus{Type: model.StopTypePass}
	}

	hhmm := timePattern.FindString(text)
	if hhmm == "" {
		return model.StopStatus{Type: model.StopTypeOutOfRoute}
	}

	// Can't fail, the pattern only matches digits.
	hour, _ := strconv.Atoi(hhmm[0:2])
	minute, _ := strconv.Atoi(hhmm[2:4])

	note := []string{}
	for _, f := range fragments[1:] {
		if f != "" {
			note = append(note, f)
		}
	}

	return model.StopStatus{
		Type: model.StopTypeStop,
		Time: model.Time{Hour: hour, Minute: minute},
		Note: note,
	}
}

// Parses a track number cell such as "3" or "(3)". Blank cells and
// the "continues below" mark have no track.
func ParseTrackNumber(p Profile, text string) model.StopStatus {
	if text == "" || p.isTrackContinue(text) {
		return model.StopStatus{Type: model.StopTypeTrack}
	}

	track := strings.TrimSuffix(strings.TrimPrefix(text, "("), ")")

	return model.StopStatus{
		Type:  model.StopTypeTrack,
		Track: &track,
	}
}
