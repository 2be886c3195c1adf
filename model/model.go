package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Holds all external facing types and constants.

type StopType int

const (
	StopTypeOutOfRoute StopType = iota
	StopTypePass
	StopTypeStop
	StopTypeTrack
)

func (t StopType) String() string {
	switch t {
	case StopTypePass:
		return "pass"
	case StopTypeStop:
		return "stop"
	case StopTypeTrack:
		return "trackNumber"
	}
	return "outOfRoute"
}

func (t StopType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Served is true for pass and stop, i.e. the train runs through the
// station.
func (t StopType) Served() bool {
	return t == StopTypePass || t == StopTypeStop
}

type StationRole int

const (
	RoleArrival StationRole = iota
	RoleDeparture
	RoleTrackNumber
)

func (r StationRole) String() string {
	switch r {
	case RoleDeparture:
		return "departure"
	case RoleTrackNumber:
		return "trackNumber"
	}
	return "arrival"
}

// Wall clock time without date or timezone.
type Time struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

const minutesPerDay = 24 * 60

func (t Time) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes from pre to next, wrapping past midnight. Always in
// [0, 1439].
func TimeDiff(pre Time, next Time) int {
	res := (next.Minutes() - pre.Minutes()) % minutesPerDay
	if res < 0 {
		return minutesPerDay + res
	}
	return res
}

// Status of a train at one original table column.
type StopStatus struct {
	Type StopType

	// Set for StopTypeStop.
	Time Time
	Note []string

	// Set for StopTypeTrack. Nil when the track is unknown.
	Track *string
}

// One original table column holding station data.
type StationColumn struct {
	Name string
	Role StationRole
}

type ColumnRef struct {
	Index int
	Role  StationRole
}

// A station after merging adjacent columns with the same name.
type LogicalStation struct {
	Name    string
	Columns []ColumnRef
}

// A train at one station.
type TrainStop struct {
	Name        string   `json:"name"`
	Type        StopType `json:"type"`
	TrackNumber *string  `json:"trackNumber"`
	Arrival     *Time    `json:"arrival,omitempty"`
	Departure   *Time    `json:"departure,omitempty"`
	Note        []string `json:"note"`
}

// Copy returns a TrainStop sharing no memory with st.
func (st TrainStop) Copy() TrainStop {
	c := st
	if st.TrackNumber != nil {
		track := *st.TrackNumber
		c.TrackNumber = &track
	}
	if st.Arrival != nil {
		arrival := *st.Arrival
		c.Arrival = &arrival
	}
	if st.Departure != nil {
		departure := *st.Departure
		c.Departure = &departure
	}
	c.Note = append([]string{}, st.Note...)
	return c
}

// Travel time in minutes.
type Interval int

// Stands in for an unknown travel time. Compares greater than any
// known interval.
const UnknownInterval Interval = math.MaxInt32

func (i Interval) Known() bool {
	return i != UnknownInterval
}

func (i Interval) MarshalJSON() ([]byte, error) {
	if !i.Known() {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(int(i))), nil
}

func (i *Interval) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*i = UnknownInterval
		return nil
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid interval %q: %w", data, err)
	}
	*i = Interval(v)
	return nil
}

func (i Interval) MarshalCSV() (string, error) {
	if !i.Known() {
		return "", nil
	}
	return strconv.Itoa(int(i)), nil
}

const NoBranch = -1

// A station on the final diagram axis.
type Station struct {
	Name     string
	Interval Interval

	// Index of the station this one branches from or merges into,
	// or NoBranch.
	Branch int
}

func (s Station) HasBranch() bool {
	return s.Branch != NoBranch
}

func (s Station) MarshalJSON() ([]byte, error) {
	out := struct {
		Name     string   `json:"name"`
		Interval Interval `json:"interval"`
		Branch   *int     `json:"branch,omitempty"`
	}{
		Name:     s.Name,
		Interval: s.Interval,
	}
	if s.HasBranch() {
		branch := s.Branch
		out.Branch = &branch
	}
	return json.Marshal(out)
}

type TrainDetails struct {
	TrainNumber string   `json:"trainNumber,omitempty"`
	TrainName   string   `json:"trainName,omitempty"`
	Facilities  []string `json:"facilities"`
	Calendar    string   `json:"calendar,omitempty"`
	OnboardSale bool     `json:"onboardSale"`
}

type Train struct {
	TrainNumber string      `json:"trainNumber,omitempty"`
	TrainName   string      `json:"trainName,omitempty"`
	Facilities  []string    `json:"facilities"`
	Calendar    string      `json:"calendar,omitempty"`
	OnboardSale bool        `json:"onboardSale"`
	Timetable   []TrainStop `json:"timetable"`
}

// Final output: the diagram station axis and every train aligned to
// it.
type Timetable struct {
	Stations []Station `json:"stations"`
	Trains   []Train   `json:"trains"`
}
