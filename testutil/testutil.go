package testutil

// Helpers and configuration for tests.

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tidbyt.dev/diagram"
	"tidbyt.dev/diagram/model"
	"tidbyt.dev/diagram/parse"
)

// Parses CSV rows of a raw table with the default profile.
func BuildTable(t testing.TB, rows []string) *parse.Table {
	table, err := parse.Parse(parse.DefaultProfile(), strings.NewReader(strings.Join(rows, "\n")))
	require.NoError(t, err)

	return table
}

func LoadTableFile(t testing.TB, filename string) *parse.Table {
	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()

	table, err := parse.Parse(parse.DefaultProfile(), f)
	require.NoError(t, err)

	return table
}

// Parses CSV rows and builds the timetable.
func BuildTimetable(t testing.TB, rows []string) *model.Timetable {
	tt, err := diagram.Build(BuildTable(t, rows))
	require.NoError(t, err)

	return tt
}

// Names of the given stations, in order.
func StationNames(stations []model.Station) []string {
	names := make([]string, len(stations))
	for i, s := range stations {
		names[i] = s.Name
	}
	return names
}

// Stop types of a train timetable, in order.
func StopTypes(timetable []model.TrainStop) []model.StopType {
	types := make([]model.StopType, len(timetable))
	for i, st := range timetable {
		types[i] = st.Type
	}
	return types
}
