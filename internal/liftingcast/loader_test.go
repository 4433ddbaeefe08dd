package liftingcast

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powertrackhq/powertrack/schema"
)

func meetServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

const kgMeetPayload = `{"docs": [
	{"_id": "m1", "name": "Spring Classic", "date": "15/03/2026", "dateFormat": "DD/MM/YYYY", "federation": "USAPL", "units": "KG"},
	{"_id": "d1", "name": "Open", "weightClasses": {"wc93": {"name": "93"}}},
	{"_id": "l1", "name": "Alex Stone", "gender": "m", "bodyWeight": 92.5,
	 "divisions": [
		{"divisionId": "d1", "declaredAwardsWeightClassId": "wc93", "rawOrEquipped": "raw"},
		{"divisionId": "d1", "declaredAwardsWeightClassId": "wc93", "rawOrEquipped": "equipped"}
	 ]},
	{"_id": "l2", "name": "Shadow Attempt", "lifterId": "l1"},
	{"_id": "l3", "name": "No Divisions Yet"},
	{"_id": "a1", "lifterId": "l1", "liftName": "squat", "attemptNumber": "1", "weight": 200, "result": "good"},
	{"_id": "a2", "lifterId": "l1", "liftName": "squat", "attemptNumber": "2", "weight": 210, "result": "good"},
	{"_id": "a3", "lifterId": "l1", "liftName": "squat", "attemptNumber": "3", "weight": 220, "result": "bad"},
	{"_id": "a4", "lifterId": "l1", "liftName": "bench", "attemptNumber": 1, "weight": 140, "result": "good"},
	{"_id": "a5", "lifterId": "l1", "liftName": "dead", "attemptNumber": "1", "weight": 250, "result": "good"},
	{"_id": "a6", "lifterId": "l1", "liftName": "dead", "attemptNumber": "4", "weight": 999, "result": "good"}
]}`

func TestLoadMeetAssemblesRows(t *testing.T) {
	server := meetServer(t, kgMeetPayload)
	loader := NewLoader(NewClient(server.URL, time.Second))

	rows, metadata, err := loader.LoadMeet(context.Background(), "m1")
	require.NoError(t, err)

	assert.Equal(t, "m1", metadata.MeetID)
	assert.Equal(t, "Spring Classic", metadata.Name)
	assert.Equal(t, "March 15, 2026", metadata.Date)
	assert.Equal(t, "USAPL", metadata.Federation)
	assert.Equal(t, schema.KGUnits, metadata.Units)
	assert.Equal(t, schema.LiftingCastSource, metadata.Source)
	assert.Equal(t, "Raw", metadata.Equipment)

	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "l1", row.LifterID)
	assert.Equal(t, "Alex Stone", row.Name)
	assert.Equal(t, schema.Male, row.Gender)
	assert.InDelta(t, 92.5, row.BodyweightKg, 1e-9)
	assert.Equal(t, "93", row.WeightClass)
	assert.Equal(t, "Open", row.Division)
	assert.Equal(t, "Raw", row.Equipment)

	// Only the first division entry counts; the equipped second entry is noise.
	assert.InDelta(t, 210, row.BestSquatKg, 1e-9)
	assert.InDelta(t, 140, row.BestBenchKg, 1e-9)
	assert.InDelta(t, 250, row.BestDeadliftKg, 1e-9)
	assert.InDelta(t, 600, row.TotalKg, 1e-9)

	assert.Equal(t, schema.GoodLift, row.Squat[0].Result)
	assert.Equal(t, schema.BadLift, row.Squat[2].Result)
	assert.InDelta(t, 220, row.Squat[2].WeightKg, 1e-9)

	// Rows come back unscored and unranked; the pipeline fills those in.
	assert.Zero(t, row.DotsPoints)
	assert.Zero(t, row.Place)
}

func TestLoadMeetConvertsPounds(t *testing.T) {
	server := meetServer(t, `{"docs": [
		{"_id": "m2", "name": "Garage Gym Open", "units": "LBS"},
		{"_id": "d1", "name": "Open", "weightClasses": {}},
		{"_id": "l1", "name": "Dana Wells", "gender": "f", "bodyWeight": 148,
		 "divisions": [{"divisionId": "d1", "rawOrEquipped": "raw"}]},
		{"_id": "a1", "lifterId": "l1", "liftName": "squat", "attemptNumber": "1", "weight": 400, "result": "good"}
	]}`)
	loader := NewLoader(NewClient(server.URL, time.Second))

	rows, metadata, err := loader.LoadMeet(context.Background(), "m2")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, schema.LBSUnits, metadata.Units)
	assert.InDelta(t, 67.132, rows[0].BodyweightKg, 1e-9)
	assert.InDelta(t, 181.437, rows[0].BestSquatKg, 1e-9)
}

func TestLoadMeetMixedEquipment(t *testing.T) {
	server := meetServer(t, `{"docs": [
		{"_id": "m3", "name": "State Championships"},
		{"_id": "d1", "name": "Open", "weightClasses": {}},
		{"_id": "l1", "name": "A", "gender": "m", "bodyWeight": 80,
		 "divisions": [{"divisionId": "d1", "rawOrEquipped": "raw"}]},
		{"_id": "l2", "name": "B", "gender": "m", "bodyWeight": 90,
		 "divisions": [{"divisionId": "d1", "rawOrEquipped": "equipped"}]}
	]}`)
	loader := NewLoader(NewClient(server.URL, time.Second))

	_, metadata, err := loader.LoadMeet(context.Background(), "m3")
	require.NoError(t, err)
	assert.Equal(t, "Mixed", metadata.Equipment)
}

func TestLoadMeetEmptyMeet(t *testing.T) {
	server := meetServer(t, `{"docs": [{"_id": "m4", "name": "Setup Only"}]}`)
	loader := NewLoader(NewClient(server.URL, time.Second))

	_, _, err := loader.LoadMeet(context.Background(), "m4")

	var ingestErr *IngestError
	require.ErrorAs(t, err, &ingestErr)
	assert.Equal(t, KindEmptyMeet, ingestErr.Kind)
	assert.Contains(t, err.Error(), "m4")
}

func TestLoadMeetMissingMeetDoc(t *testing.T) {
	server := meetServer(t, `{"docs": [
		{"_id": "l1", "name": "Solo Lifter", "gender": "f", "bodyWeight": 60, "divisions": []}
	]}`)
	loader := NewLoader(NewClient(server.URL, time.Second))

	rows, metadata, err := loader.LoadMeet(context.Background(), "mghost")
	require.NoError(t, err)

	assert.Equal(t, "Meet mghost", metadata.Name)
	assert.Equal(t, schema.KGUnits, metadata.Units)
	assert.Empty(t, metadata.Equipment)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].WeightClass)
}

func TestFormatMeetDate(t *testing.T) {
	tests := []struct {
		date   string
		format string
		want   string
	}{
		{"15/03/2026", "DD/MM/YYYY", "March 15, 2026"},
		{"03/15/2026", "MM/DD/YYYY", "March 15, 2026"},
		{"2026-03-15", "YYYY-MM-DD", "March 15, 2026"},
		{"2026-03-15", "yyyy-mm-dd", "March 15, 2026"},
		{"15/03/2026", "WEIRD", "15/03/2026"},
		{"not a date", "DD/MM/YYYY", "not a date"},
		{"", "DD/MM/YYYY", ""},
		{"15/03/2026", "", "15/03/2026"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMeetDate(tt.date, tt.format), tt.date+" "+tt.format)
	}
}
