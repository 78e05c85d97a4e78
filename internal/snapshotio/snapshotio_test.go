package snapshotio

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abelldev/huntlog/internal/engine"
)

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func sampleState(t *testing.T) *engine.State {
	t.Helper()
	s := engine.NewState()
	var err error
	s, _, err = engine.AddMission(s, "m-1", engine.AddMissionInput{
		Date:  "2025-06-10",
		Title: "clear the gate",
		Tier:  engine.TierSalvatores,
	})
	require.NoError(t, err)
	s, _ = engine.ResolveMission(s, "2025-06-10", "m-1", engine.StatusCompleted, testNow)
	s = engine.SetSeverity(s, engine.SeverityPunitive)
	return s
}

func TestExportImportRoundTrip(t *testing.T) {
	state := sampleState(t)

	data, err := Export(state, testNow)
	require.NoError(t, err)

	restored, err := Import(data)
	require.NoError(t, err)

	assert.Equal(t, state.TotalXP, restored.TotalXP)
	assert.Equal(t, state.Severity, restored.Severity)
	assert.Equal(t, state.DefaultView, restored.DefaultView)

	rec := restored.Day("2025-06-10")
	require.Len(t, rec.Missions, 1)
	assert.Equal(t, "clear the gate", rec.Missions[0].Title)
	assert.Equal(t, engine.StatusCompleted, rec.Missions[0].Status)
	assert.Equal(t, 200, rec.XPEarned)
}

func TestExportCarriesSchemaVersion(t *testing.T) {
	data, err := Export(engine.NewState(), testNow)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, SchemaVersion, doc["schemaVersion"])
}

func TestImportRejectsMalformedDocuments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", `{`},
		{"missing state", `{"schemaVersion":"v1.0.0"}`},
		{"missing version", `{"state":{"xp":0,"days":{},"consecutiveFailures":0,"severity":"normal","defaultView":"year"}}`},
		{"negative xp", `{"schemaVersion":"v1.0.0","state":{"xp":-5,"days":{},"consecutiveFailures":0,"severity":"normal","defaultView":"year"}}`},
		{"unknown severity", `{"schemaVersion":"v1.0.0","state":{"xp":0,"days":{},"consecutiveFailures":0,"severity":"brutal","defaultView":"year"}}`},
		{"bad day key", `{"schemaVersion":"v1.0.0","state":{"xp":0,"days":{"June 10":{"date":"June 10"}},"consecutiveFailures":0,"severity":"normal","defaultView":"year"}}`},
		{"mission without title", `{"schemaVersion":"v1.0.0","state":{"xp":0,"days":{"2025-06-10":{"date":"2025-06-10","missions":[{"id":"x","tier":"suits","date":"2025-06-10","status":"pending"}]}},"consecutiveFailures":0,"severity":"normal","defaultView":"year"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestImportRejectsNewerVersions(t *testing.T) {
	state := engine.NewState()
	doc := Document{SchemaVersion: "v2.0.0", ExportedAt: testNow, State: state}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	_, err = Import(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestImportAcceptsOlderPatchVersions(t *testing.T) {
	data, err := Export(engine.NewState(), testNow)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	doc.SchemaVersion = "v1.0.0" // same major.minor is always accepted

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	_, err = Import(raw)
	assert.NoError(t, err)
}
