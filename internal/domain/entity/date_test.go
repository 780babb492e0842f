package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.January, Day: 15}, d)
	assert.Equal(t, "2024-01", d.MonthKey())
	assert.Equal(t, "2024-01-15", d.String())

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)

	_, err = ParseDate("15/01/2024")
	assert.Error(t, err)
}

func TestNewDate_Normalizes(t *testing.T) {
	assert.Equal(t, MustParseDate("2023-12-01"), NewDate(2024, time.January-1, 1))
	assert.Equal(t, MustParseDate("2024-03-01"), NewDate(2024, time.February, 30))
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		Due  Date  `json:"due"`
		Done *Date `json:"done,omitempty"`
	}

	raw, err := json.Marshal(wrapper{Due: MustParseDate("2024-01-01")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2024-01-01"}`, string(raw))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2023-12-22","done":"2023-12-23"}`), &w))
	assert.Equal(t, MustParseDate("2023-12-22"), w.Due)
	require.NotNil(t, w.Done)
	assert.Equal(t, "2023-12-23", w.Done.String())

	assert.Error(t, json.Unmarshal([]byte(`{"due":20240101}`), &w))
}

func TestDate_JSONZeroValue(t *testing.T) {
	type wrapper struct {
		Due Date `json:"due"`
	}

	raw, err := json.Marshal(wrapper{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":null}`, string(raw))

	w := wrapper{Due: MustParseDate("2024-01-01")}
	require.NoError(t, json.Unmarshal(raw, &w))
	assert.True(t, w.Due.IsZero())

	w = wrapper{Due: MustParseDate("2024-01-01")}
	require.NoError(t, json.Unmarshal([]byte(`{"due":""}`), &w))
	assert.True(t, w.Due.IsZero())

	var event MaintenanceRequest
	raw, err = json.Marshal(&MaintenanceRequest{ID: "mr-9"})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, "mr-9", event.ID)
	assert.True(t, event.CreatedAt.IsZero())
}

func TestMaintenanceRequest_CloneIsDeep(t *testing.T) {
	done := MustParseDate("2023-12-22")
	mr := &MaintenanceRequest{ID: "mr-3", CompletedAt: &done}

	c := mr.Clone()
	*c.CompletedAt = MustParseDate("2024-01-01")

	assert.Equal(t, "2023-12-22", mr.CompletedAt.String())
}
