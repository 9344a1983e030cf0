package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSide(t *testing.T) {
	assert.Equal(t, "left", SideLeft.String())
	assert.Equal(t, "right", SideRight.String())
	assert.Equal(t, "side(7)", Side(7).String())

	assert.Equal(t, SideRight, SideLeft.Opposite())
	assert.Equal(t, SideLeft, SideRight.Opposite())
}

func TestParseSide(t *testing.T) {
	side, err := ParseSide("right")
	require.NoError(t, err)
	assert.Equal(t, SideRight, side)

	_, err = ParseSide("Left")
	assert.Error(t, err)
}

func TestSide_Text(t *testing.T) {
	encoded, err := json.Marshal(map[string]Side{"side": SideRight})
	require.NoError(t, err)
	assert.JSONEq(t, `{"side":"right"}`, string(encoded))

	var decoded struct {
		Side Side `json:"side"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"side":"right"}`), &decoded))
	assert.Equal(t, SideRight, decoded.Side)

	assert.Error(t, json.Unmarshal([]byte(`{"side":"up"}`), &decoded))
}

func TestRunLineIDs_Record(t *testing.T) {
	ids := RunLineIDs{}

	ids.Record("login", SideLeft, LineIDMap{1: 10, 2: 11})
	ids.Record("login", SideRight, LineIDMap{1: 20})

	id, ok := ids.Lookup("login", SideLeft, 2)
	require.True(t, ok)
	assert.Equal(t, int64(11), id)

	ids.Record("login", SideLeft, LineIDMap{1: 30})

	id, ok = ids.Lookup("login", SideLeft, 1)
	require.True(t, ok)
	assert.Equal(t, int64(30), id)

	_, ok = ids.Lookup("login", SideLeft, 2)
	assert.False(t, ok, "a later record replaces the whole side")

	id, ok = ids.Lookup("login", SideRight, 1)
	require.True(t, ok)
	assert.Equal(t, int64(20), id)

	_, ok = ids.Lookup("checkout", SideLeft, 1)
	assert.False(t, ok)
}

func TestSideLineIDs_JSON(t *testing.T) {
	ids := RunLineIDs{}
	ids.Record("login", SideLeft, LineIDMap{1: 10})

	encoded, err := json.Marshal(ids)
	require.NoError(t, err)
	assert.JSONEq(t, `{"login":{"left":{"1":10}}}`, string(encoded))
}
