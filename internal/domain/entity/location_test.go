package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rocketstore-api/internal/domain/entity"
)

func TestLocation_ConfidenceIsJSONNumber(t *testing.T) {
	raw, err := json.Marshal(entity.Location{Name: "Porto", Confidence: decimal.RequireFromString("0.8")})
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, 0.8, out["confidence"])
	assert.Equal(t, "Porto", out["name"])
}

func TestLocation_RoundTripKeepsConfidence(t *testing.T) {
	in := entity.Location{Latitude: 41.15, Longitude: -8.61, Confidence: decimal.RequireFromString("0.75")}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	var back entity.Location
	require.NoError(t, json.Unmarshal(raw, &back))

	assert.True(t, in.Confidence.Equal(back.Confidence))
	assert.Equal(t, in.Latitude, back.Latitude)
}
