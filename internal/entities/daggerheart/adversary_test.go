package daggerheart_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-converter/internal/entities/daggerheart"
)

func TestNewAdversaryDocumentShape(t *testing.T) {
	adversary := daggerheart.NewAdversary("Ironclaw Brute")
	adversary.Stats = daggerheart.NewStats(1700000000000, "0123456789abcdef")

	data, err := json.Marshal(adversary)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "adversary", doc["type"])
	assert.Equal(t, daggerheart.DefaultImage, doc["img"])
	assert.Equal(t, []any{}, doc["items"])
	assert.Equal(t, []any{}, doc["effects"])
	assert.Equal(t, map[string]any{}, doc["flags"])

	system := doc["system"].(map[string]any)
	assert.NotContains(t, system, "attack")
	assert.NotContains(t, system, "experiences")
	assert.Equal(t, map[string]any{"value": ""}, system["description"])

	hp := system["resources"].(map[string]any)["hitPoints"].(map[string]any)
	assert.Equal(t, true, hp["isReversed"])

	stats := doc["_stats"].(map[string]any)
	assert.Equal(t, "daggerheart", stats["systemId"])
	assert.Equal(t, "0123456789abcdef", stats["lastModifiedBy"])
	assert.EqualValues(t, 1700000000000, stats["createdTime"])
}

func TestFeatureActionsKeyedByID(t *testing.T) {
	feature := daggerheart.NewFeature("Relentless")
	feature.AddAction(daggerheart.NewAction("00000000deadbeef", "passive", "<p>Tough.</p>"))

	data, err := json.Marshal(feature)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Nil(t, doc["folder"])
	system := doc["system"].(map[string]any)
	assert.Nil(t, system["resource"])
	assert.Equal(t, false, system["multiclassOrigin"])

	actions := system["actions"].(map[string]any)
	require.Contains(t, actions, "00000000deadbeef")
	action := actions["00000000deadbeef"].(map[string]any)
	assert.Equal(t, "00000000deadbeef", action["_id"])
	assert.Equal(t, "passive", action["actionType"])
	assert.Equal(t, "close", action["range"])
	assert.Equal(t, map[string]any{"type": "any"}, action["target"])
	assert.Equal(t, map[string]any{"trait": nil, "difficulty": nil, "damageMod": "none"}, action["save"])
}

func TestRangeFromText(t *testing.T) {
	assert.Equal(t, daggerheart.RangeVeryClose, daggerheart.RangeFromText("very close"))
	assert.Equal(t, daggerheart.RangeMelee, daggerheart.RangeFromText("melee"))
	assert.Empty(t, daggerheart.RangeFromText("across the room"))
}

func TestKnownAdversaryType(t *testing.T) {
	assert.True(t, daggerheart.KnownAdversaryType("bruiser"))
	assert.False(t, daggerheart.KnownAdversaryType("adversary"))
}
