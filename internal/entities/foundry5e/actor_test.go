package foundry5e_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-converter/internal/entities/foundry5e"
	"github.com/KirkDiggler/rpg-converter/internal/errors"
)

const goblinExport = `{
	"name": "Goblin (Boss)",
	"type": "npc",
	"img": "tokens/goblin.webp",
	"prototypeToken": {"name": "Goblin"},
	"system": {
		"details": {"biography": {"value": "<p>Small and mean.</p>"}, "cr": "1/4"},
		"attributes": {"ac": {"flat": 15, "value": null}, "hp": {"value": 7, "max": 7}}
	},
	"items": [
		{"name": "Scimitar", "type": "weapon", "system": {"description": {"value": "<p>Slash.</p>"}}},
		{"name": "Nimble Escape", "type": "feat", "system": {"description": "<p>Disengage.</p>"}},
		{"name": "Mystery", "type": "feat", "system": {}}
	]
}`

func TestLoadActor(t *testing.T) {
	actor, err := foundry5e.LoadActor(strings.NewReader(goblinExport))
	require.NoError(t, err)

	assert.Equal(t, "Goblin (Boss)", actor.Name)
	assert.Equal(t, "tokens/goblin.webp", actor.Img)
	assert.Equal(t, "Goblin", actor.PrototypeToken["name"])
	assert.Equal(t, "<p>Small and mean.</p>", actor.System.Details.Biography.Value)

	require.NotNil(t, actor.System.Details.CR)
	assert.InDelta(t, 0.25, float64(*actor.System.Details.CR), 0.0001)

	assert.Nil(t, actor.System.Attributes.AC.Value)
	require.NotNil(t, actor.System.Attributes.AC.Flat)
	assert.Equal(t, 15, *actor.System.Attributes.AC.Flat)

	require.Len(t, actor.Items, 3)
	assert.Equal(t, "<p>Slash.</p>", actor.Items[0].System.Description.Value)
	assert.Equal(t, "<p>Disengage.</p>", actor.Items[1].System.Description.Value)
	assert.Empty(t, actor.Items[2].System.Description.Value)
}

func TestChallengeRatingForms(t *testing.T) {
	testCases := []struct {
		name     string
		json     string
		expected float64
	}{
		{name: "number", json: `{"system": {"details": {"cr": 5}}}`, expected: 5},
		{name: "fraction number", json: `{"system": {"details": {"cr": 0.5}}}`, expected: 0.5},
		{name: "numeric string", json: `{"system": {"details": {"cr": "12"}}}`, expected: 12},
		{name: "fraction string", json: `{"system": {"details": {"cr": "1/8"}}}`, expected: 0.125},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actor, err := foundry5e.LoadActor(strings.NewReader(tc.json))
			require.NoError(t, err)
			require.NotNil(t, actor.System.Details.CR)
			assert.InDelta(t, tc.expected, float64(*actor.System.Details.CR), 0.0001)
		})
	}
}

func TestMissingChallengeRating(t *testing.T) {
	actor, err := foundry5e.LoadActor(strings.NewReader(`{"name": "Blob"}`))
	require.NoError(t, err)
	assert.Nil(t, actor.System.Details.CR)
}

func TestLoadActorRejectsBadInput(t *testing.T) {
	for _, input := range []string{`not json`, `{"system": {"details": {"cr": "1/0"}}}`, `{"system": {"details": {"cr": true}}}`} {
		_, err := foundry5e.LoadActor(strings.NewReader(input))
		require.Error(t, err, input)
		assert.True(t, errors.IsInvalidArgument(err), input)
	}
}

func TestLoadItem(t *testing.T) {
	item, err := foundry5e.LoadItem(strings.NewReader(`{"name": "Longsword", "type": "weapon", "img": "icons/sword.webp", "system": {"description": {"value": "<p>A blade.</p>"}}}`))
	require.NoError(t, err)

	assert.Equal(t, "Longsword", item.Name)
	assert.Equal(t, "weapon", item.Type)
	assert.Equal(t, "icons/sword.webp", item.Img)
	assert.Equal(t, "<p>A blade.</p>", item.System.Description.Value)
}
