// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-converter/internal/clients/external Client

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-converter/internal/errors"
)

// Client defines the interface for SRD lookups
type Client interface {
	// GetMonster fetches a monster by its API key, e.g. "goblin"
	GetMonster(ctx context.Context, key string) (*MonsterData, error)

	// ListMonsterKeysByCR lists the keys of every monster with exactly this
	// challenge rating
	ListMonsterKeysByCR(ctx context.Context, challengeRating float64) ([]string, error)
}

type client struct {
	dnd5eClient dnd5e.Interface
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.HTTPTimeout < 0 {
		return errors.InvalidArgument("HTTPTimeout cannot be negative")
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	// Batches hit the same monsters repeatedly
	cachedClient := dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)

	return &client{
		dnd5eClient: cachedClient,
	}, nil
}

func (c *client) GetMonster(ctx context.Context, key string) (*MonsterData, error) {
	if key == "" {
		return nil, errors.InvalidArgument("monster key is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "get monster canceled")
	}

	monster, err := c.dnd5eClient.GetMonster(key)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get monster %s", key)
	}
	if monster == nil {
		return nil, errors.NotFoundf("monster %s not found", key)
	}

	return convertMonster(monster), nil
}

func (c *client) ListMonsterKeysByCR(ctx context.Context, challengeRating float64) ([]string, error) {
	if challengeRating < 0 {
		return nil, errors.InvalidArgumentf("challenge rating %v cannot be negative", challengeRating)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "list monsters canceled")
	}

	refs, err := c.dnd5eClient.ListMonstersWithFilter(&dnd5e.ListMonstersInput{
		ChallengeRating: &challengeRating,
	})
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to list monsters for CR %v", challengeRating)
	}

	keys := make([]string, 0, len(refs))
	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		if ref == nil || ref.Key == "" || seen[ref.Key] {
			continue
		}
		seen[ref.Key] = true
		keys = append(keys, ref.Key)
	}
	return keys, nil
}

func convertMonster(monster *entities.Monster) *MonsterData {
	data := &MonsterData{
		Key:             monster.Key,
		Name:            monster.Name,
		Type:            monster.Type,
		ArmorClass:      int(monster.ArmorClass),
		HitPoints:       int(monster.HitPoints),
		HitDice:         monster.HitDice,
		ChallengeRating: float64(monster.ChallengeRating),
		Actions:         make([]*MonsterAction, 0, len(monster.MonsterActions)),
	}

	for _, action := range monster.MonsterActions {
		if action == nil {
			continue
		}
		data.Actions = append(data.Actions, convertMonsterAction(action))
	}

	return data
}

func convertMonsterAction(action *entities.MonsterAction) *MonsterAction {
	result := &MonsterAction{
		Name:        action.Name,
		Description: action.Description,
		Damage:      make([]*MonsterDamage, 0, len(action.Damage)),
	}

	// The API reports 0 for actions without an attack roll. Only treat the
	// bonus as present when the action also deals damage.
	bonus := int(action.AttackBonus)
	if bonus != 0 || len(action.Damage) > 0 {
		result.AttackBonus = &bonus
	}

	for _, damage := range action.Damage {
		if damage == nil || damage.DamageDice == "" {
			continue
		}
		d := &MonsterDamage{Dice: damage.DamageDice}
		if damage.DamageType != nil {
			d.Type = strings.ToLower(damage.DamageType.Name)
		}
		result.Damage = append(result.Damage, d)
	}

	return result
}
