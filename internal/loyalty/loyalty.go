// Package loyalty tracks per-session reward points and derives the member
// tier from fixed thresholds.
package loyalty

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"JewelStore/internal/persist"
)

const slotKind = "loyalty"

type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// tiers is ordered by ascending threshold.
var tiers = []struct {
	Tier      Tier
	MinPoints int64
}{
	{TierBronze, 0},
	{TierSilver, 1000},
	{TierGold, 5000},
	{TierPlatinum, 10000},
}

type Benefits struct {
	DiscountPercent int     `json:"discount_percent"`
	EarnRate        float64 `json:"earn_rate"`
}

var benefits = map[Tier]Benefits{
	TierBronze:   {DiscountPercent: 5, EarnRate: 1},
	TierSilver:   {DiscountPercent: 10, EarnRate: 1.5},
	TierGold:     {DiscountPercent: 15, EarnRate: 2},
	TierPlatinum: {DiscountPercent: 20, EarnRate: 2.5},
}

func TierFor(points int64) Tier {
	t := TierBronze
	for _, lvl := range tiers {
		if points >= lvl.MinPoints {
			t = lvl.Tier
		}
	}
	return t
}

func BenefitsFor(t Tier) Benefits {
	return benefits[t]
}

// NextTier returns the tier above t and its threshold; ok is false at the
// top tier.
func NextTier(t Tier) (next Tier, minPoints int64, ok bool) {
	for i, lvl := range tiers {
		if lvl.Tier == t && i+1 < len(tiers) {
			return tiers[i+1].Tier, tiers[i+1].MinPoints, true
		}
	}
	return "", 0, false
}

// Status is the full loyalty view for one session.
type Status struct {
	Points       int64    `json:"points"`
	Tier         Tier     `json:"tier"`
	Benefits     Benefits `json:"benefits"`
	NextTier     Tier     `json:"next_tier,omitempty"`
	PointsToNext int64    `json:"points_to_next,omitempty"`
}

type state struct {
	Points int64 `json:"points"`
}

type Store struct {
	mu      sync.Mutex
	persist persist.Store
	log     *zap.Logger
}

func NewStore(p persist.Store, log *zap.Logger) *Store {
	return &Store{persist: p, log: log}
}

// Earn adds points to the session's balance and returns the new total.
// Non-positive amounts leave the balance unchanged.
func (s *Store) Earn(ctx context.Context, sessionID string, points int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	if points > 0 {
		st.Points += points
		if err := s.save(ctx, sessionID, st); err != nil {
			return 0, err
		}
	}

	return st.Points, nil
}

func (s *Store) Status(ctx context.Context, sessionID string) (Status, error) {
	s.mu.Lock()
	st, err := s.load(ctx, sessionID)
	s.mu.Unlock()
	if err != nil {
		return Status{}, err
	}

	tier := TierFor(st.Points)
	status := Status{
		Points:   st.Points,
		Tier:     tier,
		Benefits: BenefitsFor(tier),
	}

	if next, minPoints, ok := NextTier(tier); ok {
		status.NextTier = next
		status.PointsToNext = minPoints - st.Points
	}

	return status, nil
}

func (s *Store) load(ctx context.Context, sessionID string) (state, error) {
	doc, ok, err := s.persist.Load(ctx, persist.SlotKey(slotKind, sessionID))
	if err != nil {
		return state{}, err
	}
	if !ok {
		return state{}, nil
	}

	var st state
	if err := json.Unmarshal(doc, &st); err != nil {
		if s.log != nil {
			s.log.Warn("loyalty slot malformed, resetting", zap.String("session_id", sessionID), zap.Error(err))
		}
		return state{}, nil
	}
	return st, nil
}

func (s *Store) save(ctx context.Context, sessionID string, st state) error {
	doc, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.persist.Save(ctx, persist.SlotKey(slotKind, sessionID), doc)
}
