// Package track keeps storefront visitor statistics: a total visit counter
// and a unique visitor count, persisted in a shared stats slot.
package track

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"JewelStore/internal/persist"
)

const statsKey = "stats/visitors"

type Stats struct {
	TotalVisits    int64 `json:"total_visits"`
	UniqueVisitors int64 `json:"unique_visitors"`
}

type Tracker struct {
	mu      sync.Mutex
	persist persist.Store
	log     *zap.Logger
	visits  prometheus.Counter
}

// NewTracker builds the tracker; reg may be nil when metrics are off.
func NewTracker(p persist.Store, log *zap.Logger, reg *prometheus.Registry) *Tracker {
	t := &Tracker{persist: p, log: log}

	if reg != nil {
		t.visits = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storefront_visits_total",
			Help: "Total recorded storefront visits",
		})
		reg.MustRegister(t.visits)
	}

	return t
}

// RecordVisit bumps the visit counter; newVisitor additionally counts one
// unique visitor. The updated stats are persisted before returning.
func (t *Tracker) RecordVisit(ctx context.Context, newVisitor bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	stats, err := t.load(ctx)
	if err != nil {
		return err
	}

	stats.TotalVisits++
	if newVisitor {
		stats.UniqueVisitors++
	}

	if err := t.save(ctx, stats); err != nil {
		return err
	}

	if t.visits != nil {
		t.visits.Inc()
	}
	return nil
}

func (t *Tracker) Stats(ctx context.Context) (Stats, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.load(ctx)
}

func (t *Tracker) load(ctx context.Context) (Stats, error) {
	doc, ok, err := t.persist.Load(ctx, statsKey)
	if err != nil {
		return Stats{}, err
	}
	if !ok {
		return Stats{}, nil
	}

	var stats Stats
	if err := json.Unmarshal(doc, &stats); err != nil {
		if t.log != nil {
			t.log.Warn("visitor stats slot malformed, resetting", zap.Error(err))
		}
		return Stats{}, nil
	}
	return stats, nil
}

func (t *Tracker) save(ctx context.Context, stats Stats) error {
	doc, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return t.persist.Save(ctx, statsKey, doc)
}
