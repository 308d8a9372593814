// Package session is the consumer surface of the client core: it owns one
// categorization pass end to end, from the serialized fetches to the bucketed
// result. Each pass rebuilds the user context and tag index from scratch;
// nothing is cached across passes.
package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/harrisonrobin/habitick/pkg/categorize"
	"github.com/harrisonrobin/habitick/pkg/damage"
	"github.com/harrisonrobin/habitick/pkg/habitica"
)

// API is the slice of the request layer a session needs. *api.Client
// satisfies it.
type API interface {
	Tasks(ctx context.Context) ([]habitica.Task, int, error)
	Tags(ctx context.Context) ([]habitica.Tag, error)
	User(ctx context.Context) (*habitica.User, error)
	Party(ctx context.Context) (*habitica.Party, error)
}

type Session struct {
	api API
	log *zap.Logger
}

func New(api API, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{api: api, log: log}
}

// BuildUserContext assembles the damage-relevant snapshot from the user
// profile and party state. Fetch failures degrade the affected fields to
// zero instead of aborting: a damage projection of zero beats no report at
// all, and the warning makes the degradation visible.
func (s *Session) BuildUserContext(ctx context.Context) damage.Context {
	var uc damage.Context

	user, err := s.api.User(ctx)
	if err != nil {
		s.log.Warn("user profile fetch failed, projecting damage without user stats",
			zap.Error(err))
	} else {
		uc.Constitution = user.Stats.Con + user.Stats.Buffs.Con
		uc.Stealth = user.Stats.Buffs.Stealth
		uc.Sleeping = user.Preferences.Sleep
	}

	party, err := s.api.Party(ctx)
	if err != nil {
		// Not being in a party is a routine rejection, not a fault.
		s.log.Warn("party fetch failed, assuming no boss quest", zap.Error(err))
	} else if strength, active := party.BossStrength(); active {
		uc.BossActive = true
		uc.BossStrength = strength
	}

	return uc
}

// Categorize runs one full pass: fetch tags and tasks, build the user
// context, bucket everything. Unlike the context fetches, a tag or task
// fetch failure aborts the pass; there is no safe partial result to show.
func (s *Session) Categorize(ctx context.Context) (*categorize.Result, error) {
	tagList, err := s.api.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("tag fetch failed: %w", err)
	}

	tasks, skipped, err := s.api.Tasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("task fetch failed: %w", err)
	}
	if skipped > 0 {
		s.log.Warn("skipped undecodable task records", zap.Int("count", skipped))
	}

	uc := s.BuildUserContext(ctx)

	result := categorize.Categorize(tasks, tagList, uc, s.log)
	result.Skipped += skipped
	return result, nil
}
