// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/powertrackhq/powertrack/schema"
)

// MeetSource defines the operations needed to bring a meet into the canonical
// schema. It is satisfied by the LiftingCast client and by CSV loaders, and
// lets the orchestration layer be tested without network or files.
type MeetSource interface {
	// LoadMeet resolves a meet reference (bare id, URL or file path depending
	// on the source) into canonical lifter rows plus metadata.
	LoadMeet(ctx context.Context, ref string) ([]schema.LifterRecord, schema.MeetMetadata, error)
}

// RecentFeed lists meets from a live source, most recent first.
type RecentFeed interface {
	FetchRecentMeets(ctx context.Context, limit int, maxAgeDays int) ([]schema.RecentMeet, error)
}
