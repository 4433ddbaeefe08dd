package liftingcast

import (
	"context"
	"sort"
	"time"

	"github.com/powertrackhq/powertrack/schema"
)

// Feed fetches the public recent-meets list from the LiftingCast home feed.
// It implements contract.RecentFeed.
type Feed struct {
	client *Client
}

// NewFeed creates a recent-meets feed on top of the given API client.
func NewFeed(client *Client) *Feed {
	return &Feed{client: client}
}

// timestampLayouts are tried in order when parsing feed timestamps. The API
// mixes RFC 3339 createDate values with bare calendar meet dates.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// FetchRecentMeets returns recent public meets, newest first. Entries older
// than maxAgeDays are dropped, anchored on createDate when present and the
// meet date otherwise; entries with no parsable timestamp survive the filter
// but sort last. A non-positive limit or maxAgeDays disables that bound.
func (f *Feed) FetchRecentMeets(ctx context.Context, limit, maxAgeDays int) ([]schema.RecentMeet, error) {
	docs, err := f.client.FetchFeedDocs(ctx)
	if err != nil {
		return nil, err
	}

	var cutoff time.Time
	if maxAgeDays > 0 {
		cutoff = time.Now().UTC().AddDate(0, 0, -maxAgeDays)
	}

	var meets []schema.RecentMeet
	for i := range docs {
		doc := &docs[i]
		if doc.ID == "" {
			continue
		}

		createdAt := parseTimestamp(doc.CreateDate)
		meetDate := parseTimestamp(doc.Date)

		meet := schema.RecentMeet{
			ID:        doc.ID,
			Name:      doc.Name,
			Date:      formatMeetDate(doc.Date, doc.DateFormat),
			URL:       "https://liftingcast.com/meets/" + doc.ID,
			CreatedAt: createdAt,
			MeetDate:  meetDate,
		}
		if meet.Name == "" {
			meet.Name = "Meet " + doc.ID
		}
		if meet.Date == "" {
			meet.Date = doc.Date
		}

		anchor := meet.RecencyAnchor()
		if !cutoff.IsZero() && !anchor.IsZero() && anchor.Before(cutoff) {
			continue
		}
		meets = append(meets, meet)
	}

	sort.SliceStable(meets, func(i, j int) bool {
		return meets[i].RecencyAnchor().After(meets[j].RecencyAnchor())
	})

	if limit > 0 && len(meets) > limit {
		meets = meets[:limit]
	}
	return meets, nil
}

// parseTimestamp parses a feed timestamp against the known layouts, UTC.
// Anything unparsable degrades to the zero time.
func parseTimestamp(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
