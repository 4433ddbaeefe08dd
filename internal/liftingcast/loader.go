package liftingcast

import (
	"context"
	"strings"
	"time"

	"github.com/powertrackhq/powertrack/schema"
)

// Loader reduces LiftingCast meet payloads to the canonical lifter table.
// It implements contract.MeetSource.
type Loader struct {
	client *Client
}

// NewLoader creates a meet loader on top of the given API client.
func NewLoader(client *Client) *Loader {
	return &Loader{client: client}
}

// dateLayouts maps LiftingCast dateFormat labels onto Go layouts.
var dateLayouts = map[string]string{
	"DD/MM/YYYY": "02/01/2006",
	"MM/DD/YYYY": "01/02/2006",
	"YYYY-MM-DD": "2006-01-02",
}

const displayDateLayout = "January 02, 2006"

// LoadMeet resolves a meet reference, pulls its documents and assembles
// unscored lifter rows. Points and placings are left at zero for the
// normalization pass; bests and totals are computed here because they depend
// on raw attempt documents that do not survive into the row.
func (l *Loader) LoadMeet(ctx context.Context, ref string) ([]schema.LifterRecord, schema.MeetMetadata, error) {
	meetID, err := ParseMeetID(ref)
	if err != nil {
		return nil, schema.MeetMetadata{}, err
	}

	docs, err := l.client.FetchMeetDocs(ctx, meetID)
	if err != nil {
		return nil, schema.MeetMetadata{}, err
	}

	metadata := extractMeetMetadata(meetID, docs)
	divisions := buildDivisionLookup(docs)
	attempts := collectAttempts(docs, metadata.Units)

	var rows []schema.LifterRecord
	var equipmentValues []string

	for i := range docs {
		doc := &docs[i]
		if !strings.HasPrefix(doc.ID, "l") {
			continue
		}
		// Attempt documents can also carry an l-prefixed id; a lifterId field
		// or missing divisions marks them.
		if doc.LifterID != "" || doc.Divisions == nil {
			continue
		}

		weightClass, divisionName, equipment := resolveWeightClass(doc.Divisions, divisions)
		equipmentValues = append(equipmentValues, equipment)

		record := schema.LifterRecord{
			LifterID:     doc.ID,
			Name:         doc.Name,
			Gender:       schema.NormalizeGender(doc.Gender),
			BodyweightKg: convertWeight(doc.BodyWeight, metadata.Units),
			WeightClass:  weightClass,
			Division:     divisionName,
		}
		if equipment != "" {
			record.Equipment = schema.TitleCase(equipment)
		}

		lifterAttempts := attempts[doc.ID]
		record.Squat = lifterAttempts["squat"]
		record.Bench = lifterAttempts["bench"]
		record.Deadlift = lifterAttempts["dead"]

		record.BestSquatKg = schema.BestOfAttempts(record.Squat)
		record.BestBenchKg = schema.BestOfAttempts(record.Bench)
		record.BestDeadliftKg = schema.BestOfAttempts(record.Deadlift)
		record.TotalKg = schema.Round3(record.BestSquatKg + record.BestBenchKg + record.BestDeadliftKg)

		rows = append(rows, record)
	}

	if len(rows) == 0 {
		return nil, schema.MeetMetadata{}, newEmptyMeetError(meetID)
	}

	metadata.Equipment = collectEquipment(equipmentValues)
	return rows, metadata, nil
}

// extractMeetMetadata reads the meet's own document. Its _id equals the meet
// id; a missing document degrades to placeholder values.
func extractMeetMetadata(meetID string, docs []Doc) schema.MeetMetadata {
	metadata := schema.MeetMetadata{
		MeetID: meetID,
		Name:   "Meet " + meetID,
		Units:  schema.KGUnits,
		Source: schema.LiftingCastSource,
	}
	for i := range docs {
		doc := &docs[i]
		if doc.ID != meetID {
			continue
		}
		if doc.Name != "" {
			metadata.Name = doc.Name
		}
		metadata.Date = formatMeetDate(doc.Date, doc.DateFormat)
		metadata.Federation = doc.Federation
		if doc.Units != "" {
			metadata.Units = schema.UnitSystem(doc.Units)
		}
		break
	}
	return metadata
}

// formatMeetDate reformats a meet date into "January 02, 2006" when the
// payload declares a known dateFormat. Unknown formats or unparsable values
// pass through untouched.
func formatMeetDate(date, format string) string {
	if date == "" || format == "" {
		return date
	}
	layout, ok := dateLayouts[strings.ToUpper(format)]
	if !ok {
		return date
	}
	parsed, err := time.Parse(layout, date)
	if err != nil {
		return date
	}
	return parsed.Format(displayDateLayout)
}

// buildDivisionLookup indexes d-prefixed documents that declare weight
// classes by their id.
func buildDivisionLookup(docs []Doc) map[string]*Doc {
	lookup := make(map[string]*Doc)
	for i := range docs {
		doc := &docs[i]
		if !strings.HasPrefix(doc.ID, "d") {
			continue
		}
		if doc.WeightClasses == nil {
			continue
		}
		lookup[doc.ID] = doc
	}
	return lookup
}

// collectAttempts groups a-prefixed attempt documents by lifter and lift.
// Only attempt numbers 1..3 count; weights convert to kilograms up front.
func collectAttempts(docs []Doc, units schema.UnitSystem) map[string]map[string][3]schema.Attempt {
	attemptMap := make(map[string]map[string][3]schema.Attempt)
	for i := range docs {
		doc := &docs[i]
		if !strings.HasPrefix(doc.ID, "a") || doc.LifterID == "" {
			continue
		}
		if doc.LiftName == "" {
			continue
		}
		number := string(doc.AttemptNumber)
		if number != "1" && number != "2" && number != "3" {
			continue
		}
		slot := int(number[0] - '1')

		lifts, ok := attemptMap[doc.LifterID]
		if !ok {
			lifts = make(map[string][3]schema.Attempt)
			attemptMap[doc.LifterID] = lifts
		}
		attempts := lifts[doc.LiftName]
		attempts[slot] = schema.Attempt{
			WeightKg: convertWeight(doc.Weight, units),
			Result:   schema.NormalizeAttemptResult(doc.Result),
		}
		lifts[doc.LiftName] = attempts
	}
	return attemptMap
}

// resolveWeightClass reads a lifter's primary division entry. Only the first
// division counts; extra entries are display noise upstream.
func resolveWeightClass(divisions []DivisionRef, lookup map[string]*Doc) (weightClass, divisionName, equipment string) {
	if len(divisions) == 0 {
		return "", "", ""
	}
	primary := divisions[0]
	equipment = primary.RawOrEquipped

	divisionDoc, ok := lookup[primary.DivisionID]
	if !ok {
		return "", "", equipment
	}
	divisionName = divisionDoc.Name
	if primary.WeightClassID != "" {
		weightClass = divisionDoc.WeightClasses[primary.WeightClassID].Name
	}
	return weightClass, divisionName, equipment
}

// convertWeight turns a payload weight into stored kilograms. LBS meets
// convert and round; everything else is taken as kilograms verbatim.
func convertWeight(value flexFloat, units schema.UnitSystem) float64 {
	if !value.Valid {
		return 0
	}
	if strings.EqualFold(string(units), "LBS") {
		return schema.PoundsToKg(value.Value)
	}
	return value.Value
}

// collectEquipment aggregates per-lifter equipment into one meet-level label.
func collectEquipment(values []string) string {
	distinct := make(map[string]struct{})
	for _, v := range values {
		if v != "" {
			distinct[v] = struct{}{}
		}
	}
	switch len(distinct) {
	case 0:
		return ""
	case 1:
		for v := range distinct {
			return schema.TitleCase(v)
		}
	}
	return "Mixed"
}
