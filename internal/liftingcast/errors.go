package liftingcast

import "fmt"

// IngestErrorKind classifies what went wrong while pulling a meet.
type IngestErrorKind string

// Error kinds for meet ingestion.
const (
	KindNetwork    IngestErrorKind = "network"     // could not reach the API at all
	KindNotFound   IngestErrorKind = "not_found"   // the API answered 404 for the meet id
	KindHTTPStatus IngestErrorKind = "http_status" // any other non-2xx response
	KindBadPayload IngestErrorKind = "bad_payload" // response body was not the expected shape
	KindEmptyMeet  IngestErrorKind = "empty_meet"  // meet resolved but produced zero lifter rows
)

// IngestError is the error type for every failure the LiftingCast adapter can
// produce. MeetID is set whenever the failing meet is known so callers can
// surface it.
type IngestError struct {
	Kind   IngestErrorKind
	MeetID string
	Msg    string
	Err    error
}

func (e *IngestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

func newNetworkError(err error) *IngestError {
	return &IngestError{
		Kind: KindNetwork,
		Msg:  "unable to contact LiftingCast",
		Err:  err,
	}
}

func newNotFoundError(meetID string) *IngestError {
	return &IngestError{
		Kind:   KindNotFound,
		MeetID: meetID,
		Msg:    fmt.Sprintf("meet %q was not found on liftingcast.com", meetID),
	}
}

func newStatusError(meetID string, statusCode int) *IngestError {
	return &IngestError{
		Kind:   KindHTTPStatus,
		MeetID: meetID,
		Msg:    fmt.Sprintf("LiftingCast returned HTTP %d", statusCode),
	}
}

func newPayloadError(meetID string, err error) *IngestError {
	return &IngestError{
		Kind:   KindBadPayload,
		MeetID: meetID,
		Msg:    "unexpected response format from LiftingCast API",
		Err:    err,
	}
}

func newEmptyMeetError(meetID string) *IngestError {
	return &IngestError{
		Kind:   KindEmptyMeet,
		MeetID: meetID,
		Msg:    fmt.Sprintf("meet %q did not return any lifter data from LiftingCast", meetID),
	}
}
