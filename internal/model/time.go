package model

import "encoding/json"

// TimeConvertRequest holds either a UNIX timestamp or an ISO 8601 date string.
// Timestamp wins when both are set.
type TimeConvertRequest struct {
	Timestamp  *json.Number `json:"timestamp"`
	DateString *string      `json:"date_string"`
}

// TimeConversion is the result of a time conversion: exactly one of
// DateStringResult or TimestampResult.
type TimeConversion interface {
	timeConversion()
}

// DateStringResult is returned when a timestamp was converted.
type DateStringResult struct {
	DateString string `json:"date_string"`
}

// TimestampResult is returned when a date string was converted.
type TimestampResult struct {
	Timestamp int64 `json:"timestamp"`
}

func (DateStringResult) timeConversion() {}
func (TimestampResult) timeConversion()  {}
