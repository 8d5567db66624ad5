package service

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/devtoolkit/devtoolkit-go/internal/model"
)

var (
	ErrMissingTimeInput = errors.New("Provide either 'timestamp' or 'date_string'.")
	ErrInvalidTimeInput = errors.New("Invalid input. Use a valid UNIX timestamp or ISO 8601 date string.")
)

const (
	dateStringLayout = "2006-01-02T15:04:05"

	// 0001-01-01T00:00:00Z and 9999-12-31T23:59:59Z.
	minTimestamp = -62135596800
	maxTimestamp = 253402300799
)

// isoLayouts lists the accepted ISO 8601 shapes, most specific first.
// Fractional seconds are accepted after any seconds field.
var isoLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"2006-01-02",
	"20060102",
}

// TimeService converts between UNIX timestamps and ISO 8601 date strings.
type TimeService struct{}

func NewTimeService() *TimeService {
	return &TimeService{}
}

// Convert returns a DateStringResult for a timestamp request and a
// TimestampResult for a date string request.
func (s *TimeService) Convert(req model.TimeConvertRequest) (model.TimeConversion, error) {
	switch {
	case req.Timestamp != nil:
		sec, err := parseTimestamp(req.Timestamp.String())
		if err != nil {
			return nil, err
		}
		return model.DateStringResult{DateString: FormatTimestamp(sec)}, nil
	case req.DateString != nil:
		sec, err := ParseDateString(*req.DateString)
		if err != nil {
			return nil, err
		}
		return model.TimestampResult{Timestamp: sec}, nil
	default:
		return nil, ErrMissingTimeInput
	}
}

// FormatTimestamp renders sec as a naive UTC date string, e.g. 2021-01-01T00:00:00.
func FormatTimestamp(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(dateStringLayout)
}

// ParseDateString parses an ISO 8601 date string and returns whole UNIX
// seconds, truncated toward zero. Strings without a zone are read as UTC.
func ParseDateString(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if len(s) > 10 && s[10] == ' ' {
		s = s[:10] + "T" + s[11:]
	}

	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if t.Year() < 1 {
			return 0, ErrInvalidTimeInput
		}
		sec := t.Unix()
		if sec < 0 && t.Nanosecond() != 0 {
			sec++
		}
		return sec, nil
	}

	return 0, ErrInvalidTimeInput
}

// parseTimestamp accepts integers and integral floats within the four-digit year range.
func parseTimestamp(raw string) (int64, error) {
	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != math.Trunc(f) || f < minTimestamp || f > maxTimestamp {
			return 0, ErrInvalidTimeInput
		}
		sec = int64(f)
	}
	if sec < minTimestamp || sec > maxTimestamp {
		return 0, ErrInvalidTimeInput
	}
	return sec, nil
}
