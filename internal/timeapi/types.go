package timeapi

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedTime is returned when the response carries no parseable datetime.
var ErrMalformedTime = errors.New("malformed datetime")

// TimeResponse mirrors the worldtimeapi payload. Only the datetime fields are
// required.
type TimeResponse struct {
	Datetime    string `json:"datetime"`
	UTCDatetime string `json:"utc_datetime"`
	Timezone    string `json:"timezone"`
	UnixTime    int64  `json:"unixtime"`
	Abbrev      string `json:"abbreviation"`
}

// Instant parses the ISO-8601 datetime, falling back to utc_datetime.
func (r TimeResponse) Instant() (time.Time, error) {
	for _, raw := range []string{r.Datetime, r.UTCDatetime} {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", ErrMalformedTime, raw, err)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: response has no datetime field", ErrMalformedTime)
}
