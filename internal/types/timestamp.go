package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Timestamp handles unix-second timestamps that the API returns either as a
// JSON number or as a string, depending on the endpoint.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case float64:
		t.Time = time.Unix(int64(val), 0).UTC()
	case string:
		if val == "" {
			t.Time = time.Time{}
			return nil
		}
		sec, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("Timestamp: cannot parse %q as unix seconds: %w", val, err)
		}
		t.Time = time.Unix(sec, 0).UTC()
	default:
		return fmt.Errorf("Timestamp: unexpected type %T", v)
	}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("0"), nil
	}
	return []byte(strconv.FormatInt(t.Unix(), 10)), nil
}
