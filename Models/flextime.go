package Models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FlexTime is the single instant type every record carries. Legacy documents
// stored timestamps three different ways (a native timestamp, a bare
// epoch-seconds number, or a date-parseable string), so the tolerance lives
// here at the read boundary and nothing downstream re-inspects the encoding.
// Anything unparseable pins to epoch zero, which sorts last in descending
// order.
type FlexTime struct {
	time.Time
}

var flexLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02 & 3:04 PM",
}

func NewFlexTime(t time.Time) FlexTime {
	return FlexTime{t}
}

// FlexTimeOf parses any of the accepted encodings. The zero result is epoch
// zero, never time.Time's zero value, so descending sorts stay stable.
func FlexTimeOf(value interface{}) FlexTime {
	switch v := value.(type) {
	case nil:
		return epochZero()
	case time.Time:
		return FlexTime{v}
	case FlexTime:
		return v
	case int64:
		return FlexTime{time.Unix(v, 0)}
	case float64:
		sec := int64(v)
		nsec := int64((v - float64(sec)) * float64(time.Second))
		return FlexTime{time.Unix(sec, nsec)}
	case string:
		return parseFlexString(v)
	case []byte:
		return parseFlexString(string(v))
	default:
		return epochZero()
	}
}

func parseFlexString(s string) FlexTime {
	s = strings.TrimSpace(s)
	if s == "" {
		return epochZero()
	}
	if sec, err := strconv.ParseFloat(s, 64); err == nil {
		return FlexTimeOf(sec)
	}
	for _, layout := range flexLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FlexTime{t}
		}
	}
	return epochZero()
}

func epochZero() FlexTime {
	return FlexTime{time.Unix(0, 0).UTC()}
}

func (ft FlexTime) IsEpochZero() bool {
	return ft.Time.IsZero() || ft.Unix() == 0
}

func (ft FlexTime) Millis() int64 {
	if ft.Time.IsZero() {
		return 0
	}
	return ft.UnixMilli()
}

func (ft FlexTime) MarshalJSON() ([]byte, error) {
	if ft.Time.IsZero() {
		return json.Marshal(time.Unix(0, 0).UTC().Format(time.RFC3339))
	}
	return json.Marshal(ft.Format(time.RFC3339))
}

func (ft *FlexTime) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	// Firestore-style native timestamps arrive as {"seconds": n} objects.
	if m, ok := raw.(map[string]interface{}); ok {
		if sec, ok := m["seconds"].(float64); ok {
			*ft = FlexTimeOf(sec)
			return nil
		}
		*ft = epochZero()
		return nil
	}
	*ft = FlexTimeOf(raw)
	return nil
}

// Scan implements sql.Scanner.
func (ft *FlexTime) Scan(value interface{}) error {
	*ft = FlexTimeOf(value)
	return nil
}

// Value implements driver.Valuer.
func (ft FlexTime) Value() (driver.Value, error) {
	if ft.Time.IsZero() {
		return time.Unix(0, 0).UTC(), nil
	}
	return ft.Time, nil
}

func (ft FlexTime) String() string {
	return ft.Format(time.RFC3339)
}

// GormDataType keeps gorm from guessing a type for the wrapper struct.
func (FlexTime) GormDataType() string {
	return "timestamptz"
}

var _ fmt.Stringer = FlexTime{}
