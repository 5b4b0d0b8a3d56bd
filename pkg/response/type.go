package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date marshals as a DateFormat string in local time.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateFormat))
}

// UnmarshalJSON implements json.Unmarshaler for Date.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.ParseInLocation(DateFormat, s, time.Local)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

// DateTime marshals as a DateTimeFormat string in local time.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}

// UnmarshalJSON implements json.Unmarshaler for DateTime.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.ParseInLocation(DateTimeFormat, s, time.Local)
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}
