package dsl

import (
	"fmt"
	"time"

	"github.com/catalystgo/catalyst/internal/strftime"
)

type timeConverter struct {
	format string // strftime form, kept for error messages
	layout string
}

func newTimeConverter(format string) timeConverter {
	// a bad format is a misdeclared schema; fail at definition time
	return timeConverter{format: format, layout: strftime.MustLayout(format)}
}

func (c timeConverter) Serialize(v any) (any, error) {
	t, ok := v.(time.Time)
	if !ok {
		return nil, fmt.Errorf("cannot coerce %T to time", v)
	}
	return t.Format(c.layout), nil
}

func (c timeConverter) Deserialize(v any) (any, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		parsed, err := time.Parse(c.layout, t)
		if err != nil {
			return nil, fmt.Errorf("%q does not match format %q", t, c.format)
		}
		return parsed, nil
	}
	return nil, fmt.Errorf("cannot coerce %T to time", v)
}

// DateTime declares a timestamp field parsed and rendered through a
// strftime-style format, defaulting to "%Y-%m-%d %H:%M:%S".
func DateTime(format ...string) *Spec {
	f := "%Y-%m-%d %H:%M:%S"
	if len(format) > 0 {
		f = format[0]
	}
	return newSpec(newTimeConverter(f))
}

// Date declares a calendar-date field, defaulting to "%Y-%m-%d". Loaded
// values are time.Time at midnight UTC.
func Date(format ...string) *Spec {
	f := "%Y-%m-%d"
	if len(format) > 0 {
		f = format[0]
	}
	return newSpec(newTimeConverter(f))
}

// Time declares a clock-time field, defaulting to "%H:%M:%S". Loaded values
// are time.Time on the zero date.
func Time(format ...string) *Spec {
	f := "%H:%M:%S"
	if len(format) > 0 {
		f = format[0]
	}
	return newSpec(newTimeConverter(f))
}

// Timestamp declares a Unix-seconds field: integers load as time.Time and
// times dump back to integer seconds.
func Timestamp() *Spec { return newSpec(timestampConverter{}) }

type timestampConverter struct{}

func (timestampConverter) Serialize(v any) (any, error) {
	t, ok := v.(time.Time)
	if !ok {
		return nil, fmt.Errorf("cannot coerce %T to time", v)
	}
	return t.Unix(), nil
}

func (timestampConverter) Deserialize(v any) (any, error) {
	n, err := coerceInt(v)
	if err != nil {
		return nil, err
	}
	return time.Unix(int64(n.(int)), 0).UTC(), nil
}
