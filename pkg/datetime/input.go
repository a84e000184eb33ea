package datetime

import (
	"encoding/json"
	"time"
)

// Input is a host-supplied date that is either a canonical string, a time
// value, or null. The zero Input is null. Inputs are comparable, so a change of
// identity can be detected with ==.
type Input struct {
	set  bool
	text string
	t    time.Time
}

// InputString wraps a canonical date string.
func InputString(s string) Input {
	if s == "" {
		return Input{}
	}
	return Input{set: true, text: s}
}

// InputTime wraps a time value.
func InputTime(t time.Time) Input {
	if t.IsZero() {
		return Input{}
	}
	return Input{set: true, t: t}
}

// InputDate wraps an already normalized Date.
func InputDate(d Date) Input {
	return InputTime(d.Time)
}

// IsNull reports whether the input carries no date.
func (in Input) IsNull() bool {
	return !in.set
}

// MarshalJSON implements json.Marshaler.
func (in Input) MarshalJSON() ([]byte, error) {
	switch {
	case !in.set:
		return []byte("null"), nil
	case in.text != "":
		return json.Marshal(in.text)
	default:
		return json.Marshal(ToCanonical(in.t))
	}
}

// UnmarshalJSON implements json.Unmarshaler. JSON carries dates as strings,
// so the decoded input is always the string form.
func (in *Input) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*in = Input{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*in = InputString(s)
	return nil
}
