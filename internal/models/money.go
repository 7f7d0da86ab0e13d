package models

import (
	"bytes"
	"strconv"
)

// Money is an amount in whole currency units. The deal backend serialises
// amounts as JSON strings while the order backend sends plain numbers, so
// decoding has to accept both (plus null / "" for records missing the field).
type Money float64

func (m Money) Float64() float64 {
	return float64(m)
}

// MarshalJSON quotes the amount: the deal backend's DTO carries amounts as
// strings, so outgoing payloads (and API responses) use the same encoding.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatFloat(float64(m), 'f', -1, 64))), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		if s == "" {
			*m = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*m = Money(f)
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*m = Money(f)
	return nil
}
