package units

import (
	"bytes"
	"encoding/json"

	"grocer/pkg/serrors"
)

// MarshalJSON encodes the unit as its symbol, e.g. "cup".
func (u Unit) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.symbol)
}

// UnmarshalJSON decodes a unit symbol or alias.
func (u *Unit) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return serrors.Wrap(serrors.ErrMalformedRecord, err, "unit must be a JSON string")
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = parsed

	return nil
}

type quantityRecord struct {
	Value *float64 `json:"value"`
	Unit  *string  `json:"unit"`
}

// MarshalJSON encodes the quantity as {"value": 1.5, "unit": "cup"}.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value float64 `json:"value"`
		Unit  string  `json:"unit"`
	}{Value: q.Value, Unit: q.Unit.symbol})
}

// UnmarshalJSON decodes either the object form {"value": 1.5, "unit":
// "cup"} or the shorthand string form "1.5 cup". Records missing
// either field fail with ErrMalformedRecord.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return serrors.Wrap(serrors.ErrMalformedRecord, err, "malformed quantity string")
		}

		parsed, err := ParseQuantity(s)
		if err != nil {
			return err
		}
		*q = parsed

		return nil
	}

	var rec quantityRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return serrors.Wrap(serrors.ErrMalformedRecord, err, "malformed quantity record")
	}
	if rec.Value == nil || rec.Unit == nil {
		return serrors.With(serrors.ErrMalformedRecord, "quantity record %s is missing value or unit", data)
	}

	u, err := Parse(*rec.Unit)
	if err != nil {
		return err
	}
	*q = Quantity{Value: *rec.Value, Unit: u}

	return nil
}

// MarshalJSON encodes the factor as {"value": 0.002, "unit": "cup/g"}.
func (f Factor) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value float64 `json:"value"`
		Unit  string  `json:"unit"`
	}{Value: f.Value, Unit: f.Num.symbol + "/" + f.Den.symbol})
}

// UnmarshalJSON decodes either the object form {"value": 0.002,
// "unit": "cup/g"} or the shorthand string form "0.002 cup/g". The
// unit must be a ratio; a bare unit fails with ErrInvalidUnit.
func (f *Factor) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return serrors.Wrap(serrors.ErrMalformedRecord, err, "malformed factor string")
		}

		parsed, err := ParseFactor(s)
		if err != nil {
			return err
		}
		*f = parsed

		return nil
	}

	var rec quantityRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return serrors.Wrap(serrors.ErrMalformedRecord, err, "malformed factor record")
	}
	if rec.Value == nil || rec.Unit == nil {
		return serrors.With(serrors.ErrMalformedRecord, "factor record %s is missing value or unit", data)
	}

	num, den, err := ParseRatio(*rec.Unit)
	if err != nil {
		return err
	}
	*f = Factor{Value: *rec.Value, Num: num, Den: den}

	return nil
}

func isJSONString(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")

	return len(trimmed) > 0 && trimmed[0] == '"'
}
