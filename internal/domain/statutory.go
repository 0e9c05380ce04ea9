package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Statutory codes read from filed F29 forms.
const (
	// CodeCarriedCredit is the IVA credit carried forward to the next month.
	CodeCarriedCredit = "077"

	statutoryCodesKey = "codes"
)

// StatutoryPayload is the loosely typed JSON body of a filed F29. Statutory
// codes live under the "codes" object; values come as strings or numbers.
type StatutoryPayload map[string]any

// StatutoryCode returns the numeric value of a statutory code. It reports
// false when the code is missing or not a number.
func (p StatutoryPayload) StatutoryCode(code string) (decimal.Decimal, bool) {
	codes, ok := p[statutoryCodesKey].(map[string]any)
	if !ok {
		return decimal.Decimal{}, false
	}
	switch v := codes[code].(type) {
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	case float64:
		return decimal.NewFromFloat(v), true
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	default:
		return decimal.Decimal{}, false
	}
}

// Value implements driver.Valuer.
func (p StatutoryPayload) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("StatutoryPayload.Value: %w", err)
	}
	return b, nil
}

// Scan implements sql.Scanner for json/jsonb columns.
func (p *StatutoryPayload) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*p = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("StatutoryPayload.Scan: unsupported type %T", src)
	}

	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return fmt.Errorf("StatutoryPayload.Scan: %w", err)
	}
	*p = m
	return nil
}
