package handlers

import (
	"strconv"
	"strings"
)

// flexPrice accepts a price as a JSON number or a numeric string, the two
// forms clients of this API send. It records presence and parseability
// instead of failing the whole body decode, so handlers can report a
// field-specific validation error.
type flexPrice struct {
	set   bool
	valid bool
	value float64
}

func (p *flexPrice) UnmarshalJSON(data []byte) error {
	p.set = true

	s := strings.TrimSpace(string(data))
	if s == "null" {
		p.set = false
		return nil
	}
	s = strings.Trim(s, `"`)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.valid = false
		return nil
	}
	p.valid = true
	p.value = v
	return nil
}

// Float returns the parsed value and whether it was present and parseable.
func (p flexPrice) Float() (float64, bool) {
	return p.value, p.set && p.valid
}
