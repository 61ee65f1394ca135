package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number числовое поле посылки. HTML-формы присылают числа строками ("2"),
// поэтому принимается и JSON-число, и строка с числом. Пустая строка и null дают отсутствующее значение.
type Number struct {
	value float64
	set   bool
}

func NewNumber(v *float64) Number {
	if v == nil {
		return Number{}
	}
	return Number{value: *v, set: true}
}

func (n Number) Float64() *float64 {
	if !n.set {
		return nil
	}
	v := n.value
	return &v
}

// IsZero нужен для omitzero: отсутствующее значение не попадает в ответ.
func (n Number) IsZero() bool {
	return !n.set
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = Number{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = Number{}
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("parse number %q: %w", s, err)
		}
		*n = Number{value: v, set: true}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Number{value: v, set: true}
	return nil
}
