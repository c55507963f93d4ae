package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"payment-initiation-backend/internal/apierror"
)

// Kind is the JSON type of a decoded field.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBool
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// accepts reports whether a value of kind v satisfies a field declared as k.
// A float field takes any JSON number.
func (k Kind) accepts(v Kind) bool {
	switch k {
	case KindFloat:
		return v == KindFloat || v == KindInteger
	default:
		return k == v
	}
}

// Value is one top-level field of a request body.
type Value struct {
	kind Kind
	str  string
	num  json.Number
	b    bool
}

func StringValue(s string) Value { return Value{kind: KindString, str: s} }

func NumberValue(n json.Number) Value {
	if strings.ContainsAny(n.String(), ".eE") {
		return Value{kind: KindFloat, num: n}
	}
	return Value{kind: KindInteger, num: n}
}

func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

func NullValue() Value { return Value{kind: KindNull} }

func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload; empty for other kinds.
func (v Value) Str() string { return v.str }

// Decimal returns the numeric payload without a float round trip.
func (v Value) Decimal() (decimal.Decimal, error) {
	if v.kind != KindFloat && v.kind != KindInteger {
		return decimal.Zero, fmt.Errorf("value is a %s, not a number", v.kind)
	}
	return decimal.NewFromString(v.num.String())
}

// Body is a decoded request body keyed by field name.
type Body map[string]Value

// DecodeBody parses a raw request body into a Body. An empty body is reported as
// EmptyBody; anything other than a single JSON object is MalformedBody.
func DecodeBody(raw []byte) (Body, *apierror.Error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, apierror.EmptyBody()
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, apierror.MalformedBody(err)
	}
	if dec.More() {
		return nil, apierror.MalformedBody(errors.New("trailing data after JSON object"))
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, apierror.MalformedBody(errors.New("body is not a JSON object"))
	}

	body := make(Body, len(obj))
	for name, raw := range obj {
		body[name] = toValue(raw)
	}
	return body, nil
}

func toValue(raw any) Value {
	switch x := raw.(type) {
	case nil:
		return NullValue()
	case string:
		return StringValue(x)
	case json.Number:
		return NumberValue(x)
	case bool:
		return BoolValue(x)
	case map[string]any:
		return Value{kind: KindObject}
	case []any:
		return Value{kind: KindArray}
	default:
		// encoding/json produces no other types with UseNumber
		return NullValue()
	}
}
