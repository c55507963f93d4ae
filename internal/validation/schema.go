package validation

import (
	"sort"

	"payment-initiation-backend/internal/apierror"
)

// Field declares one required request field and its type.
type Field struct {
	Name string
	Type Kind
}

// Schema is the ordered field list of one operation. Order decides which
// missing or mistyped field is reported first.
type Schema []Field

func (s Schema) has(name string) bool {
	for _, f := range s {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Check applies the structural rules in order: non-empty body, every field
// present, every field correctly typed, no extra fields.
func (s Schema) Check(body Body) *apierror.Error {
	if len(body) == 0 {
		return apierror.EmptyBody()
	}

	for _, f := range s {
		if _, ok := body[f.Name]; !ok {
			return apierror.MissingField(f.Name)
		}
	}

	for _, f := range s {
		v := body[f.Name]
		if !f.Type.accepts(v.Kind()) {
			return apierror.TypeMismatch(f.Name, v.Kind().String(), f.Type.String())
		}
	}

	// sorted so the reported field is stable between runs
	names := make([]string, 0, len(body))
	for name := range body {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !s.has(name) {
			return apierror.UnexpectedField(name)
		}
	}

	return nil
}
