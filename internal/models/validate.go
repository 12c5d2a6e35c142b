package models

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Dates validate as their string form so `required` rejects the zero date.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(Date); ok {
			return d.String()
		}
		return nil
	}, Date{})
	return v
}

// Validate checks every element of the document against its field rules.
func (d *Document) Validate() error {
	return validate.Struct(d)
}

func (e CalendarEvent) Validate() error {
	return validate.Struct(e)
}

func (e JournalEntry) Validate() error {
	return validate.Struct(e)
}
