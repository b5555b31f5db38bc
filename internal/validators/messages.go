package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	MsgRequired     = "Este campo no puede estar vacio"
	MsgDateRequired = "La fecha no puede estar vacia"
	MsgEmail        = "No es una dirección válida"
	MsgSize         = "El tamaño debe estar entre %s y %s caracteres"
)

var registerOnce sync.Once

// Register makes the gin validator report fields by their JSON name.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonName)
	})
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// FieldErrors converts a binding error into one "El campo '<field>': <message>"
// entry per failing field. ok is false when err is not a validation error.
func FieldErrors(obj any, err error) (msgs []string, ok bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	seen := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		if seen[fe.Field()] {
			continue
		}
		seen[fe.Field()] = true
		msgs = append(msgs, fmt.Sprintf("El campo '%s': %s", fe.Field(), message(t, fe)))
	}
	return msgs, true
}

func message(t reflect.Type, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.Struct || fe.Kind() == reflect.Pointer {
			return MsgDateRequired
		}
		return MsgRequired
	case "email":
		return MsgEmail
	case "min", "max":
		if lo, hi, ok := sizeBounds(t, fe.StructField()); ok {
			return fmt.Sprintf(MsgSize, lo, hi)
		}
	}
	return fmt.Sprintf("no cumple la regla '%s'", fe.Tag())
}

// sizeBounds le min e max da tag binding do campo; ok só quando há os dois.
func sizeBounds(t reflect.Type, field string) (lo, hi string, ok bool) {
	if t == nil || t.Kind() != reflect.Struct {
		return "", "", false
	}
	sf, found := t.FieldByName(field)
	if !found {
		return "", "", false
	}
	for _, rule := range strings.Split(sf.Tag.Get("binding"), ",") {
		key, val, _ := strings.Cut(rule, "=")
		switch key {
		case "min":
			lo = val
		case "max":
			hi = val
		}
	}
	return lo, hi, lo != "" && hi != ""
}
