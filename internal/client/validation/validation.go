// Package validation holds the declarative rule sets of the login and
// register forms and turns rule failures into localized messages.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names as they appear in Errors.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterForm struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Errors maps a field name to its message. A valid form yields an empty map.
type Errors map[string]string

func (e Errors) Valid() bool { return len(e) == 0 }

// Messages are keyed by "field.tag".
type messages map[string]string

var loginMessages = messages{
	"email.required":    "Email es requerido",
	"email.email":       "Email inválido",
	"password.required": "Contraseña es requerida",
}

var registerMessages = messages{
	"name.required":     "El nombre es requerido",
	"name.min":          "El nombre debe tener al menos 3 caracteres",
	"email.required":    "El email es requerido",
	"email.email":       "Email inválido",
	"password.required": "La contraseña es requerida",
	"password.min":      "La contraseña debe tener al menos 6 caracteres",
}

// Validator is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

func (v *Validator) Login(f LoginForm) Errors {
	return v.check(f, loginMessages)
}

func (v *Validator) Register(f RegisterForm) Errors {
	return v.check(f, registerMessages)
}

func (v *Validator) check(form any, msgs messages) Errors {
	out := Errors{}

	err := v.v.Struct(form)
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable with a non-struct argument.
		panic(err)
	}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		msg, ok := msgs[field+"."+fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		out[field] = msg
	}
	return out
}
