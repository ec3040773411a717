package checkout

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json names so the UI can address its inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Form error messages mirror the storefront's customer-facing copy.
var fieldMessages = map[string]string{
	"name":                 "Nome deve ter no mínimo 3 caracteres",
	"email":                "Email inválido",
	"cpf":                  "CPF inválido",
	"phone":                "Telefone inválido",
	"address.cep":          "CEP inválido",
	"address.street":       "Endereço inválido",
	"address.number":       "Número inválido",
	"address.neighborhood": "Bairro inválido",
	"address.city":         "Cidade inválida",
	"address.state":        "Estado inválido",
	"type":                 "Método de pagamento inválido",
	"installments":         "Parcelamento inválido",
}

// ValidateCustomer checks the customer form against its field contract and
// returns one ValidationError per failing field.
func ValidateCustomer(data CustomerData) ValidationErrors {
	return toFieldErrors(validate.Struct(data))
}

// ValidatePayment checks the payment form payload.
func ValidatePayment(pm PaymentMethod) ValidationErrors {
	return toFieldErrors(validate.Struct(pm))
}

func toFieldErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationErrors{{Field: "", Message: err.Error()}}
	}

	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		msg, ok := fieldMessages[field]
		if !ok {
			msg = "Campo inválido"
		}
		out = append(out, ValidationError{Field: field, Message: msg})
	}
	return out
}

// fieldPath strips the root struct name from a validator namespace, leaving
// the json path, e.g. "CustomerData.address.cep" -> "address.cep".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
