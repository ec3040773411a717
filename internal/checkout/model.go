package checkout

// Address is the delivery address captured on the customer step.
type Address struct {
	CEP          string `json:"cep" validate:"required,min=8,max=9"`
	Street       string `json:"street" validate:"required,min=3"`
	Number       string `json:"number" validate:"required,min=1"`
	Complement   string `json:"complement,omitempty" validate:"omitempty"`
	Neighborhood string `json:"neighborhood" validate:"required,min=2"`
	City         string `json:"city" validate:"required,min=2"`
	State        string `json:"state" validate:"required,len=2"`
}

// CustomerData is the customer step's form payload.
type CustomerData struct {
	Name    string  `json:"name" validate:"required,min=3"`
	Email   string  `json:"email" validate:"required,email"`
	CPF     string  `json:"cpf" validate:"required,min=11,max=14"`
	Phone   string  `json:"phone" validate:"required,min=10,max=15"`
	Address Address `json:"address"`
}

type PaymentType string

const (
	PaymentCredit PaymentType = "credit"
	PaymentPix    PaymentType = "pix"
	PaymentBoleto PaymentType = "boleto"
)

// PaymentMethod is the payment step's form payload. Installments only apply
// to credit card payments.
type PaymentMethod struct {
	Type         PaymentType `json:"type" validate:"required,oneof=credit pix boleto"`
	Installments *int        `json:"installments,omitempty" validate:"omitempty,min=1,max=12"`
}
