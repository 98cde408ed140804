package contact

// baseRequest carries the fields shared by every contact variant. Company is
// a honeypot: the rendered form keeps it hidden, so any value there marks a
// bot submission.
type baseRequest struct {
	Type    string `json:"type" validate:"required,oneof=quote message quick"`
	Email   string `json:"email" validate:"required,email"`
	Consent bool   `json:"consent" validate:"eq=true"`
	Notes   string `json:"notes" validate:"max=2000"`
	Company string `json:"company"`
}

type quoteRequest struct {
	baseRequest
	Phone       string `json:"phone" validate:"required,min=7,max=30"`
	UsageArea   string `json:"usageArea" validate:"required,min=2,max=60"`
	WoodType    string `json:"woodType" validate:"required,min=2,max=60"`
	ThicknessMm int    `json:"thicknessMm" validate:"required,gte=12,lte=120"`
	Quality     string `json:"quality" validate:"required,oneof=AB BB CC CD"`
	LengthMm    int    `json:"lengthMm" validate:"omitempty,gte=100,lte=6000"`
	WidthMm     int    `json:"widthMm" validate:"omitempty,gte=100,lte=2000"`
	Quantity    int    `json:"quantity" validate:"omitempty,gte=1,lte=100"`
}

type messageRequest struct {
	baseRequest
	Phone   string `json:"phone" validate:"required,min=7,max=30"`
	Name    string `json:"name" validate:"required,min=2,max=60"`
	Subject string `json:"subject" validate:"required,min=2,max=120"`
	Message string `json:"message" validate:"required,min=10,max=3000"`
}

type quickRequest struct {
	baseRequest
}
