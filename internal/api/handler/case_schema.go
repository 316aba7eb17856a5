package handler

import (
	"time"

	"github.com/maiunguwa377/caseflow/internal/core/domain"
)

// registrationDateLayout is the wire format for case registration dates.
const registrationDateLayout = "2006-01-02"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for write acknowledgements.
type messageResponse struct {
	Message string `json:"message"`
}

type caseRequest struct {
	CaseNumber       string `json:"case_number"       validate:"required"`
	Parties          string `json:"parties"           validate:"required"`
	RegistrationDate string `json:"registration_date" validate:"required,datetime=2006-01-02"`
	Status           string `json:"status"            validate:"required"`
}

// Response-only type owned by the transport layer, so the JSON contract
// is not coupled to internal domain changes.
type caseResponse struct {
	ID               int64  `json:"id"`
	CaseNumber       string `json:"case_number"`
	Parties          string `json:"parties"`
	RegistrationDate string `json:"registration_date"`
	Status           string `json:"status"`
}

func toCaseResponse(c domain.Case) caseResponse {
	return caseResponse{
		ID:               c.ID,
		CaseNumber:       c.CaseNumber,
		Parties:          c.Parties,
		RegistrationDate: c.RegistrationDate.Format(registrationDateLayout),
		Status:           c.Status,
	}
}

func parseRegistrationDate(s string) (time.Time, error) {
	return time.Parse(registrationDateLayout, s)
}
