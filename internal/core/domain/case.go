package domain

import (
	"errors"
	"time"
)

// Case is a tracked legal case. The relational store owns the record;
// this service only proxies reads and writes.
type Case struct {
	ID               int64     `json:"id"`
	CaseNumber       string    `json:"case_number"`
	Parties          string    `json:"parties"`
	RegistrationDate time.Time `json:"registration_date"`
	Status           string    `json:"status"`
}

var ErrCaseNotFound = errors.New("case not found")
