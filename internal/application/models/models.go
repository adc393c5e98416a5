package models

import "time"

// Status tracks an application's lifecycle. The core only ever assigns
// Pending; transitions (approved/rejected) are a separate state machine
// that has not been specified yet.
type Status string

const StatusPending Status = "Pending"

// Application is one ledger entry. UserID references the account that
// owned ApplicantEmail at submission time; the link is not re-checked
// afterwards, so a dangling reference after an administrative account
// removal is tolerated. College is a free-form string naming the target
// institution or college, not a catalog key.
type Application struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"userId"`
	ApplicantEmail string    `json:"applicantEmail"`
	FullName       string    `json:"fullName"`
	BirthDate      string    `json:"birthDate"`
	NationalID     string    `json:"nationalId"`
	Address        string    `json:"address"`
	PhoneNumber    string    `json:"phoneNumber"`
	Total          string    `json:"total"`
	PaymentMethod  string    `json:"paymentMethod"`
	College        string    `json:"college"`
	Status         Status    `json:"status"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// Submission carries the applicant-supplied fields of a new application.
type Submission struct {
	ApplicantEmail string `json:"applicantEmail"`
	FullName       string `json:"fullName"`
	BirthDate      string `json:"birthDate"`
	NationalID     string `json:"nationalId"`
	Address        string `json:"address"`
	PhoneNumber    string `json:"phoneNumber"`
	Total          string `json:"total"`
	PaymentMethod  string `json:"paymentMethod"`
	College        string `json:"college"`
}
