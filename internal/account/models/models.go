package models

// Account is the stored identity record. PasswordHash is persisted with the
// record but must never cross the API boundary except through the
// privileged ListAll escape hatch.
type Account struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// Summary is the public shape of an account: everything except the hash.
type Summary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Summary strips credential material for API responses.
func (a Account) Summary() Summary {
	return Summary{ID: a.ID, Name: a.Name, Email: a.Email}
}
