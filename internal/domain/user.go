package domain

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	IsAdmin      bool
	Street       string
	Apartment    string
	Zip          string
	City         string
	Country      string
}
