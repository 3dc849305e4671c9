package entities

import "time"

type Client struct {
	ID           int64
	NationalID   string
	FirstName    string
	LastName     string
	Phone        string
	Address      string
	Email        string
	Zone         ZoneType
	Disability   bool
	RegisteredAt time.Time
}

type ClientModify struct {
	ID         *int64
	NationalID *string
	FirstName  *string
	LastName   *string
	Phone      *string
	Address    *string
	Email      *string
	Zone       *ZoneType
	Disability *bool
}
