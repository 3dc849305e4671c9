package client

import "time"

type ClientDB struct {
	ID           int64
	NationalID   string
	FirstName    string
	LastName     string
	Phone        string
	Address      string
	Email        string
	Zone         string
	Disability   bool
	RegisteredAt time.Time
}

type ClientModifyDB struct {
	ID         *int64
	NationalID *string
	FirstName  *string
	LastName   *string
	Phone      *string
	Address    *string
	Email      *string
	Zone       *string
	Disability *bool
}
