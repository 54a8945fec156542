// Package model defines the core domain types shared across the application.
package model

import "time"

// UserAccount is the public identity attached to a profile. It is created at
// registration or first social sign-in and never mutated afterwards.
type UserAccount struct {
	Name   string
	Email  string
	Avatar string
}

// StoredCredential is the persisted registry entry backing an account.
// It is internal to the account store and never exposed to views.
type StoredCredential struct {
	CreatedAt    time.Time
	Name         string
	Email        string
	PasswordHash string
	Avatar       string
	Social       bool
}

// Account returns the public view of the credential.
func (c *StoredCredential) Account() UserAccount {
	return UserAccount{
		Name:   c.Name,
		Email:  c.Email,
		Avatar: c.Avatar,
	}
}
