package domain

import (
	"fmt"
	"time"
)

// Owner identifies which member of the household a record belongs to.
type Owner string

const (
	OwnerPrimary Owner = "primary"
	OwnerPartner Owner = "partner"
)

// OrPrimary maps the empty owner to OwnerPrimary.
func (o Owner) OrPrimary() Owner {
	if o == "" {
		return OwnerPrimary
	}
	return o
}

// ParseOwner accepts "primary", "partner" or an empty string (primary).
func ParseOwner(s string) (Owner, error) {
	switch Owner(s) {
	case "", OwnerPrimary:
		return OwnerPrimary, nil
	case OwnerPartner:
		return OwnerPartner, nil
	default:
		return "", fmt.Errorf("unknown owner %q (expected primary or partner)", s)
	}
}

// Person is a household member with a planned maximum age.
type Person struct {
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birthDate"`
	MaxAge    int       `json:"maxAge"`
}

// Configured reports whether a birth date has been set.
func (p Person) Configured() bool {
	return !p.BirthDate.IsZero()
}

// DeathDate is the birth date plus MaxAge years.
func (p Person) DeathDate() time.Time {
	if !p.Configured() {
		return time.Time{}
	}
	return p.BirthDate.AddDate(p.MaxAge, 0, 0)
}

// IsAlive reports whether at is on or before the planned death date.
// A person without a birth date is never alive.
func (p Person) IsAlive(at time.Time) bool {
	if !p.Configured() {
		return false
	}
	return !at.After(p.DeathDate())
}

// Age returns the age in whole years at the given date.
func (p Person) Age(at time.Time) int {
	age := at.Year() - p.BirthDate.Year()
	if at.Month() < p.BirthDate.Month() || (at.Month() == p.BirthDate.Month() && at.Day() < p.BirthDate.Day()) {
		age--
	}
	return age
}

// Household holds the primary person and an optional partner.
type Household struct {
	Primary Person  `json:"primary"`
	Partner *Person `json:"partner,omitempty"`
}

// Member returns the person for owner. An absent partner comes back as an unconfigured Person.
func (h Household) Member(owner Owner) Person {
	if owner == OwnerPartner {
		if h.Partner == nil {
			return Person{}
		}
		return *h.Partner
	}
	return h.Primary
}

// LastDeathDate is the later of the two planned death dates.
func (h Household) LastDeathDate() time.Time {
	last := h.Primary.DeathDate()
	if h.Partner != nil && h.Partner.Configured() && h.Partner.DeathDate().After(last) {
		last = h.Partner.DeathDate()
	}
	return last
}

// StatePension is one owner's state pension: recorded annual amounts and the date payments begin.
type StatePension struct {
	Name      string    `json:"name"`
	Owner     Owner     `json:"owner"`
	StartDate time.Time `json:"startDate"`
	History   Series    `json:"history"`
}
