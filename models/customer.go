package models

import (
	"errors"
	"slices"
	"time"
)

var ErrInvalidGender = errors.New("gender must be male or female")

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

type Customer struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	Gender            Gender    `json:"gender"`
	VisitCount        int       `json:"visitCount"`
	TotalSpent        float64   `json:"totalSpent"`
	LastVisit         time.Time `json:"lastVisit"`
	PreferredServices []string  `json:"preferredServices"`
	Notes             *string   `json:"notes,omitempty"`
	Photo             string    `json:"photo"`
}

// NewCustomer carries the caller-supplied fields of a customer. Id, visit
// stats and last visit are always synthesized by the store.
type NewCustomer struct {
	Name              string
	Phone             string
	Email             string
	Gender            Gender
	PreferredServices []string
	Notes             *string
	Photo             string
}

// CustomerPatch is a partial update; nil fields keep their prior value.
type CustomerPatch struct {
	Name              *string    `json:"name"`
	Phone             *string    `json:"phone"`
	Email             *string    `json:"email"`
	Gender            *Gender    `json:"gender"`
	VisitCount        *int       `json:"visitCount"`
	TotalSpent        *float64   `json:"totalSpent"`
	LastVisit         *time.Time `json:"lastVisit"`
	PreferredServices *[]string  `json:"preferredServices"`
	Notes             *string    `json:"notes"`
	Photo             *string    `json:"photo"`
}

// Apply returns a copy of c with every non-nil patch field overlaid.
func (p CustomerPatch) Apply(c Customer) Customer {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Gender != nil {
		c.Gender = *p.Gender
	}
	if p.VisitCount != nil {
		c.VisitCount = *p.VisitCount
	}
	if p.TotalSpent != nil {
		c.TotalSpent = *p.TotalSpent
	}
	if p.LastVisit != nil {
		c.LastVisit = *p.LastVisit
	}
	if p.PreferredServices != nil {
		c.PreferredServices = slices.Clone(*p.PreferredServices)
		if c.PreferredServices == nil {
			c.PreferredServices = []string{}
		}
	}
	if p.Notes != nil {
		notes := *p.Notes
		c.Notes = &notes
	}
	if p.Photo != nil {
		c.Photo = *p.Photo
	}
	return c
}

// Clone returns a copy of c that shares no slices or pointers with it.
func (c Customer) Clone() Customer {
	c.PreferredServices = slices.Clone(c.PreferredServices)
	if c.Notes != nil {
		notes := *c.Notes
		c.Notes = &notes
	}
	return c
}
