package models

import "slices"

const (
	DefaultShiftStart = "09:00"
	DefaultShiftEnd   = "18:00"
)

type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func DefaultWorkingHours() WorkingHours {
	return WorkingHours{Start: DefaultShiftStart, End: DefaultShiftEnd}
}

type Employee struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Role          string       `json:"role"`
	Photo         string       `json:"photo"`
	Available     bool         `json:"available"`
	Specialties   []string     `json:"specialties"`
	Rating        float64      `json:"rating"`
	NextAvailable string       `json:"nextAvailable"`
	WorkingHours  WorkingHours `json:"workingHours"`
}

// NewEmployee is an employee without an id. Optional fields left nil are
// filled with the staff defaults.
type NewEmployee struct {
	Name          string
	Role          string
	Photo         string
	Available     bool
	Specialties   []string
	Rating        *float64
	NextAvailable *string
	WorkingHours  *WorkingHours
}

// WithDefaults builds an Employee with the given id, defaulting every
// optional field that is missing.
func (n NewEmployee) WithDefaults(id string) Employee {
	e := Employee{
		ID:            id,
		Name:          n.Name,
		Role:          n.Role,
		Photo:         n.Photo,
		Available:     n.Available,
		Specialties:   slices.Clone(n.Specialties),
		NextAvailable: "",
		WorkingHours:  DefaultWorkingHours(),
	}
	if e.Specialties == nil {
		e.Specialties = []string{}
	}
	if n.Rating != nil {
		e.Rating = *n.Rating
	}
	if n.NextAvailable != nil {
		e.NextAvailable = *n.NextAvailable
	}
	if n.WorkingHours != nil {
		e.WorkingHours = *n.WorkingHours
	}
	return e
}

type EmployeePatch struct {
	Name          *string       `json:"name"`
	Role          *string       `json:"role"`
	Photo         *string       `json:"photo"`
	Available     *bool         `json:"available"`
	Specialties   *[]string     `json:"specialties"`
	Rating        *float64      `json:"rating"`
	NextAvailable *string       `json:"nextAvailable"`
	WorkingHours  *WorkingHours `json:"workingHours"`
}

func (p EmployeePatch) Apply(e Employee) Employee {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Role != nil {
		e.Role = *p.Role
	}
	if p.Photo != nil {
		e.Photo = *p.Photo
	}
	if p.Available != nil {
		e.Available = *p.Available
	}
	if p.Specialties != nil {
		e.Specialties = slices.Clone(*p.Specialties)
		if e.Specialties == nil {
			e.Specialties = []string{}
		}
	}
	if p.Rating != nil {
		e.Rating = *p.Rating
	}
	if p.NextAvailable != nil {
		e.NextAvailable = *p.NextAvailable
	}
	if p.WorkingHours != nil {
		e.WorkingHours = *p.WorkingHours
	}
	return e
}

func (e Employee) Clone() Employee {
	e.Specialties = slices.Clone(e.Specialties)
	return e
}
