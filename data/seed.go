// Package data holds the static sample records the customer and staff stores
// start from. Every call returns fresh copies, so callers may keep or modify
// what they get without touching the dataset.
package data

import (
	"time"

	"salonpro-desk/models"
)

const photoBase = "https://images.salonpro.example/people/"

// EmployeeRecord is a seed employee before the staff defaults are applied.
type EmployeeRecord struct {
	ID       string
	Employee models.NewEmployee
}

func Customers() []models.Customer {
	visit := func(month time.Month, day int) time.Time {
		return time.Date(2024, month, day, 11, 30, 0, 0, time.UTC)
	}
	note := func(s string) *string { return &s }

	return []models.Customer{
		{
			ID:                "cust-1",
			Name:              "Priya Sharma",
			Phone:             "+919876543210",
			Email:             "priya.sharma@example.com",
			Gender:            models.GenderFemale,
			VisitCount:        12,
			TotalSpent:        18450,
			LastVisit:         visit(time.March, 2),
			PreferredServices: []string{"Hair Spa", "Manicure"},
			Notes:             note("Prefers afternoon slots"),
			Photo:             photoBase + "priya.jpg",
		},
		{
			ID:                "cust-2",
			Name:              "Rahul Verma",
			Phone:             "+919812345678",
			Email:             "rahul.verma@example.com",
			Gender:            models.GenderMale,
			VisitCount:        5,
			TotalSpent:        3200,
			LastVisit:         visit(time.February, 18),
			PreferredServices: []string{"Haircut", "Beard Trim"},
			Photo:             photoBase + "rahul.jpg",
		},
		{
			ID:                "cust-3",
			Name:              "Ananya Iyer",
			Phone:             "+919900112233",
			Email:             "ananya.iyer@example.com",
			Gender:            models.GenderFemale,
			VisitCount:        8,
			TotalSpent:        12600,
			LastVisit:         visit(time.March, 9),
			PreferredServices: []string{"Facial", "Hair Color"},
			Notes:             note("Allergic to ammonia-based color"),
			Photo:             photoBase + "ananya.jpg",
		},
		{
			ID:                "cust-4",
			Name:              "Vikram Singh",
			Phone:             "9811122233",
			Email:             "vikram.singh@example.com",
			Gender:            models.GenderMale,
			VisitCount:        2,
			TotalSpent:        900,
			LastVisit:         visit(time.January, 27),
			PreferredServices: []string{},
			Photo:             photoBase + "vikram.jpg",
		},
	}
}

func Employees() []EmployeeRecord {
	rating := func(r float64) *float64 { return &r }
	text := func(s string) *string { return &s }

	return []EmployeeRecord{
		{
			ID: "emp-1",
			Employee: models.NewEmployee{
				Name:          "Meera Kapoor",
				Role:          "Senior Stylist",
				Photo:         photoBase + "meera.jpg",
				Available:     true,
				Specialties:   []string{"Hair Color", "Keratin"},
				Rating:        rating(4.9),
				NextAvailable: text("Now"),
				WorkingHours:  &models.WorkingHours{Start: "10:00", End: "19:00"},
			},
		},
		{
			ID: "emp-2",
			Employee: models.NewEmployee{
				Name:          "Arjun Nair",
				Role:          "Barber",
				Photo:         photoBase + "arjun.jpg",
				Available:     false,
				Specialties:   []string{"Haircut", "Beard Trim"},
				Rating:        rating(4.6),
				NextAvailable: text("14:30"),
			},
		},
		{
			ID: "emp-3",
			Employee: models.NewEmployee{
				Name:        "Sana Qureshi",
				Role:        "Beautician",
				Photo:       photoBase + "sana.jpg",
				Available:   true,
				Specialties: []string{"Facial", "Threading", "Manicure"},
			},
		},
		{
			ID: "emp-4",
			Employee: models.NewEmployee{
				Name:      "Karan Mehta",
				Role:      "Trainee",
				Photo:     photoBase + "karan.jpg",
				Available: true,
			},
		},
	}
}
