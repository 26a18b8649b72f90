// internal/app/system/defaultdata/defaultdata.go
//
// Package defaultdata holds the fallback member roster shown when the
// members collection has no visible entries yet. The roster is returned by
// Members() as a fresh slice and injected into the members handler by the
// bootstrap, so no handler depends on package-level mutable state.
package defaultdata

import (
	"time"

	"github.com/dalemusser/clubhub/internal/domain/models"
)

// Members returns the fallback roster. Callers may modify the returned
// slice freely.
func Members() []models.Member {
	joined := time.Date(2023, time.August, 1, 0, 0, 0, 0, time.UTC)
	return []models.Member{
		{
			PersonalInfo: models.PersonalInfo{
				FullName: "Aarav Sharma",
				Email:    "aarav.sharma@example.edu",
				Branch:   "CSE",
				Year:     models.YearFourth,
			},
			ProfessionalInfo: models.ProfessionalInfo{
				Role:   "Club Lead",
				Bio:    "Full-stack developer who started the club to get more students shipping real projects.",
				Skills: []string{"Go", "React", "MongoDB"},
			},
			MembershipInfo: models.MembershipInfo{
				JoinDate:   joined,
				MemberType: models.MemberTypeCore,
				Position:   "President",
			},
			IsVisible: true,
		},
		{
			PersonalInfo: models.PersonalInfo{
				FullName: "Priya Patel",
				Email:    "priya.patel@example.edu",
				Branch:   "ECE",
				Year:     models.YearThird,
			},
			ProfessionalInfo: models.ProfessionalInfo{
				Role:   "Design Lead",
				Bio:    "Designs the club's brand, posters, and event pages.",
				Skills: []string{"Figma", "Illustration", "CSS"},
			},
			MembershipInfo: models.MembershipInfo{
				JoinDate:   joined,
				MemberType: models.MemberTypeCore,
				Position:   "Design Head",
			},
			IsVisible: true,
		},
		{
			PersonalInfo: models.PersonalInfo{
				FullName: "Rohan Verma",
				Email:    "rohan.verma@example.edu",
				Branch:   "CSE",
				Year:     models.YearSecond,
			},
			ProfessionalInfo: models.ProfessionalInfo{
				Role:   "Events Coordinator",
				Bio:    "Runs workshops and keeps the event calendar full.",
				Skills: []string{"Public Speaking", "Planning"},
			},
			MembershipInfo: models.MembershipInfo{
				JoinDate:   joined,
				MemberType: models.MemberTypeActive,
			},
			IsVisible: true,
		},
	}
}
