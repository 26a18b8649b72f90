// internal/domain/models/member.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Year values for PersonalInfo.Year.
const (
	YearFirst  = "1st"
	YearSecond = "2nd"
	YearThird  = "3rd"
	YearFourth = "4th"
)

// Member types for MembershipInfo.MemberType.
const (
	MemberTypeCore   = "core"
	MemberTypeActive = "active"
	MemberTypeAlumni = "alumni"
)

// Years lists the valid values for PersonalInfo.Year.
var Years = []string{YearFirst, YearSecond, YearThird, YearFourth}

// MemberTypes lists the valid values for MembershipInfo.MemberType.
var MemberTypes = []string{MemberTypeCore, MemberTypeActive, MemberTypeAlumni}

// PersonalInfo holds identity fields shared by members and applications.
// Email is stored lowercase and RollNumber uppercase; the stores normalize
// both on every write.
type PersonalInfo struct {
	FullName     string `bson:"full_name" json:"fullName"`
	Email        string `bson:"email" json:"email"`
	Phone        string `bson:"phone" json:"phone"`
	RollNumber   string `bson:"roll_number" json:"rollNumber"`
	Branch       string `bson:"branch" json:"branch"`
	Year         string `bson:"year" json:"year"` // 1st | 2nd | 3rd | 4th
	ProfileImage string `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
}

// ProfessionalInfo holds a member's public profile details.
type ProfessionalInfo struct {
	Role         string   `bson:"role" json:"role"`
	Bio          string   `bson:"bio" json:"bio"` // ≤ 300 chars
	Skills       []string `bson:"skills" json:"skills"`
	PortfolioURL string   `bson:"portfolio_url,omitempty" json:"portfolioUrl,omitempty"`
	GithubURL    string   `bson:"github_url,omitempty" json:"githubUrl,omitempty"`
	LinkedinURL  string   `bson:"linkedin_url,omitempty" json:"linkedinUrl,omitempty"`
	TwitterURL   string   `bson:"twitter_url,omitempty" json:"twitterUrl,omitempty"`
}

// MembershipInfo tracks a member's standing within the club.
type MembershipInfo struct {
	JoinDate   time.Time `bson:"join_date" json:"joinDate"`
	MemberType string    `bson:"member_type" json:"memberType"` // core | active | alumni
	Position   string    `bson:"position,omitempty" json:"position,omitempty"`
}

// Member is a published (or hidden) team-member profile.
//
// Email uniqueness is scoped to visible members: a partial unique index on
// personal_info.email with is_visible=true enforces it, so a hidden member
// may share an email with a visible one.
type Member struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PersonalInfo     PersonalInfo       `bson:"personal_info" json:"personalInfo"`
	ProfessionalInfo ProfessionalInfo   `bson:"professional_info" json:"professionalInfo"`
	MembershipInfo   MembershipInfo     `bson:"membership_info" json:"membershipInfo"`
	FullNameCI       string             `bson:"full_name_ci" json:"-"` // lowercase, diacritics-stripped
	IsVisible        bool               `bson:"is_visible" json:"isVisible"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
