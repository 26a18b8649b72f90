// internal/domain/models/application.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application statuses. Transitions are unrestricted: the admin status
// endpoint may move an application from any status to any other.
const (
	ApplicationPending            = "pending"
	ApplicationApproved           = "approved"
	ApplicationRejected           = "rejected"
	ApplicationInterviewScheduled = "interview_scheduled"
)

// ApplicationStatuses lists the valid values for TeamApplication.Status.
var ApplicationStatuses = []string{
	ApplicationPending,
	ApplicationApproved,
	ApplicationRejected,
	ApplicationInterviewScheduled,
}

// Experience levels for TechnicalInfo.Experience.
const (
	ExperienceBeginner     = "Beginner"
	ExperienceIntermediate = "Intermediate"
	ExperienceAdvanced     = "Advanced"
)

// ExperienceLevels lists the valid values for TechnicalInfo.Experience.
var ExperienceLevels = []string{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced}

// PreferredRoles lists the roles an applicant can apply for.
var PreferredRoles = []string{
	"Frontend Developer",
	"Backend Developer",
	"Full Stack Developer",
	"UI/UX Designer",
	"Content Writer",
	"Event Manager",
	"Marketing",
	"Other",
}

// TechnicalInfo holds an applicant's technical background.
type TechnicalInfo struct {
	Skills     []string `bson:"skills" json:"skills"`
	Languages  []string `bson:"languages" json:"languages"`
	Frameworks []string `bson:"frameworks" json:"frameworks"`
	Experience string   `bson:"experience" json:"experience"` // Beginner | Intermediate | Advanced
	Links      AppLinks `bson:"links" json:"links"`
}

// AppLinks are optional URLs an applicant can attach.
type AppLinks struct {
	PortfolioURL string `bson:"portfolio_url,omitempty" json:"portfolioUrl,omitempty"`
	GithubURL    string `bson:"github_url,omitempty" json:"githubUrl,omitempty"`
	LinkedinURL  string `bson:"linkedin_url,omitempty" json:"linkedinUrl,omitempty"`
}

// Motivation captures the applicant's free-text answers.
type Motivation struct {
	WhyJoin          string `bson:"why_join" json:"whyJoin"`           // ≤ 500 chars
	Contribution     string `bson:"contribution" json:"contribution"` // ≤ 500 chars
	PreviousProjects string `bson:"previous_projects,omitempty" json:"previousProjects,omitempty"`
}

// Availability captures how much time the applicant can commit.
type Availability struct {
	HoursPerWeek  int    `bson:"hours_per_week" json:"hoursPerWeek"` // 1–40
	PreferredRole string `bson:"preferred_role" json:"preferredRole"`
}

// TeamApplication is one join application. At most one exists per email,
// enforced by a unique index on personal_info.email. Applications are never
// deleted; review state lives in Status/AdminNotes/ReviewedAt/ReviewedBy.
type TeamApplication struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PersonalInfo  PersonalInfo       `bson:"personal_info" json:"personalInfo"`
	TechnicalInfo TechnicalInfo      `bson:"technical_info" json:"technicalInfo"`
	Motivation    Motivation         `bson:"motivation" json:"motivation"`
	Availability  Availability       `bson:"availability" json:"availability"`

	Status     string     `bson:"status" json:"status"`
	AdminNotes string     `bson:"admin_notes,omitempty" json:"adminNotes,omitempty"`
	ReviewedAt *time.Time `bson:"reviewed_at,omitempty" json:"reviewedAt,omitempty"`
	ReviewedBy string     `bson:"reviewed_by,omitempty" json:"reviewedBy,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
