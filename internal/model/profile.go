package model

import "time"

const (
	RoleStudent    = "student"
	RoleEmployee   = "employee"
	RoleFreelancer = "freelancer"
	RoleOther      = "other"
)

const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceExpert       = "expert"
)

type Profile struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	Name            string    `db:"name" json:"name"`
	Role            string    `db:"role" json:"role"`
	ExperienceLevel string    `db:"experience_level" json:"experience_level"`
	Education       string    `db:"education" json:"education"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleEmployee, RoleFreelancer, RoleOther:
		return true
	}
	return false
}

func ValidExperienceLevel(level string) bool {
	switch level {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceExpert:
		return true
	}
	return false
}
