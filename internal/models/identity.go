package models

import "time"

const (
	CollectionUsers    = "users"
	CollectionProjects = "projects"
	CollectionTasks    = "tasks"
	CollectionActivity = "activity"
)

// Identity is the directory profile of a registered principal. Its ID is the
// principal id issued by the Directory, so a profile lookup is a direct get.
type Identity struct {
	ID          string     `bson:"id" json:"id"`
	Email       string     `bson:"email" json:"email"`
	DisplayName string     `bson:"displayName" json:"displayName"`
	Role        Role       `bson:"role" json:"role"`
	IsActive    bool       `bson:"isActive" json:"isActive"`
	System      bool       `bson:"system,omitempty" json:"system,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// SessionIdentity is what a successful sign-in hands back to the caller.
type SessionIdentity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        Role   `json:"role"`
	Token       string `json:"token,omitempty"`
}

func (i Identity) Session(token string) SessionIdentity {
	return SessionIdentity{
		ID:          i.ID,
		Email:       i.Email,
		DisplayName: i.DisplayName,
		Role:        i.Role,
		Token:       token,
	}
}

// Initials picks the avatar letter shown next to the profile.
func (i Identity) Initials() string {
	switch {
	case i.DisplayName != "":
		return string([]rune(i.DisplayName)[0:1])
	case i.Email != "":
		return string([]rune(i.Email)[0:1])
	default:
		return "U"
	}
}
