package models

import "strings"

type Role string

const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

var roles = []Role{RoleUser, RoleManager, RoleAdmin}

// ParseRole accepts only the closed role set. Matching ignores case and
// surrounding whitespace.
func ParseRole(s string) (Role, bool) {
	candidate := Role(strings.ToLower(strings.TrimSpace(s)))
	for _, r := range roles {
		if r == candidate {
			return r, true
		}
	}
	return "", false
}

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleManager, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
