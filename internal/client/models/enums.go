package models

import (
	"encoding/json"
	"fmt"
)

// Role is a user's global role.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

func (r Role) String() string { return string(r) }

func (r Role) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid role %q", string(r))
	}
	return json.Marshal(string(r))
}

// ParseRole accepts the wire value and the "normal"/"administrator" aliases.
func ParseRole(s string) (Role, error) {
	switch s {
	case "user", "normal":
		return RoleUser, nil
	case "admin", "administrator":
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("invalid role %q", s)
}

// Status is the lifecycle state shared by projects and tasks.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

func (s Status) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid status %q", string(s))
	}
	return json.Marshal(string(s))
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("invalid status %q", s)
	}
	return st, nil
}

// MemberRole is a user's role inside one project.
type MemberRole string

const (
	MemberRoleManager MemberRole = "project_manager"
	MemberRoleMember  MemberRole = "project_member"
)

func (m MemberRole) Valid() bool {
	return m == MemberRoleManager || m == MemberRoleMember
}

func (m MemberRole) String() string { return string(m) }

func (m MemberRole) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid member role %q", string(m))
	}
	return json.Marshal(string(m))
}

// ParseMemberRole accepts the wire value and the short "manager"/"member" forms.
func ParseMemberRole(s string) (MemberRole, error) {
	switch s {
	case "project_manager", "manager":
		return MemberRoleManager, nil
	case "project_member", "member":
		return MemberRoleMember, nil
	}
	return "", fmt.Errorf("invalid member role %q", s)
}
