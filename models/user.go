package models

type UserRole string

const (
	RoleNationalAdmin UserRole = "NATIONAL_ADMIN"
	RoleStateAdmin    UserRole = "STATE_ADMIN"
	RoleDistrictAdmin UserRole = "DISTRICT_ADMIN"
	RoleClubAdmin     UserRole = "CLUB_ADMIN"
	RoleCoach         UserRole = "COACH"
	RoleStudent       UserRole = "STUDENT"
)

// AllRoles lists every role the federation recognises.
var AllRoles = []UserRole{
	RoleNationalAdmin,
	RoleStateAdmin,
	RoleDistrictAdmin,
	RoleClubAdmin,
	RoleCoach,
	RoleStudent,
}

// Valid reports whether the role is one of the six known federation roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleNationalAdmin, RoleStateAdmin, RoleDistrictAdmin, RoleClubAdmin, RoleCoach, RoleStudent:
		return true
	}
	return false
}

type User struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Role          UserRole `json:"role"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone,omitempty"`
	Region        string   `json:"region,omitempty"`
	SSFIID        string   `json:"ssfi_id,omitempty"`
	AadhaarNumber string   `json:"aadhaar_number,omitempty"`
}
