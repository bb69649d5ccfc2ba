package sim

// Role is a character's job on campus, used for display and for binding
// the player to a character.
type Role string

const (
	RoleStudent   Role = "student"
	RoleTeacher   Role = "teacher"
	RoleStaff     Role = "staff"
	RolePrincipal Role = "principal"
	RoleJanitor   Role = "janitor"
)

// Tags are the story-relevant memberships of a character, assigned once
// at construction. The constraint layer keys off these instead of
// comparing names.
type Tags struct {
	Classmate bool `json:"classmate,omitempty"`
	Teacher   bool `json:"teacher,omitempty"`
	Staff     bool `json:"staff,omitempty"`
}
