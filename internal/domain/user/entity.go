package user

type Role string

const (
	RoleAdmin          Role = "Admin"           // Platform administrator - full access
	RoleCompanyOwner   Role = "Company Owner"   // Owns the construction company
	RoleProjectManager Role = "Project Manager" // Runs projects day to day
	RoleTeamMember     Role = "Team Member"     // Site staff, sees only what they are tagged in
	RoleClient         Role = "Client"          // External client of a project
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleCompanyOwner),
	string(RoleProjectManager),
	string(RoleTeamMember),
	string(RoleClient),
}

type User struct {
	ID        string
	Name      string
	Email     string
	AvatarURL string
	Role      Role
}

// IsPrivileged checks if the role manages everything within a project by default.
// Admin, Company Owner and Project Manager form the privileged set; every
// visibility rule in the system derives from this one predicate.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleCompanyOwner || r == RoleProjectManager
}

// IsClient checks if the role is an external project client
func (r Role) IsClient() bool {
	return r == RoleClient
}

// IsTeamMember checks if the role is internal non-privileged site staff
func (r Role) IsTeamMember() bool {
	return r == RoleTeamMember
}

// IsPrivileged reports whether the user may see and manage all project data.
func (u *User) IsPrivileged() bool {
	return u.Role.IsPrivileged()
}

// IsClient reports whether the user is an external client.
func (u *User) IsClient() bool {
	return u.Role.IsClient()
}

// IsTeamMember reports whether the user is a non-privileged internal member.
func (u *User) IsTeamMember() bool {
	return u.Role.IsTeamMember()
}
