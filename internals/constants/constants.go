package constants

// User roles
const (
	RoleMember  = "member"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

// Membership types
const (
	MembershipMember    = "member"
	MembershipNonMember = "non_member"
	MembershipHonorary  = "honorary"
)

// Fallback hourly rate when a trainer has neither a current contract nor a
// personal default rate.
const DefaultHourlyRate = 25.00

// Group time window defaults used when a group has no configured times.
const (
	DefaultLessonStartTime = "19:00"
	DefaultLessonEndTime   = "20:00"
)
