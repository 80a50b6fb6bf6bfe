// Package crew maps provider crew taxonomy onto the internal person roles.
package crew

import "strings"

// Role identifies the credited function of a crew member.
type Role int

const (
	RoleUnknown Role = iota
	RoleDirector
	RoleProducer
	RoleWriter
)

func (r Role) String() string {
	switch r {
	case RoleDirector:
		return "director"
	case RoleProducer:
		return "producer"
	case RoleWriter:
		return "writer"
	default:
		return "unknown"
	}
}

// MapRole resolves a provider department/job pair to a Role. The director
// check runs before the producer check, so a job carrying both words
// resolves to director. Comparisons are ASCII case-insensitive.
func MapRole(department, job string) Role {
	switch {
	case strings.EqualFold(department, "production"):
		job = strings.ToLower(job)
		if strings.Contains(job, "director") {
			return RoleDirector
		}
		if strings.Contains(job, "producer") {
			return RoleProducer
		}
	case strings.EqualFold(department, "writing"):
		return RoleWriter
	}
	return RoleUnknown
}
