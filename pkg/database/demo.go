package database

import (
	"github.com/tagalong/ramp/pkg/structs"
)

// demoPassword is shared by all demo accounts; these exist purely so a demo
// instance has something to show.
const demoPassword = "TagAlong2024Demo"

// DemoUsers returns the demo account set for a freshly seeded instance.
func DemoUsers() []*structs.UserSpec {
	return []*structs.UserSpec{
		{Email: "admin@tagalong.app", Username: "admin", FirstName: "Rishika", LastName: "Agrawal", Password: demoPassword, IsStaff: true, IsSuperuser: true},
		{Email: "alex.johnson@tagalong.app", FirstName: "Alex", LastName: "Johnson", Password: demoPassword},
		{Email: "priya.sharma@tagalong.app", FirstName: "Priya", LastName: "Sharma", Password: demoPassword},
		{Email: "carlos.r@tagalong.app", FirstName: "Carlos", LastName: "Rodriguez", Password: demoPassword},
		{Email: "emma.wilson@tagalong.app", FirstName: "Emma", LastName: "Wilson", Password: demoPassword},
	}
}
