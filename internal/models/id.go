package models

import "github.com/google/uuid"

// Entity id prefixes, kept from the original record layout so seeded ids
// like "s1" and generated ids sort into the same namespace per entity.
const (
	ShipIDPrefix         = "s"
	ComponentIDPrefix    = "c"
	JobIDPrefix          = "j"
	NotificationIDPrefix = "n"
)

// NewID returns a collision-resistant entity id with the given prefix.
func NewID(prefix string) string {
	return prefix + uuid.NewString()
}
