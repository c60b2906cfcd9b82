package core

// Entity is a stable opaque identifier; it carries no data of its own, only keys component stores
// Zero is reserved as "no entity"
type Entity uint64

// NoEntity is the zero handle returned when a lookup has no result
const NoEntity Entity = 0

// Valid reports whether e refers to an issued entity
func (e Entity) Valid() bool {
	return e != NoEntity
}
