package resource

import (
	"strings"

	"reservation-engine/internal/pkg/errs"
)

var ErrInvalidVehicleType = errs.New("invalid vehicle type")

type Kind string

const (
	KindRoom       Kind = "room"
	KindMotorcycle Kind = "motorcycle"
	KindCompact    Kind = "compact"
	KindLarge      Kind = "large"
)

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindRoom, KindMotorcycle, KindCompact, KindLarge:
		return true
	default:
		return false
	}
}

func (k Kind) IsSpot() bool {
	return k.IsValid() && k != KindRoom
}

func (k Kind) Mode() Mode {
	if k == KindRoom {
		return ModeTimed
	}
	return ModeOccupancy
}

type Mode string

const (
	// ModeTimed resources are booked for half-open [start, end) windows.
	ModeTimed Mode = "timed"
	// ModeOccupancy resources hold at most one open-ended occupation.
	ModeOccupancy Mode = "occupancy"
)

func (m Mode) String() string {
	return string(m)
}

func (m Mode) IsValid() bool {
	switch m {
	case ModeTimed, ModeOccupancy:
		return true
	default:
		return false
	}
}

// Constraint is the selection criterion a resource must satisfy.
// An empty Kinds set accepts every kind.
type Constraint struct {
	MinCapacity int
	Kinds       []Kind
}

func RoomConstraint(minCapacity int) Constraint {
	return Constraint{MinCapacity: minCapacity, Kinds: []Kind{KindRoom}}
}

type VehicleType string

const (
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleCar        VehicleType = "car"
	VehicleTruck      VehicleType = "truck"
)

func ParseVehicleType(s string) (VehicleType, error) {
	v := VehicleType(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case VehicleMotorcycle, VehicleCar, VehicleTruck:
		return v, nil
	default:
		return "", ErrInvalidVehicleType
	}
}

func (v VehicleType) String() string {
	return string(v)
}

// ConstraintForVehicle returns the spot kinds a vehicle fits into.
// Motorcycles fit anywhere, cars need compact or large, trucks need large.
func ConstraintForVehicle(v VehicleType) Constraint {
	switch v {
	case VehicleMotorcycle:
		return Constraint{Kinds: []Kind{KindMotorcycle, KindCompact, KindLarge}}
	case VehicleCar:
		return Constraint{Kinds: []Kind{KindCompact, KindLarge}}
	case VehicleTruck:
		return Constraint{Kinds: []Kind{KindLarge}}
	default:
		// no resource has an empty kind
		return Constraint{Kinds: []Kind{""}}
	}
}
