package domain

import "strings"

// SectionCount is the fixed number of fare sections on every aircraft.
const SectionCount = 4

// Section slots. Every per-section array in the system uses this order.
const (
	SectionEconomyBasic = iota
	SectionEconomyPlus
	SectionBusiness
	SectionFirst
)

// SectionClass names a fare section.
type SectionClass string

// Fare section names, indexed by slot.
const (
	ClassEconomyBasic SectionClass = "ECON_BASIC"
	ClassEconomyPlus  SectionClass = "ECON_PLUS"
	ClassBusiness     SectionClass = "BUSINESS"
	ClassFirst        SectionClass = "FIRST"
)

// SectionClasses maps slot index to section name.
var SectionClasses = [SectionCount]SectionClass{
	ClassEconomyBasic,
	ClassEconomyPlus,
	ClassBusiness,
	ClassFirst,
}

// SeatCounts holds one seat count per section.
type SeatCounts [SectionCount]int

// Total sums all sections.
func (s SeatCounts) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// SeatPrices holds one unit price per section.
type SeatPrices [SectionCount]Money

// AircraftSize classifies an aircraft by range and capacity.
type AircraftSize string

// Aircraft sizes. SizeUnknown is what ParseAircraftSize returns for anything else.
const (
	SizeSmall   AircraftSize = "S"
	SizeMedium  AircraftSize = "M"
	SizeLarge   AircraftSize = "L"
	SizeUnknown AircraftSize = ""
)

// ParseAircraftSize accepts S, M, L or SMALL, MEDIUM, LARGE in any case.
func ParseAircraftSize(s string) AircraftSize {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "S", "SMALL":
		return SizeSmall
	case "M", "MEDIUM":
		return SizeMedium
	case "L", "LARGE":
		return SizeLarge
	default:
		return SizeUnknown
	}
}

// IsValid returns true for Small, Medium and Large.
func (s AircraftSize) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	default:
		return false
	}
}

// Name returns the long form of the size.
func (s AircraftSize) Name() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// AircraftSection is the per-section detail carried by an Aircraft.
type AircraftSection struct {
	Class     SectionClass
	Capacity  int
	Occupied  int
	UnitPrice Money
}

// Aircraft is the airframe assigned to a flight.
type Aircraft struct {
	Size          AircraftSize
	TotalCapacity int
	TotalOccupied int
	Sections      [SectionCount]AircraftSection
}

// NewAircraft builds an aircraft from the per-section arrays.
func NewAircraft(size AircraftSize, maxSeats, occupied SeatCounts, prices SeatPrices) Aircraft {
	a := Aircraft{
		Size:          size,
		TotalCapacity: maxSeats.Total(),
		TotalOccupied: occupied.Total(),
	}
	for i := 0; i < SectionCount; i++ {
		a.Sections[i] = AircraftSection{
			Class:     SectionClasses[i],
			Capacity:  maxSeats[i],
			Occupied:  occupied[i],
			UnitPrice: prices[i],
		}
	}
	return a
}

// ActiveSections returns the sections with seats installed.
func (a Aircraft) ActiveSections() []AircraftSection {
	active := make([]AircraftSection, 0, SectionCount)
	for _, s := range a.Sections {
		if s.Capacity > 0 {
			active = append(active, s)
		}
	}
	return active
}
