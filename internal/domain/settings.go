package domain

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Model settings keys.
const (
	KeyFuelCost              = "FUEL_COST"
	KeyJuniorPilotPay        = "JUNIOR_PILOT_PAY"
	KeyMidLevelPilotPay      = "MIDLEVEL_PILOT_PAY"
	KeySeniorPilotPay        = "SENIOR_PILOT_PAY"
	KeyNumberOfFlights       = "NUMBER_OF_FLIGHTS"
	KeyPreferredAircraftSize = "PREFERRED_AIRCRAFT_SIZE"
	KeySmallPlaneMaxRange    = "SMALL_PLANE_MAX_RANGE"
	KeyMediumPlaneMaxRange   = "MEDIUM_PLANE_MAX_RANGE"
	KeySmallPlaneSeatMax     = "SMALL_PLANE_SEAT_MAX_PER_SECTION"
	KeyMediumPlaneSeatMax    = "MEDIUM_PLANE_SEAT_MAX_PER_SECTION"
	KeyLargePlaneSeatMax     = "LARGE_PLANE_SEAT_MAX_PER_SECTION"
	KeySmallPlaneSeatPrice   = "SMALL_PLANE_SEAT_PRICE"
	KeyMediumPlaneSeatPrice  = "MEDIUM_PLANE_SEAT_PRICE"
	KeyLargePlaneSeatPrice   = "LARGE_PLANE_SEAT_PRICE"
)

// sectionDelimiter separates the four values of a per-section setting.
const sectionDelimiter = "|"

// SeatMaxKey returns the max-seats-per-section key for a size.
func SeatMaxKey(size AircraftSize) string {
	switch size {
	case SizeSmall:
		return KeySmallPlaneSeatMax
	case SizeMedium:
		return KeyMediumPlaneSeatMax
	default:
		return KeyLargePlaneSeatMax
	}
}

// SeatPriceKey returns the seat-price-per-section key for a size.
func SeatPriceKey(size AircraftSize) string {
	switch size {
	case SizeSmall:
		return KeySmallPlaneSeatPrice
	case SizeMedium:
		return KeyMediumPlaneSeatPrice
	default:
		return KeyLargePlaneSeatPrice
	}
}

// Settings is a read-only view of the model configuration key/value pairs.
// Accessors never substitute defaults: a missing or malformed key is a *ConfigError.
type Settings struct {
	values map[string]string
}

// NewSettings copies the given pairs. Keys are upper-cased and values trimmed.
func NewSettings(values map[string]string) Settings {
	s := Settings{values: make(map[string]string, len(values))}
	for k, v := range values {
		s.values[strings.ToUpper(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	return s
}

// With returns a copy of the settings with one key replaced.
func (s Settings) With(key, value string) Settings {
	values := make(map[string]string, len(s.values)+1)
	for k, v := range s.values {
		values[k] = v
	}
	values[key] = value
	return NewSettings(values)
}

// Get returns the raw value for a key.
func (s Settings) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns all keys in sorted order.
func (s Settings) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns a required, non-empty value.
func (s Settings) String(key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", NewConfigError(key, "is missing")
	}
	if v == "" {
		return "", NewConfigError(key, "is empty")
	}
	return v, nil
}

// Money returns a non-negative decimal amount.
func (s Settings) Money(key string) (Money, error) {
	raw, err := s.String(key)
	if err != nil {
		return Zero, err
	}
	m, err := ParseMoney(raw)
	if err != nil {
		return Zero, NewConfigError(key, fmt.Sprintf("must be a decimal number, got %q", raw))
	}
	if m.IsNegative() {
		return Zero, NewConfigError(key, fmt.Sprintf("must not be negative, got %s", raw))
	}
	return m, nil
}

// Int returns a non-negative integer.
func (s Settings) Int(key string) (int, error) {
	raw, err := s.String(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewConfigError(key, fmt.Sprintf("must be an integer, got %q", raw))
	}
	if n < 0 {
		return 0, NewConfigError(key, fmt.Sprintf("must not be negative, got %d", n))
	}
	return n, nil
}

// Float returns a positive real number.
func (s Settings) Float(key string) (float64, error) {
	raw, err := s.String(key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, NewConfigError(key, fmt.Sprintf("must be a number, got %q", raw))
	}
	if f <= 0 {
		return 0, NewConfigError(key, fmt.Sprintf("must be positive, got %v", f))
	}
	return f, nil
}

// Sections parses a pipe-delimited list of four non-negative seat counts.
func (s Settings) Sections(key string) (SeatCounts, error) {
	var out SeatCounts
	parts, err := s.sectionParts(key)
	if err != nil {
		return out, err
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return out, NewConfigError(key, fmt.Sprintf("section %d must be a non-negative integer, got %q", i+1, p))
		}
		out[i] = n
	}
	return out, nil
}

// SectionPrices parses a pipe-delimited list of four non-negative prices.
func (s Settings) SectionPrices(key string) (SeatPrices, error) {
	var out SeatPrices
	parts, err := s.sectionParts(key)
	if err != nil {
		return out, err
	}
	for i, p := range parts {
		m, err := ParseMoney(p)
		if err != nil || m.IsNegative() {
			return out, NewConfigError(key, fmt.Sprintf("section %d must be a non-negative price, got %q", i+1, p))
		}
		out[i] = m
	}
	return out, nil
}

func (s Settings) sectionParts(key string) ([]string, error) {
	raw, err := s.String(key)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(raw, sectionDelimiter)
	if len(parts) != SectionCount {
		return nil, NewConfigError(key, fmt.Sprintf("must have %d pipe-separated values, got %q", SectionCount, raw))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

// AircraftSize returns the size named by a key. The key must be present; an
// unrecognized value yields SizeUnknown without error.
func (s Settings) AircraftSize(key string) (AircraftSize, error) {
	raw, err := s.String(key)
	if err != nil {
		return SizeUnknown, err
	}
	return ParseAircraftSize(raw), nil
}

// Validate checks every key the simulation reads and reports all problems at once.
func (s Settings) Validate() error {
	errs := validation.Errors{}

	check := func(key string, parse func(string) error) {
		raw, _ := s.Get(key)
		errs[key] = validation.Validate(raw, validation.Required, validation.By(func(interface{}) error {
			return unwrapConfigReason(parse(key))
		}))
	}

	for _, key := range []string{KeyFuelCost, KeyJuniorPilotPay, KeyMidLevelPilotPay, KeySeniorPilotPay} {
		check(key, func(k string) error { _, err := s.Money(k); return err })
	}
	check(KeyNumberOfFlights, func(k string) error { _, err := s.Int(k); return err })
	check(KeyPreferredAircraftSize, func(k string) error { _, err := s.AircraftSize(k); return err })
	for _, key := range []string{KeySmallPlaneMaxRange, KeyMediumPlaneMaxRange} {
		check(key, func(k string) error { _, err := s.Float(k); return err })
	}
	for _, size := range []AircraftSize{SizeSmall, SizeMedium, SizeLarge} {
		check(SeatMaxKey(size), func(k string) error { _, err := s.Sections(k); return err })
		check(SeatPriceKey(size), func(k string) error { _, err := s.SectionPrices(k); return err })
	}

	if err := errs.Filter(); err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return nil
}

// unwrapConfigReason strips the key prefix so validation.Errors does not repeat it.
func unwrapConfigReason(err error) error {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return errors.New(cfgErr.Reason)
	}
	return err
}
