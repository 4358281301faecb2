package flight

import (
	"fmt"
	"strings"
	"time"
)

// layout for the "ddMon" departure date, eg "05May"
const dateLayout = "02Jan"

// CabinClass selects which seat pool a booking draws from
type CabinClass string

const (
	CabinFirst CabinClass = "first"
	CabinCoach CabinClass = "coach"
)

// Flight is one scheduled flight record. The seat counters are plain
// integers mutated by Book and CancelBooking, bounds checking is the
// only arithmetic involved.
type Flight struct {
	Origin      string
	Destination string
	Date        string // departure date as "ddMon", eg "05May"
	Time        string // departure time as "hh:mm", eg "09:30"
	Number      string
	SeatsFirst  int
	SeatsCoach  int
	Duration    time.Duration
	Fare        float64
}

// NewFlight builds a flight record, parsing the duration from its
// "XhYm" form, eg "2h30m"
func NewFlight(origin string, destination string, date string, departure string, number string, seatsFirst int, seatsCoach int, duration string, fare float64) (*Flight, error) {
	d, err := time.ParseDuration(duration)
	if err != nil {
		return nil, fmt.Errorf("flight %s: bad duration %q: %w", number, duration, err)
	}

	return &Flight{
		Origin:      origin,
		Destination: destination,
		Date:        date,
		Time:        departure,
		Number:      number,
		SeatsFirst:  seatsFirst,
		SeatsCoach:  seatsCoach,
		Duration:    d,
		Fare:        fare,
	}, nil
}

// Key returns the ordered tuple this flight is indexed under
func (i *Flight) Key() FlightKey {
	return FlightKey{
		Origin:      i.Origin,
		Destination: i.Destination,
		Date:        i.Date,
		Time:        i.Time,
	}
}

// SeatsAvailable returns the free seat count for [class], zero for an
// unknown class
func (i *Flight) SeatsAvailable(class CabinClass) int {
	switch class {
	case CabinFirst:
		return i.SeatsFirst
	case CabinCoach:
		return i.SeatsCoach
	default:
		return 0
	}
}

// Book takes one seat from the pool for [class]. Returns false when the
// pool is empty or the class is unknown.
func (i *Flight) Book(class CabinClass) bool {
	switch {
	case class == CabinFirst && i.SeatsFirst > 0:
		i.SeatsFirst--
		return true
	case class == CabinCoach && i.SeatsCoach > 0:
		i.SeatsCoach--
		return true
	default:
		return false
	}
}

// CancelBooking returns one seat to the pool for [class]
func (i *Flight) CancelBooking(class CabinClass) bool {
	switch class {
	case CabinFirst:
		i.SeatsFirst++
		return true
	case CabinCoach:
		i.SeatsCoach++
		return true
	default:
		return false
	}
}

func (i *Flight) String() string {
	return fmt.Sprintf("%s to %s on %s at %s", i.Origin, i.Destination, i.Date, i.Time)
}

// FlightKey is the ordered tuple (origin, destination, date, time)
// flights are indexed by
type FlightKey struct {
	Origin      string
	Destination string
	Date        string
	Time        string
}

// Compare orders keys by origin, destination, calendar date and
// departure time, in that precedence. Dates are compared as calendar
// days, not lexically, so "09May" sorts after "30Apr". A key holding a
// date that does not parse breaks the total order precondition, such
// keys fall back to a lexical date comparison.
func (k FlightKey) Compare(other FlightKey) int {
	if c := strings.Compare(k.Origin, other.Origin); c != 0 {
		return c
	}

	if c := strings.Compare(k.Destination, other.Destination); c != 0 {
		return c
	}

	if k.Date != other.Date {
		a, errA := time.Parse(dateLayout, k.Date)
		b, errB := time.Parse(dateLayout, other.Date)
		if errA != nil || errB != nil {
			return strings.Compare(k.Date, other.Date)
		}

		if a.Before(b) {
			return -1
		}
		return 1
	}

	return strings.Compare(k.Time, other.Time)
}

func (k FlightKey) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", k.Origin, k.Destination, k.Date, k.Time)
}

// CompareFlightKeys is the Comparator used by the flight index
func CompareFlightKeys(a FlightKey, b FlightKey) int {
	return a.Compare(b)
}
