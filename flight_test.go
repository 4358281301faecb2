package flight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlightParsesDuration(t *testing.T) {
	f, err := NewFlight("LAX", "SFO", "09May", "14:45", "UA789", 8, 120, "2h30m", 199.0)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour+30*time.Minute, f.Duration)
	assert.Equal(t, "LAX to SFO on 09May at 14:45", f.String())
}

func TestNewFlightRejectsBadDuration(t *testing.T) {
	_, err := NewFlight("LAX", "SFO", "09May", "14:45", "UA789", 8, 120, "garbage", 199.0)
	assert.Error(t, err)
}

func TestSeatBookingArithmetic(t *testing.T) {
	f, err := NewFlight("LAX", "SFO", "09May", "14:45", "UA789", 1, 0, "1h15m", 99.0)
	require.NoError(t, err)

	assert.Equal(t, 1, f.SeatsAvailable(CabinFirst))
	assert.Equal(t, 0, f.SeatsAvailable(CabinCoach))
	assert.Equal(t, 0, f.SeatsAvailable(CabinClass("premium")))

	// first class has one seat, the second booking must fail
	assert.True(t, f.Book(CabinFirst))
	assert.False(t, f.Book(CabinFirst))
	assert.Equal(t, 0, f.SeatsAvailable(CabinFirst))

	// coach is already empty
	assert.False(t, f.Book(CabinCoach))

	assert.True(t, f.CancelBooking(CabinFirst))
	assert.Equal(t, 1, f.SeatsAvailable(CabinFirst))

	assert.False(t, f.Book(CabinClass("premium")))
	assert.False(t, f.CancelBooking(CabinClass("premium")))
}

func TestFlightKeyOrdering(t *testing.T) {
	base := FlightKey{Origin: "LAX", Destination: "SFO", Date: "09May", Time: "14:45"}

	cases := []struct {
		name  string
		other FlightKey
		want  int
	}{
		{"equal", FlightKey{"LAX", "SFO", "09May", "14:45"}, 0},
		{"origin dominates", FlightKey{"ORD", "AAA", "01Jan", "00:00"}, -1},
		{"destination breaks origin tie", FlightKey{"LAX", "SJC", "01Jan", "00:00"}, -1},
		{"earlier time on same day", FlightKey{"LAX", "SFO", "09May", "09:30"}, 1},
		{"later time on same day", FlightKey{"LAX", "SFO", "09May", "18:00"}, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := base.Compare(tc.other)
			switch {
			case tc.want < 0:
				assert.Negative(t, got)
			case tc.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestFlightKeyDateIsCalendarOrdered(t *testing.T) {
	apr := FlightKey{Origin: "LAX", Destination: "SFO", Date: "30Apr", Time: "14:45"}
	may := FlightKey{Origin: "LAX", Destination: "SFO", Date: "09May", Time: "14:45"}

	// lexically "09May" < "30Apr", the calendar order is the reverse
	assert.Negative(t, apr.Compare(may))
	assert.Positive(t, may.Compare(apr))
}

func TestFlightKeyIsFlightIndexKey(t *testing.T) {
	f, err := NewFlight("LAX", "SFO", "09May", "14:45", "UA789", 8, 120, "2h30m", 199.0)
	require.NoError(t, err)

	assert.Equal(t, FlightKey{Origin: "LAX", Destination: "SFO", Date: "09May", Time: "14:45"}, f.Key())
	assert.Equal(t, "LAX/SFO/09May/14:45", f.Key().String())
}
