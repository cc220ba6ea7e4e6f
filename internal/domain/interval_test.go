package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetCare-BookingService/pkg/types"
)

func TestNewInterval(t *testing.T) {
	i, err := NewInterval("10:30", 45)
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: 630, End: 675}, i)

	// Интервал может выходить за полночь
	i, err = NewInterval("23:30", 60)
	require.NoError(t, err)
	assert.Equal(t, 24*60+30, i.End)

	_, err = NewInterval("10:00", 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewInterval("bad", 30)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{name: "identical", a: Interval{600, 660}, b: Interval{600, 660}, want: true},
		{name: "partial overlap", a: Interval{600, 660}, b: Interval{630, 690}, want: true},
		{name: "contained", a: Interval{600, 720}, b: Interval{630, 640}, want: true},
		{name: "touching end to start", a: Interval{600, 660}, b: Interval{660, 720}, want: false},
		{name: "touching start to end", a: Interval{660, 720}, b: Interval{600, 660}, want: false},
		{name: "disjoint", a: Interval{600, 630}, b: Interval{700, 730}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestFindOverlap(t *testing.T) {
	existing := []*Booking{
		{ID: "a", StartTime: "10:00", DurationMinutes: 60},
		{ID: "broken", StartTime: types.TimeString("xx"), DurationMinutes: 60},
		{ID: "b", StartTime: "13:00", DurationMinutes: 30},
	}

	candidate, err := NewInterval("10:30", 60)
	require.NoError(t, err)
	found := FindOverlap(candidate, existing)
	require.NotNil(t, found)
	assert.Equal(t, "a", found.ID)

	candidate, err = NewInterval("11:00", 120)
	require.NoError(t, err)
	assert.Nil(t, FindOverlap(candidate, existing))
}
