package pricing

import (
	"errors"
	"testing"

	"agencyops/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Price(t *testing.T) {
	cases := []struct {
		name   string
		kind   entities.ServiceKind
		hours  int
		addOns []string
		want   float64
	}{
		{name: "build sprint two hours", kind: entities.ServiceKindBuildSprint, hours: 2, want: 150},
		{name: "build sprint max hours", kind: entities.ServiceKindBuildSprint, hours: 80, want: 6000},
		{name: "app review base", kind: entities.ServiceKindAppReview, want: 299},
		{name: "app review with add-ons", kind: entities.ServiceKindAppReview, addOns: []string{"video_walkthrough", "priority"}, want: 447},
		{name: "duplicate add-on charged once", kind: entities.ServiceKindBaseCMS, addOns: []string{"blog", "blog"}, want: 1198},
		{name: "fixed price ignores hours", kind: entities.ServiceKindAppFoundation, hours: 10, want: 2499},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Default.Price(tc.kind, tc.hours, tc.addOns)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCatalog_PriceErrors(t *testing.T) {
	_, err := Default.Price(entities.ServiceKindBuildSprint, 0, nil)
	assert.True(t, errors.Is(err, ErrInvalidHours))

	_, err = Default.Price(entities.ServiceKindBuildSprint, 81, nil)
	assert.True(t, errors.Is(err, ErrInvalidHours))

	_, err = Default.Price(entities.ServiceKindAppReview, 0, []string{"free_lunch"})
	assert.True(t, errors.Is(err, ErrUnknownAddOn))

	_, err = Default.Price(entities.ServiceKind("consulting"), 0, nil)
	assert.True(t, errors.Is(err, ErrUnknownService))
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(15000), ToMinorUnits(150))
	assert.Equal(t, int64(29999), ToMinorUnits(299.99))
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
	assert.Equal(t, 19.99, FromMinorUnits(1999))
}
