package events

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runFilterFromQuery(t *testing.T, target string) (Filter, error) {
	t.Helper()

	var filter Filter
	var parseErr error

	app := fiber.New()
	app.Get("/events", func(c *fiber.Ctx) error {
		filter, parseErr = filterFromQuery(c)
		return nil
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	return filter, parseErr
}

func TestFilterFromQueryAllParams(t *testing.T) {
	filter, err := runFilterFromQuery(t,
		"/events?event_type=UPLOAD_CSV&description=archivo&date_from=2024-01-02&date_to=2024-02-01T10:00:00Z")
	require.NoError(t, err)

	assert.Equal(t, "UPLOAD_CSV", filter.EventType)
	assert.Equal(t, "archivo", filter.Description)
	require.NotNil(t, filter.DateFrom)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), *filter.DateFrom)
	require.NotNil(t, filter.DateTo)
	assert.Equal(t, time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC), *filter.DateTo)
}

func TestFilterFromQueryEmpty(t *testing.T) {
	filter, err := runFilterFromQuery(t, "/events")
	require.NoError(t, err)

	assert.Equal(t, Filter{}, filter)
	assert.Nil(t, filter.DateFrom)
	assert.Nil(t, filter.DateTo)
}

func TestFilterFromQueryBadDate(t *testing.T) {
	_, err := runFilterFromQuery(t, "/events?date_from=02-01-2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date_from")
}
