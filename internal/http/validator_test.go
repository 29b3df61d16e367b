package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_LendingDate(t *testing.T) {
	type payload struct {
		ReturnDate string `json:"return_date" validate:"required,lendingdate"`
	}

	t.Run("today is accepted", func(t *testing.T) {
		today := time.Now().UTC().Format(dateLayout)
		assert.Nil(t, ValidateStruct(payload{ReturnDate: today}))
	})

	t.Run("future is accepted", func(t *testing.T) {
		assert.Nil(t, ValidateStruct(payload{ReturnDate: futureDate(14)}))
	})

	for name, raw := range map[string]string{
		"past date":    "2020-01-01",
		"wrong layout": "01/02/2025",
		"not a date":   "soon",
		"empty":        "",
	} {
		t.Run(name+" is rejected", func(t *testing.T) {
			errs := ValidateStruct(payload{ReturnDate: raw})
			require.Len(t, errs, 1)
			assert.Equal(t, "returnDate", errs[0].Field)
		})
	}
}

func TestValidateStruct_Messages(t *testing.T) {
	errs := ValidateStruct(BorrowRequest{Quantity: 0})
	require.Len(t, errs, 4)

	byField := map[string]string{}
	for _, e := range errs {
		byField[e.Field] = e.Message
	}
	assert.Contains(t, byField["username"], "required")
	assert.Contains(t, byField["bookID"], "required")
	assert.Contains(t, byField["returnDate"], "required")
	assert.Contains(t, byField["quantity"], "required")
}
