package phone_test

import (
	"errors"
	"testing"

	"github.com/jeffleon2/draftea-mpesa-service/internal/models"
	"github.com/jeffleon2/draftea-mpesa-service/internal/phone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_AcceptedFormatsConverge(t *testing.T) {
	inputs := []string{
		"0712345678",
		"254712345678",
		"+254712345678",
		"+254 712 345 678",
		"712345678",
		"(0712) 345-678",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got, err := phone.Normalize(in)

			require.NoError(t, err)
			assert.Equal(t, "254712345678", got)
		})
	}
}

func TestNormalize_AirtelStyleOnePrefix(t *testing.T) {
	got, err := phone.Normalize("0110123456")

	require.NoError(t, err)
	assert.Equal(t, "254110123456", got)
}

func TestNormalize_Rejects(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"0812345678",
		"07123",
		"2547123456789",
		"255712345678",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got, err := phone.Normalize(in)

			assert.Empty(t, got)
			var vErr *models.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, "phone", vErr.Field)
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, phone.IsValid("0712345678"))
	assert.False(t, phone.IsValid("12345"))
}
