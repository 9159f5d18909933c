package validatex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/alertaverde/internal/common"
)

type sample struct {
	Email string  `json:"email" validate:"required,email"`
	Name  string  `json:"name" validate:"required,max=5"`
	Area  float64 `json:"area" validate:"gt=0"`
	Date  string  `json:"plantingDate" validate:"required,datetime=2006-01-02"`
}

func TestStruct(t *testing.T) {
	valid := sample{Email: "a@b.io", Name: "corn", Area: 1.5, Date: "2024-03-01"}

	tests := []struct {
		name      string
		mutate    func(*sample)
		wantField string
		wantMsg   string
	}{
		{"valid", func(*sample) {}, "", ""},
		{"missing email", func(s *sample) { s.Email = "" }, "email", "email is required"},
		{"bad email", func(s *sample) { s.Email = "nope" }, "email", "email must be a valid e-mail address"},
		{"long name", func(s *sample) { s.Name = "abcdefg" }, "name", "name must be at most 5 characters"},
		{"zero area", func(s *sample) { s.Area = 0 }, "area", "area must be greater than 0"},
		{"bad date", func(s *sample) { s.Date = "01/03/2024" }, "plantingDate", "plantingDate must be a date in YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)

			err := Struct(s)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrorValidation))

			var appErr *common.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantField, appErr.Field)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("farmer@example.com"))
	assert.False(t, Email("farmer"))
	assert.False(t, Email(""))
}

func TestStruct_MaxBytesCountsBytes(t *testing.T) {
	type secret struct {
		Password string `json:"password" validate:"maxbytes=8"`
	}

	require.NoError(t, Struct(secret{Password: "abcdefgh"}))
	require.NoError(t, Struct(secret{Password: "éééé"}))

	err := Struct(secret{Password: "ééééé"})
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Equal(t, "password must be at most 8 bytes", err.Error())
}
