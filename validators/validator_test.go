package validators

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string `validate:"required"`
	Email   string `validate:"omitempty,email"`
	Comment string `validate:"notblank"`
	Kind    string `validate:"omitempty,oneof=photo video"`
}

func TestValidate(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		in      sample
		message string
	}{
		{"Valid", sample{Name: "a", Comment: "hi"}, ""},
		{"Missing name", sample{Comment: "hi"}, "Name is required"},
		{"Bad email", sample{Name: "a", Email: "nope", Comment: "hi"}, "Email must be a valid email"},
		{"Blank comment", sample{Name: "a", Comment: "   "}, "Comment is required"},
		{"Bad kind", sample{Name: "a", Comment: "hi", Kind: "gif"}, "Kind must be one of: photo video"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.in)
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			he, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Equal(t, tt.message, he.Message)
		})
	}
}
