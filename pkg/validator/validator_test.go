package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateRegister_Valid(t *testing.T) {
	t.Parallel()

	errs := ValidateRegister("robert", "Robert Crown", "robert@example.com", "longenough")
	require.False(t, errs.HasErrors())
}

func TestValidateRegister_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		fullname string
		email    string
		password string
		field    string
	}{
		{"empty username", "", "Robert Crown", "robert@example.com", "longenough", "username"},
		{"short username", "ab", "Robert Crown", "robert@example.com", "longenough", "username"},
		{"username with spaces", "rob ert", "Robert Crown", "robert@example.com", "longenough", "username"},
		{"long username", strings.Repeat("a", 51), "Robert Crown", "robert@example.com", "longenough", "username"},
		{"empty fullname", "robert", "", "robert@example.com", "longenough", "fullname"},
		{"empty email", "robert", "Robert Crown", "", "longenough", "email"},
		{"bad email", "robert", "Robert Crown", "not-an-email", "longenough", "email"},
		{"short password", "robert", "Robert Crown", "robert@example.com", "short", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			errs := ValidateRegister(tt.username, tt.fullname, tt.email, tt.password)
			require.True(t, errs.HasErrors())
			require.Contains(t, errs, tt.field)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()

	require.False(t, ValidateLogin("robert", "pw").HasErrors())

	errs := ValidateLogin("  ", "")
	require.Contains(t, errs, "username")
	require.Contains(t, errs, "password")
}

func TestValidateDiary(t *testing.T) {
	t.Parallel()

	require.False(t, ValidateDiary("Crown").HasErrors())
	require.Contains(t, ValidateDiary("   "), "name")
	require.Contains(t, ValidateDiary(strings.Repeat("a", 101)), "name")
}

func TestValidateEntry(t *testing.T) {
	t.Parallel()

	require.False(t, ValidateEntry("first visit").HasErrors())
	require.Contains(t, ValidateEntry(""), "title")
	require.Contains(t, ValidateEntry(strings.Repeat("a", 201)), "title")
}
