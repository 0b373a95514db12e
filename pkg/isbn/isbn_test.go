package isbn_test

import (
	"testing"

	"github.com/Astemirdum/lending-service/pkg/isbn"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"ok hyphenated", "978-0-13-419044-0", true},
		{"ok plain", "9780306406157", true},
		{"bad check digit", "9780306406158", false},
		{"too short", "978030640615", false},
		{"too long", "97803064061577", false},
		{"letters", "97803064o6157", false},
		{"letter check digit", "978030640615x", false},
		{"empty", "", false},
		{"hyphens only", "-------------", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, isbn.Validate(tt.candidate))
		})
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	got, err := isbn.Generate("978013419044")
	require.NoError(t, err)
	require.Equal(t, "978-01-3419044-0", got)

	_, err = isbn.Generate("12345")
	require.Error(t, err)
	_, err = isbn.Generate("12345678901a")
	require.Error(t, err)
}

func TestGenerateValidateRoundTrip(t *testing.T) {
	t.Parallel()
	bodies := []string{
		"978030640615",
		"978013419044",
		"978000000000",
		"979123456789",
		"978999999999",
	}
	for _, body := range bodies {
		got, err := isbn.Generate(body)
		require.NoError(t, err)
		require.True(t, isbn.Validate(got), "generated %s must validate", got)
	}
}

func TestValidateSingleDigitMutation(t *testing.T) {
	t.Parallel()
	const valid = "9780306406157"
	require.True(t, isbn.Validate(valid))
	for i := 0; i < len(valid); i++ {
		for d := byte('0'); d <= '9'; d++ {
			if d == valid[i] {
				continue
			}
			mutated := valid[:i] + string(d) + valid[i+1:]
			// a single-digit change shifts the weighted sum by a nonzero
			// amount mod 10 (weights are 1 and 3), so the checksum breaks
			require.False(t, isbn.Validate(mutated), "mutation %s", mutated)
		}
	}
}
