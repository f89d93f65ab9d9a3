package identifier

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"the user is on the login page", "TheUserIsOnTheLoginPage"},
		{"the user enters valid credentials", "TheUserEntersValidCredentials"},
		{"user clicks 'Save'", "UserClicksSave"},
		{"response code is 404", "ResponseCodeIs404"},
		{"  padded   text  ", "PaddedText"},
		{"über-fast füßgänger path", "ÜberFastFüßgängerPath"},
		{"42 items remain", "Step42ItemsRemain"},
		{"", "UnnamedStep"},
		{"!!! ---", "UnnamedStep"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			require.Equal(t, tt.expected, Derive(tt.text))
		})
	}
}

func TestDerive_IsDeterministic(t *testing.T) {
	first := Derive("the user enters valid credentials")
	for i := 0; i < 100; i++ {
		require.Equal(t, first, Derive("the user enters valid credentials"))
	}
}

func TestResolveCollisions(t *testing.T) {
	t.Run("unique candidates pass through", func(t *testing.T) {
		resolved := ResolveCollisions([]string{"A", "B", "C"})
		require.Equal(t, []string{"A", "B", "C"}, resolved)
	})

	t.Run("later colliders get numeric suffixes in first-occurrence order", func(t *testing.T) {
		resolved := ResolveCollisions([]string{"UserLogsIn", "UserLogsIn", "UserLogsIn"})
		require.Equal(t, []string{"UserLogsIn", "UserLogsIn2", "UserLogsIn3"}, resolved)
	})

	t.Run("suffixed name never collides with a literal candidate", func(t *testing.T) {
		resolved := ResolveCollisions([]string{"Step2", "Step", "Step"})
		require.Equal(t, []string{"Step2", "Step", "Step3"}, resolved)

		seen := make(map[string]struct{})
		for _, name := range resolved {
			_, dup := seen[name]
			require.False(t, dup, "duplicate resolved name %s", name)
			seen[name] = struct{}{}
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		require.Empty(t, ResolveCollisions(nil))
	})
}
