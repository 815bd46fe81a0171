package models

import "testing"

func TestUserDisplayName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		user User
		want string
	}{
		{name: "full name", user: User{FirstName: "Anna", LastName: "Lee", Email: "anna@example.com"}, want: "Anna Lee"},
		{name: "first name only", user: User{FirstName: "Anna", Email: "anna@example.com"}, want: "Anna"},
		{name: "falls back to email", user: User{Email: "anna@example.com"}, want: "anna@example.com"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := testCase.user.DisplayName(); got != testCase.want {
				t.Errorf("display name = %q, want %q", got, testCase.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	if got := NormalizeEmail("  Anna@Example.COM "); got != "anna@example.com" {
		t.Errorf("normalized email = %q, want anna@example.com", got)
	}
}

func TestIsKnownMood(t *testing.T) {
	t.Parallel()

	if !IsKnownMood(MoodNone) {
		t.Error("empty mood should be accepted as not logged")
	}
	if !IsKnownMood(MoodHappy) {
		t.Error("catalog mood should be accepted")
	}
	if IsKnownMood("grumpy") {
		t.Error("unknown mood should be rejected")
	}
}
