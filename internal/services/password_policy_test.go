package services

import (
	"errors"
	"testing"
)

func TestValidatePasswordStrength(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		password string
		wantWeak bool
	}{
		{name: "strong password", password: "Sunrise42", wantWeak: false},
		{name: "too short", password: "Ab1", wantWeak: true},
		{name: "no uppercase", password: "sunrise42", wantWeak: true},
		{name: "no lowercase", password: "SUNRISE42", wantWeak: true},
		{name: "no digit", password: "SunriseDay", wantWeak: true},
		{name: "empty", password: "", wantWeak: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := ValidatePasswordStrength(testCase.password)
			if testCase.wantWeak && !errors.Is(err, ErrWeakPassword) {
				t.Errorf("password %q: err = %v, want ErrWeakPassword", testCase.password, err)
			}
			if !testCase.wantWeak && err != nil {
				t.Errorf("password %q: unexpected error %v", testCase.password, err)
			}
		})
	}
}
