package badge

import (
	"fmt"
	"testing"
)

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		missing     bool
		invalidSlug bool
		invalidType bool
	}{
		{
			name:    "MissingField",
			err:     &MissingFieldError{Field: "npmPackageName"},
			missing: true,
		},
		{
			name:        "InvalidSlug",
			err:         &InvalidSlugError{Field: "githubSlug", Slug: "ab"},
			invalidSlug: true,
		},
		{
			name:        "InvalidType",
			err:         &InvalidTypeError{Field: "nodeicoQueryString", Want: "string or []badge.Param"},
			invalidType: true,
		},
		{
			name:    "WrappedMissingField",
			err:     fmt.Errorf("render npmversion: %w", &MissingFieldError{Field: "npmPackageName"}),
			missing: true,
		},
		{
			name: "Unrelated",
			err:  fmt.Errorf("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMissingField(tt.err); got != tt.missing {
				t.Errorf("IsMissingField() = %v, want %v", got, tt.missing)
			}
			if got := IsInvalidSlug(tt.err); got != tt.invalidSlug {
				t.Errorf("IsInvalidSlug() = %v, want %v", got, tt.invalidSlug)
			}
			if got := IsInvalidType(tt.err); got != tt.invalidType {
				t.Errorf("IsInvalidType() = %v, want %v", got, tt.invalidType)
			}
		})
	}
}

func TestErrorMessagesNameTheField(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&MissingFieldError{Field: "paypalUsername"}, `missing required field "paypalUsername"`},
		{&InvalidSlugError{Field: "githubSlug", Slug: "ab"}, `field "githubSlug": malformed slug "ab" (want owner/repository)`},
		{&InvalidTypeError{Field: "nodeicoQueryString", Want: "string"}, `field "nodeicoQueryString": unsupported value type (want string)`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestRequired(t *testing.T) {
	if err := Required("left", "build"); err != nil {
		t.Errorf("Required() = %v, want nil", err)
	}

	err := Required("left", "")
	if !IsMissingField(err) {
		t.Fatalf("Required() = %v, want MissingFieldError", err)
	}
}
