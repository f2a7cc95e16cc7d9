package catalog

import (
	"strings"
	"testing"

	"github.com/badgekit/badges/pkg/badge"
)

func TestSaucelabsAuthToken(t *testing.T) {
	tests := []struct {
		name      string
		env       badge.Env
		opts      SaucelabsOptions
		wantImage string
	}{
		{
			name:      "ExplicitToken",
			env:       badge.MapEnv(nil),
			opts:      SaucelabsOptions{Username: "u", AuthToken: "tok"},
			wantImage: "https://saucelabs.com/browser-matrix/u.svg?auth=tok",
		},
		{
			name:      "EnvFallback",
			env:       badge.MapEnv(map[string]string{"SAUCELABS_AUTH_TOKEN": "envtok"}),
			opts:      SaucelabsOptions{Username: "u"},
			wantImage: "https://saucelabs.com/browser-matrix/u.svg?auth=envtok",
		},
		{
			name:      "ExplicitWinsOverEnv",
			env:       badge.MapEnv(map[string]string{"SAUCELABS_AUTH_TOKEN": "envtok"}),
			opts:      SaucelabsOptions{Username: "u", AuthToken: "tok"},
			wantImage: "https://saucelabs.com/browser-matrix/u.svg?auth=tok",
		},
		{
			name:      "NoToken",
			env:       badge.MapEnv(nil),
			opts:      SaucelabsOptions{Username: "u"},
			wantImage: "https://saucelabs.com/browser-matrix/u.svg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := New(WithEnv(tt.env))
			got, err := reg.Saucelabs(tt.opts)
			if err != nil {
				t.Fatalf("Saucelabs() error = %v", err)
			}
			if !strings.Contains(got, `src="`+tt.wantImage+`"`) {
				t.Errorf("Saucelabs() = %q, want image %q", got, tt.wantImage)
			}
		})
	}
}

func TestSaucelabsBMIsSameBadge(t *testing.T) {
	// Two registry names, one behavior; the upstream catalog shipped the
	// duplicate and downstream callers rely on both names.
	reg := New(WithEnv(badge.MapEnv(nil)))
	opts := SaucelabsOptions{Username: "u", AuthToken: "tok"}

	plain, err := reg.Saucelabs(opts)
	if err != nil {
		t.Fatalf("Saucelabs() error = %v", err)
	}
	matrix, err := reg.SaucelabsBM(opts)
	if err != nil {
		t.Fatalf("SaucelabsBM() error = %v", err)
	}
	if plain != matrix {
		t.Errorf("Saucelabs and SaucelabsBM differ: %q vs %q", plain, matrix)
	}
}

func TestCodeshipValidationOrder(t *testing.T) {
	reg := New()

	_, err := reg.Codeship(CodeshipOptions{})
	var mfe *badge.MissingFieldError
	if !asMissingField(t, err, &mfe) || mfe.Field != "codeshipProjectUUID" {
		t.Fatalf("Codeship(empty) error = %v, want missing codeshipProjectUUID first", err)
	}

	_, err = reg.Codeship(CodeshipOptions{ProjectUUID: "uuid"})
	if !asMissingField(t, err, &mfe) || mfe.Field != "codeshipProjectID" {
		t.Fatalf("Codeship(uuid only) error = %v, want missing codeshipProjectID", err)
	}

	got, err := reg.Codeship(CodeshipOptions{ProjectUUID: "uuid", ProjectID: "42"})
	if err != nil {
		t.Fatalf("Codeship() error = %v", err)
	}
	if !strings.Contains(got, "img.shields.io/codeship/uuid.svg") ||
		!strings.Contains(got, "codeship.io/projects/42") {
		t.Errorf("Codeship() = %q", got)
	}
}

func TestWaffleLabelDefault(t *testing.T) {
	reg := New()

	got, err := reg.Waffle(WaffleOptions{Slug: "a/b"})
	if err != nil {
		t.Fatalf("Waffle() error = %v", err)
	}
	if !strings.Contains(got, "badge.waffle.io/a/b.png?label=ready") {
		t.Errorf("Waffle() = %q, want default ready label", got)
	}

	got, err = reg.Waffle(WaffleOptions{Slug: "a/b", Label: "in progress"})
	if err != nil {
		t.Fatalf("Waffle() error = %v", err)
	}
	if !strings.Contains(got, "label=in progress") {
		t.Errorf("Waffle() = %q, want custom label", got)
	}
}

func TestRepoBadgesShareSlugValidation(t *testing.T) {
	reg := New()
	calls := []struct {
		name string
		fn   func(RepoOptions) (string, error)
	}{
		{"TravisCI", reg.TravisCI},
		{"Coveralls", reg.Coveralls},
		{"CodeClimate", reg.CodeClimate},
		{"BitHound", reg.BitHound},
		{"DavidDM", reg.DavidDM},
		{"DavidDMDev", reg.DavidDMDev},
	}
	for _, c := range calls {
		var mfe *badge.MissingFieldError
		_, err := c.fn(RepoOptions{})
		if !asMissingField(t, err, &mfe) || mfe.Field != "githubSlug" {
			t.Errorf("%s(empty) error = %v, want missing githubSlug", c.name, err)
		}
	}
}
