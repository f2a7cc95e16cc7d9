package catalog

import (
	"strings"
	"testing"

	"github.com/badgekit/badges/pkg/badge"
)

func TestNPMVersion(t *testing.T) {
	reg := New()
	got, err := reg.NPMVersion(NPMOptions{PackageName: "foo"})
	if err != nil {
		t.Fatalf("NPMVersion() error = %v", err)
	}
	want := `<a href="https://npmjs.org/package/foo" title="View this project on NPM">` +
		`<img src="https://img.shields.io/npm/v/foo.svg" alt="NPM version" /></a>`
	if got != want {
		t.Errorf("NPMVersion() = %q, want %q", got, want)
	}
}

func TestNPMDownloads(t *testing.T) {
	reg := New()
	got, err := reg.NPMDownloads(NPMOptions{PackageName: "foo"})
	if err != nil {
		t.Fatalf("NPMDownloads() error = %v", err)
	}
	if !strings.Contains(got, "https://img.shields.io/npm/dm/foo.svg") {
		t.Errorf("NPMDownloads() = %q, want monthly downloads image", got)
	}
}

func TestDavidDM(t *testing.T) {
	reg := New()

	got, err := reg.DavidDM(RepoOptions{Slug: "bevry/badges"})
	if err != nil {
		t.Fatalf("DavidDM() error = %v", err)
	}
	if !strings.Contains(got, `src="https://img.shields.io/david/bevry/badges.svg"`) ||
		!strings.Contains(got, `href="https://david-dm.org/bevry/badges"`) {
		t.Errorf("DavidDM() = %q", got)
	}

	got, err = reg.DavidDMDev(RepoOptions{Slug: "bevry/badges"})
	if err != nil {
		t.Fatalf("DavidDMDev() error = %v", err)
	}
	if !strings.Contains(got, "david/dev/bevry/badges.svg") ||
		!strings.Contains(got, "#info=devDependencies") {
		t.Errorf("DavidDMDev() = %q", got)
	}
}

func TestNodeico(t *testing.T) {
	reg := New()

	tests := []struct {
		name      string
		opts      NodeicoOptions
		wantImage string
	}{
		{
			name:      "NoQuery",
			opts:      NodeicoOptions{PackageName: "foo"},
			wantImage: "https://nodei.co/npm/foo.png",
		},
		{
			name: "OrderedParams",
			opts: NodeicoOptions{
				PackageName: "foo",
				Query:       badge.QueryParams(badge.Param{Key: "a", Value: "1"}, badge.Param{Key: "b", Value: "2"}),
			},
			wantImage: "https://nodei.co/npm/foo.png?a=1&b=2",
		},
		{
			name: "RawQuery",
			opts: NodeicoOptions{
				PackageName: "foo",
				Query:       badge.RawQuery("downloads=true&compact=true"),
			},
			wantImage: "https://nodei.co/npm/foo.png?downloads=true&compact=true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Nodeico(tt.opts)
			if err != nil {
				t.Fatalf("Nodeico() error = %v", err)
			}
			if !strings.Contains(got, `src="`+tt.wantImage+`"`) {
				t.Errorf("Nodeico() = %q, want image %q", got, tt.wantImage)
			}
		})
	}
}

func TestNodeicoQueryTypeDispatch(t *testing.T) {
	reg := New()

	// A literal query string and ordered params are both accepted.
	out, err := reg.Render("nodeico", Values{
		"npmPackageName":     "foo",
		"nodeicoQueryString": "mini=true",
	})
	if err != nil {
		t.Fatalf("Render(nodeico, string) error = %v", err)
	}
	if !strings.Contains(out, "foo.png?mini=true") {
		t.Errorf("Render(nodeico, string) = %q", out)
	}

	out, err = reg.Render("nodeico", Values{
		"npmPackageName":     "foo",
		"nodeicoQueryString": []badge.Param{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}},
	})
	if err != nil {
		t.Fatalf("Render(nodeico, params) error = %v", err)
	}
	if !strings.Contains(out, "foo.png?a=1&b=2") {
		t.Errorf("Render(nodeico, params) = %q", out)
	}

	// Anything else is a type error; a map cannot preserve insertion order.
	_, err = reg.Render("nodeico", Values{
		"npmPackageName":     "foo",
		"nodeicoQueryString": map[string]string{"a": "1"},
	})
	if !badge.IsInvalidType(err) {
		t.Errorf("Render(nodeico, map) error = %v, want InvalidTypeError", err)
	}
}
