package badge

import (
	"errors"
	"testing"
)

func TestDescriptorHTML(t *testing.T) {
	tests := []struct {
		name string
		d    Descriptor
		want string
	}{
		{
			name: "ImageOnly",
			d:    Descriptor{Image: "x.png"},
			want: `<img src="x.png" />`,
		},
		{
			name: "ImageWithAlt",
			d:    Descriptor{Image: "x.png", Alt: "A"},
			want: `<img src="x.png" alt="A" />`,
		},
		{
			name: "Linked",
			d:    Descriptor{Image: "x.png", URL: "http://y"},
			want: `<a href="http://y"><img src="x.png" /></a>`,
		},
		{
			name: "LinkedWithTitle",
			d:    Descriptor{Image: "x.png", Alt: "A", URL: "http://y", Title: "T"},
			want: `<a href="http://y" title="T"><img src="x.png" alt="A" /></a>`,
		},
		{
			name: "TitleIgnoredWithoutURL",
			d:    Descriptor{Image: "x.png", Title: "T"},
			want: `<img src="x.png" />`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.d.HTML()
			if err != nil {
				t.Fatalf("HTML() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("HTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescriptorHTMLEscapesQuotes(t *testing.T) {
	tests := []struct {
		name string
		d    Descriptor
		want string
	}{
		{
			name: "QuoteInImage",
			d:    Descriptor{Image: `x.png" onerror="alert(1)`},
			want: `<img src="x.png&quot; onerror=&quot;alert(1)" />`,
		},
		{
			name: "QuoteInAlt",
			d:    Descriptor{Image: "x.png", Alt: `a"b`},
			want: `<img src="x.png" alt="a&quot;b" />`,
		},
		{
			name: "QuoteInLinkAndTitle",
			d:    Descriptor{Image: "x.png", URL: `http://y/"`, Title: `say "hi"`},
			want: `<a href="http://y/&quot;" title="say &quot;hi&quot;"><img src="x.png" /></a>`,
		},
		{
			name: "AmpersandPassesThrough",
			d:    Descriptor{Image: "https://nodei.co/npm/foo.png?a=1&b=2"},
			want: `<img src="https://nodei.co/npm/foo.png?a=1&b=2" />`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.d.HTML()
			if err != nil {
				t.Fatalf("HTML() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("HTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescriptorHTMLMissingImage(t *testing.T) {
	_, err := Descriptor{}.HTML()
	if err == nil {
		t.Fatal("HTML() error = nil, want MissingFieldError")
	}
	if !IsMissingField(err) {
		t.Fatalf("IsMissingField(%v) = false", err)
	}

	var mfe *MissingFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("error %v is not a *MissingFieldError", err)
	}
	if mfe.Field != "image" {
		t.Errorf("Field = %q, want %q", mfe.Field, "image")
	}
}

func TestDescriptorHTMLDeterministic(t *testing.T) {
	d := Descriptor{Image: "x.png", Alt: "A", URL: "http://y", Title: "T"}
	first, err := d.HTML()
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	second, err := d.HTML()
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if first != second {
		t.Errorf("repeated renders differ: %q vs %q", first, second)
	}
}
