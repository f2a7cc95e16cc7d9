package catalog

import "github.com/badgekit/badges/pkg/badge"

var fundingEntries = []Entry{
	{
		Name:     "sixtydevstips",
		Category: badge.CategoryFunding,
		render: func(r *Registry, v Values) (string, error) {
			return r.SixtyDevsTips(SixtyDevsTipsOptions{
				URL: v.String("sixtydevstipsURL"),
				ID:  v.String("sixtydevstipsID"),
			})
		},
	},
	{
		Name:     "patreon",
		Category: badge.CategoryFunding,
		render: func(r *Registry, v Values) (string, error) {
			return r.Patreon(PatreonOptions{
				URL:      v.String("patreonURL"),
				Username: v.String("patreonUsername"),
			})
		},
	},
	{
		Name:     "opencollective",
		Category: badge.CategoryFunding,
		render: func(r *Registry, v Values) (string, error) {
			return r.OpenCollective(OpenCollectiveOptions{
				URL:      v.String("opencollectiveURL"),
				Username: v.String("opencollectiveUsername"),
			})
		},
	},
	{
		Name:     "gratipay",
		Category: badge.CategoryFunding,
		render: func(r *Registry, v Values) (string, error) {
			return r.Gratipay(GratipayOptions{
				URL:      v.String("gratipayURL"),
				Username: v.String("gratipayUsername"),
			})
		},
	},
	{
		Name:     "flattr",
		Category: badge.CategoryFunding,
		render: func(r *Registry, v Values) (string, error) {
			return r.Flattr(FlattrOptions{
				URL:      v.String("flattrURL"),
				Username: v.String("flattrUsername"),
				Code:     v.String("flattrCode"),
			})
		},
	},
	{
		Name:     "paypal",
		Category: badge.CategoryFunding,
		render: func(r *Registry, v Values) (string, error) {
			return r.PayPal(PayPalOptions{
				URL:      v.String("paypalURL"),
				ButtonID: v.String("paypalButtonID"),
				Username: v.String("paypalUsername"),
			})
		},
	},
	{
		Name:     "crypto",
		Category: badge.CategoryFunding,
		render: func(r *Registry, v Values) (string, error) {
			return r.Crypto(CryptoOptions{
				URL:        v.String("cryptoURL"),
				BitcoinURL: v.String("bitcoinURL"),
			})
		},
	},
	{
		Name:     "bitcoin",
		Category: badge.CategoryFunding,
		render: func(r *Registry, v Values) (string, error) {
			return r.Bitcoin(CryptoOptions{
				URL:        v.String("cryptoURL"),
				BitcoinURL: v.String("bitcoinURL"),
			})
		},
	},
	{
		Name:     "wishlist",
		Category: badge.CategoryFunding,
		render: func(r *Registry, v Values) (string, error) {
			return r.Wishlist(WishlistOptions{URL: v.String("wishlistURL")})
		},
	},
	{
		Name:     "buymeacoffee",
		Category: badge.CategoryFunding,
		render: func(r *Registry, v Values) (string, error) {
			return r.BuyMeACoffee(BuyMeACoffeeOptions{
				URL:      v.String("buymeacoffeeURL"),
				Username: v.String("buymeacoffeeUsername"),
			})
		},
	},
	{
		Name:     "liberapay",
		Category: badge.CategoryFunding,
		render: func(r *Registry, v Values) (string, error) {
			return r.Liberapay(LiberapayOptions{
				URL:      v.String("liberapayURL"),
				Username: v.String("liberapayUsername"),
			})
		},
	},
	{
		Name:     "thanksapp",
		Category: badge.CategoryFunding,
		render: func(r *Registry, v Values) (string, error) {
			return r.ThanksApp(ThanksAppOptions{
				URL:         v.String("thanksappURL"),
				PackageName: v.String("npmPackageName"),
				Slug:        v.String("githubSlug"),
				Username:    v.String("thanksappUsername"),
			})
		},
	},
	{
		Name:     "boostlab",
		Category: badge.CategoryFunding,
		render: func(r *Registry, v Values) (string, error) {
			return r.BoostLab(BoostLabOptions{
				URL:  v.String("boostlabURL"),
				Slug: v.String("githubSlug"),
			})
		},
	},
}

// donate assembles the standard shields donate badge for a funding service.
func donate(service, link, alt, title string) (string, error) {
	d := badge.Descriptor{
		Image: "https://img.shields.io/badge/" + service + "-donate-yellow.svg",
		Alt:   alt,
		URL:   link,
		Title: title,
	}
	return d.HTML()
}

// firstNonEmpty resolves a fallback chain: the first non-empty value wins.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// SixtyDevsTipsOptions configures the 60devs tips donate badge. An explicit
// URL overrides the tip page derived from ID.
type SixtyDevsTipsOptions struct {
	// URL is the full tip page URL.
	URL string
	// ID is the 60devs tip identifier. Required when URL is empty.
	ID string
}

// SixtyDevsTips renders the 60devs tips donate badge.
func (r *Registry) SixtyDevsTips(opts SixtyDevsTipsOptions) (string, error) {
	link := opts.URL
	if link == "" {
		if err := badge.Required("sixtydevstipsID", opts.ID); err != nil {
			return "", err
		}
		link = "https://tips.60devs.com/tip/" + opts.ID
	}
	return donate("60devs-tips", link,
		"60devs tips donate button",
		"Donate to this project using 60devs tips")
}

// PatreonOptions configures the Patreon donate badge. An explicit URL
// overrides the profile page derived from Username.
type PatreonOptions struct {
	// URL is the full Patreon page URL.
	URL string
	// Username is the Patreon account name. Required when URL is empty.
	Username string
}

// Patreon renders the Patreon donate badge.
func (r *Registry) Patreon(opts PatreonOptions) (string, error) {
	link := opts.URL
	if link == "" {
		if err := badge.Required("patreonUsername", opts.Username); err != nil {
			return "", err
		}
		link = "https://patreon.com/" + opts.Username
	}
	return donate("patreon", link,
		"Patreon donate button",
		"Donate to this project using Patreon")
}

// OpenCollectiveOptions configures the Open Collective donate badge.
type OpenCollectiveOptions struct {
	// URL is the full collective page URL.
	URL string
	// Username is the collective name. Required when URL is empty.
	Username string
}

// OpenCollective renders the Open Collective donate badge.
func (r *Registry) OpenCollective(opts OpenCollectiveOptions) (string, error) {
	link := opts.URL
	if link == "" {
		if err := badge.Required("opencollectiveUsername", opts.Username); err != nil {
			return "", err
		}
		link = "https://opencollective.com/" + opts.Username
	}
	return donate("open%20collective", link,
		"Open Collective donate button",
		"Donate to this project using Open Collective")
}

// GratipayOptions configures the Gratipay donate badge.
type GratipayOptions struct {
	// URL is the full Gratipay page URL.
	URL string
	// Username is the Gratipay account name. Required when URL is empty.
	Username string
}

// Gratipay renders the Gratipay donate badge.
func (r *Registry) Gratipay(opts GratipayOptions) (string, error) {
	link := opts.URL
	if link == "" {
		if err := badge.Required("gratipayUsername", opts.Username); err != nil {
			return "", err
		}
		link = "https://gratipay.com/" + opts.Username
	}
	return donate("gratipay", link,
		"Gratipay donate button",
		"Donate weekly to this project using Gratipay")
}

// FlattrOptions configures the Flattr donate badge. Resolution order is
// URL, then the profile page from Username, then the thing page from Code.
type FlattrOptions struct {
	// URL is the full Flattr page URL.
	URL string
	// Username is the Flattr profile name.
	Username string
	// Code is the Flattr thing identifier.
	Code string
}

// Flattr renders the Flattr donate badge.
func (r *Registry) Flattr(opts FlattrOptions) (string, error) {
	link := opts.URL
	switch {
	case link != "":
	case opts.Username != "":
		link = "https://flattr.com/profile/" + opts.Username
	case opts.Code != "":
		link = "https://flattr.com/thing/" + opts.Code
	default:
		return "", &badge.MissingFieldError{Field: "flattrUsername"}
	}
	return donate("flattr", link,
		"Flattr donate button",
		"Donate to this project using Flattr")
}

// PayPalOptions configures the PayPal donate badge. Resolution order is
// URL, then the hosted button from ButtonID, then paypal.me from Username.
type PayPalOptions struct {
	// URL is the full PayPal donate URL.
	URL string
	// ButtonID is a hosted donate button identifier.
	ButtonID string
	// Username is the paypal.me account name.
	Username string
}

// PayPal renders the PayPal donate badge.
func (r *Registry) PayPal(opts PayPalOptions) (string, error) {
	link := opts.URL
	switch {
	case link != "":
	case opts.ButtonID != "":
		link = "https://www.paypal.com/cgi-bin/webscr?cmd=_s-xclick&hosted_button_id=" + opts.ButtonID
	case opts.Username != "":
		link = "https://paypal.me/" + opts.Username
	default:
		return "", &badge.MissingFieldError{Field: "paypalUsername"}
	}
	return donate("paypal", link,
		"PayPal donate button",
		"Donate to this project using Paypal")
}

// CryptoOptions configures the cryptocurrency donate badge. URL wins over
// the legacy BitcoinURL.
type CryptoOptions struct {
	// URL is the donation page URL.
	URL string
	// BitcoinURL is the legacy donation page URL.
	BitcoinURL string
}

// Crypto renders the cryptocurrency donate badge.
func (r *Registry) Crypto(opts CryptoOptions) (string, error) {
	link := firstNonEmpty(opts.URL, opts.BitcoinURL)
	if link == "" {
		return "", &badge.MissingFieldError{Field: "cryptoURL"}
	}
	return donate("crypto", link,
		"crypto donate button",
		"Donate to this project using Cryptocurrency")
}

// Bitcoin renders the cryptocurrency donate badge. It is a pure alias of
// [Registry.Crypto], kept for backwards compatibility.
func (r *Registry) Bitcoin(opts CryptoOptions) (string, error) {
	return r.Crypto(opts)
}

// WishlistOptions configures the wishlist badge.
type WishlistOptions struct {
	// URL is the wishlist page URL. Required.
	URL string
}

// Wishlist renders the wishlist browse badge.
func (r *Registry) Wishlist(opts WishlistOptions) (string, error) {
	if err := badge.Required("wishlistURL", opts.URL); err != nil {
		return "", err
	}
	return donate("wishlist", opts.URL,
		"Wishlist browse button",
		"Buy an item on our wishlist for us")
}

// BuyMeACoffeeOptions configures the Buy Me A Coffee donate badge.
type BuyMeACoffeeOptions struct {
	// URL is the full Buy Me A Coffee page URL.
	URL string
	// Username is the account name. Required when URL is empty.
	Username string
}

// BuyMeACoffee renders the Buy Me A Coffee donate badge.
func (r *Registry) BuyMeACoffee(opts BuyMeACoffeeOptions) (string, error) {
	link := opts.URL
	if link == "" {
		if err := badge.Required("buymeacoffeeUsername", opts.Username); err != nil {
			return "", err
		}
		link = "https://buymeacoffee.com/" + opts.Username
	}
	return donate("buy%20me%20a%20coffee", link,
		"Buy Me A Coffee donate button",
		"Donate to this project using Buy Me A Coffee")
}

// LiberapayOptions configures the Liberapay donate badge.
type LiberapayOptions struct {
	// URL is the full Liberapay page URL.
	URL string
	// Username is the account name. Required when URL is empty.
	Username string
}

// Liberapay renders the Liberapay donate badge.
func (r *Registry) Liberapay(opts LiberapayOptions) (string, error) {
	link := opts.URL
	if link == "" {
		if err := badge.Required("liberapayUsername", opts.Username); err != nil {
			return "", err
		}
		link = "https://liberapay.com/" + opts.Username
	}
	return donate("liberapay", link,
		"Liberapay donate button",
		"Donate to this project using Liberapay")
}

// ThanksAppOptions configures the Thanks.app donate badge. Resolution order
// is URL, then the npm package page, then the GitHub repository page, then
// the user page.
type ThanksAppOptions struct {
	// URL is the full Thanks.app donate URL.
	URL string
	// PackageName is the published npm package name.
	PackageName string
	// Slug is the owner/repository identifier.
	Slug string
	// Username is the Thanks.app account name.
	Username string
}

// ThanksApp renders the Thanks.app donate badge.
func (r *Registry) ThanksApp(opts ThanksAppOptions) (string, error) {
	link := opts.URL
	switch {
	case link != "":
	case opts.PackageName != "":
		link = "https://givethanks.app/donate/npm/" + opts.PackageName
	case opts.Slug != "":
		link = "https://givethanks.app/donate/github/" + opts.Slug
	case opts.Username != "":
		link = "https://givethanks.app/u/" + opts.Username
	default:
		return "", &badge.MissingFieldError{Field: "thanksappUsername"}
	}
	return donate("thanks.app", link,
		"Thanks.app donate button",
		"Donate to this project using Thanks.app")
}

// BoostLabOptions configures the Boost Lab donate badge.
type BoostLabOptions struct {
	// URL is the full Boost Lab page URL.
	URL string
	// Slug is the owner/repository identifier. Required when URL is empty.
	Slug string
}

// BoostLab renders the Boost Lab donate badge.
func (r *Registry) BoostLab(opts BoostLabOptions) (string, error) {
	link := opts.URL
	if link == "" {
		if err := badge.Required("githubSlug", opts.Slug); err != nil {
			return "", err
		}
		link = "https://boost-lab.app/" + opts.Slug
	}
	return donate("boost.lab", link,
		"Boost Lab donate button",
		"Donate to this project using Boost Lab")
}
