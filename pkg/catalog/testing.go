package catalog

import "github.com/badgekit/badges/pkg/badge"

var testingEntries = []Entry{
	{
		Name:     "saucelabsbm",
		Category: badge.CategoryTesting,
		render: func(r *Registry, v Values) (string, error) {
			return r.SaucelabsBM(SaucelabsOptions{
				Username:  v.String("saucelabsUsername"),
				AuthToken: v.String("saucelabsAuthToken"),
			})
		},
	},
	{
		Name:     "saucelabs",
		Category: badge.CategoryTesting,
		render: func(r *Registry, v Values) (string, error) {
			return r.Saucelabs(SaucelabsOptions{
				Username:  v.String("saucelabsUsername"),
				AuthToken: v.String("saucelabsAuthToken"),
			})
		},
	},
	{
		Name:     "travisci",
		Category: badge.CategoryTesting,
		render: func(r *Registry, v Values) (string, error) {
			return r.TravisCI(RepoOptions{Slug: v.String("githubSlug")})
		},
	},
	{
		Name:     "codeship",
		Category: badge.CategoryTesting,
		render: func(r *Registry, v Values) (string, error) {
			return r.Codeship(CodeshipOptions{
				ProjectUUID: v.String("codeshipProjectUUID"),
				ProjectID:   v.String("codeshipProjectID"),
			})
		},
	},
	{
		Name:     "coveralls",
		Category: badge.CategoryTesting,
		render: func(r *Registry, v Values) (string, error) {
			return r.Coveralls(RepoOptions{Slug: v.String("githubSlug")})
		},
	},
	{
		Name:     "codeclimate",
		Category: badge.CategoryTesting,
		render: func(r *Registry, v Values) (string, error) {
			return r.CodeClimate(RepoOptions{Slug: v.String("githubSlug")})
		},
	},
	{
		Name:     "bithound",
		Category: badge.CategoryTesting,
		render: func(r *Registry, v Values) (string, error) {
			return r.BitHound(RepoOptions{Slug: v.String("githubSlug")})
		},
	},
	{
		Name:     "waffle",
		Category: badge.CategoryTesting,
		render: func(r *Registry, v Values) (string, error) {
			return r.Waffle(WaffleOptions{
				Slug:  v.String("githubSlug"),
				Label: v.String("waffleLabel"),
			})
		},
	},
}

// SaucelabsOptions configures the Sauce Labs badges.
type SaucelabsOptions struct {
	// Username is the Sauce Labs account name. Required.
	Username string
	// AuthToken authenticates the badge image. Falls back to the
	// SAUCELABS_AUTH_TOKEN environment variable when empty.
	AuthToken string
}

// CodeshipOptions configures the Codeship status badge.
type CodeshipOptions struct {
	// ProjectUUID is the badge image identifier. Required.
	ProjectUUID string
	// ProjectID is the numeric project page identifier. Required.
	ProjectID string
}

// WaffleOptions configures the Waffle.io board badge.
type WaffleOptions struct {
	// Slug is the owner/repository identifier. Required.
	Slug string
	// Label is the board column to count. Defaults to "ready".
	Label string
}

// Saucelabs renders the Sauce Labs browser matrix badge.
//
// Saucelabs and SaucelabsBM are intentionally the same badge under two
// registry names; the upstream catalog has always shipped both.
func (r *Registry) Saucelabs(opts SaucelabsOptions) (string, error) {
	return r.saucelabsBadge(opts)
}

// SaucelabsBM renders the Sauce Labs browser matrix badge.
func (r *Registry) SaucelabsBM(opts SaucelabsOptions) (string, error) {
	return r.saucelabsBadge(opts)
}

func (r *Registry) saucelabsBadge(opts SaucelabsOptions) (string, error) {
	if err := badge.Required("saucelabsUsername", opts.Username); err != nil {
		return "", err
	}
	token := opts.AuthToken
	if token == "" {
		if token = r.env("SAUCELABS_AUTH_TOKEN"); token != "" {
			r.logger.Debug("using auth token from environment", "var", "SAUCELABS_AUTH_TOKEN")
		}
	}
	image := "https://saucelabs.com/browser-matrix/" + opts.Username + ".svg"
	if token != "" {
		image += "?auth=" + token
	}
	d := badge.Descriptor{
		Image: image,
		Alt:   "Sauce Labs Browser Matrix",
		URL:   "https://saucelabs.com/u/" + opts.Username,
		Title: "Check this project's browser compatibility on Sauce Labs",
	}
	return d.HTML()
}

// TravisCI renders the Travis CI build status badge.
func (r *Registry) TravisCI(opts RepoOptions) (string, error) {
	if err := badge.Required("githubSlug", opts.Slug); err != nil {
		return "", err
	}
	d := badge.Descriptor{
		Image: "https://img.shields.io/travis/" + opts.Slug + "/master.svg",
		Alt:   "Travis CI Build Status",
		URL:   "http://travis-ci.org/" + opts.Slug,
		Title: "Check this project's build status on TravisCI",
	}
	return d.HTML()
}

// Codeship renders the Codeship build status badge.
func (r *Registry) Codeship(opts CodeshipOptions) (string, error) {
	if err := badge.Required("codeshipProjectUUID", opts.ProjectUUID); err != nil {
		return "", err
	}
	if err := badge.Required("codeshipProjectID", opts.ProjectID); err != nil {
		return "", err
	}
	d := badge.Descriptor{
		Image: "https://img.shields.io/codeship/" + opts.ProjectUUID + ".svg",
		Alt:   "Codeship Status",
		URL:   "https://www.codeship.io/projects/" + opts.ProjectID,
		Title: "Check this project's build status on Codeship",
	}
	return d.HTML()
}

// Coveralls renders the test coverage badge from coveralls.io.
func (r *Registry) Coveralls(opts RepoOptions) (string, error) {
	if err := badge.Required("githubSlug", opts.Slug); err != nil {
		return "", err
	}
	d := badge.Descriptor{
		Image: "https://img.shields.io/coveralls/" + opts.Slug + ".svg",
		Alt:   "Coverage Status",
		URL:   "https://coveralls.io/r/" + opts.Slug,
		Title: "View this project's coverage on Coveralls",
	}
	return d.HTML()
}

// CodeClimate renders the maintainability rating badge from Code Climate.
func (r *Registry) CodeClimate(opts RepoOptions) (string, error) {
	if err := badge.Required("githubSlug", opts.Slug); err != nil {
		return "", err
	}
	d := badge.Descriptor{
		Image: "https://img.shields.io/codeclimate/github/" + opts.Slug + ".svg",
		Alt:   "Code Climate Rating",
		URL:   "https://codeclimate.com/github/" + opts.Slug,
		Title: "Check this project's rating on Code Climate",
	}
	return d.HTML()
}

// BitHound renders the overall project score badge from BitHound.
func (r *Registry) BitHound(opts RepoOptions) (string, error) {
	if err := badge.Required("githubSlug", opts.Slug); err != nil {
		return "", err
	}
	d := badge.Descriptor{
		Image: "https://bithound.io/github/" + opts.Slug + "/badges/score.svg",
		Alt:   "BitHound Score",
		URL:   "https://bithound.io/github/" + opts.Slug,
		Title: "Check this project's score on BitHound",
	}
	return d.HTML()
}

// Waffle renders the Waffle.io story count badge.
func (r *Registry) Waffle(opts WaffleOptions) (string, error) {
	if err := badge.Required("githubSlug", opts.Slug); err != nil {
		return "", err
	}
	label := opts.Label
	if label == "" {
		label = "ready"
	}
	d := badge.Descriptor{
		Image: "https://badge.waffle.io/" + opts.Slug + ".png?label=" + label,
		Alt:   "Stories in Ready",
		URL:   "http://waffle.io/" + opts.Slug,
		Title: "View this project's stories on Waffle",
	}
	return d.HTML()
}
