package catalog

import "github.com/badgekit/badges/pkg/badge"

var developmentEntries = []Entry{
	{
		Name:     "npmversion",
		Category: badge.CategoryDevelopment,
		render: func(r *Registry, v Values) (string, error) {
			return r.NPMVersion(NPMOptions{PackageName: v.String("npmPackageName")})
		},
	},
	{
		Name:     "npmdownloads",
		Category: badge.CategoryDevelopment,
		render: func(r *Registry, v Values) (string, error) {
			return r.NPMDownloads(NPMOptions{PackageName: v.String("npmPackageName")})
		},
	},
	{
		Name:     "daviddm",
		Category: badge.CategoryDevelopment,
		render: func(r *Registry, v Values) (string, error) {
			return r.DavidDM(RepoOptions{Slug: v.String("githubSlug")})
		},
	},
	{
		Name:     "daviddmdev",
		Category: badge.CategoryDevelopment,
		render: func(r *Registry, v Values) (string, error) {
			return r.DavidDMDev(RepoOptions{Slug: v.String("githubSlug")})
		},
	},
	{
		Name:     "nodeico",
		Category: badge.CategoryDevelopment,
		render: func(r *Registry, v Values) (string, error) {
			q, err := v.Query("nodeicoQueryString")
			if err != nil {
				return "", err
			}
			return r.Nodeico(NodeicoOptions{
				PackageName: v.String("npmPackageName"),
				Query:       q,
			})
		},
	},
}

// NPMOptions configures the npm registry badges.
type NPMOptions struct {
	// PackageName is the published npm package name. Required.
	PackageName string
}

// RepoOptions configures badges keyed by a GitHub repository slug.
type RepoOptions struct {
	// Slug is the owner/repository identifier. Required.
	Slug string
}

// NodeicoOptions configures the Nodei.co badge.
type NodeicoOptions struct {
	// PackageName is the published npm package name. Required.
	PackageName string
	// Query customizes the badge rendering (downloads, compact, mini...).
	Query badge.Query
}

// NPMVersion renders the published version badge for an npm package.
func (r *Registry) NPMVersion(opts NPMOptions) (string, error) {
	if err := badge.Required("npmPackageName", opts.PackageName); err != nil {
		return "", err
	}
	d := badge.Descriptor{
		Image: "https://img.shields.io/npm/v/" + opts.PackageName + ".svg",
		Alt:   "NPM version",
		URL:   "https://npmjs.org/package/" + opts.PackageName,
		Title: "View this project on NPM",
	}
	return d.HTML()
}

// NPMDownloads renders the monthly downloads badge for an npm package.
func (r *Registry) NPMDownloads(opts NPMOptions) (string, error) {
	if err := badge.Required("npmPackageName", opts.PackageName); err != nil {
		return "", err
	}
	d := badge.Descriptor{
		Image: "https://img.shields.io/npm/dm/" + opts.PackageName + ".svg",
		Alt:   "NPM downloads",
		URL:   "https://npmjs.org/package/" + opts.PackageName,
		Title: "View this project on NPM",
	}
	return d.HTML()
}

// DavidDM renders the dependency freshness badge from david-dm.org.
func (r *Registry) DavidDM(opts RepoOptions) (string, error) {
	if err := badge.Required("githubSlug", opts.Slug); err != nil {
		return "", err
	}
	d := badge.Descriptor{
		Image: "https://img.shields.io/david/" + opts.Slug + ".svg",
		Alt:   "Dependency Status",
		URL:   "https://david-dm.org/" + opts.Slug,
		Title: "View the status of this project's dependencies on DavidDM",
	}
	return d.HTML()
}

// DavidDMDev renders the dev-dependency freshness badge from david-dm.org.
func (r *Registry) DavidDMDev(opts RepoOptions) (string, error) {
	if err := badge.Required("githubSlug", opts.Slug); err != nil {
		return "", err
	}
	d := badge.Descriptor{
		Image: "https://img.shields.io/david/dev/" + opts.Slug + ".svg",
		Alt:   "Dev Dependency Status",
		URL:   "https://david-dm.org/" + opts.Slug + "#info=devDependencies",
		Title: "View the status of this project's dev dependencies on DavidDM",
	}
	return d.HTML()
}

// Nodeico renders the Nodei.co npm badge. The optional query payload is
// appended to the image URL with keys in declaration order.
func (r *Registry) Nodeico(opts NodeicoOptions) (string, error) {
	if err := badge.Required("npmPackageName", opts.PackageName); err != nil {
		return "", err
	}
	image := "https://nodei.co/npm/" + opts.PackageName + ".png"
	if !opts.Query.IsZero() {
		image += "?" + opts.Query.Encode()
	}
	d := badge.Descriptor{
		Image: image,
		Alt:   "Nodei.co badge",
		URL:   "https://www.npmjs.com/package/" + opts.PackageName,
		Title: "Nodei.co badge",
	}
	return d.HTML()
}
