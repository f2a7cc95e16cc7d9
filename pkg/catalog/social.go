package catalog

import (
	"strings"

	"github.com/badgekit/badges/pkg/badge"
)

var socialEntries = []Entry{
	{
		Name:     "slackinscript",
		Category: badge.CategorySocial,
		Script:   true,
		render: func(r *Registry, v Values) (string, error) {
			return r.SlackinScript(SlackinOptions{URL: v.String("slackinURL")})
		},
	},
	{
		Name:     "slackin",
		Category: badge.CategorySocial,
		render: func(r *Registry, v Values) (string, error) {
			return r.Slackin(SlackinOptions{URL: v.String("slackinURL")})
		},
	},
	{
		Name:     "gitter",
		Category: badge.CategorySocial,
		render: func(r *Registry, v Values) (string, error) {
			return r.Gitter(GitterOptions{
				GitterSlug: v.String("gitterSlug"),
				GithubSlug: v.String("githubSlug"),
			})
		},
	},
	{
		Name:     "twitter",
		Category: badge.CategorySocial,
		render: func(r *Registry, v Values) (string, error) {
			return r.Twitter(TwitterOptions{Username: v.String("twitterUsername")})
		},
	},
	{
		Name:     "googleplusone",
		Category: badge.CategorySocial,
		Script:   true,
		render: func(r *Registry, v Values) (string, error) {
			return r.GooglePlusOne(HomepageOptions{Homepage: v.String("homepage")})
		},
	},
	{
		Name:     "redditsubmit",
		Category: badge.CategorySocial,
		Script:   true,
		render: func(r *Registry, v Values) (string, error) {
			return r.RedditSubmit(HomepageOptions{Homepage: v.String("homepage")})
		},
	},
	{
		Name:     "hackernewssubmit",
		Category: badge.CategorySocial,
		Script:   true,
		render: func(r *Registry, v Values) (string, error) {
			return r.HackerNewsSubmit(HomepageOptions{Homepage: v.String("homepage")})
		},
	},
	{
		Name:     "facebooklike",
		Category: badge.CategorySocial,
		Script:   true,
		render: func(r *Registry, v Values) (string, error) {
			return r.FacebookLike(FacebookLikeOptions{
				LikeURL:       v.String("facebookLikeURL"),
				ApplicationID: v.String("facebookApplicationID"),
			})
		},
	},
	{
		Name:     "facebookfollow",
		Category: badge.CategorySocial,
		Script:   true,
		render: func(r *Registry, v Values) (string, error) {
			return r.FacebookFollow(FacebookFollowOptions{
				Username:      v.String("facebookUsername"),
				ApplicationID: v.String("facebookApplicationID"),
			})
		},
	},
	{
		Name:     "twittertweet",
		Category: badge.CategorySocial,
		Script:   true,
		render: func(r *Registry, v Values) (string, error) {
			return r.TwitterTweet(TwitterOptions{Username: v.String("twitterUsername")})
		},
	},
	{
		Name:     "twitterfollow",
		Category: badge.CategorySocial,
		Script:   true,
		render: func(r *Registry, v Values) (string, error) {
			return r.TwitterFollow(TwitterOptions{Username: v.String("twitterUsername")})
		},
	},
	{
		Name:     "githubfollow",
		Category: badge.CategorySocial,
		Script:   true,
		render: func(r *Registry, v Values) (string, error) {
			return r.GithubFollow(GithubFollowOptions{Username: v.String("githubUsername")})
		},
	},
	{
		Name:     "githubstar",
		Category: badge.CategorySocial,
		Script:   true,
		render: func(r *Registry, v Values) (string, error) {
			return r.GithubStar(RepoOptions{Slug: v.String("githubSlug")})
		},
	},
	{
		Name:     "quorafollow",
		Category: badge.CategorySocial,
		Script:   true,
		render: func(r *Registry, v Values) (string, error) {
			return r.QuoraFollow(QuoraFollowOptions{
				Username: v.String("quoraUsername"),
				Realname: v.String("quoraRealname"),
				Code:     v.String("quoraCode"),
			})
		},
	},
}

// githubButtonScript is the loader for GitHub's hosted button widgets.
const githubButtonScript = `<script async defer src="https://buttons.github.io/buttons.js"></script>`

// twitterWidgetScript is the loader for Twitter's hosted button widgets.
const twitterWidgetScript = `<script async src="//platform.twitter.com/widgets.js" charset="utf-8"></script>`

// SlackinOptions configures the Slackin community badges.
type SlackinOptions struct {
	// URL is the base URL of the Slackin instance. Required.
	URL string
}

// GitterOptions configures the Gitter chat badge. GitterSlug wins over
// GithubSlug when both are set.
type GitterOptions struct {
	// GitterSlug is the Gitter room identifier.
	GitterSlug string
	// GithubSlug is the owner/repository identifier, used when GitterSlug
	// is empty. One of the two is required.
	GithubSlug string
}

// TwitterOptions configures the Twitter badges.
type TwitterOptions struct {
	// Username is the Twitter handle without the leading @. Required.
	Username string
}

// HomepageOptions configures the submit/share widgets.
type HomepageOptions struct {
	// Homepage is the project URL to share. Required.
	Homepage string
}

// FacebookLikeOptions configures the Facebook like button.
type FacebookLikeOptions struct {
	// LikeURL is the page to like. Required.
	LikeURL string
	// ApplicationID is the Facebook app ID. Falls back to the
	// FACEBOOK_APPLICATION_ID environment variable when empty.
	ApplicationID string
}

// FacebookFollowOptions configures the Facebook follow button.
type FacebookFollowOptions struct {
	// Username is the Facebook profile name. Required.
	Username string
	// ApplicationID is the Facebook app ID. Falls back to the
	// FACEBOOK_APPLICATION_ID environment variable when empty.
	ApplicationID string
}

// GithubFollowOptions configures the GitHub follow button.
type GithubFollowOptions struct {
	// Username is the GitHub account name. Required.
	Username string
}

// QuoraFollowOptions configures the Quora follow widget.
type QuoraFollowOptions struct {
	// Username is the Quora profile name. Required.
	Username string
	// Realname is the display name. Defaults to Username with dashes
	// replaced by spaces.
	Realname string
	// Code is the Quora widget embed code. Defaults to the shared public
	// embed code.
	Code string
}

// Slackin renders the Slackin member-count image badge.
func (r *Registry) Slackin(opts SlackinOptions) (string, error) {
	if err := badge.Required("slackinURL", opts.URL); err != nil {
		return "", err
	}
	d := badge.Descriptor{
		Image: opts.URL + "/badge.svg",
		Alt:   "Slack community badge",
		URL:   opts.URL,
		Title: "Join this project's slack community",
	}
	return d.HTML()
}

// SlackinScript renders the Slackin live-invite embed script.
func (r *Registry) SlackinScript(opts SlackinOptions) (string, error) {
	if err := badge.Required("slackinURL", opts.URL); err != nil {
		return "", err
	}
	return `<script type="text/javascript" async defer src="` + opts.URL + `/slackin.js"></script>`, nil
}

// Gitter renders the Gitter chat room badge.
func (r *Registry) Gitter(opts GitterOptions) (string, error) {
	slug := firstNonEmpty(opts.GitterSlug, opts.GithubSlug)
	if slug == "" {
		return "", &badge.MissingFieldError{Field: "githubSlug"}
	}
	d := badge.Descriptor{
		Image: "https://img.shields.io/gitter/room/" + slug + ".svg",
		Alt:   "Gitter chat badge",
		URL:   "https://gitter.im/" + slug,
		Title: "Join this project's chat room on Gitter",
	}
	return d.HTML()
}

// Twitter renders the Twitter follow image badge.
func (r *Registry) Twitter(opts TwitterOptions) (string, error) {
	if err := badge.Required("twitterUsername", opts.Username); err != nil {
		return "", err
	}
	d := badge.Descriptor{
		Image: "https://img.shields.io/twitter/follow/" + opts.Username + ".svg?style=social",
		Alt:   "Twitter follow badge",
		URL:   "https://twitter.com/" + opts.Username,
		Title: "Follow this project on Twitter",
	}
	return d.HTML()
}

// GooglePlusOne renders the Google +1 embed widget.
func (r *Registry) GooglePlusOne(opts HomepageOptions) (string, error) {
	if err := badge.Required("homepage", opts.Homepage); err != nil {
		return "", err
	}
	return `<script src="https://apis.google.com/js/platform.js" async defer></script>` +
		`<div class="g-plusone" data-size="medium" data-href="` + opts.Homepage + `"></div>`, nil
}

// RedditSubmit renders the Reddit submit embed widget.
func (r *Registry) RedditSubmit(opts HomepageOptions) (string, error) {
	if err := badge.Required("homepage", opts.Homepage); err != nil {
		return "", err
	}
	return `<script type="text/javascript">reddit_url="` + opts.Homepage + `"</script>` +
		`<script type="text/javascript" src="https://en.reddit.com/static/button/button1.js"></script>`, nil
}

// HackerNewsSubmit renders the Hacker News vote embed widget.
func (r *Registry) HackerNewsSubmit(opts HomepageOptions) (string, error) {
	if err := badge.Required("homepage", opts.Homepage); err != nil {
		return "", err
	}
	return `<a href="https://news.ycombinator.com/submitlink?u=` + opts.Homepage + `" class="hn-share-button">Vote on Hacker News</a>` +
		`<script async defer src="https://hnbutton.appspot.com/static/hn.min.js"></script>`, nil
}

// facebookAppID resolves the application ID, falling back to the
// FACEBOOK_APPLICATION_ID environment variable.
func (r *Registry) facebookAppID(explicit string) (string, error) {
	id := explicit
	if id == "" {
		if id = r.env("FACEBOOK_APPLICATION_ID"); id != "" {
			r.logger.Debug("using application id from environment", "var", "FACEBOOK_APPLICATION_ID")
		}
	}
	if id == "" {
		return "", &badge.MissingFieldError{Field: "facebookApplicationID"}
	}
	return id, nil
}

// FacebookLike renders the Facebook like embed widget.
func (r *Registry) FacebookLike(opts FacebookLikeOptions) (string, error) {
	if err := badge.Required("facebookLikeURL", opts.LikeURL); err != nil {
		return "", err
	}
	appID, err := r.facebookAppID(opts.ApplicationID)
	if err != nil {
		return "", err
	}
	return `<iframe src="https://www.facebook.com/plugins/like.php?href=` + opts.LikeURL +
		`&layout=button_count&action=like&show_faces=false&share=true&appId=` + appID +
		`" scrolling="no" frameborder="0" style="border:none; overflow:hidden; width:90px; height:21px;" allowTransparency="true"></iframe>`, nil
}

// FacebookFollow renders the Facebook follow embed widget.
func (r *Registry) FacebookFollow(opts FacebookFollowOptions) (string, error) {
	if err := badge.Required("facebookUsername", opts.Username); err != nil {
		return "", err
	}
	appID, err := r.facebookAppID(opts.ApplicationID)
	if err != nil {
		return "", err
	}
	return `<iframe src="https://www.facebook.com/plugins/follow.php?href=https://www.facebook.com/` + opts.Username +
		`&layout=button_count&show_faces=false&appId=` + appID +
		`" scrolling="no" frameborder="0" style="border:none; overflow:hidden; width:90px; height:21px;" allowTransparency="true"></iframe>`, nil
}

// TwitterTweet renders the Tweet share button.
func (r *Registry) TwitterTweet(opts TwitterOptions) (string, error) {
	if err := badge.Required("twitterUsername", opts.Username); err != nil {
		return "", err
	}
	return `<a href="https://twitter.com/share" class="twitter-share-button" data-via="` + opts.Username +
		`" data-related="` + opts.Username + `">Tweet</a>` + twitterWidgetScript, nil
}

// TwitterFollow renders the Twitter follow button.
func (r *Registry) TwitterFollow(opts TwitterOptions) (string, error) {
	if err := badge.Required("twitterUsername", opts.Username); err != nil {
		return "", err
	}
	return `<a href="https://twitter.com/` + opts.Username + `" class="twitter-follow-button" data-show-count="false">Follow @` +
		opts.Username + `</a>` + twitterWidgetScript, nil
}

// GithubFollow renders the GitHub follow button.
func (r *Registry) GithubFollow(opts GithubFollowOptions) (string, error) {
	if err := badge.Required("githubUsername", opts.Username); err != nil {
		return "", err
	}
	return `<a class="github-button" href="https://github.com/` + opts.Username +
		`" data-count-api="/users/` + opts.Username + `#followers" data-count-aria-label="# followers on GitHub" aria-label="Follow @` +
		opts.Username + ` on GitHub">Follow @` + opts.Username + `</a>` + githubButtonScript, nil
}

// GithubStar renders the GitHub star button. The slug must contain both an
// owner and a repository half.
func (r *Registry) GithubStar(opts RepoOptions) (string, error) {
	if err := badge.Required("githubSlug", opts.Slug); err != nil {
		return "", err
	}
	owner, repo, found := strings.Cut(opts.Slug, "/")
	if !found || owner == "" || repo == "" {
		return "", &badge.InvalidSlugError{Field: "githubSlug", Slug: opts.Slug}
	}
	return `<a class="github-button" href="https://github.com/` + opts.Slug +
		`" data-count-href="/` + opts.Slug + `/stargazers" data-count-api="/repos/` + opts.Slug +
		`#stargazers_count" data-count-aria-label="# stargazers on GitHub" aria-label="Star ` +
		opts.Slug + ` on GitHub">Star</a>` + githubButtonScript, nil
}

// quoraDefaultCode is the shared public embed code for the follow widget.
const quoraDefaultCode = "7N31XJs214"

// QuoraFollow renders the Quora follow widget.
func (r *Registry) QuoraFollow(opts QuoraFollowOptions) (string, error) {
	if err := badge.Required("quoraUsername", opts.Username); err != nil {
		return "", err
	}
	realname := opts.Realname
	if realname == "" {
		realname = strings.ReplaceAll(opts.Username, "-", " ")
	}
	code := opts.Code
	if code == "" {
		code = quoraDefaultCode
	}
	return `<span data-name="` + realname + `">Follow <a href="https://www.quora.com/profile/` + opts.Username + `">` +
		realname + `</a> on <a href="https://www.quora.com">Quora</a>` +
		`<script type="text/javascript" src="https://www.quora.com/widgets/follow?embed_code=` + code + `"></script></span>`, nil
}
