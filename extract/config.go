// Package extract implements the heuristics that turn a parsed activity
// feed document into posts or comments. It works against feedtab.Node only;
// markup parsing is provided by a feedtab.DocumentParser.
package extract

// Config holds the selectors, marker phrases and platform constants the
// heuristics rely on. It is treated as immutable once handed to an extractor.
type Config struct {
	// Domain is the platform's registrable domain. Links to it or its
	// subdomains are internal.
	Domain string `yaml:"domain"`
	// BaseURL resolves relative links found in saved pages.
	BaseURL string `yaml:"base_url"`
	// UpdateURLFormat builds a canonical update URL from an activity ID.
	UpdateURLFormat string `yaml:"update_url_format"`
	// URNAttr carries the activity URN on feed update containers.
	URNAttr string `yaml:"urn_attr"`
	// UpdatePathMarkers identify links that point at a single update.
	UpdatePathMarkers []string `yaml:"update_path_markers"`
	// ArticlePathMarker identifies links to long-form articles.
	ArticlePathMarker string `yaml:"article_path_marker"`

	BlockSelector         string `yaml:"block"`
	CaptionSelector       string `yaml:"caption"`
	HeaderSelector        string `yaml:"header"`
	ActorMetaSelector     string `yaml:"actor_meta"`
	ArticleSelector       string `yaml:"article"`
	DocumentSelector      string `yaml:"document"`
	VideoSelector         string `yaml:"video"`
	ImageSelector         string `yaml:"image"`
	ReactionCountSelector string `yaml:"reaction_count"`
	ControlMenuSelector   string `yaml:"control_menu"`
	DescriptionSelector   string `yaml:"description"`

	CommentEntitySelector  string `yaml:"comment_entity"`
	CommentAuthorSelector  string `yaml:"comment_author"`
	CommentContentSelector string `yaml:"comment_content"`

	// ImageExcludeClasses lists ancestor class prefixes whose images are
	// decoration (avatars, reaction icons) rather than content.
	ImageExcludeClasses []string `yaml:"image_exclude_classes"`
	// CaptionExcludeClasses lists ancestor class prefixes whose text is not
	// part of the post caption.
	CaptionExcludeClasses []string `yaml:"caption_exclude_classes"`

	// ReactionKeywords are the reaction names rendered next to counts.
	ReactionKeywords []string `yaml:"reaction_keywords"`
	// PollMarkers and DocumentMarkers are lowercase phrases searched in a
	// block's text.
	PollMarkers     []string `yaml:"poll_markers"`
	DocumentMarkers []string `yaml:"document_markers"`
}

// DefaultConfig returns the configuration for saved LinkedIn activity pages.
func DefaultConfig() Config {
	return Config{
		Domain:            "linkedin.com",
		BaseURL:           "https://www.linkedin.com",
		UpdateURLFormat:   "https://www.linkedin.com/feed/update/urn:li:activity:%d/",
		URNAttr:           "data-urn",
		UpdatePathMarkers: []string{"/feed/update/", "/posts/"},
		ArticlePathMarker: "/pulse/",

		BlockSelector:         "div.feed-shared-update-v2",
		CaptionSelector:       ".update-components-text span.break-words",
		HeaderSelector:        ".update-components-header",
		ActorMetaSelector:     ".update-components-actor__meta",
		ArticleSelector:       ".update-components-article, .feed-shared-article",
		DocumentSelector:      ".update-components-document__container, .document-s-container",
		VideoSelector:         "video, .update-components-linkedin-video",
		ImageSelector:         "img",
		ReactionCountSelector: ".social-details-social-counts__reactions-count, .social-details-social-counts",
		ControlMenuSelector:   ".feed-shared-control-menu__trigger",
		DescriptionSelector:   ".feed-shared-update-v2__description, .update-components-update-v2__commentary",

		CommentEntitySelector:  "article.comments-comment-entity, article.comments-comment-item",
		CommentAuthorSelector:  ".comments-comment-meta__description-title, .comments-post-meta__name-text",
		CommentContentSelector: ".comments-comment-item__main-content",

		ImageExcludeClasses: []string{
			"update-components-actor",
			"update-components-header",
			"social-details-social-counts",
			"comments-",
		},
		CaptionExcludeClasses: []string{"comments-"},

		ReactionKeywords: []string{
			"like", "celebrate", "support", "love", "insightful",
			"curious", "funny", "applaud", "praise", "interest",
		},
		PollMarkers: []string{
			"poll closed",
			"the author can see how you vote",
			"you can see how people vote",
		},
		DocumentMarkers: []string{
			"your document has finished loading",
			"document has loaded",
			"download document",
		},
	}
}
