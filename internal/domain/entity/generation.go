package entity

import "fmt"

const (
	// maxKeywordLength defines the maximum allowed length for a generation keyword.
	maxKeywordLength = 200

	// MinArticleWords is the smallest word count a caller may request.
	MinArticleWords = 300

	// MaxArticleWords is the largest word count a caller may request.
	MaxArticleWords = 5000

	// MaxOverviewLength caps the search overview carried into the prompt.
	MaxOverviewLength = 600

	// MaxContextURLs caps the number of reference URLs kept from a search.
	MaxContextURLs = 3
)

// SupportedLanguages lists the language codes articles can be generated in.
var SupportedLanguages = []string{"en", "es"}

// GenerationRequest carries the caller-supplied parameters for one article
// generation run. It is immutable once validated and consumed exactly once
// by the generation pipeline.
type GenerationRequest struct {
	Keyword        string
	Language       string
	Tone           string
	TargetAudience string
	MinWords       int
	MaxWords       int
	Country        string
}

// Validate checks the request bounds before any outbound call is made.
// Returns a ValidationError describing the first violated field.
func (r GenerationRequest) Validate() error {
	if r.Keyword == "" {
		return &ValidationError{Field: "keyword", Message: "is required"}
	}
	if len(r.Keyword) > maxKeywordLength {
		return &ValidationError{
			Field:   "keyword",
			Message: fmt.Sprintf("must not exceed %d characters", maxKeywordLength),
		}
	}
	if !isSupportedLanguage(r.Language) {
		return &ValidationError{Field: "language", Message: "must be one of: en, es"}
	}
	if r.MinWords < MinArticleWords {
		return &ValidationError{
			Field:   "minWords",
			Message: fmt.Sprintf("must be at least %d", MinArticleWords),
		}
	}
	if r.MaxWords > MaxArticleWords {
		return &ValidationError{
			Field:   "maxWords",
			Message: fmt.Sprintf("must not exceed %d", MaxArticleWords),
		}
	}
	if r.MinWords > r.MaxWords {
		return &ValidationError{Field: "minWords", Message: "cannot be greater than maxWords"}
	}
	return nil
}

// ApplyDefaults fills the optional stylistic fields after validation.
// An empty tone or audience is legal input; the pipeline always prompts
// with concrete values.
func (r *GenerationRequest) ApplyDefaults() {
	if r.Tone == "" {
		r.Tone = "professional, informative"
	}
	if r.TargetAudience == "" {
		r.TargetAudience = "general"
	}
	if r.Country == "" {
		r.Country = "us"
	}
}

func isSupportedLanguage(code string) bool {
	for _, lang := range SupportedLanguages {
		if code == lang {
			return true
		}
	}
	return false
}

// SearchContext holds the best-effort background material gathered for a
// keyword before prompting the completion model. An empty context is valid:
// enrichment is optional and its failures never abort generation.
type SearchContext struct {
	Overview string
	URLs     []string
}

// GeneratedArticle is the final product of the generation pipeline.
// Title is always non-empty; when the raw model output has no line break
// the original keyword is used as the title.
type GeneratedArticle struct {
	Title string
	Body  string
}
