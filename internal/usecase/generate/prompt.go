package generate

import (
	"fmt"
	"strings"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
)

// BuildPrompt constructs the article generation prompt. Pure function:
// the same request and context always produce the same prompt, and no
// field is dropped even when the search context is empty.
func BuildPrompt(req entity.GenerationRequest, searchCtx entity.SearchContext) string {
	overview := searchCtx.Overview
	if overview == "" {
		overview = "N/A"
	}

	var b strings.Builder
	b.WriteString("You are an expert blog writer and SEO specialist.\n\n")
	fmt.Fprintf(&b, "Write a complete, well-structured blog article about: %q\n\n", req.Keyword)

	b.WriteString("CRITICAL REQUIREMENT:\n")
	fmt.Fprintf(&b, "- The FIRST LINE of your output must be the article title in %s\n", req.Language)
	fmt.Fprintf(&b, "- If the keyword is in a different language, translate or adapt the title naturally to %s\n", req.Language)
	b.WriteString("- The title should be clear, engaging, and appropriate for the target language\n\n")

	b.WriteString("REQUIREMENTS:\n")
	fmt.Fprintf(&b, "- Language: %s (all content must be in this language)\n", req.Language)
	fmt.Fprintf(&b, "- Tone: %s\n", req.Tone)
	fmt.Fprintf(&b, "- Target audience: %s\n", req.TargetAudience)
	fmt.Fprintf(&b, "- Word count: %d-%d words\n", req.MinWords, req.MaxWords)
	b.WriteString("- Format: PLAIN TEXT ONLY (no HTML, no Markdown, no special formatting)\n\n")

	b.WriteString("STRUCTURE:\n")
	fmt.Fprintf(&b, "- Line 1: Article title in %s\n", req.Language)
	b.WriteString("- Line 2: Empty line\n")
	b.WriteString("- Line 3+: Article content with clear sections and paragraphs\n\n")

	b.WriteString("CONTENT GUIDELINES:\n")
	b.WriteString("- Be informative, accurate, and engaging\n")
	b.WriteString("- Include practical examples\n")
	b.WriteString("- Maintain consistent tone throughout\n")
	b.WriteString("- Natural keyword integration\n\n")

	fmt.Fprintf(&b, "Search context (background only, verify before asserting): %s\n\n", overview)

	b.WriteString("Return ONLY the article text starting with the title. No explanations, no metadata.")

	return b.String()
}
