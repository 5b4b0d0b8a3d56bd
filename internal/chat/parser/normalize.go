package parser

import "regexp"

var (
	reSurroundingQuotes = regexp.MustCompile(`^["']+|["']+$`)
	reTrailingPunct     = regexp.MustCompile(`[.!?,;:]+$`)
	reLeadingArticle    = regexp.MustCompile(`(?i)^(?:the|a|an)\s+`)
	reLeadingNoun       = regexp.MustCompile(`(?i)^(?:todo|task)(?:\s+|$)`)
	reWhitespaceRun     = regexp.MustCompile(`\s+`)

	reSuffixAsDone = regexp.MustCompile(`(?i)\s+(?:as\s+)?(?:done|complete|completed)\s*$`)
	reSuffixIsDone = regexp.MustCompile(`(?i)\s+is\s+(?:done|complete|completed)\s*$`)
)

// Normalize cleans a captured title fragment: surrounding quotes, trailing
// sentence punctuation, one leading article, one leading todo/task noun, and
// internal whitespace runs. Fragments shorter than 2 characters after
// cleaning are treated as absent and come back empty.
func Normalize(raw string) string {
	title := trim(raw)
	title = trim(reSurroundingQuotes.ReplaceAllString(title, ""))
	title = trim(reTrailingPunct.ReplaceAllString(title, ""))
	title = trim(reLeadingArticle.ReplaceAllString(title, ""))
	title = trim(reLeadingNoun.ReplaceAllString(title, ""))
	title = trim(reWhitespaceRun.ReplaceAllString(title, " "))
	if len(title) < 2 {
		return ""
	}
	return title
}

// stripCompletionSuffix removes "as done" / "is complete" style endings from
// a fragment captured by the complete recognizers, then normalizes.
func stripCompletionSuffix(raw string) string {
	title := trim(reSuffixAsDone.ReplaceAllString(raw, ""))
	title = trim(reSuffixIsDone.ReplaceAllString(title, ""))
	return Normalize(title)
}
