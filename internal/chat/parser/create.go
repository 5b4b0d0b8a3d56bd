package parser

import (
	"regexp"
	"strings"
)

// DefaultTitle is the placeholder used when no usable title survives
// extraction. The dispatcher treats it as "ask the user instead of creating".
const DefaultTitle = "New Task"

// Segmentation constants. Heuristics carried over from the original
// behavior; tune here, not inline.
const (
	minSplitTitleLen = 3  // connective split: left half must exceed this
	minSplitDescLen  = 5  // connective split: right half must exceed this
	longMessageWords = 8  // above this, force a title/description split
	titleShareTenths = 6  // title takes ~60% of the words...
	maxTitleWords    = 7  // ...capped at this many
	minTrailingDesc  = 10 // secondary pass: leftover text must exceed this
)

// Explicit description markers, tried in order.
var descMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)description[:\s]+["']?([^"']+)["']?`),
	regexp.MustCompile(`(?i)desc[:\s]+["']?([^"']+)["']?`),
	regexp.MustCompile(`(?i)(?:with\s+description|about|for|regarding)[:\s]+["']?([^"']+)["']?`),
}

var (
	// Title markers: a quoted phrase is captured whole; a bare phrase ends at
	// the next whitespace, punctuation, or field keyword.
	reTitleMarker = regexp.MustCompile(`(?i)(?:called|named|titled|title:)\s+["']?([^"']+?)["']?(?:\s|$|,|\.|description|due|priority)`)
	reTitleNoun   = regexp.MustCompile(`(?i)(?:create|add|new|make)\s+(?:(?:a|an)\s+)?(?:new\s+)?(?:todo|task)\s+(?:(?:called|named|titled)\s+)?["']?([^"'.!?]+?)["']?(?:\s|$|,|\.)`)

	reCreateLead = regexp.MustCompile(`(?i)^(?:create|add|new|make)\s+(?:(?:a|an)\s+)?(?:new\s+)?(?:todo|task)?\s*(?:(?:called|named|titled)\s*)?`)

	reInlinePriority = regexp.MustCompile(`(?i)(?:high|medium|low)[\s-]+priority`)
	rePriorityLabel  = regexp.MustCompile(`(?i)priority[:\s]+(?:high|medium|low)`)
	reDueSpan        = regexp.MustCompile(`(?i)due[:\s]+[^"']+`)

	reDescKeyword = regexp.MustCompile(`(?i)description|desc|with|about|for|regarding`)

	connectiveSplitters = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\s+and\s+`),
		regexp.MustCompile(`(?i)\s+then\s+`),
		regexp.MustCompile(`(?i)\s+also\s+`),
	}
	reCommaBeforeCapital = regexp.MustCompile(`,\s+([A-Z])`)

	reTrailingComma      = regexp.MustCompile(`[,;]\s*$`)
	reTrailingConnective = regexp.MustCompile(`(?i)\s+(?:and|or|the|a|an)\s*$`)
	reLeadingComma       = regexp.MustCompile(`^[,;]\s*`)
	reLeadingConnective  = regexp.MustCompile(`(?i)^(?:and|or|the|a|an|to|for|with|about)\s+`)
	reConnectiveOnly     = regexp.MustCompile(`(?i)^(?:and|or|the|a|an|to|for|with|about)$`)
	reQuoteChars         = regexp.MustCompile(`["']`)
	reSentenceEnd        = regexp.MustCompile(`[.!?]`)
)

// extractCreateFields pulls a title and an optional description out of a
// create utterance. Steps, in order: explicit description markers, explicit
// title markers, then heuristic segmentation of whatever text remains after
// stripping the verb/article/noun lead and any priority/due-date spans.
func (p *Parser) extractCreateFields(message string) (string, string) {
	description := ""
	messageForTitle := message

	for _, re := range descMarkers {
		if m := re.FindStringSubmatch(message); m != nil && trim(m[1]) != "" {
			description = trim(m[1])
			// Keep the marker span out of title extraction.
			messageForTitle = trim(strings.Replace(message, m[0], "", 1))
			break
		}
	}

	title := ""
	if m := reTitleMarker.FindStringSubmatch(messageForTitle); m != nil {
		title = trim(m[1])
	}
	if title == "" {
		if m := reTitleNoun.FindStringSubmatch(messageForTitle); m != nil {
			title = trim(m[1])
		}
	}

	if title == "" {
		title, description = p.segmentRemainder(messageForTitle, description)
	}

	title = trim(reTrailingComma.ReplaceAllString(title, ""))
	title = trim(reTrailingConnective.ReplaceAllString(title, ""))

	if description == "" {
		description = trailingDescription(message, title)
	}

	if description != "" {
		description = trim(reLeadingComma.ReplaceAllString(description, ""))
		if len(description) < minSplitTitleLen || reConnectiveOnly.MatchString(description) {
			description = ""
		}
	}

	title = Normalize(title)
	if title == "" {
		title = DefaultTitle
	}
	return title, description
}

// segmentRemainder is the fallback title extraction: strip the leading
// create verb + article + noun, strip priority/due spans, then split the
// remainder into title and description.
func (p *Parser) segmentRemainder(messageForTitle, description string) (string, string) {
	afterAction := trim(reCreateLead.ReplaceAllString(messageForTitle, ""))
	afterAction = stripPriorityAndDue(afterAction)

	if description != "" {
		// An explicit description was found elsewhere in the message; the
		// title is whatever precedes the first description keyword.
		if loc := reDescKeyword.FindStringIndex(afterAction); loc != nil && loc[0] > 0 {
			return stripQuotes(trim(afterAction[:loc[0]])), description
		}
		return stripQuotes(firstSentence(afterAction)), description
	}

	// Natural splitting on connective words: the first connective that
	// yields two qualifying halves wins.
	for _, re := range connectiveSplitters {
		parts := re.Split(afterAction, -1)
		if len(parts) > 1 && len(trim(parts[0])) > minSplitTitleLen && len(trim(parts[1])) > minSplitDescLen {
			title := stripQuotes(trim(parts[0]))
			desc := firstSentence(stripQuotes(trim(strings.Join(parts[1:], " "))))
			return title, desc
		}
	}
	if loc := reCommaBeforeCapital.FindStringSubmatchIndex(afterAction); loc != nil {
		left, right := trim(afterAction[:loc[0]]), trim(afterAction[loc[2]:])
		if len(left) > minSplitTitleLen && len(right) > minSplitDescLen {
			return stripQuotes(left), firstSentence(stripQuotes(right))
		}
	}

	words := strings.Fields(afterAction)
	if len(words) > longMessageWords {
		n := len(words) * titleShareTenths / 10
		if n > maxTitleWords {
			n = maxTitleWords
		}
		title := stripQuotes(trim(strings.Join(words[:n], " ")))
		desc := stripQuotes(trim(strings.Join(words[n:], " ")))
		return title, desc
	}

	return firstSentence(stripQuotes(afterAction)), ""
}

// trailingDescription is the secondary description pass: everything after
// the title in the original message, minus priority/due spans, becomes the
// description when enough meaningful text remains.
func trailingDescription(message, title string) string {
	if title == "" {
		return ""
	}
	idx := strings.Index(strings.ToLower(message), strings.ToLower(title))
	if idx < 0 {
		return ""
	}
	after := trim(message[idx+len(title):])
	after = stripPriorityAndDue(after)
	if len(after) <= minTrailingDesc {
		return ""
	}
	after = trim(reLeadingConnective.ReplaceAllString(after, ""))
	if len(after) <= minTrailingDesc {
		return ""
	}
	return firstSentence(after)
}

func stripPriorityAndDue(s string) string {
	s = reInlinePriority.ReplaceAllString(s, "")
	s = rePriorityLabel.ReplaceAllString(s, "")
	s = reDueSpan.ReplaceAllString(s, "")
	return trim(s)
}

func stripQuotes(s string) string {
	return trim(reQuoteChars.ReplaceAllString(s, ""))
}

// firstSentence returns the text up to the first sentence terminator.
func firstSentence(s string) string {
	if loc := reSentenceEnd.FindStringIndex(s); loc != nil {
		return trim(s[:loc[0]])
	}
	return trim(s)
}
