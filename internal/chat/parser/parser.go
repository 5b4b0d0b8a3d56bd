package parser

import (
	"regexp"
	"strings"
	"time"

	"todo-chat-api/internal/model"
	"todo-chat-api/pkg/dates"
)

// Action is the classified intent of an utterance. Unrecognized input always
// classifies as ActionUnknown; parsing never fails.
type Action string

const (
	ActionList     Action = "list"
	ActionCreate   Action = "create"
	ActionComplete Action = "complete"
	ActionDelete   Action = "delete"
	ActionUpdate   Action = "update"
	ActionCount    Action = "count"
	ActionHelp     Action = "help"
	ActionUnknown  Action = "unknown"
)

// Command is the structured result of parsing one utterance. Optional fields
// use the empty string for absence; TaskTitle is never set to a value whose
// normalized length is below 2 characters.
type Command struct {
	Action      Action
	TaskTitle   string
	Description string
	Priority    model.Priority
	DueDate     string // YYYY-MM-DD
}

// Intent recognizers, evaluated in order against the lower-cased utterance.
// The first match governs, so ordering is part of the contract.
var (
	reListStart    = regexp.MustCompile(`^(?:show|list|display|get|what are|what's).*(?:todo|task|todos|tasks)`)
	reListAnywhere = regexp.MustCompile(`(?:show|list|display|get).*(?:my|all).*(?:todo|task|todos|tasks)`)

	reCreateStart    = regexp.MustCompile(`^(?:create|add|new|make).*(?:todo|task)`)
	reCreateAnywhere = regexp.MustCompile(`(?:create|add|new|make).*(?:a|an).*(?:todo|task)`)

	reCompleteStart    = regexp.MustCompile(`^(?:complete|finish|done|mark.*done|mark.*complete)`)
	reCompleteAnywhere = regexp.MustCompile(`(?:complete|finish|done|mark).*(?:todo|task)`)

	reDeleteStart    = regexp.MustCompile(`^(?:delete|remove|erase)`)
	reDeleteAnywhere = regexp.MustCompile(`(?:delete|remove|erase).*(?:todo|task)`)

	reUpdateStart    = regexp.MustCompile(`^(?:update|edit|change|modify)`)
	reUpdateAnywhere = regexp.MustCompile(`(?:update|edit|change|modify).*(?:todo|task)`)

	reCountStart    = regexp.MustCompile(`^(?:count|how many)`)
	reCountAnywhere = regexp.MustCompile(`(?:count|how many).*(?:todo|task)`)

	reHelpStart = regexp.MustCompile(`^(?:help|what can you do)`)
)

// Due-date patterns, tried in order. The first pattern that matches AND
// parses to a valid calendar date wins.
var (
	reDueISO      = regexp.MustCompile(`(?i)due\s+(?:on\s+)?(\d{4}-\d{2}-\d{2})`)
	reDueSpelled  = regexp.MustCompile(`(?i)due\s+(?:on\s+)?(\w+\s+\d{1,2},?\s+\d{4})`)
	reBareISO     = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	reDueRelative = regexp.MustCompile(`(?i)due\s+(?:on\s+)?(today|tomorrow|in\s+\d+\s+(?:days?|weeks?|months?)|next\s+[a-z]+)`)
)

// Title-fragment patterns for complete/delete/update.
var (
	reMarkAsDone   = regexp.MustCompile(`(?i)^\s*mark\s+["']?(.+?)["']?\s+(?:as\s+)?(?:done|complete|completed)\s*$`)
	reCompleteNoun = regexp.MustCompile(`(?i)(?:complete|finish)\s+(?:the\s+)?(?:todo|task)\s+["']?(.+?)["']?\s*(?:[.!?,;]|$)`)
	reCompleteVerb = regexp.MustCompile(`(?i)^(?:complete|finish|done|mark)\s+["']?(.+?)["']?\s*(?:[.!?,;]|$)`)

	reDeleteNoun = regexp.MustCompile(`(?i)(?:delete|remove|erase)\s+(?:the\s+)?(?:todo|task)\s+["']?(.+?)["']?\s*(?:[.!?,;]|$)`)
	reDeleteVerb = regexp.MustCompile(`(?i)^(?:delete|remove|erase)\s+["']?(.+?)["']?\s*(?:[.!?,;]|$)`)

	reUpdateNoun = regexp.MustCompile(`(?i)(?:todo|task)\s+["']?([^"'.!?]+)`)
	reUpdateVerb = regexp.MustCompile(`(?i)^(?:update|edit|change|modify)\s+["']?([^"'.!?]+)`)
)

// Parser turns free-text utterances into Commands. It holds no mutable
// state; parsing is deterministic for a fixed reference time.
type Parser struct {
	dates *dates.Parser
	now   func() time.Time
}

// New creates a Parser. The dates parser supplies due-date normalization and
// the timezone for relative phrases.
func New(dp *dates.Parser) *Parser {
	return &Parser{dates: dp, now: time.Now}
}

// Parse classifies the utterance and extracts structured fields. It never
// returns an error: malformed input yields ActionUnknown or absent fields.
func (p *Parser) Parse(message string) Command {
	return p.ParseAt(message, p.now())
}

// ParseAt is Parse with an explicit reference time for relative due dates.
func (p *Parser) ParseAt(message string, base time.Time) Command {
	lower := strings.ToLower(trim(message))

	priority := detectPriority(lower)
	dueDate := p.detectDueDate(message, base)

	switch {
	case reListStart.MatchString(lower) || reListAnywhere.MatchString(lower):
		return Command{Action: ActionList}

	case reCreateStart.MatchString(lower) || reCreateAnywhere.MatchString(lower):
		title, description := p.extractCreateFields(message)
		return Command{
			Action:      ActionCreate,
			TaskTitle:   title,
			Description: description,
			Priority:    priority,
			DueDate:     dueDate,
		}

	case reCompleteStart.MatchString(lower) || reCompleteAnywhere.MatchString(lower):
		return Command{Action: ActionComplete, TaskTitle: extractCompleteTitle(message)}

	case reDeleteStart.MatchString(lower) || reDeleteAnywhere.MatchString(lower):
		return Command{Action: ActionDelete, TaskTitle: extractDeleteTitle(message)}

	case reUpdateStart.MatchString(lower) || reUpdateAnywhere.MatchString(lower):
		return Command{
			Action:    ActionUpdate,
			TaskTitle: extractUpdateTitle(message),
			Priority:  priority,
			DueDate:   dueDate,
		}

	case reCountStart.MatchString(lower) || reCountAnywhere.MatchString(lower):
		return Command{Action: ActionCount}

	case reHelpStart.MatchString(lower):
		return Command{Action: ActionHelp}
	}

	return Command{Action: ActionUnknown}
}

// detectPriority scans for priority keywords. Precedence is high, low,
// medium; at most one priority is returned.
func detectPriority(lower string) model.Priority {
	switch {
	case strings.Contains(lower, "high priority") || strings.Contains(lower, "high-priority"):
		return model.PriorityHigh
	case strings.Contains(lower, "low priority") || strings.Contains(lower, "low-priority"):
		return model.PriorityLow
	case strings.Contains(lower, "medium priority") || strings.Contains(lower, "medium-priority"):
		return model.PriorityMedium
	}
	return ""
}

// detectDueDate tries the explicit date patterns in order, then relative
// phrases. Unparseable dates are skipped silently, never surfaced as errors.
func (p *Parser) detectDueDate(message string, base time.Time) string {
	for _, re := range []*regexp.Regexp{reDueISO, reDueSpelled} {
		if m := re.FindStringSubmatch(message); m != nil {
			if normalized, err := p.dates.ParseExplicit(m[1]); err == nil {
				return normalized
			}
		}
	}
	if m := reBareISO.FindString(message); m != "" {
		if normalized, err := p.dates.ParseExplicit(m); err == nil {
			return normalized
		}
	}
	if m := reDueRelative.FindStringSubmatch(message); m != nil {
		phrase := reWhitespaceRun.ReplaceAllString(m[1], " ")
		if t, err := p.dates.ParseRelative(phrase, base); err == nil {
			return p.dates.FormatDay(t)
		}
	}
	return ""
}

func extractCompleteTitle(message string) string {
	if m := reMarkAsDone.FindStringSubmatch(message); m != nil {
		if title := stripCompletionSuffix(m[1]); title != "" {
			return title
		}
	}
	if m := reCompleteNoun.FindStringSubmatch(message); m != nil {
		if title := stripCompletionSuffix(m[1]); title != "" {
			return title
		}
	}
	if m := reCompleteVerb.FindStringSubmatch(message); m != nil {
		if title := stripCompletionSuffix(m[1]); title != "" {
			return title
		}
	}
	return ""
}

func extractDeleteTitle(message string) string {
	if m := reDeleteNoun.FindStringSubmatch(message); m != nil {
		if title := Normalize(m[1]); title != "" {
			return title
		}
	}
	if m := reDeleteVerb.FindStringSubmatch(message); m != nil {
		if title := Normalize(m[1]); title != "" {
			return title
		}
	}
	return ""
}

func extractUpdateTitle(message string) string {
	if m := reUpdateNoun.FindStringSubmatch(message); m != nil {
		if title := Normalize(m[1]); title != "" {
			return title
		}
	}
	if m := reUpdateVerb.FindStringSubmatch(message); m != nil {
		if title := Normalize(m[1]); title != "" {
			return title
		}
	}
	return ""
}

func trim(s string) string { return strings.TrimSpace(s) }
