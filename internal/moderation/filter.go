// Package moderation screens user-written text for content that is not
// kid-safe and for prompt-injection attempts, before anything is persisted
// or forwarded to the AI generation service. All pattern state is read-only
// after package init, so a single Filter is safe for concurrent use.
package moderation

import (
	"log/slog"
	"math/rand"
	"regexp"
)

// Result describes the outcome of checking a single string.
// CleanedText and BlockedReasons are set only when IsClean is false.
type Result struct {
	IsClean        bool     `json:"isClean"`
	OriginalText   string   `json:"originalText"`
	CleanedText    string   `json:"cleanedText,omitempty"`
	BlockedReasons []string `json:"blockedReasons,omitempty"`
}

const (
	// ReasonSuspicious tags injection / markup attacks. Logged internally,
	// never echoed to the end user.
	ReasonSuspicious = "suspicious input detected"
	// ReasonInappropriate tags kid-unsafe vocabulary.
	ReasonInappropriate = "inappropriate content detected"
)

// RejectionMessage is the only text an end user ever sees when moderation
// blocks a request. It deliberately does not say which word tripped the
// filter.
const RejectionMessage = "Oops! Some words aren't allowed. Let's keep it fun and friendly!"

// filteredToken replaces spans matched by injection patterns.
const filteredToken = "[filtered]"

// injectionPatterns catch attempts to steer the downstream AI service or to
// smuggle executable markup into rendered output. Patterns are intentionally
// over-inclusive: a false positive just rewords a harmless sentence, a false
// negative lets an attack through.
var injectionPatterns = []*regexp.Regexp{
	// instruction override: verb ... qualifier ... noun within a short span
	regexp.MustCompile(`(?i)\b(?:ignore|disregard|forget|override)\s+(?:\w+\s+){0,2}(?:previous|above|all|the)\s+(?:\w+\s+){0,2}(?:instructions?|prompts?|rules?)\b`),
	// role hijack
	regexp.MustCompile(`(?i)\byou\s+are\s+now\b`),
	regexp.MustCompile(`(?i)\bsystem\s*:\s*you\b`),
	regexp.MustCompile(`(?i)\bnew\s+instructions?\b:?`),
	// markup / script injection
	regexp.MustCompile(`(?i)<\s*script\b[^>]*`),
	regexp.MustCompile(`(?i)javascript\s*:`),
	regexp.MustCompile(`(?i)\bon(?:load|error|click|mouse\w+)\s*=`),
}

// contentPatterns catch vocabulary that is not safe for a young audience.
// Multiword phrases are listed before their single-word prefixes so the whole
// phrase is replaced as one span. The profanity alternation repeats each
// letter ("f+u+c+k+") so elongated spellings are still caught.
var contentPatterns = []*regexp.Regexp{
	// violence / self-harm
	regexp.MustCompile(`(?i)\b(?:kill(?:ing)?|murder(?:er)?|stab(?:bing)?|shoot(?:ing)?|suicide|self[\s-]?harm|hurt\s+(?:yourself|myself|someone)|beat\s+(?:you|him|her|them)\s+up)\b`),
	// sexual / explicit
	regexp.MustCompile(`(?i)\b(?:sexy|sex|porn\w*|nudes?|naked|nsfw|strip(?:per|ping)?)\b`),
	// profanity, tolerant of elongated spellings
	regexp.MustCompile(`(?i)\b(?:f+u+c+k+\w*|s+h+i+t+\w*|b+i+t+c+h+\w*|a+s+s+h+o+l+e+\w*|d+a+m+n+(?:i+t+)?|b+a+s+t+a+r+d+|p+i+s+s+(?:e+d+)?)\b`),
	// bullying / derogatory
	regexp.MustCompile(`(?i)\b(?:stupid\s+idiot|hate\s+you|kill\s+yourself|stupid|idiot(?:ic)?|dumb(?:ass)?|loser|ugly|moron|pathetic|worthless)\b`),
	// substances
	regexp.MustCompile(`(?i)\b(?:drugs?|weed|marijuana|cocaine|heroin|meth|vap(?:e|ing)|cigarettes?|alcohol|drunk|beer|vodka|wasted)\b`),
}

// euphemisms are the friendly replacements for inappropriate spans. One is
// picked at random per matched span so cleaned text reads less mechanically.
var euphemisms = []string{
	"awesome stuff",
	"cool things",
	"amazing content",
	"epic moments",
	"fun times",
}

// Filter applies both pattern families to untrusted text. The zero value is
// not usable; call NewFilter.
type Filter struct {
	intn   func(n int) int
	logger *slog.Logger
}

// Option configures a Filter.
type Option func(*Filter)

// WithRandSource supplies the randomness used for euphemism selection.
// Tests pass a seeded source to pin the cleaned output.
func WithRandSource(r *rand.Rand) Option {
	return func(f *Filter) { f.intn = r.Intn }
}

// WithLogger enables warn-level logging of rejected text. Production wires
// the process logger here; without it rejections are silent (the caller still
// sees the Result).
func WithLogger(l *slog.Logger) Option {
	return func(f *Filter) { f.logger = l }
}

func NewFilter(opts ...Option) *Filter {
	f := &Filter{intn: rand.Intn}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CheckText inspects a single string. Empty input is clean. The original
// text is never mutated; all replacement happens on a working copy returned
// as CleanedText. Detection is deterministic across calls; only the chosen
// euphemism wording varies.
func (f *Filter) CheckText(text string) Result {
	if text == "" {
		return Result{IsClean: true, OriginalText: ""}
	}

	cleaned := text
	var suspicious, inappropriate bool

	for _, pat := range injectionPatterns {
		if !pat.MatchString(text) {
			continue
		}
		suspicious = true
		cleaned = pat.ReplaceAllString(cleaned, filteredToken)
	}

	// content patterns are evaluated against the original text so earlier
	// replacements cannot mask or create matches
	for _, pat := range contentPatterns {
		if !pat.MatchString(text) {
			continue
		}
		inappropriate = true
		cleaned = pat.ReplaceAllStringFunc(cleaned, func(string) string {
			return "[" + euphemisms[f.intn(len(euphemisms))] + "]"
		})
	}

	if !suspicious && !inappropriate {
		return Result{IsClean: true, OriginalText: text}
	}

	var reasons []string
	if suspicious {
		reasons = append(reasons, ReasonSuspicious)
	}
	if inappropriate {
		reasons = append(reasons, ReasonInappropriate)
	}

	if f.logger != nil {
		f.logger.Warn("unsafe content blocked",
			"reasons", reasons,
			"preview", preview(text, 50),
		)
	}

	return Result{
		IsClean:        false,
		OriginalText:   text,
		CleanedText:    cleaned,
		BlockedReasons: reasons,
	}
}

// preview truncates text for logging without splitting a multibyte rune.
func preview(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
