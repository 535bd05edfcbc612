// Package naming derives the casing, path and indentation forms of a
// command identifier.
//
// An identifier such as "config-set", "Config::Set" or "config/set" is a
// sequence of namespace segments. Every form below is recomputed from the
// raw identifier on each call.
package naming

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IndentUnit is the indentation added per namespace level.
const IndentUnit = "  "

var (
	acronymBoundaryRe = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	wordBoundaryRe    = regexp.MustCompile(`([a-z\d])([A-Z])`)
	repeatedUnderRe   = regexp.MustCompile(`_+`)
	segmentRe         = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_ ]*$`)

	separators = strings.NewReplacer("::", "/", "-", "/")
)

// ErrEmpty is returned by Validate for a blank identifier.
var ErrEmpty = errors.New("name is empty")

// Name is a user supplied command or subcommand identifier.
type Name string

// String returns the raw identifier.
func (n Name) String() string {
	return string(n)
}

// Segments returns the snake_cased namespace segments of the identifier.
// Empty segments are dropped.
func (n Name) Segments() []string {
	raw := separators.Replace(strings.TrimSpace(string(n)))
	var segments []string
	for _, part := range strings.Split(raw, "/") {
		if s := snakeCase(part); s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// Underscored returns the segments joined by underscores, e.g.
// "config-set" -> "config_set". This is the Ruby method name form.
func (n Name) Underscored() string {
	return strings.Join(n.Segments(), "_")
}

// ConstantParts returns each segment camelized, e.g. "add_user-list" ->
// ["AddUser", "List"].
func (n Name) ConstantParts() []string {
	segments := n.Segments()
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, camelize(s))
	}
	return parts
}

// Constant returns the hierarchical symbol form, e.g. "config-set" ->
// "Config::Set".
func (n Name) Constant() string {
	return strings.Join(n.ConstantParts(), "::")
}

// Path returns the segments joined by path separators, e.g. "config-set"
// -> "config/set". Always uses forward slashes since it is also used in
// require_relative statements.
func (n Name) Path() string {
	return strings.Join(n.Segments(), "/")
}

// Depth is the number of namespace levels of the constant form.
func (n Name) Depth() int {
	return len(n.ConstantParts())
}

// Indent returns IndentUnit repeated once per namespace level.
func (n Name) Indent() string {
	return Indent(n.Depth())
}

// Indent returns IndentUnit repeated depth times.
func Indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(IndentUnit, depth)
}

// Validate checks that raw is a usable identifier: non-blank, and made of
// namespace segments that each start with a letter and contain only
// letters, digits, underscores or spaces.
func Validate(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ErrEmpty
	}
	for _, part := range strings.Split(separators.Replace(trimmed), "/") {
		if part == "" {
			return fmt.Errorf("name %q has an empty segment", raw)
		}
		if !segmentRe.MatchString(part) {
			return fmt.Errorf("name %q: segment %q must start with a letter and contain only letters, digits or underscores", raw, part)
		}
	}
	return nil
}

func snakeCase(s string) string {
	s = strings.TrimSpace(s)
	s = acronymBoundaryRe.ReplaceAllString(s, "${1}_${2}")
	s = wordBoundaryRe.ReplaceAllString(s, "${1}_${2}")
	s = strings.ReplaceAll(s, " ", "_")
	s = repeatedUnderRe.ReplaceAllString(s, "_")
	return strings.Trim(strings.ToLower(s), "_")
}

func camelize(snake string) string {
	// Casers are stateful, so one per call.
	title := cases.Title(language.Und)
	var sb strings.Builder
	for _, word := range strings.Split(snake, "_") {
		if word == "" {
			continue
		}
		sb.WriteString(title.String(word))
	}
	return sb.String()
}
