package inject

import "regexp"

// MethodDefined reports whether text defines a method with the given name.
// "def deploy_all" does not count as a definition of "deploy".
func MethodDefined(text, method string) bool {
	re := regexp.MustCompile(`(?m)^[ \t]*def ` + regexp.QuoteMeta(method) + `\b`)
	return re.MatchString(text)
}

// Required reports whether text has a require_relative of path, with
// either quote style.
func Required(text, path string) bool {
	re := regexp.MustCompile(`require_relative\s+['"]` + regexp.QuoteMeta(path) + `['"]`)
	return re.MatchString(text)
}
