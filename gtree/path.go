package gtree

import "strings"

// pathDelimiters are the characters a path string may be split on.
const pathDelimiters = "/\\|"

// SplitPath breaks a path into its elements, splitting on any of the
// '/', '\' or '|' delimiters. Empty elements are dropped, so leading,
// trailing and doubled delimiters are tolerated.
func SplitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return strings.ContainsRune(pathDelimiters, r)
	})
}

// JoinPath assembles elements into a canonical path, '/' separated with
// leading and trailing separators. No elements yields the empty string.
func JoinPath(elements ...string) string {
	if len(elements) == 0 {
		return ""
	}
	return "/" + strings.Join(elements, "/") + "/"
}
