// Package topics checks topic name grammar. A fully qualified name is
// {persistent|non-persistent}://tenant/namespace/topic; a bare local name is
// also accepted and resolved against defaults by the surrounding system.
package topics

import "regexp"

var (
	fullyQualified = regexp.MustCompile(`^(persistent|non-persistent)://[^/]+/[^/]+/[^/]+$`)
	localName      = regexp.MustCompile(`^[-A-Za-z0-9._]+$`)
)

// IsValid reports whether the topic name is well formed.
func IsValid(topic string) bool {
	return fullyQualified.MatchString(topic) || localName.MatchString(topic)
}
