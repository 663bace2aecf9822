package env

import (
	"net/url"
	"strconv"
	"strings"
)

// secretMarkers flag target names whose values must not appear in
// reports or logs.
var secretMarkers = []string{
	"PASSWORD", "PASSWD", "SECRET", "TOKEN", "API_KEY", "APIKEY", "PRIVATE_KEY", "CREDENTIAL",
}

// IsSecretName reports whether a target name looks like it holds
// a credential.
func IsSecretName(name string) bool {
	upper := strings.ToUpper(name)
	for _, m := range secretMarkers {
		if strings.Contains(upper, m) {
			return true
		}
	}
	return false
}

// Mask hides a value. Values of 8 characters or fewer are fully
// masked; longer values keep a quarter of their characters, at most
// 4, at each end.
func Mask(value string) string {
	runes := []rune(value)
	n := len(runes)
	if n <= 8 {
		return strings.Repeat("*", n)
	}
	show := min(4, n/4)
	return string(runes[:show]) + strings.Repeat("*", n-2*show) + string(runes[n-show:])
}

// Redact replaces every occurrence of secret in text with its
// masked form, including the Go-quoted form messages use for
// string values.
func Redact(text, secret string) string {
	if secret == "" {
		return text
	}
	masked := Mask(secret)
	text = strings.ReplaceAll(text, strconv.Quote(secret), strconv.Quote(masked))
	return strings.ReplaceAll(text, secret, masked)
}

// MaskURL masks the password of a URL with user info. Values that
// do not parse are returned unchanged.
func MaskURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.User == nil {
		return rawURL
	}
	if password, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), Mask(password))
	}
	return u.String()
}
