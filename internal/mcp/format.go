package mcp

import "errors"

// NoPackageIdentity is reported in place of a family name for unpackaged
// processes.
const NoPackageIdentity = "No package identity"

// Greeting is the reply of the greet tool.
func Greeting(name string) string {
	return "Hello, " + name + "! You've been greeted from Go!"
}

// NotificationFields maps a title and body onto builder fields: a blank body
// yields a single-line toast and a blank title falls back to defaultTitle.
func NotificationFields(title, body, defaultTitle string) ([]string, error) {
	if title == "" {
		title = defaultTitle
	}
	switch {
	case title == "" && body == "":
		return nil, errors.New("nothing to show: title and body are empty")
	case body == "":
		return []string{title}, nil
	case title == "":
		return []string{body}, nil
	default:
		return []string{title, body}, nil
	}
}
