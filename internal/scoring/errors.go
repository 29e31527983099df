package scoring

import (
	"strings"
)

// UnreachableMessage is shown instead of raw transport errors.
const UnreachableMessage = "Scoring service unreachable. Check that it is running and try again."

var transportMarkers = []string{"timeout", "connection", "network", "fetch", "unreachable"}

var notFoundMarkers = []string{"not found", "404", "does not exist"}

// IsTransport reports whether err looks like a connectivity or timeout
// failure, by substring match on the error text.
func IsTransport(err error) bool {
	return matchesAny(err, transportMarkers)
}

// IsNotFound reports whether err is a not-found-class failure, meaning the
// card was deleted out from under the caller.
func IsNotFound(err error) bool {
	return matchesAny(err, notFoundMarkers)
}

// UserMessage maps a scoring failure to user-facing text: a friendly
// message for connectivity issues, the raw error text otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if IsTransport(err) {
		return UnreachableMessage
	}
	return err.Error()
}

func matchesAny(err error, markers []string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, m := range markers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
