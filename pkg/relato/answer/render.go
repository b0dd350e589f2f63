package answer

import (
	"fmt"
	"strings"
)

// Render formats an answer the way the interactive surface prints it.
func (a Answer) Render() string {
	switch a.Kind {
	case KindVerdict:
		if a.Verdict {
			return "Answer: Yes"
		}
		return "Answer: No (or unknown)"
	case KindNotUnderstood:
		return "Could not understand query format."
	}

	if len(a.Values) == 0 {
		return "Answer: No matches found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", a.Label)
	for _, val := range a.Values {
		fmt.Fprintf(&b, "  - %s\n", val)
	}
	return strings.TrimRight(b.String(), "\n")
}
