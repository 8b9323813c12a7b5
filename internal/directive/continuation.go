package directive

import "strings"

// JoinContinued joins lines[start] with the lines that follow it for as long
// as the accumulated text ends in a backslash. The backslashes are dropped.
// It returns the joined text and the number of physical lines consumed,
// which is always at least one.
func JoinContinued(lines []string, start int) (string, int) {
	var b strings.Builder
	i := start
	for {
		line := strings.TrimRight(lines[i], " \t\r")
		if !strings.HasSuffix(line, `\`) {
			b.WriteString(lines[i])
			return b.String(), i - start + 1
		}
		b.WriteString(line[:len(line)-1])
		if i+1 >= len(lines) {
			return b.String(), i - start + 1
		}
		i++
	}
}

// Continues reports whether text ends in a continuation marker.
func Continues(text string) bool {
	return strings.HasSuffix(strings.TrimRight(text, " \t\r"), `\`)
}
