// Package xsbio loads and saves Sokoban levels: the XSB text format with
// its run-length-encoded variant, collection files holding multiple titled
// levels, and LURD solution strings. It produces and consumes plain level
// strings; the actual grid semantics live in the board parser.
package xsbio

import (
	"regexp"
	"strconv"
	"strings"
)

var reRLERun = regexp.MustCompile(`\d+[#@+$*.\-_ ]`)
var reRLEWall = regexp.MustCompile(`\d+#`)

// DecodeRLE expands a run-length-encoded level string into standard XSB.
// Digits give the repeat count of the following character, "|" separates
// rows, and "-"/"_" stand for floor.
//
//	DecodeRLE("4#|#.@-#|#$*-#|4#") == "####\n#.@ #\n#$* #\n####"
func DecodeRLE(rle string) string {
	// Multi-line RLE input is joined into one row stream.
	lines := strings.Split(strings.TrimSpace(rle), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(strings.TrimSpace(line), "|")
	}
	joined := strings.Join(lines, "|")

	rows := strings.Split(joined, "|")
	decoded := make([]string, len(rows))
	for i, row := range rows {
		decoded[i] = decodeRLERow(row)
	}
	return strings.Join(decoded, "\n")
}

func decodeRLERow(row string) string {
	var sb strings.Builder
	i := 0
	for i < len(row) {
		count := 0
		for i < len(row) && row[i] >= '0' && row[i] <= '9' {
			count = count*10 + int(row[i]-'0')
			i++
		}
		if i >= len(row) {
			break
		}
		ch := row[i]
		i++
		if ch == '-' || ch == '_' {
			ch = ' '
		}
		if count == 0 {
			count = 1
		}
		for j := 0; j < count; j++ {
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}

// EncodeRLE run-length encodes an XSB level string into a single line with
// "|" row separators and "-" for floor.
func EncodeRLE(levelText string) string {
	lines := strings.Split(strings.TrimSpace(levelText), "\n")
	encoded := make([]string, len(lines))
	for i, line := range lines {
		encoded[i] = encodeRLERow(line)
	}
	return strings.Join(encoded, "|")
}

func encodeRLERow(row string) string {
	row = strings.TrimRight(row, " ")
	var sb strings.Builder
	i := 0
	for i < len(row) {
		ch := row[i]
		count := 1
		for i+count < len(row) && row[i+count] == ch {
			count++
		}
		if ch == ' ' {
			ch = '-'
		}
		if count > 1 {
			sb.WriteString(strconv.Itoa(count))
		}
		sb.WriteByte(ch)
		i += count
	}
	return sb.String()
}

// IsRLE heuristically decides whether a level string is RLE encoded: a "|"
// row separator, or a run count in front of a level character.
func IsRLE(levelText string) bool {
	s := strings.TrimSpace(levelText)
	if strings.Contains(s, "|") {
		return true
	}
	if reRLERun.MatchString(s) {
		return true
	}
	if !strings.Contains(s, "\n") && strings.Contains(s, "#") {
		return reRLEWall.MatchString(s)
	}
	return false
}
