package clinicalnote

import "strings"

// Markers that introduce a diagnosis line inside a CONDUCTA body, matched
// case-insensitively.
var diagnosisMarkers = []string{"diagnóstico", "dx:", "impresión"}

var bulletPrefixes = []string{"-", "*", "•"}

// ExtractDiagnosis pulls a presumptive diagnosis out of a CONDUCTA section
// body. It returns the text following the first line containing one of the
// markers (Diagnóstico, Dx:, Impresión), continuing over subsequent lines
// until a blank line or a bullet item. When no marker exists it falls back to
// the first bullet-prefixed line. The boolean reports whether anything was
// found; a heuristic miss is ("", false), never an error.
func ExtractDiagnosis(body string) (string, bool) {
	lines := strings.Split(body, "\n")

	for i, line := range lines {
		marker := matchMarker(line)
		if marker == "" {
			continue
		}
		lower := strings.ToLower(line)
		rest := line[strings.Index(lower, marker)+len(marker):]
		// Qualified markers like "Diagnóstico presuntivo:" carry the value
		// after the colon, not after the marker word itself.
		if c := strings.Index(rest, ":"); c >= 0 {
			rest = rest[c+1:]
		}

		parts := []string{strings.TrimSpace(rest)}
		for _, cont := range lines[i+1:] {
			cont = strings.TrimSpace(cont)
			if cont == "" || isBullet(cont) {
				break
			}
			parts = append(parts, cont)
		}
		text := strings.TrimSpace(strings.Join(parts, "\n"))
		if text == "" {
			return "", false
		}
		return text, true
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if isBullet(line) {
			text := strings.TrimSpace(strings.TrimLeft(line, "-*• \t"))
			if text != "" {
				return text, true
			}
		}
	}

	return "", false
}

func matchMarker(line string) string {
	lower := strings.ToLower(line)
	for _, m := range diagnosisMarkers {
		if strings.Contains(lower, m) {
			return m
		}
	}
	return ""
}

func isBullet(line string) bool {
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
