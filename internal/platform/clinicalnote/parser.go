// Package clinicalnote parses free-text evolution notes written against the
// residency's fixed seven-section template. Parsing is best-effort: malformed
// or partial notes degrade to empty sections, never to errors, because the
// callers must stay usable against historical hand-typed data.
package clinicalnote

import "strings"

// Section headers in the order the template prescribes them.
const (
	HeaderDatos        = "DATOS"
	HeaderAntecedentes = "ANTECEDENTES"
	HeaderEnfermedad   = "ENFERMEDAD ACTUAL"
	HeaderEstudios     = "ESTUDIOS COMPLEMENTARIOS"
	HeaderExamen       = "EXAMEN FÍSICO"
	HeaderConducta     = "CONDUCTA"
	HeaderPendientes   = "PENDIENTES"
)

var sectionHeaders = []string{
	HeaderDatos,
	HeaderAntecedentes,
	HeaderEnfermedad,
	HeaderEstudios,
	HeaderExamen,
	HeaderConducta,
	HeaderPendientes,
}

// Note holds the seven template sections of an evolution note. A section whose
// header is absent, or whose body could not be bounded by the next header in
// template order, is the empty string.
type Note struct {
	Datos            string `json:"datos"`
	Antecedentes     string `json:"antecedentes"`
	EnfermedadActual string `json:"enfermedad_actual"`
	Estudios         string `json:"estudios"`
	ExamenFisico     string `json:"examen_fisico"`
	Conducta         string `json:"conducta"`
	Pendientes       string `json:"pendientes"`
}

// Datos holds the labeled identity fields extracted from the DATOS section.
// Absent labels are empty strings.
type Datos struct {
	Paciente string `json:"paciente"`
	DNI      string `json:"dni"`
	Edad     string `json:"edad"`
	Cama     string `json:"cama"`
}

// Parse splits a note into its template sections. Extraction is ordered and
// positional: each header is matched at its first occurrence left to right,
// the search for header N starting after header N-1's match, and a section's
// body is the text strictly between its header and the immediately following
// header. The final section runs to end of input. A section that cannot be
// bounded that way stays empty; it never absorbs text belonging to a later
// section, even when headers repeat inside bodies.
func Parse(text string) Note {
	bodies := make([]string, len(sectionHeaders))

	pos := 0
	for i, header := range sectionHeaders {
		idx := strings.Index(text[pos:], header)
		if idx < 0 {
			continue
		}
		start := pos + idx + len(header)
		pos = start

		end := len(text)
		if i < len(sectionHeaders)-1 {
			next := strings.Index(text[start:], sectionHeaders[i+1])
			if next < 0 {
				// Header present but the closing header is not: the body
				// cannot be bounded, so the section stays empty.
				continue
			}
			end = start + next
		}
		bodies[i] = trimBody(text[start:end])
	}

	return Note{
		Datos:            bodies[0],
		Antecedentes:     bodies[1],
		EnfermedadActual: bodies[2],
		Estudios:         bodies[3],
		ExamenFisico:     bodies[4],
		Conducta:         bodies[5],
		Pendientes:       bodies[6],
	}
}

// ParseDatos extracts the PACIENTE/DNI/EDAD/CAMA fields from a DATOS section
// body. Labels are single-line "LABEL: value" pairs; a value is only the
// remainder of its own line, trimmed. Absent labels yield empty strings.
func ParseDatos(body string) Datos {
	return Datos{
		Paciente: lineValue(body, "PACIENTE"),
		DNI:      lineValue(body, "DNI"),
		Edad:     lineValue(body, "EDAD"),
		Cama:     lineValue(body, "CAMA"),
	}
}

// trimBody strips the colon that usually follows a header plus surrounding
// whitespace.
func trimBody(s string) string {
	s = strings.TrimLeft(s, " \t")
	s = strings.TrimPrefix(s, ":")
	return strings.TrimSpace(s)
}

// lineValue finds the first line beginning with label followed by a colon and
// returns the trimmed remainder of that line.
func lineValue(body, label string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(line, label)
		if !ok {
			continue
		}
		rest = strings.TrimLeft(rest, " \t")
		rest, ok = strings.CutPrefix(rest, ":")
		if !ok {
			continue
		}
		return strings.TrimSpace(rest)
	}
	return ""
}
