package clinicalnote

import (
	"strings"
	"testing"
)

const fullNote = `DATOS:
PACIENTE: Juan Pérez
DNI: 30111222
EDAD: 47
CAMA: UTI 2
ANTECEDENTES:
HTA. DBT tipo 2.

Tabaquista 20 p/y.
ENFERMEDAD ACTUAL:
Disnea progresiva de 48hs de evolución.
ESTUDIOS COMPLEMENTARIOS:
Rx tórax: infiltrado bibasal.
Lab: GB 15.400, PCR 180.
EXAMEN FÍSICO:
Vigil, taquipneico. Rales crepitantes bibasales.
CONDUCTA:
Diagnóstico presuntivo: NAC grave
- ATB empírico ampicilina/sulbactam + claritromicina
- O2 por cánula nasal
PENDIENTES:
Hemocultivos x2. Control de lab en 24hs.`

func TestParseFullNote(t *testing.T) {
	note := Parse(fullNote)

	if note.Antecedentes != "HTA. DBT tipo 2.\n\nTabaquista 20 p/y." {
		t.Errorf("unexpected antecedentes: %q", note.Antecedentes)
	}
	if note.EnfermedadActual != "Disnea progresiva de 48hs de evolución." {
		t.Errorf("unexpected enfermedad actual: %q", note.EnfermedadActual)
	}
	if note.Estudios != "Rx tórax: infiltrado bibasal.\nLab: GB 15.400, PCR 180." {
		t.Errorf("unexpected estudios: %q", note.Estudios)
	}
	if note.ExamenFisico != "Vigil, taquipneico. Rales crepitantes bibasales." {
		t.Errorf("unexpected examen físico: %q", note.ExamenFisico)
	}
	if note.Pendientes != "Hemocultivos x2. Control de lab en 24hs." {
		t.Errorf("unexpected pendientes: %q", note.Pendientes)
	}
}

func TestParseNoLeakageAcrossBoundaries(t *testing.T) {
	note := Parse(fullNote)

	// Embedded blank lines stay inside their own section.
	if note.EnfermedadActual == "" || note.Antecedentes == "" {
		t.Fatal("expected non-empty sections")
	}
	if containsHeader(note.Antecedentes) || containsHeader(note.Conducta) {
		t.Error("section body leaked a neighboring header")
	}
}

func containsHeader(body string) bool {
	for _, h := range sectionHeaders {
		if strings.Contains(body, h) {
			return true
		}
	}
	return false
}

func TestParseMissingSectionDegradesToEmpty(t *testing.T) {
	text := `DATOS:
PACIENTE: Ana
ANTECEDENTES:
Sin antecedentes.
ESTUDIOS COMPLEMENTARIOS:
Lab normal.
EXAMEN FÍSICO:
Sin particularidades.
CONDUCTA:
- Observación
PENDIENTES:
Nada.`
	note := Parse(text)

	// ENFERMEDAD ACTUAL is absent: its slot is empty, but ANTECEDENTES loses
	// its closing header and therefore also degrades to empty rather than
	// absorbing the studies section.
	if note.EnfermedadActual != "" {
		t.Errorf("expected empty enfermedad actual, got %q", note.EnfermedadActual)
	}
	if note.Antecedentes != "" {
		t.Errorf("expected unbounded antecedentes to stay empty, got %q", note.Antecedentes)
	}
	if note.Estudios != "Lab normal." {
		t.Errorf("unexpected estudios: %q", note.Estudios)
	}
	if note.Conducta != "- Observación" {
		t.Errorf("unexpected conducta: %q", note.Conducta)
	}
	if note.Pendientes != "Nada." {
		t.Errorf("unexpected pendientes: %q", note.Pendientes)
	}
}

func TestParseDuplicateHeadersFirstOccurrenceWins(t *testing.T) {
	text := `DATOS:
PACIENTE: Ana
ANTECEDENTES:
Menciona ANTECEDENTES familiares.
ENFERMEDAD ACTUAL:
Dolor abdominal.
ESTUDIOS COMPLEMENTARIOS:
Eco normal.
EXAMEN FÍSICO:
Blando.
CONDUCTA:
- Alta
PENDIENTES:
Nada.`
	note := Parse(text)

	if note.Antecedentes != "Menciona ANTECEDENTES familiares." {
		t.Errorf("unexpected antecedentes: %q", note.Antecedentes)
	}
	if note.EnfermedadActual != "Dolor abdominal." {
		t.Errorf("unexpected enfermedad actual: %q", note.EnfermedadActual)
	}
}

func TestParseEmptyInput(t *testing.T) {
	note := Parse("")
	if note != (Note{}) {
		t.Errorf("expected zero note, got %+v", note)
	}
}

func TestParseDatosRoundTrip(t *testing.T) {
	d := ParseDatos("PACIENTE: Ana\nDNI: 123\nEDAD: 30\nCAMA: 4")
	if d.Paciente != "Ana" {
		t.Errorf("expected name Ana, got %q", d.Paciente)
	}
	if d.DNI != "123" {
		t.Errorf("expected dni 123, got %q", d.DNI)
	}
	if d.Edad != "30" {
		t.Errorf("expected edad 30, got %q", d.Edad)
	}
	if d.Cama != "4" {
		t.Errorf("expected cama 4, got %q", d.Cama)
	}
}

func TestParseDatosAbsentLabels(t *testing.T) {
	d := ParseDatos("PACIENTE: Ana")
	if d.DNI != "" || d.Edad != "" || d.Cama != "" {
		t.Errorf("expected empty fields for absent labels, got %+v", d)
	}
}

func TestParseDatosValueIsSingleLine(t *testing.T) {
	d := ParseDatos("PACIENTE: Ana\nMaría\nDNI: 123")
	if d.Paciente != "Ana" {
		t.Errorf("expected single-line value, got %q", d.Paciente)
	}
}

func TestParseDatosFromParsedNote(t *testing.T) {
	note := Parse(fullNote)
	d := ParseDatos(note.Datos)
	if d.Paciente != "Juan Pérez" || d.DNI != "30111222" || d.Edad != "47" || d.Cama != "UTI 2" {
		t.Errorf("unexpected datos: %+v", d)
	}
}

func TestParseDeterministic(t *testing.T) {
	a := Parse(fullNote)
	b := Parse(fullNote)
	if a != b {
		t.Error("expected identical results for identical input")
	}
}
