// Package schema defines the required requirements-sheet columns and checks
// tables against them.
package schema

// Column names the engine reads directly.
const (
	RBSIDON             = "RBS-ID (ON)"
	RBSIDOG             = "RBS-ID (OG)"
	EisNaam             = "Eis naam"
	Eistekst            = "Eistekst"
	InScope             = "In scope"
	EisDefinitie        = "Eis Definitie"
	Discipline          = "Discipline"
	Reviewed            = "Reviewed"
	Fase                = "Fase"
	ObjectID            = "Object-ID"
	ToegewezenAanObject = "Toegewezen aan object"
)

// Fields is the canonical ordered list of required columns.
var Fields = []string{
	RBSIDON,
	RBSIDOG,
	EisNaam,
	Eistekst,
	"Contractuele Toelichting",
	"Brondocument/Referentie",
	"Verwijzing naar brondocument en/of bijlage",
	"Bijlage",
	InScope,
	EisDefinitie,
	"Opmerking bij eisdefinitie",
	Discipline,
	Reviewed,
	"Opmerking validatie OG",
	Fase,
	ObjectID,
	ToegewezenAanObject,
}

// FilterableFields are the fields with selection controls, in display order.
var FilterableFields = []string{Discipline, Fase, Reviewed, InScope}

// BooleanFields are the fields whose values are normalised to true/false/unset.
var BooleanFields = []string{Reviewed, InScope}

// DisplayFields are the columns shown in the requirements grid.
var DisplayFields = []string{RBSIDON, EisNaam, Discipline, Fase, Reviewed, InScope}

// IsFilterable reports whether field has a selection control.
func IsFilterable(field string) bool {
	return contains(FilterableFields, field)
}

// IsBoolean reports whether field holds boolean flags.
func IsBoolean(field string) bool {
	return contains(BooleanFields, field)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
