package domain

import "strings"

// Symbol は夢辞典の1項目です。
type Symbol struct {
	Name     string `json:"name" yaml:"name"`
	Meaning  string `json:"meaning" yaml:"meaning"`
	Category string `json:"category" yaml:"category"`
	Group    string `json:"group" yaml:"group"`
}

const (
	groupMovement = "Bewegung & Transport"
	groupNature   = "Natur & Elemente"
	groupPeople   = "Menschen & Beziehungen"
	groupBody     = "Körper & Gesundheit"
	groupPlaces   = "Orte & Gebäude"
	groupAnimals  = "Tiere"
)

var symbols = []Symbol{
	{Name: "Fliegen", Meaning: "Freiheit, Kontrolle", Category: "Bewegung", Group: groupMovement},
	{Name: "Fallen", Meaning: "Unsicherheit, Angst", Category: "Bewegung", Group: groupMovement},
	{Name: "Auto fahren", Meaning: "Lebensrichtung", Category: "Transport", Group: groupMovement},
	{Name: "Zug", Meaning: "Lebensreise, vorbestimmter Weg", Category: "Transport", Group: groupMovement},
	{Name: "Wasser", Meaning: "Emotionen, Unterbewusstsein", Category: "Natur", Group: groupNature},
	{Name: "Feuer", Meaning: "Leidenschaft, Transformation", Category: "Elemente", Group: groupNature},
	{Name: "Wald", Meaning: "Unbewusstes, Geheimnisse", Category: "Natur", Group: groupNature},
	{Name: "Berg", Meaning: "Herausforderungen, Ziele", Category: "Natur", Group: groupNature},
	{Name: "Verfolgt werden", Meaning: "Vermeidung, Stress", Category: "Beziehungen", Group: groupPeople},
	{Name: "Familie", Meaning: "Sicherheit, Wurzeln", Category: "Menschen", Group: groupPeople},
	{Name: "Fremde", Meaning: "Unbekannte Aspekte des Selbst", Category: "Menschen", Group: groupPeople},
	{Name: "Verstorbene", Meaning: "Vergangenheit, unerledigte Angelegenheiten", Category: "Menschen", Group: groupPeople},
	{Name: "Zähne", Meaning: "Sorgen, Selbstbild", Category: "Körper", Group: groupBody},
	{Name: "Haare", Meaning: "Stärke, Identität", Category: "Körper", Group: groupBody},
	{Name: "Blut", Meaning: "Lebenskraft, Opfer", Category: "Körper", Group: groupBody},
	{Name: "Krankheit", Meaning: "Schwäche, Transformation", Category: "Gesundheit", Group: groupBody},
	{Name: "Haus", Meaning: "Selbst, Sicherheit", Category: "Orte", Group: groupPlaces},
	{Name: "Schule", Meaning: "Lernen, Vergangenheit", Category: "Orte", Group: groupPlaces},
	{Name: "Krankenhaus", Meaning: "Heilung, Hilfe", Category: "Gebäude", Group: groupPlaces},
	{Name: "Kirche", Meaning: "Spiritualität, Moral", Category: "Gebäude", Group: groupPlaces},
	{Name: "Hund", Meaning: "Treue, Freundschaft", Category: "Tiere", Group: groupAnimals},
	{Name: "Katze", Meaning: "Unabhängigkeit, Weiblichkeit", Category: "Tiere", Group: groupAnimals},
	{Name: "Schlange", Meaning: "Transformation, Weisheit", Category: "Tiere", Group: groupAnimals},
	{Name: "Vogel", Meaning: "Freiheit, Spiritualität", Category: "Tiere", Group: groupAnimals},
}

// Symbols は夢辞典の全項目のコピーを返します。
func Symbols() []Symbol {
	return append([]Symbol(nil), symbols...)
}

// LookupSymbol は名前の完全一致（大文字小文字は無視）で辞典を引きます。
func LookupSymbol(name string) (Symbol, bool) {
	name = strings.TrimSpace(name)
	for _, s := range symbols {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Symbol{}, false
}

// SearchSymbols は名前・意味・カテゴリの部分一致で検索します。
// 空のクエリは全件を返します。
func SearchSymbols(query string) []Symbol {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Symbols()
	}
	var out []Symbol
	for _, s := range symbols {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Meaning), q) ||
			strings.Contains(strings.ToLower(s.Category), q) {
			out = append(out, s)
		}
	}
	return out
}
