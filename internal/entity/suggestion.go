package entity

import (
	"fmt"
	"sort"
	"strings"
)

// PhoneSuggestion é o registro estruturado usado internamente. O formato
// legado "telefone(nome)" só existe na borda HTTP.
type PhoneSuggestion struct {
	Phone       string `json:"phone"`
	DisplayName string `json:"display_name"`
}

// LegacyString devolve o formato que o app mobile faz parse com ^(\d+)\((.*)\)$.
func (s PhoneSuggestion) LegacyString() string {
	name := s.DisplayName
	if name == "" {
		name = "Unknown"
	}
	return fmt.Sprintf("%s(%s)", s.Phone, name)
}

// NormalizePhone remove espaços, hífens e parênteses antes de comparar
// ou persistir um telefone.
func NormalizePhone(phone string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	return replacer.Replace(strings.TrimSpace(phone))
}

// RankSuggestions ordena por especificidade: match exato primeiro, depois
// prefixo, depois o resto, com desempate lexicográfico pelo telefone.
// O bucket exato vence mesmo sendo subconjunto lógico do bucket de prefixo.
func RankSuggestions(query string, suggestions []PhoneSuggestion) []PhoneSuggestion {
	q := NormalizePhone(query)

	rank := func(s PhoneSuggestion) int {
		switch {
		case s.Phone == q:
			return 1
		case strings.HasPrefix(s.Phone, q):
			return 2
		default:
			return 3
		}
	}

	ranked := make([]PhoneSuggestion, len(suggestions))
	copy(ranked, suggestions)

	sort.SliceStable(ranked, func(i, j int) bool {
		ri, rj := rank(ranked[i]), rank(ranked[j])
		if ri != rj {
			return ri < rj
		}
		return ranked[i].Phone < ranked[j].Phone
	})

	return ranked
}
