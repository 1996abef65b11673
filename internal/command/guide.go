package command

import (
	"strings"

	"assistente-gestao/pkg/textnorm"
)

// suggestionGroup pairs trigger keywords with the templates they unlock.
type suggestionGroup struct {
	keywords  []string
	templates []string
}

var suggestionGroups = []suggestionGroup{
	{
		keywords: []string{"criar", "fazer"},
		templates: []string{
			"Fazer auto à [entidade], na [empresa], obra [nome obra] para [dia], contrato [código]",
			"Criar contrato [descrição] para [entidade] em [data]",
		},
	},
	{
		keywords:  []string{"reagenda", "alterar"},
		templates: []string{"Auto [código contrato] reagenda para [nova data]"},
	},
	{
		keywords:  []string{"mostrar", "listar"},
		templates: []string{"Mostrar pendentes para esta semana"},
	},
	{
		keywords:  []string{"marcar", "concluir"},
		templates: []string{"Marcar [código contrato] como concluído"},
	},
}

// Examples returns one canonical sentence per rule family, in rule order.
func (i *Interpreter) Examples() []string {
	out := make([]string, 0, len(i.rules))
	for _, r := range i.rules {
		if r.example != "" {
			out = append(out, r.example)
		}
	}
	return out
}

// Suggestions returns the templates whose keywords appear in partial, or
// Examples when none do.
func (i *Interpreter) Suggestions(partial string) []string {
	folded := textnorm.Fold(partial)

	var out []string
	for _, g := range suggestionGroups {
		for _, kw := range g.keywords {
			if strings.Contains(folded, kw) {
				out = append(out, g.templates...)
				break
			}
		}
	}

	if len(out) == 0 {
		return i.Examples()
	}
	return out
}
