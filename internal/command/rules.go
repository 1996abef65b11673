package command

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"assistente-gestao/internal/model"
	"assistente-gestao/pkg/datemath"
)

// extractFunc turns the submatches of a trigger into a payload.
type extractFunc func(m []string, today time.Time) (Payload, error)

// rule is one entry of the grammar.
type rule struct {
	name    string
	trigger *regexp.Regexp
	kind    ActionKind
	extract extractFunc
	example string
}

// defaultRules is the grammar in priority order. A rule whose trigger language
// overlaps a later one must stay in front of it: the full "fazer auto" form
// with a contrato clause precedes the form without it, otherwise the shorter
// form would swallow the contract code into the day expression.
var defaultRules = []rule{
	{
		name:    "auto-with-contract",
		trigger: regexp.MustCompile(`(?i)(?:fazer|criar)\s+auto\s+à\s+(.+?),?\s+na\s+(.+?),?\s+obra\s+(.+?)\s+para\s+(.+?),?\s+contrato\s+(.+)`),
		kind:    KindCreateAuto,
		extract: extractAuto,
		example: "Fazer auto à Confrasilvas, na VIC C, obra Club House para Terça, contrato VIC_0725",
	},
	{
		name:    "auto-without-contract",
		trigger: regexp.MustCompile(`(?i)(?:fazer|criar)\s+auto\s+à\s+(.+?),?\s+na\s+(.+?),?\s+obra\s+(.+?)\s+para\s+(.+)`),
		kind:    KindCreateAuto,
		extract: extractAuto,
	},
	{
		name:    "auto-alternate-order",
		trigger: regexp.MustCompile(`(?i)criar\s+auto\s+para\s+(.+?)\s+na\s+(.+?)\s+à\s+(.+?),?\s*código\s+(.+)`),
		kind:    KindCreateAuto,
		extract: extractAutoAlternate,
		example: "Criar auto para segunda-feira na VIC C à Confrasilvas, código VIC_0725",
	},
	{
		name:    "reschedule",
		trigger: regexp.MustCompile(`(?i)auto\s+(.+?)\s+reagenda\s+para\s+(.+)`),
		kind:    KindRescheduleTask,
		extract: extractReschedule,
		example: "Auto VIC_0725 reagenda para próxima quinta",
	},
	{
		name:    "weekly-pending",
		trigger: regexp.MustCompile(`(?i)mostrar\s+pendentes\s+para\s+esta\s+semana`),
		kind:    KindShowWeeklyPending,
		extract: extractWeeklyPending,
		example: "Mostrar pendentes para esta semana",
	},
	{
		name:    "contract",
		trigger: regexp.MustCompile(`(?i)criar\s+contrato\s+(.+?)\s+para\s+(.+?)\s+em\s+(.+)`),
		kind:    KindCreateContract,
		extract: extractContract,
		example: "Criar contrato renovação anual para Construtora Silva em 15/02/2025",
	},
	{
		name:    "mark-completed",
		trigger: regexp.MustCompile(`(?i)marcar\s+(.+?)\s+como\s+conclu[ií]d[oa]`),
		kind:    KindMarkCompleted,
		extract: extractMarkCompleted,
		example: "Marcar VIC_0725 como concluído",
	},
}

// groups trims every capture and fails when a required one is blank.
func groups(m []string, names ...string) ([]string, error) {
	if len(m)-1 < len(names) {
		return nil, fmt.Errorf("expected %d captures, got %d", len(names), len(m)-1)
	}
	out := make([]string, len(names))
	for i, name := range names {
		v := strings.TrimSpace(m[i+1])
		if v == "" {
			return nil, fmt.Errorf("missing %s", name)
		}
		out[i] = v
	}
	return out, nil
}

// extractAuto handles both "fazer auto à" forms. The contract code is the
// optional fifth capture.
func extractAuto(m []string, today time.Time) (Payload, error) {
	g, err := groups(m, "entity", "company", "work", "day")
	if err != nil {
		return nil, err
	}
	entity, company, work, day := g[0], g[1], g[2], g[3]

	code := model.NotApplicable
	if len(m) > 5 {
		code = strings.TrimSpace(m[5])
		if code == "" {
			return nil, errors.New("missing contract code")
		}
	}

	return CreateAutoPayload{
		DueDate:               datemath.Resolve(day, today),
		RecordType:            model.TaskTypeAuto,
		Company:               company,
		Entity:                entity,
		WorkCode:              work,
		ContractCode:          code,
		CrossCompanyAutoLabel: company,
		Description:           fmt.Sprintf("Auto de medição para %s - %s", entity, work),
	}, nil
}

func extractAutoAlternate(m []string, today time.Time) (Payload, error) {
	g, err := groups(m, "day", "company", "entity", "contract code")
	if err != nil {
		return nil, err
	}
	day, company, entity, code := g[0], g[1], g[2], g[3]

	return CreateAutoPayload{
		DueDate:               datemath.Resolve(day, today),
		RecordType:            model.TaskTypeAuto,
		Company:               company,
		Entity:                entity,
		WorkCode:              model.UnspecifiedWork,
		ContractCode:          code,
		CrossCompanyAutoLabel: company,
		Description:           fmt.Sprintf("Auto de medição para %s", entity),
	}, nil
}

func extractReschedule(m []string, today time.Time) (Payload, error) {
	g, err := groups(m, "contract code", "day")
	if err != nil {
		return nil, err
	}
	return RescheduleTaskPayload{
		ContractCode: g[0],
		NewDueDate:   datemath.Resolve(g[1], today),
	}, nil
}

func extractWeeklyPending(_ []string, _ time.Time) (Payload, error) {
	return ShowWeeklyPendingPayload{Period: PeriodWeek}, nil
}

func extractContract(m []string, today time.Time) (Payload, error) {
	g, err := groups(m, "description", "entity", "day")
	if err != nil {
		return nil, err
	}
	return CreateContractPayload{
		DueDate:               datemath.Resolve(g[2], today),
		RecordType:            model.TaskTypeContract,
		Description:           g[0],
		Entity:                g[1],
		WorkCode:              model.GenericContractWork,
		ContractCode:          model.NotApplicable,
		CrossCompanyAutoLabel: model.NotApplicable,
	}, nil
}

func extractMarkCompleted(m []string, _ time.Time) (Payload, error) {
	g, err := groups(m, "contract code")
	if err != nil {
		return nil, err
	}
	return MarkCompletedPayload{
		ContractCode: g[0],
		NewStatus:    model.StatusCompleted,
	}, nil
}
