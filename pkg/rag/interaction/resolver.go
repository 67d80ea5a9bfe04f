package interaction

import (
	"context"
	"fmt"
	"strings"

	"medicine-chatbot-be/internal/constant"
	"medicine-chatbot-be/internal/entity"
	"medicine-chatbot-be/internal/pkg/logger"
	"medicine-chatbot-be/internal/repository/contract"
	"medicine-chatbot-be/pkg/rag"
)

const moduleName = "InteractionResolver"

// Finding is the structured interaction check result. When nothing matched,
// Secondary still carries the first candidate so it can be retrieved for.
type Finding struct {
	Primary     *entity.Drug
	Secondary   *entity.Drug
	Description string
	Found       bool
}

// WarningBlock renders the mandatory warning placed ahead of all other context.
func (f Finding) WarningBlock() string {
	if !f.Found {
		return ""
	}
	return fmt.Sprintf(constant.InteractionWarningTemplate,
		f.Primary.Name, f.Primary.DrugbankId,
		f.Secondary.Name, f.Secondary.DrugbankId,
		f.Description,
	)
}

// Source is the citation entry for a structured finding.
func (f Finding) Source() string {
	if !f.Found {
		return ""
	}
	return fmt.Sprintf(constant.InteractionSourceTemplate, f.Primary.Name, f.Secondary.Name)
}

type Resolver struct {
	drugs  contract.DrugRepository
	logger logger.ILogger
}

func NewResolver(drugs contract.DrugRepository, log logger.ILogger) *Resolver {
	return &Resolver{drugs: drugs, logger: log}
}

// Resolve checks primary's interaction records against each candidate id in
// order and stops at the first match.
func (r *Resolver) Resolve(primary *entity.Drug, candidates []*entity.Drug) Finding {
	finding := Finding{Primary: primary}

	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		if in, ok := primary.InteractionWith(candidate.DrugbankId); ok {
			desc := strings.TrimSpace(in.Description)
			if desc == "" {
				desc = constant.InteractionMissingDescription
			}
			r.logger.Info(moduleName, "Structured interaction found", map[string]interface{}{
				"primary":   primary.DrugbankId,
				"secondary": candidate.DrugbankId,
			})
			return Finding{
				Primary:     primary,
				Secondary:   candidate,
				Description: desc,
				Found:       true,
			}
		}
		if finding.Secondary == nil {
			finding.Secondary = candidate
		}
	}
	return finding
}

// SecondaryCandidates lists the drugs to check against primary: the second
// query drug, then every resolvable prescription, distinct by id and never
// primary itself. Unresolvable prescriptions are skipped.
func (r *Resolver) SecondaryCandidates(
	ctx context.Context,
	queryDrugs []*entity.Drug,
	primary *entity.Drug,
	profile *entity.UserProfile,
) ([]*entity.Drug, []rag.Failure) {
	seen := map[string]struct{}{primary.DrugbankId: {}}
	var candidates []*entity.Drug
	var failures []rag.Failure

	add := func(d *entity.Drug) {
		if d == nil || d.DrugbankId == "" {
			return
		}
		if _, dup := seen[d.DrugbankId]; dup {
			return
		}
		seen[d.DrugbankId] = struct{}{}
		candidates = append(candidates, d)
	}

	if len(queryDrugs) > 1 {
		add(queryDrugs[1])
	}

	for _, name := range profile.PrescribedDrugNames() {
		drug, err := r.drugs.FindByNameOrSynonym(ctx, name)
		if err != nil {
			f := rag.Failure{Stage: moduleName, Kind: rag.FailureRegistry, Err: err}
			r.logger.Warn(moduleName, "Prescription lookup failed", f.LogDetails())
			failures = append(failures, f)
			continue
		}
		add(drug)
	}

	return candidates, failures
}
