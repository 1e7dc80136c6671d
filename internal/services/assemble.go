package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/arylegal/ary-backend/internal/config"
	"github.com/arylegal/ary-backend/internal/types"
)

// BuildArtifactDocument deterministically assembles the canonical artifact
// document from a finalized session's persisted data. It is a pure function:
// identical inputs yield an identical document. The fresh artifact id and the
// timestamps embedded in the session are inputs, never derived here.
//
// Grouping rules:
//   - the strategy question (first single-cardinality question of the bound
//     set) contributes its one entry's text verbatim, empty string if absent;
//     with multiple surviving rows the latest by creation order wins
//   - every other question maps to its entries in creation order; a question
//     with zero entries yields an empty list, not an omission
//   - one flattened record per proposal, ordered by entry creation order then
//     proposal creation order, carrying the latest decision by decision time
//     or the literal "undecided" when no decision row exists
func BuildArtifactDocument(
	artifactID uuid.UUID,
	session *types.Session,
	questionSet *config.QuestionSetConfig,
	entries []*types.AnswerEntry,
	proposals []*types.SemanticProposal,
	decisions []*types.ProposalDecision,
) types.ArtifactDocument {
	strategyQuestionID := questionSet.StrategyQuestionID()

	strategyText := ""
	answers := make(map[string][]types.ArtifactAnswer)
	for _, q := range questionSet.Questions {
		if q.QuestionID == strategyQuestionID {
			continue
		}
		answers[q.QuestionID] = []types.ArtifactAnswer{}
	}
	for _, e := range entries {
		if e.QuestionID == strategyQuestionID {
			strategyText = e.Text
			continue
		}
		answers[e.QuestionID] = append(answers[e.QuestionID], types.ArtifactAnswer{
			EntryID: e.ID.String(),
			Text:    e.Text,
		})
	}

	// Latest decision per proposal; input is ordered by decision time so the
	// last write wins.
	latestDecision := make(map[uuid.UUID]*types.ProposalDecision, len(decisions))
	for _, d := range decisions {
		latestDecision[d.ProposalID] = d
	}

	proposalsByEntry := make(map[uuid.UUID][]*types.SemanticProposal)
	for _, p := range proposals {
		proposalsByEntry[p.EntryID] = append(proposalsByEntry[p.EntryID], p)
	}

	flattened := []types.ArtifactProposal{}
	for _, e := range entries {
		for _, p := range proposalsByEntry[e.ID] {
			record := types.ArtifactProposal{
				ProposalID:  p.ID.String(),
				EntryID:     p.EntryID.String(),
				MechanismID: p.MechanismID,
				SpanText:    p.SpanText,
				Decision:    types.DecisionUndecided,
			}
			if d := latestDecision[p.ID]; d != nil {
				record.Decision = d.Decision
				record.DecisionReason = d.Reason
			}
			flattened = append(flattened, record)
		}
	}

	finalizedAt := ""
	if session.FinalizedAt != nil {
		finalizedAt = formatDocTime(*session.FinalizedAt)
	}

	return types.ArtifactDocument{
		ArtifactID: artifactID.String(),
		Session: types.ArtifactSession{
			SessionID:    session.ID.String(),
			CaseID:       session.CaseID.String(),
			QuestionSet:  types.ArtifactConfigRef{ID: session.QuestionSetID, Version: session.QuestionSetVersion},
			MechanismSet: types.ArtifactConfigRef{ID: session.MechanismSetID, Version: session.MechanismSetVersion},
			CreatedBy:    session.CreatedBy,
			CreatedAt:    formatDocTime(session.CreatedAt),
			FinalizedAt:  finalizedAt,
		},
		Strategy:          types.ArtifactStrategy{Text: strategyText},
		Answers:           answers,
		SemanticProposals: flattened,
		Integrity:         types.ArtifactIntegrity{},
	}
}

func formatDocTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
