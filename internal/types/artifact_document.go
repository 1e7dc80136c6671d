package types

// ArtifactDocument is the canonical shape persisted as a session's permanent
// record. Field order here is the serialization order.
type ArtifactDocument struct {
	ArtifactID        string                      `json:"artifact_id"`
	Session           ArtifactSession             `json:"session"`
	Strategy          ArtifactStrategy            `json:"strategy"`
	Answers           map[string][]ArtifactAnswer `json:"answers"`
	SemanticProposals []ArtifactProposal          `json:"semantic_proposals"`
	Integrity         ArtifactIntegrity           `json:"integrity"`
}

type ArtifactSession struct {
	SessionID    string            `json:"session_id"`
	CaseID       string            `json:"case_id"`
	QuestionSet  ArtifactConfigRef `json:"question_set"`
	MechanismSet ArtifactConfigRef `json:"mechanism_set"`
	CreatedBy    string            `json:"created_by"`
	CreatedAt    string            `json:"created_at"`
	FinalizedAt  string            `json:"finalized_at"`
}

type ArtifactConfigRef struct {
	ID      string `json:"id"`
	Version string `json:"version"`
}

type ArtifactStrategy struct {
	Text string `json:"text"`
}

type ArtifactAnswer struct {
	EntryID string `json:"entry_id"`
	Text    string `json:"text"`
}

type ArtifactProposal struct {
	ProposalID     string  `json:"proposal_id"`
	EntryID        string  `json:"entry_id"`
	MechanismID    string  `json:"mechanism_id"`
	SpanText       string  `json:"span_text"`
	Decision       string  `json:"decision"`
	DecisionReason *string `json:"decision_reason,omitempty"`
}

// ArtifactIntegrity carries the reserved integrity fields. Both are emitted
// present-but-empty until a hashing/signing component populates them.
type ArtifactIntegrity struct {
	Hash      string `json:"hash"`
	Signature string `json:"signature"`
}
