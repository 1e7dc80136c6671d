package config

import "fmt"

// Provider resolves protocol configs. Current* supply the sets a new session
// binds; the keyed lookups resolve an already-bound id+version pair, so a
// finalize always reads the exact versions the session was created with.
type Provider interface {
	CurrentQuestionSet() *QuestionSetConfig
	CurrentMechanismSet() *MechanismSetConfig
	QuestionSet(id, version string) (*QuestionSetConfig, error)
	MechanismSet(id, version string) (*MechanismSetConfig, error)
}

type staticProvider struct {
	questionSets  map[string]*QuestionSetConfig
	mechanismSets map[string]*MechanismSetConfig
	currentQS     *QuestionSetConfig
	currentMS     *MechanismSetConfig
}

// NewStaticProvider builds a Provider over the loaded sets. The first
// question set and mechanism set are current; every set is additionally
// resolvable by its id+version for sessions bound to it.
func NewStaticProvider(questionSets []*QuestionSetConfig, mechanismSets []*MechanismSetConfig) (Provider, error) {
	if len(questionSets) == 0 || len(mechanismSets) == 0 {
		return nil, fmt.Errorf("at least one question set and one mechanism set are required")
	}
	p := &staticProvider{
		questionSets:  make(map[string]*QuestionSetConfig, len(questionSets)),
		mechanismSets: make(map[string]*MechanismSetConfig, len(mechanismSets)),
		currentQS:     questionSets[0],
		currentMS:     mechanismSets[0],
	}
	for _, qs := range questionSets {
		p.questionSets[setKey(qs.QuestionSetID, qs.Version)] = qs
	}
	for _, ms := range mechanismSets {
		p.mechanismSets[setKey(ms.MechanismSetID, ms.Version)] = ms
	}
	return p, nil
}

func (p *staticProvider) CurrentQuestionSet() *QuestionSetConfig   { return p.currentQS }
func (p *staticProvider) CurrentMechanismSet() *MechanismSetConfig { return p.currentMS }

func (p *staticProvider) QuestionSet(id, version string) (*QuestionSetConfig, error) {
	qs, ok := p.questionSets[setKey(id, version)]
	if !ok {
		return nil, fmt.Errorf("question set %s@%s is not available", id, version)
	}
	return qs, nil
}

func (p *staticProvider) MechanismSet(id, version string) (*MechanismSetConfig, error) {
	ms, ok := p.mechanismSets[setKey(id, version)]
	if !ok {
		return nil, fmt.Errorf("mechanism set %s@%s is not available", id, version)
	}
	return ms, nil
}

func setKey(id, version string) string { return id + "@" + version }
