package config

const (
	AnswerModeSingle      = "single"
	AnswerModeMultiAtomic = "multi_atomic"
)

// QuestionSetConfig is the versioned fixed-question protocol definition.
// Sessions bind QuestionSetID+Version at creation and never re-resolve.
type QuestionSetConfig struct {
	QuestionSetID string           `json:"question_set_id" yaml:"question_set_id"`
	Version       string           `json:"version" yaml:"version"`
	Questions     []QuestionConfig `json:"questions" yaml:"questions"`
}

type QuestionConfig struct {
	QuestionID         string   `json:"question_id" yaml:"question_id"`
	Prompt             string   `json:"prompt" yaml:"prompt"`
	Purpose            string   `json:"purpose" yaml:"purpose"`
	MustElicit         []string `json:"must_elicit" yaml:"must_elicit"`
	MustNotElicit      []string `json:"must_not_elicit" yaml:"must_not_elicit"`
	AnswerMode         string   `json:"answer_mode" yaml:"answer_mode"`
	ExpectedMechanisms []string `json:"expected_mechanisms" yaml:"expected_mechanisms"`
}

// MechanismSetConfig is the versioned semantic tag vocabulary.
type MechanismSetConfig struct {
	MechanismSetID string            `json:"mechanism_set_id" yaml:"mechanism_set_id"`
	Version        string            `json:"version" yaml:"version"`
	Mechanisms     []MechanismConfig `json:"mechanisms" yaml:"mechanisms"`
}

type MechanismConfig struct {
	MechanismID        string   `json:"mechanism_id" yaml:"mechanism_id"`
	Name               string   `json:"name" yaml:"name"`
	Definition         string   `json:"definition" yaml:"definition"`
	AllowedQuestionIDs []string `json:"allowed_question_ids" yaml:"allowed_question_ids"`
	RequiredFields     []string `json:"required_fields" yaml:"required_fields"`
}

// Question returns the question with the given id, or nil.
func (qs *QuestionSetConfig) Question(questionID string) *QuestionConfig {
	for i := range qs.Questions {
		if qs.Questions[i].QuestionID == questionID {
			return &qs.Questions[i]
		}
	}
	return nil
}

// StrategyQuestionID is the id of the question whose single entry becomes the
// artifact's strategy text: the first single-cardinality question in the set.
// Empty when the set has no single-cardinality question.
func (qs *QuestionSetConfig) StrategyQuestionID() string {
	for i := range qs.Questions {
		if qs.Questions[i].AnswerMode == AnswerModeSingle {
			return qs.Questions[i].QuestionID
		}
	}
	return ""
}
