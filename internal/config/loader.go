package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadQuestionSet reads a question set definition from a JSON or YAML file.
func LoadQuestionSet(path string) (*QuestionSetConfig, error) {
	var qs QuestionSetConfig
	if err := loadFile(path, &qs); err != nil {
		return nil, fmt.Errorf("load question set %s: %w", path, err)
	}
	if qs.QuestionSetID == "" || qs.Version == "" {
		return nil, fmt.Errorf("question set %s: question_set_id and version are required", path)
	}
	if len(qs.Questions) == 0 {
		return nil, fmt.Errorf("question set %s: at least one question is required", path)
	}
	for _, q := range qs.Questions {
		if q.QuestionID == "" {
			return nil, fmt.Errorf("question set %s: question_id is required", path)
		}
		switch q.AnswerMode {
		case AnswerModeSingle, AnswerModeMultiAtomic:
		default:
			return nil, fmt.Errorf("question set %s: question %s has invalid answer_mode %q", path, q.QuestionID, q.AnswerMode)
		}
	}
	return &qs, nil
}

// LoadMechanismSet reads a mechanism set definition from a JSON or YAML file.
func LoadMechanismSet(path string) (*MechanismSetConfig, error) {
	var ms MechanismSetConfig
	if err := loadFile(path, &ms); err != nil {
		return nil, fmt.Errorf("load mechanism set %s: %w", path, err)
	}
	if ms.MechanismSetID == "" || ms.Version == "" {
		return nil, fmt.Errorf("mechanism set %s: mechanism_set_id and version are required", path)
	}
	for _, m := range ms.Mechanisms {
		if m.MechanismID == "" {
			return nil, fmt.Errorf("mechanism set %s: mechanism_id is required", path)
		}
	}
	return &ms, nil
}

func loadFile(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(raw, out)
	default:
		return json.Unmarshal(raw, out)
	}
}
