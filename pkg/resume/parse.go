package resume

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoJSON    = errors.New("no JSON object found in model response")
	ErrBadJSON   = errors.New("model response contains malformed JSON")
	ErrBadSchema = errors.New("model response is missing required resume sections")
)

// rawAnalysis is the untrusted intermediate shape decoded from the model's
// reply. Every member is optional here; gaps are filled by normalizeAnalysis
// and must not leak past it.
type rawAnalysis struct {
	PersonalInfo   *rawPersonalInfo `json:"personalInfo"`
	Summary        *string          `json:"summary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         *rawSkills       `json:"skills"`
	Projects       []Project        `json:"projects"`
	Certifications []Certification  `json:"certifications"`
	Review         *rawReview       `json:"analysis"`
}

type rawPersonalInfo struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Linkedin  *string `json:"linkedin"`
	Portfolio *string `json:"portfolio"`
}

type rawSkills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

type rawReview struct {
	Rating           *float64 `json:"rating"`
	Strengths        []string `json:"strengths"`
	ImprovementAreas []string `json:"improvementAreas"`
	SkillGaps        []string `json:"skillGaps"`
	Recommendations  []string `json:"recommendations"`
}

// parseAnalysisResponse turns the model's free-text reply into a rawAnalysis.
// Personal info and work experience must both be present; they are the proof
// that the model followed the requested schema at all.
func parseAnalysisResponse(reply string) (rawAnalysis, error) {
	cleaned := cleanModelResponse(reply)
	span, ok := extractJSONObject(cleaned)
	if !ok {
		return rawAnalysis{}, ErrNoJSON
	}
	var raw rawAnalysis
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return rawAnalysis{}, fmt.Errorf("%w: %v", ErrBadJSON, err)
	}
	if raw.PersonalInfo == nil || raw.WorkExperience == nil {
		return rawAnalysis{}, ErrBadSchema
	}
	return raw, nil
}

var responseCleaner = strings.NewReplacer(
	"```json", "",
	"```", "",
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	`\'`, "'",
)

func cleanModelResponse(s string) string {
	return strings.TrimSpace(responseCleaner.Replace(s))
}

// extractJSONObject returns the first balanced {...} span, counting brace
// depth outside of string literals so braces inside values do not confuse it.
func extractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
