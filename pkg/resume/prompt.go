package resume

import (
	"fmt"
	"unicode/utf8"
)

// maxPromptChars bounds how much resume text goes into a single request.
const maxPromptChars = 30000

const analysisPrompt = `You are an expert technical recruiter and career coach. Analyze the resume text below and respond with a single JSON object, no markdown and no commentary, using exactly this structure:
{
  "personalInfo": {"name": "", "email": "", "phone": "", "linkedin": "", "portfolio": ""},
  "summary": "",
  "workExperience": [{"jobTitle": "", "company": "", "startDate": "", "endDate": "", "responsibilities": [""]}],
  "education": [{"degree": "", "institution": "", "graduationYear": "", "achievements": [""]}],
  "skills": {"technical": [""], "soft": [""]},
  "projects": [{"name": "", "description": "", "technologies": [""], "role": ""}],
  "certifications": [{"name": "", "issuer": "", "dateObtained": ""}],
  "analysis": {"rating": 5, "strengths": [""], "improvementAreas": [""], "skillGaps": [""], "recommendations": [""]}
}
Rules:
- "rating" is an integer from 1 to 10 judging the overall quality of the resume.
- "strengths" lists what the candidate does well, "improvementAreas" what the resume itself should improve.
- "skillGaps" lists skills missing for the candidate's apparent career direction, "recommendations" concrete upskilling suggestions.
- Omit nothing: use empty strings or empty arrays for anything the resume does not state.

Resume text:
%s`

func buildPrompt(text string) string {
	if len(text) > maxPromptChars {
		cut := maxPromptChars
		// back off to a rune boundary so the cut never splits a sequence
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return fmt.Sprintf(analysisPrompt, text)
}
