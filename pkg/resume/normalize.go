package resume

import "math"

const (
	placeholderContact = "Not provided"
	placeholderSummary = "No summary provided"
	defaultRating      = 5
	minRating          = 1
	maxRating          = 10
)

// normalizeAnalysis fills every gap in the untrusted raw shape with a
// documented default. It never fails: after this pass all slices are non-nil
// and the rating sits in [1,10].
func normalizeAnalysis(raw rawAnalysis) Analysis {
	a := Analysis{
		Summary:        strOr(raw.Summary, placeholderSummary),
		WorkExperience: normalizeWork(raw.WorkExperience),
		Education:      normalizeEducation(raw.Education),
		Projects:       normalizeProjects(raw.Projects),
		Certifications: orEmptyCerts(raw.Certifications),
	}

	a.PersonalInfo = PersonalInfo{
		Name:      placeholderContact,
		Email:     placeholderContact,
		Phone:     placeholderContact,
		Linkedin:  placeholderContact,
		Portfolio: placeholderContact,
	}
	if pi := raw.PersonalInfo; pi != nil {
		a.PersonalInfo.Name = strOr(pi.Name, placeholderContact)
		a.PersonalInfo.Email = strOr(pi.Email, placeholderContact)
		a.PersonalInfo.Phone = strOr(pi.Phone, placeholderContact)
		a.PersonalInfo.Linkedin = strOr(pi.Linkedin, placeholderContact)
		a.PersonalInfo.Portfolio = strOr(pi.Portfolio, placeholderContact)
	}

	a.Skills = Skills{Technical: []string{}, Soft: []string{}}
	if raw.Skills != nil {
		a.Skills.Technical = orEmpty(raw.Skills.Technical)
		a.Skills.Soft = orEmpty(raw.Skills.Soft)
	}

	a.Review = Review{
		Rating:           defaultRating,
		Strengths:        []string{},
		ImprovementAreas: []string{},
		SkillGaps:        []string{},
		Recommendations:  []string{},
	}
	if rv := raw.Review; rv != nil {
		if rv.Rating != nil {
			a.Review.Rating = clampRating(int(math.Round(*rv.Rating)))
		}
		a.Review.Strengths = orEmpty(rv.Strengths)
		a.Review.ImprovementAreas = orEmpty(rv.ImprovementAreas)
		a.Review.SkillGaps = orEmpty(rv.SkillGaps)
		a.Review.Recommendations = orEmpty(rv.Recommendations)
	}
	return a
}

func clampRating(r int) int {
	if r < minRating {
		return minRating
	}
	if r > maxRating {
		return maxRating
	}
	return r
}

func strOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func normalizeWork(items []WorkExperience) []WorkExperience {
	out := make([]WorkExperience, 0, len(items))
	for _, it := range items {
		it.Responsibilities = orEmpty(it.Responsibilities)
		out = append(out, it)
	}
	return out
}

func normalizeEducation(items []Education) []Education {
	out := make([]Education, 0, len(items))
	for _, it := range items {
		it.Achievements = orEmpty(it.Achievements)
		out = append(out, it)
	}
	return out
}

func normalizeProjects(items []Project) []Project {
	out := make([]Project, 0, len(items))
	for _, it := range items {
		it.Technologies = orEmpty(it.Technologies)
		out = append(out, it)
	}
	return out
}

func orEmptyCerts(items []Certification) []Certification {
	if items == nil {
		return []Certification{}
	}
	return items
}
