package sanitize

import (
	"strconv"
	"strings"

	"talentgate/internal/domain/career"
)

// CareerInput is the sanitized, type-coerced form of an untrusted career
// payload. Every field is optional; nil means the caller did not send it, so
// the same type serves both the create and the partial-update schemas.
type CareerInput struct {
	OrgID       *string
	JobTitle    *string
	Description *string

	Questions             []career.QuestionGroup
	HasQuestions          bool
	PreScreeningQuestions []career.PreScreenQuestion
	HasPreScreening       bool

	Location        *string
	Country         *string
	Province        *string
	WorkSetup       *string
	WorkSetupRemark *string
	EmploymentType  *string

	LastEditedBy *string
	CreatedBy    *string
	Status       *string

	// ScreeningSetting is the deprecated unified setting; it is only consulted
	// as a default for the per-stage settings at creation and is never
	// persisted on updates.
	ScreeningSetting   *string
	CVScreeningSetting *string
	AIScreeningSetting *string

	RequireVideo     *bool
	SalaryNegotiable *bool
	MinimumSalary    *float64
	MaximumSalary    *float64
}

var careerFields = map[string]bool{
	"orgID":                 true,
	"jobTitle":              true,
	"description":           true,
	"questions":             true,
	"preScreeningQuestions": true,
	"location":              true,
	"country":               true,
	"province":              true,
	"workSetup":             true,
	"workSetupRemarks":      true,
	"employmentType":        true,
	"lastEditedBy":          true,
	"createdBy":             true,
	"status":                true,
	"screeningSetting":      true,
	"cvScreeningSetting":    true,
	"aiScreeningSetting":    true,
	"requireVideo":          true,
	"salaryNegotiable":      true,
	"minimumSalary":         true,
	"maximumSalary":         true,
}

// Career validates and sanitizes a full career payload. Unknown fields and
// wrong primitive types are rejected with a ValidationError listing every
// offending path. The transform is pure and idempotent.
func Career(raw map[string]any) (CareerInput, error) {
	return sanitizeCareer(raw)
}

// CareerPartial applies the same rules to whatever subset of fields is
// present; it never requires unlisted fields.
func CareerPartial(raw map[string]any) (CareerInput, error) {
	return sanitizeCareer(raw)
}

func sanitizeCareer(raw map[string]any) (CareerInput, error) {
	var errs fieldErrors
	out := CareerInput{}

	for key := range raw {
		if !careerFields[key] {
			errs.addf("%s (unknown field)", key)
		}
	}

	out.OrgID = plainText(raw, "orgID", &errs)
	out.JobTitle = plainText(raw, "jobTitle", &errs)

	if v, ok := raw["description"]; ok && v != nil {
		if s, ok := v.(string); ok {
			clean := CleanDescription(s)
			out.Description = &clean
		} else {
			errs.add("description")
		}
	}

	out.Location = plainText(raw, "location", &errs)
	out.Country = plainText(raw, "country", &errs)
	out.Province = plainText(raw, "province", &errs)
	out.WorkSetup = plainText(raw, "workSetup", &errs)
	out.WorkSetupRemark = plainText(raw, "workSetupRemarks", &errs)
	out.EmploymentType = plainText(raw, "employmentType", &errs)
	out.LastEditedBy = plainText(raw, "lastEditedBy", &errs)
	out.CreatedBy = plainText(raw, "createdBy", &errs)
	out.Status = plainText(raw, "status", &errs)
	out.ScreeningSetting = plainText(raw, "screeningSetting", &errs)
	out.CVScreeningSetting = plainText(raw, "cvScreeningSetting", &errs)
	out.AIScreeningSetting = plainText(raw, "aiScreeningSetting", &errs)

	out.RequireVideo = looseBool(raw, "requireVideo", &errs)
	out.SalaryNegotiable = looseBool(raw, "salaryNegotiable", &errs)

	out.MinimumSalary = number(raw, "minimumSalary", &errs)
	out.MaximumSalary = number(raw, "maximumSalary", &errs)

	if v, ok := raw["questions"]; ok && v != nil {
		out.HasQuestions = true
		out.Questions = questionGroups(v, "questions", &errs)
	}
	if v, ok := raw["preScreeningQuestions"]; ok && v != nil {
		out.HasPreScreening = true
		out.PreScreeningQuestions = preScreenQuestions(v, "preScreeningQuestions", &errs)
	}

	if err := errs.err(); err != nil {
		return CareerInput{}, err
	}
	return out, nil
}

func plainText(raw map[string]any, key string, errs *fieldErrors) *string {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		errs.add(key)
		return nil
	}
	clean := StripTags(s)
	return &clean
}

func number(raw map[string]any, key string, errs *fieldErrors) *float64 {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil
	}
	f, ok := v.(float64)
	if !ok {
		errs.add(key)
		return nil
	}
	return &f
}

// looseBool accepts the bool/string/number union the legacy clients send.
func looseBool(raw map[string]any, key string, errs *fieldErrors) *bool {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil
	}
	var b bool
	switch val := v.(type) {
	case bool:
		b = val
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			b = strings.TrimSpace(val) != ""
		} else {
			b = parsed
		}
	case float64:
		b = val != 0
	default:
		errs.add(key)
		return nil
	}
	return &b
}

func questionGroups(v any, path string, errs *fieldErrors) []career.QuestionGroup {
	list, ok := v.([]any)
	if !ok {
		errs.add(path)
		return nil
	}

	groups := make([]career.QuestionGroup, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			errs.addf("%s[%d]", path, i)
			continue
		}

		g := career.QuestionGroup{}
		if raw, ok := m["category"]; ok && raw != nil {
			if s, ok := raw.(string); ok {
				g.Category = StripTags(s)
			} else {
				errs.addf("%s[%d].category", path, i)
			}
		}
		if raw, ok := m["askCount"]; ok && raw != nil {
			if f, ok := raw.(float64); ok {
				n := int(f)
				g.AskCount = &n
			} else {
				errs.addf("%s[%d].askCount", path, i)
			}
		}
		if raw, ok := m["questions"]; ok && raw != nil {
			inner, ok := raw.([]any)
			if !ok {
				errs.addf("%s[%d].questions", path, i)
			} else {
				g.Questions = make([]career.InterviewQuestion, 0, len(inner))
				for j, q := range inner {
					qm, ok := q.(map[string]any)
					if !ok {
						errs.addf("%s[%d].questions[%d]", path, i, j)
						continue
					}
					text, ok := qm["question"].(string)
					if !ok {
						errs.addf("%s[%d].questions[%d].question", path, i, j)
						continue
					}
					g.Questions = append(g.Questions, career.InterviewQuestion{Question: StripTags(text)})
				}
			}
		}
		groups = append(groups, g)
	}
	return groups
}

func preScreenQuestions(v any, path string, errs *fieldErrors) []career.PreScreenQuestion {
	list, ok := v.([]any)
	if !ok {
		errs.add(path)
		return nil
	}

	questions := make([]career.PreScreenQuestion, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			errs.addf("%s[%d]", path, i)
			continue
		}

		q := career.PreScreenQuestion{}
		q.ID = stringAt(m, "id", path, i, errs)
		q.Type = stringAt(m, "type", path, i, errs)
		if raw, ok := m["question"]; ok && raw != nil {
			if s, ok := raw.(string); ok {
				q.Question = StripTags(s)
			} else {
				errs.addf("%s[%d].question", path, i)
			}
		}
		if raw, ok := m["options"]; ok && raw != nil {
			opts, ok := raw.([]any)
			if !ok {
				errs.addf("%s[%d].options", path, i)
			} else {
				q.Options = make([]string, 0, len(opts))
				for j, o := range opts {
					s, ok := o.(string)
					if !ok {
						errs.addf("%s[%d].options[%d]", path, i, j)
						continue
					}
					q.Options = append(q.Options, StripTags(s))
				}
			}
		}
		q.MinChecked = intAt(m, "minChecked", path, i, errs)
		q.MaxChecked = intAt(m, "maxChecked", path, i, errs)
		q.RangeMin = rangeBound(m, "rangeMin", path, i, errs)
		q.RangeMax = rangeBound(m, "rangeMax", path, i, errs)

		questions = append(questions, q)
	}
	return questions
}

func stringAt(m map[string]any, key, path string, idx int, errs *fieldErrors) string {
	raw, ok := m[key]
	if !ok || raw == nil {
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		errs.addf("%s[%d].%s", path, idx, key)
		return ""
	}
	return s
}

func intAt(m map[string]any, key, path string, idx int, errs *fieldErrors) int {
	raw, ok := m[key]
	if !ok || raw == nil {
		return 0
	}
	f, ok := raw.(float64)
	if !ok {
		errs.addf("%s[%d].%s", path, idx, key)
		return 0
	}
	return int(f)
}

// rangeBound coerces numeric-looking bounds the way legacy clients send
// them: numbers stay numbers, numeric strings are converted.
func rangeBound(m map[string]any, key, path string, idx int, errs *fieldErrors) float64 {
	raw, ok := m[key]
	if !ok || raw == nil {
		return 0
	}
	switch val := raw.(type) {
	case float64:
		return val
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return 0
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			errs.addf("%s[%d].%s", path, idx, key)
			return 0
		}
		return f
	default:
		errs.addf("%s[%d].%s", path, idx, key)
		return 0
	}
}
