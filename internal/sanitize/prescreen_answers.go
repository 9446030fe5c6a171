package sanitize

import (
	"strconv"
	"strings"
)

// numericAnswerKeys are the nested answer keys that must be coerced to
// numbers; a blank string stays a blank string.
var numericAnswerKeys = map[string]bool{
	"min":      true,
	"max":      true,
	"rangeMin": true,
	"rangeMax": true,
}

// Answers sanitizes applicant pre-screen answers: every string has its markup
// stripped, numeric-looking range bounds are coerced, and everything else
// passes through untouched. A non-numeric value under a numeric key is a
// shape error.
func Answers(answers map[string]any) (map[string]any, error) {
	if answers == nil {
		return map[string]any{}, nil
	}

	var errs fieldErrors
	cleaned := make(map[string]any, len(answers))
	for k, v := range answers {
		cleaned[k] = sanitizeAnswerValue(v, k, &errs)
	}

	if err := errs.err(); err != nil {
		return nil, err
	}
	return cleaned, nil
}

func sanitizeAnswerValue(v any, path string, errs *fieldErrors) any {
	switch val := v.(type) {
	case string:
		return StripTags(val)
	case float64, bool, nil:
		return val
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = sanitizeAnswerValue(item, path+"["+strconv.Itoa(i)+"]", errs)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			childPath := path + "." + k
			if numericAnswerKeys[k] {
				out[k] = coerceNumeric(item, childPath, errs)
				continue
			}
			out[k] = sanitizeAnswerValue(item, childPath, errs)
		}
		return out
	default:
		return val
	}
}

func coerceNumeric(v any, path string, errs *fieldErrors) any {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return ""
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			errs.add(path)
			return nil
		}
		return f
	case nil:
		return nil
	default:
		errs.add(path)
		return nil
	}
}
