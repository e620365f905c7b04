package model

const (
	MessageRequired = "This field is required"
	MessageNumeric  = "Must be a number"
)

var definitions = [fieldCount]Field{
	Pregnancies: {
		ID:   Pregnancies,
		Type: FieldTypeInteger,
		Validations: withBase(
			minRule("0", "Cannot be negative"),
		),
	},
	Glucose: {
		ID:          Glucose,
		Type:        FieldTypeNumber,
		Validations: withBase(between("0", "300")...),
	},
	BloodPressure: {
		ID:          BloodPressure,
		Type:        FieldTypeNumber,
		Validations: withBase(between("0", "200")...),
	},
	SkinThickness: {
		ID:          SkinThickness,
		Type:        FieldTypeNumber,
		Validations: withBase(),
	},
	Insulin: {
		ID:          Insulin,
		Type:        FieldTypeNumber,
		Validations: withBase(),
	},
	BMI: {
		ID:          BMI,
		Type:        FieldTypeNumber,
		Validations: withBase(between("10", "50")...),
	},
	DiabetesPedigreeFunction: {
		ID:          DiabetesPedigreeFunction,
		Type:        FieldTypeNumber,
		Validations: withBase(),
	},
	Age: {
		ID:          Age,
		Type:        FieldTypeNumber,
		Validations: withBase(between("0", "120")...),
	},
}

// Definitions returns the field definitions in canonical order. The returned
// slice is a copy and may be modified by the caller.
func Definitions() []Field {
	out := make([]Field, 0, fieldCount)
	for _, def := range definitions {
		out = append(out, cloneField(def))
	}
	return out
}

// Definition returns the definition for a single field.
func Definition(id FieldID) (Field, bool) {
	if !id.Valid() {
		return Field{}, false
	}
	return cloneField(definitions[id]), true
}

func withBase(rules ...ValidationRule) []ValidationRule {
	out := []ValidationRule{
		{Kind: ValidationRuleRequired, Message: MessageRequired},
		{Kind: ValidationRuleNumeric, Message: MessageNumeric},
	}
	return append(out, rules...)
}

func minRule(value, message string) ValidationRule {
	return ValidationRule{
		Kind:    ValidationRuleMin,
		Params:  map[string]string{"value": value},
		Message: message,
	}
}

func maxRule(value, message string) ValidationRule {
	return ValidationRule{
		Kind:    ValidationRuleMax,
		Params:  map[string]string{"value": value},
		Message: message,
	}
}

func between(lo, hi string) []ValidationRule {
	message := "Must be between " + lo + " and " + hi
	return []ValidationRule{minRule(lo, message), maxRule(hi, message)}
}

func cloneField(f Field) Field {
	rules := make([]ValidationRule, len(f.Validations))
	for i, rule := range f.Validations {
		rules[i] = rule
		if rule.Params != nil {
			params := make(map[string]string, len(rule.Params))
			for k, v := range rule.Params {
				params[k] = v
			}
			rules[i].Params = params
		}
	}
	f.Validations = rules
	return f
}
