package logging

// LogField creates a Field from a key-value pair.
func LogField(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// StringField creates a Field with a string value.
func StringField(key, value string) Field {
	return Field{Key: key, Value: value}
}

// IntField creates a Field with an integer value.
func IntField(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// BoolField creates a Field with a boolean value.
func BoolField(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// ErrorField creates a Field for an error value. If err is nil,
// the value is set to the string "<nil>".
func ErrorField(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: "<nil>"}
	}
	return Field{Key: "error", Value: err.Error()}
}

// verdictFields flattens a VerdictLog for loggers that only
// understand plain fields.
func verdictFields(v VerdictLog) []Field {
	fields := []Field{
		StringField("type", v.Type),
		BoolField("passed", v.Passed),
	}
	if v.Rule != "" {
		fields = append(fields, StringField("rule", v.Rule))
	}
	if v.Target != "" {
		fields = append(fields, StringField("target", v.Target))
	}
	if v.Negated {
		fields = append(fields, BoolField("negated", true))
	}
	if v.Message != "" {
		fields = append(fields, StringField("message", v.Message))
	}
	return fields
}
