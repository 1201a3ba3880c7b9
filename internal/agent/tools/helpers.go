package tools

// stringParam extracts a string argument, tolerating absent keys and
// non-string values the model may produce.
func stringParam(params map[string]interface{}, key string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
