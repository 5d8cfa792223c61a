package handlers

// Socket.io delivers JSON object payloads as map[string]interface{}. The
// helpers below pull named string fields out without panicking on malformed
// input from hand-crafted clients.

func eventPayload(args []interface{}) (map[string]interface{}, bool) {
	if len(args) < 1 {
		return nil, false
	}
	data, ok := args[0].(map[string]interface{})
	return data, ok
}

func stringField(data map[string]interface{}, key string) string {
	value, _ := data[key].(string)
	return value
}
