// Package handler bridges logr and slog front ends onto an envlog logger.
package handler

import "fmt"

// keyValueArgs renders alternating key/value pairs as "key=value" strings.
// A trailing key without a value is rendered with "<missing>".
func keyValueArgs(keysAndValues []any) []any {
	args := make([]any, 0, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 >= len(keysAndValues) {
			args = append(args, key+"=<missing>")
			break
		}
		args = append(args, fmt.Sprintf("%s=%+v", key, keysAndValues[i+1]))
	}
	return args
}
