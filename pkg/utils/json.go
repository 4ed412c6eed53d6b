package utils

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson formata o valor como JSON indentado para logs de depuração.
// Slices de bytes são tratados como JSON já serializado.
func PrettyJson(in any) string {
	var value any = in
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return string(raw)
		}
		value = decoded
	}

	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(out)
}
