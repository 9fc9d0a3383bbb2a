package types

// accusative maps an animal display name to its accusative form. Names not
// listed are used as-is.
var accusative = map[string]string{
	"Попугай": "попугая",
	"Лев":     "льва",
	"Змея":    "змею",
}

// Accusative returns the accusative form of an animal name, or the name
// unchanged when no form is known. Matching is exact.
func Accusative(name string) string {
	if form, ok := accusative[name]; ok {
		return form
	}
	return name
}
