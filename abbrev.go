package neon

// abbreviations is the forward table: long field name -> short form. It is
// a fixed, process-wide constant (spec.md section 3/9): readers need no
// synchronization and no dynamic allocation occurs per call.
var abbreviations = map[string]string{
	"department":    "dept",
	"configuration": "config",
	"first_name":    "fname",
	"last_name":     "lname",
	"description":   "desc",
	"quantity":      "qty",
	"reference":     "ref",
	"category":      "cat",
	"organization":  "org",
	"administrator": "admin",
	"application":   "app",
	"information":   "info",
	"message":       "msg",
	"number":        "num",
	"address":       "addr",
	"telephone":     "phone",
	"temperature":   "temp",
	"minimum":       "min",
	"maximum":       "max",
	"average":       "avg",
	"total":         "sum",
	"position":      "pos",
	"direction":     "dir",
	"document":      "doc",
	"parameter":     "param",
	"environment":   "env",
	"repository":    "repo",
	"database":      "db",
	"username":      "user",
	"password":      "pwd",
	"timestamp":     "ts",
	"created_at":    "created",
	"updated_at":    "updated",
	"latitude":      "lat",
	"longitude":     "lng",
	"percentage":    "pct",
	"attribute":     "attr",
	"properties":    "props",
	"function":      "fn",
}

var reverseAbbreviations map[string]string

func init() {
	reverseAbbreviations = make(map[string]string, len(abbreviations))
	for long, short := range abbreviations {
		if existing, collides := reverseAbbreviations[short]; collides {
			panic("neon: abbreviation collision, " + existing + " and " + long + " both abbreviate to " + short)
		}
		reverseAbbreviations[short] = long
	}
}

// AbbreviateField applies the forward abbreviation table to a field name,
// returning it unchanged if there is no entry.
func AbbreviateField(field string) string {
	if short, ok := abbreviations[field]; ok {
		return short
	}
	return field
}

// ExpandField applies the reverse abbreviation table to a field name (or
// string value, per spec.md section 3: "used for both keys and, on
// decode, string values when expand_abbreviations is set"), returning it
// unchanged if there is no entry.
func ExpandField(field string) string {
	if long, ok := reverseAbbreviations[field]; ok {
		return long
	}
	return field
}
