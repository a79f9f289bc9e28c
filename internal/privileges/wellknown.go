package privileges

// Privilege letters as serialized in aclitem, mapped to the privilege type
// they stand for. cf. https://www.postgresql.org/docs/current/ddl-priv.html
var codeLabels = map[string]string{
	"r": "SELECT",
	"w": "UPDATE",
	"a": "INSERT",
	"d": "DELETE",
	"D": "TRUNCATE",
	"x": "REFERENCE",
	"t": "TRIGGER",
	"X": "EXECUTE",
	"U": "USAGE",
	"C": "CREATE",
	"c": "CONNECT",
	"T": "TEMPORARY",
}

var labelCodes map[string]string

func init() {
	labelCodes = make(map[string]string)
	for code, label := range codeLabels {
		labelCodes[label] = code
	}
	// Postgres accepts TEMP as a synonym for TEMPORARY.
	labelCodes["TEMP"] = "T"
}
