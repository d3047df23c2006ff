package content

// Vocabularies used by the code generator. Changing any list changes the
// output for existing seeds.
var (
	identParts = []string{
		"user", "room", "token", "state", "node", "view",
		"data", "rect", "path", "font", "line", "clip",
	}

	identSuffixes = []string{
		"Id", "Map", "List", "Cfg", "Ref", "Count", "Index", "Value", "State",
	}

	stringWords = []string{
		"hello", "bookmark", "paper", "opentype", "svg", "render", "stroke", "path",
	}

	poeticNumbers = []string{
		"0", "1", "3.14", "1.618", "2.718", "7", "42", "108", "404", "2026",
	}

	methods = []string{"add", "set", "get", "map", "filter"}

	commentTags  = []string{"TODO", "FIXME", "NOTE"}
	commentNotes = []string{"cleanup", "optimize", "refactor", "edge case"}

	boolLiterals = []string{"true", "false"}
)
