package sitecontent

// SectionNames is the fixed set of top-level section keys.
var SectionNames = []string{
	"home",
	"about",
	"buy",
	"sell",
	"neighborhoods",
	"calculators",
	"contact",
	"header",
	"footer",
	"resources",
}

// IsSection reports whether name is one of the fixed section keys.
func IsSection(name string) bool {
	for _, s := range SectionNames {
		if s == name {
			return true
		}
	}
	return false
}
