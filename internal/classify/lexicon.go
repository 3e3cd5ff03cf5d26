// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import "regexp"

// academicIndicators signal a university, hospital, or other non-industry
// institution. An affiliation string matching one of these is treated as
// academic unless it also names a known company.
var academicIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\buniversity\b|\bcollege\b|\bcampus\b`),
	regexp.MustCompile(`(?i)\bschool\s+of\b`),
	regexp.MustCompile(`(?i)\bacadem(?:y|ic)\b`),
	regexp.MustCompile(`(?i)\binstitut(?:e|ion)\b`),
	regexp.MustCompile(`(?i)\bdepartment\b|\bdept\.?\b`),
	regexp.MustCompile(`(?i)\bhospital\b`),
	regexp.MustCompile(`(?i)\bmedical\s+center\b|\bhealth\s+center\b`),
	regexp.MustCompile(`(?i)\bclinic(?:al)?\b`),
	regexp.MustCompile(`(?i)\bschool\b`),
	regexp.MustCompile(`(?i)\bfaculty\b`),
	regexp.MustCompile(`(?i)\bprofessor\b`),
	regexp.MustCompile(`(?i)\bedu\b`),
}

// pharmaIndicators signal a commercial or industry entity in an
// affiliation string.
var pharmaIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:pharma(?:ceutical)?s?|biotech|therapeutics|biosciences)\b`),
	regexp.MustCompile(`(?i)\binc\.?\b|\bllc\.?\b|\bltd\.?\b|\bcorp\.?\b|\bcorporation\b`),
	regexp.MustCompile(`(?i)\blaborator(?:y|ies)\b`),
	regexp.MustCompile(`(?i)\bmedical\s+research\b`),
	regexp.MustCompile(`(?i)\bbiopharm(?:a|aceutical)?\b`),
	regexp.MustCompile(`(?i)\bbiolog(?:y|ical)s?\b`),
	regexp.MustCompile(`(?i)\blife\s+sciences\b`),
	regexp.MustCompile(`(?i)\bhealth(?:care)?\b`),
	regexp.MustCompile(`(?i)\bmedicine[s]?\b`),
	regexp.MustCompile(`(?i)\bgenetics\b`),
	regexp.MustCompile(`(?i)\btechnology\b`),
}

// knownCompanies lists major pharmaceutical and biotech companies and
// common aliases, lower-cased for substring matching. Kept sorted so
// iteration order (and therefore output) is deterministic.
var knownCompanies = []string{
	"abbvie",
	"alexion",
	"alkermes",
	"allogene",
	"amgen",
	"astellas",
	"astrazeneca",
	"bayer",
	"biogen",
	"biomarin",
	"biontech",
	"bluebird bio",
	"bms",
	"boehringer",
	"bristol-myers squibb",
	"celgene",
	"curevac",
	"daiichi",
	"eisai",
	"eli lilly",
	"genentech",
	"gilead",
	"glaxosmithkline",
	"gsk",
	"incyte",
	"ionis",
	"j&j",
	"jazz",
	"johnson & johnson",
	"lilly",
	"merck",
	"moderna",
	"novartis",
	"novavax",
	"pfizer",
	"regeneron",
	"roche",
	"sanofi",
	"seagen",
	"shire",
	"takeda",
	"teva",
	"united therapeutics",
	"vertex",
	"viatris",
}

// matchesAny reports whether any pattern in the set matches s.
func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
