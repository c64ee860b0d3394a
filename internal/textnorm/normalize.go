// Package textnorm repairs spacing artifacts introduced by layout-based text
// extraction (merged words, missing punctuation spacing, split ordinals)
// before any pattern matching runs. It is pure string-to-string and never
// fails.
package textnorm

import "regexp"

var (
	mergedWordRe  = regexp.MustCompile(`([a-z])([A-Z])`)
	punctSpaceRe  = regexp.MustCompile(`([.,;:!?])([A-Za-z])`)
	splitOrdinalRe = regexp.MustCompile(`(\d)\s+(st|nd|rd|th)\b`)
)

// repair restores a compound technology name that rule one (or the PDF
// extractor itself) tore apart.
type repair struct {
	pattern     *regexp.Regexp
	replacement string
}

var repairs = []repair{
	// Languages
	{regexp.MustCompile(`(?i)Java\s*Script`), "JavaScript"},
	{regexp.MustCompile(`(?i)Type\s*Script`), "TypeScript"},
	{regexp.MustCompile(`(?i)Coffee\s*Script`), "CoffeeScript"},

	// Frameworks & libraries
	{regexp.MustCompile(`(?i)Node\s*\.\s*js`), "Node.js"},
	{regexp.MustCompile(`(?i)React\s*Js`), "React.js"},
	{regexp.MustCompile(`(?i)Vue\s*Js`), "Vue.js"},
	{regexp.MustCompile(`(?i)Next\s*Js`), "Next.js"},
	{regexp.MustCompile(`(?i)Nest\s*Js`), "Nest.js"},
	{regexp.MustCompile(`(?i)Express\s*Js`), "Express.js"},
	{regexp.MustCompile(`(?i)Angular\s*Js`), "AngularJS"},
	{regexp.MustCompile(`(?i)Tensor\s*Flow`), "TensorFlow"},
	{regexp.MustCompile(`(?i)Py\s*Torch`), "PyTorch"},
	{regexp.MustCompile(`(?i)Sci\s*Kit`), "Scikit"},
	{regexp.MustCompile(`(?i)Mat\s*Plot\s*Lib`), "Matplotlib"},
	{regexp.MustCompile(`(?i)Power\s*BI`), "PowerBI"},

	// Databases
	{regexp.MustCompile(`(?i)Mongo\s*DB`), "MongoDB"},
	{regexp.MustCompile(`(?i)Postgre\s*SQL`), "PostgreSQL"},
	{regexp.MustCompile(`(?i)My\s*SQL`), "MySQL"},
	{regexp.MustCompile(`(?i)No\s*SQL`), "NoSQL"},
	{regexp.MustCompile(`(?i)Dynamo\s*DB`), "DynamoDB"},
	{regexp.MustCompile(`(?i)Cosmos\s*DB`), "CosmosDB"},

	// Tools
	{regexp.MustCompile(`(?i)Git\s*Hub`), "GitHub"},
	{regexp.MustCompile(`(?i)Git\s*Lab`), "GitLab"},
	{regexp.MustCompile(`(?i)Vs\s*Code`), "VS Code"},
	{regexp.MustCompile(`(?i)Visual\s*Studio`), "Visual Studio"},

	// Concepts
	{regexp.MustCompile(`(?i)Back\s*End`), "Backend"},
	{regexp.MustCompile(`(?i)Front\s*End`), "Frontend"},
	{regexp.MustCompile(`(?i)Full\s*Stack`), "FullStack"},
	{regexp.MustCompile(`(?i)Dev\s*Ops`), "DevOps"},
	{regexp.MustCompile(`(?i)Ci\s*/\s*Cd`), "CI/CD"},
}

// Normalize applies the spacing repairs in order:
//  1. insert a space between a lowercase letter and a following uppercase
//     letter ("DeveloperManager" -> "Developer Manager");
//  2. insert a space after sentence punctuation glued to a letter;
//  3. rejoin ordinal suffixes split from their number ("1 st" -> "1st");
//  4. restore compound technology names broken by rule one.
func Normalize(text string) string {
	text = mergedWordRe.ReplaceAllString(text, "$1 $2")
	text = punctSpaceRe.ReplaceAllString(text, "$1 $2")
	text = splitOrdinalRe.ReplaceAllString(text, "$1$2")
	for _, r := range repairs {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return text
}
