package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Merged words split", "SoftwareEngineer at AcmeCorp", "Software Engineer at Acme Corp"},
		{"Punctuation spacing", "Built APIs.Deployed services", "Built APIs. Deployed services"},
		{"Split ordinal rejoined", "Won 1 st prize", "Won 1st prize"},
		{"JavaScript survives word splitting", "JavaScript and TypeScript", "JavaScript and TypeScript"},
		{"Torn compound repaired", "Java Script, Mongo DB, Git Hub", "JavaScript, MongoDB, GitHub"},
		{"Node.js repaired", "node js experience with Node. js", "node js experience with Node.js"},
		{"PostgreSQL repaired", "Postgre SQL and My SQL", "PostgreSQL and MySQL"},
		{"DevOps repaired", "Dev Ops with Ci/Cd pipelines", "DevOps with CI/CD pipelines"},
		{"Empty string", "", ""},
		{"Plain text untouched", "five years of experience", "five years of experience"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	input := "SoftwareEngineer.Worked with Java Script and Postgre SQL on 1 st project"
	once := Normalize(input)
	assert.Equal(t, once, Normalize(once))
}
