package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducation(t *testing.T) {
	p := NewParser()

	t.Run("degree institution year and cgpa", func(t *testing.T) {
		lines := []string{
			"B.Tech in Computer Science",
			"Indian Institute of Technology, 2019 - 2023",
			"CGPA: 8.9",
		}
		records := p.ExtractEducation(lines)
		require.Len(t, records, 1)
		assert.Equal(t, "B.Tech In Computer Science", records[0].Course)
		assert.Equal(t, "Indian Institute of Technology", records[0].College)
		assert.Equal(t, "2023", records[0].GraduationYear)
		assert.Equal(t, "8.9", records[0].CGPA)
	})

	t.Run("high school line discarded", func(t *testing.T) {
		lines := []string{
			"12th Standard, Sunrise School, 2018",
			"Bachelor of Engineering",
			"Pune University, 2022",
		}
		records := p.ExtractEducation(lines)
		require.Len(t, records, 1)
		assert.Equal(t, "Bachelor", records[0].Course)
		assert.Equal(t, "Pune University", records[0].College)
		assert.Equal(t, "2022", records[0].GraduationYear)
	})

	t.Run("institution before degree line", func(t *testing.T) {
		lines := []string{
			"Stanford University, 2019 - 2023",
			"Master of Science in Data Science",
		}
		records := p.ExtractEducation(lines)
		require.Len(t, records, 1)
		assert.Equal(t, "Master In Data Science", records[0].Course)
		assert.Equal(t, "Stanford University", records[0].College)
		assert.Equal(t, "2023", records[0].GraduationYear)
	})

	t.Run("school line drops collected fields", func(t *testing.T) {
		lines := []string{
			"Sunrise School, 2018",
			"12th Standard",
			"BCA",
		}
		records := p.ExtractEducation(lines)
		require.Len(t, records, 1)
		assert.Equal(t, "Bca", records[0].Course)
		assert.Empty(t, records[0].College)
		assert.Empty(t, records[0].GraduationYear)
	})

	t.Run("no record without a degree line", func(t *testing.T) {
		lines := []string{
			"National Institute of Design, 2020",
			"CGPA: 9.1",
		}
		assert.Empty(t, p.ExtractEducation(lines))
	})

	t.Run("second degree closes the first record", func(t *testing.T) {
		lines := []string{
			"M.Tech in Data Science",
			"IIT Bombay University, 2024",
			"B.Tech in Information Technology",
			"Delhi College of Engineering, 2022",
		}
		records := p.ExtractEducation(lines)
		require.Len(t, records, 2)
		assert.Equal(t, "M.Tech In Data Science", records[0].Course)
		assert.Equal(t, "2024", records[0].GraduationYear)
		assert.Equal(t, "B.Tech In Information Technology", records[1].Course)
		assert.Equal(t, "2022", records[1].GraduationYear)
	})

	t.Run("every emitted record has a course", func(t *testing.T) {
		lines := []string{
			"Some University, 2021",
			"MBA",
			"Another College",
			"random line",
		}
		for _, rec := range p.ExtractEducation(lines) {
			assert.NotEmpty(t, rec.Course)
		}
	})
}

func TestCleanInstitutionName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Trailing comma", "Indian Institute of Technology, ", "Indian Institute of Technology"},
		{"Embedded year", "Anna University 2019", "Anna University"},
		{"Present range", "State College - Present", "State College"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanInstitutionName(tt.input))
		})
	}
}
