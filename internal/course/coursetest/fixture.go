// Package coursetest holds fixtures shared by exporter tests.
package coursetest

import "github.com/VictoriaCloud360/CursoAPP/internal/course"

// Sample returns a course with 3 modules and 3 quiz questions.
func Sample() course.Course {
	return course.Course{
		Title:        "Intro a Python 3!",
		Introduction: "Aprende los fundamentos de Python. Construye tu primer script hoy.",
		Modules: []course.Module{
			{
				Title:        "Variables",
				Content:      "**Hi** there\n- a\n- b\n\nNext",
				ImageKeyword: "code",
				KeyPoints:    []string{"Tipos dinámicos", "Nombres claros"},
			},
			{
				Title:        "Funciones",
				Content:      "Una función agrupa **instrucciones**.\n\nSe define con def.",
				ImageKeyword: "code",
				KeyPoints:    []string{"def", "return", "argumentos"},
			},
			{
				Title:        "Módulos",
				Content:      "Importa código con import.",
				ImageKeyword: "library",
				KeyPoints:    []string{"import", "pip"},
			},
		},
		Quiz: []course.QuizQuestion{
			{Question: "¿Qué palabra define una función?", Options: []string{"func", "def", "fn", "lambda"}, CorrectAnswer: 1},
			{Question: "¿Python es tipado dinámicamente?", Options: []string{"Sí", "No", "A veces", "Nunca"}, CorrectAnswer: 0},
			{Question: "¿Cómo se importa un módulo?", Options: []string{"include", "require", "using", "import"}, CorrectAnswer: 3},
		},
	}
}

// SampleJSON is Sample as the generator would return it, fenced in prose.
const SampleJSON = "Aquí tienes el curso:\n```json\n" + `{
  "title": "Intro a Python 3!",
  "introduction": "Aprende los fundamentos de Python.",
  "modules": [
    {"title": "Variables", "content": "**Hi** there", "imageKeyword": "code", "keyPoints": ["a"]},
    {"title": "Funciones", "content": "def", "imageKeyword": "code", "keyPoints": ["b"]},
    {"title": "Módulos", "content": "import", "imageKeyword": "library", "keyPoints": ["c"]}
  ],
  "quiz": [
    {"question": "q1", "options": ["a", "b", "c", "d"], "correctAnswer": 1},
    {"question": "q2", "options": ["a", "b", "c", "d"], "correctAnswer": 0},
    {"question": "q3", "options": ["a", "b", "c", "d"], "correctAnswer": 3}
  ]
}` + "\n```\nSuerte."
