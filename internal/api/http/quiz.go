package http

import (
	"encoding/json"
	"net/http"

	"github.com/VictoriaCloud360/CursoAPP/internal/grading"
	"github.com/VictoriaCloud360/CursoAPP/internal/session"
)

// POST /sessions/{id}/quiz {answers: [1, 0, 3]}; a null or -1 entry is a blank and is refused
func SubmitQuizHandler(store session.Store) http.HandlerFunc {
	return withSession(store, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		var req struct {
			Answers []*int `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		answers := make([]int, len(req.Answers))
		for i, a := range req.Answers {
			answers[i] = grading.Unanswered
			if a != nil {
				answers[i] = *a
			}
		}
		res, err := s.SubmitQuiz(answers)
		if err != nil {
			fail(w, err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	})
}
