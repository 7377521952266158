package grading

// Tier buckets a score for the results panel.
type Tier string

const (
	TierAll  Tier = "all"
	TierSome Tier = "some"
	TierNone Tier = "none"
)

type Feedback struct {
	Emoji   string `json:"emoji"`
	Message string `json:"message"`
}

const (
	messagePerfect = "¡Excelente! Dominas el tema a la perfección."
	messageRetry   = "Buen intento. Revisa los módulos para perfeccionar tu conocimiento."
)

var feedback = map[Tier]Feedback{
	TierAll:  {Emoji: "🏆", Message: messagePerfect},
	TierSome: {Emoji: "👏", Message: messageRetry},
	TierNone: {Emoji: "📚", Message: messageRetry},
}

func TierFor(score, total int) Tier {
	switch {
	case total > 0 && score == total:
		return TierAll
	case score > 0:
		return TierSome
	default:
		return TierNone
	}
}

func FeedbackFor(t Tier) Feedback { return feedback[t] }
