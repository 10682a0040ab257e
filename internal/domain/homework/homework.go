package homework

// Status is the review state reported by the API for a homework.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// verdicts maps every known status to the text sent to the chat.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the human-readable verdict for s.
func Verdict(s Status) (string, bool) {
	v, ok := verdicts[s]
	return v, ok
}

// Homework is the part of a homework record the bot cares about.
// It only lives for the duration of one polling cycle.
type Homework struct {
	Name    string
	Status  Status
	Message string // rendered status-change notification
}
