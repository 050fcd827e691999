package scoreservice

// ScoreSubmission is one score batch for a single challenge. PlayerNames and
// Scores are parallel sequences: Scores[i] belongs to PlayerNames[i].
// Transient; constructed per request and discarded after processing.
type ScoreSubmission struct {
	OlympicsID  int64    `json:"olympicsId"`
	ChallengeID int64    `json:"challengeId"`
	PlayerNames []string `json:"playerNames"`
	Scores      []int    `json:"scores"`
}

// SubmissionResult reports the outcome of a reconciled submission.
type SubmissionResult struct {
	// Affected is the number of score rows written (inserted or updated).
	Affected int64 `json:"affected"`
}
