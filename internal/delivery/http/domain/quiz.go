package domain

var (
	QUIZ_NEXT_QUESTION_SUCCESS   = "Next question ready"
	QUIZ_NEXT_QUESTION_FAILED    = "Failed to produce next question"
	QUIZ_SUBMIT_SUCCESS          = "Quiz result recorded"
	QUIZ_SUBMIT_FAILED           = "Failed to record quiz result"
	QUIZ_PERSONALIZATION_SUCCESS = "Personalization summary ready"
	QUIZ_PERSONALIZATION_FAILED  = "Failed to build personalization summary"
)
