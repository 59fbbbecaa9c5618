package entity

type LeaderboardEntry struct {
	Rank         int     `json:"rank"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Coins        int     `json:"coins"`
	QuizzesTaken int     `json:"quizzes_taken"`
	Accuracy     float64 `json:"accuracy"`
}

type PaginationMeta struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}
