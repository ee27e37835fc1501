package types

type ErrorResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}

type SummaryResponse struct {
	DocID   string `json:"doc_id"`
	Summary string `json:"summary"`
	Warning string `json:"warning,omitempty"`
}

type QueryResponse struct {
	DocID    string `json:"doc_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Warning  string `json:"warning,omitempty"`
}
