package interview

import "go-hrms/internal/shared/query"

type ListInterviewsRequest struct {
	query.Params
	InterviewStatus string `form:"interview_status" binding:"omitempty,oneof=scheduled completed cancelled no_show"`
	HiredStatus     string `form:"hired_status" binding:"omitempty,oneof=pending hired not_hired on_hold"`
	InterviewMode   string `form:"interview_mode" binding:"omitempty,oneof=in_person online phone"`
	JobPosition     string `form:"job_position"`
	From            string `form:"from"`
	To              string `form:"to"`
}

type CandidateRequest struct {
	Name string `form:"name" binding:"required,max=255"`
}

type InterviewRequest struct {
	CandidateName       string `json:"candidate_name" binding:"required,max=255"`
	Phone               string `json:"phone" binding:"max=30"`
	JobPosition         string `json:"job_position" binding:"required,max=255"`
	InterviewerNames    string `json:"interviewer_names" binding:"max=1000"`
	InterviewDate       string `json:"interview_date" binding:"required"`
	StartTime           string `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime             string `json:"end_time" binding:"omitempty,datetime=15:04"`
	InterviewMode       string `json:"interview_mode" binding:"required,oneof=in_person online phone"`
	InterviewStatus     string `json:"interview_status" binding:"omitempty,oneof=scheduled completed cancelled no_show"`
	TechnicalScore      *int   `json:"technical_score" binding:"omitempty,min=0,max=10"`
	CommunicationScore  *int   `json:"communication_score" binding:"omitempty,min=0,max=10"`
	ProblemSolvingScore *int   `json:"problem_solving_score" binding:"omitempty,min=0,max=10"`
	CulturalFitScore    *int   `json:"cultural_fit_score" binding:"omitempty,min=0,max=10"`
	HiredStatus         string `json:"hired_status" binding:"omitempty,oneof=pending hired not_hired on_hold"`
	ReferenceInfo       string `json:"reference_info" binding:"max=2000"`
	Notes               string `json:"notes" binding:"max=5000"`
}

type InterviewResponse struct {
	ID                  string  `json:"id"`
	CandidateName       string  `json:"candidate_name"`
	Phone               string  `json:"phone"`
	JobPosition         string  `json:"job_position"`
	InterviewerNames    string  `json:"interviewer_names"`
	InterviewDate       string  `json:"interview_date"`
	StartTime           string  `json:"start_time"`
	EndTime             string  `json:"end_time"`
	InterviewMode       string  `json:"interview_mode"`
	InterviewStatus     string  `json:"interview_status"`
	TechnicalScore      *int    `json:"technical_score"`
	CommunicationScore  *int    `json:"communication_score"`
	ProblemSolvingScore *int    `json:"problem_solving_score"`
	CulturalFitScore    *int    `json:"cultural_fit_score"`
	TotalScore          int     `json:"total_score"`
	AverageScore        float64 `json:"average_score"`
	HiredStatus         string  `json:"hired_status"`
	ReferenceInfo       string  `json:"reference_info"`
	Notes               string  `json:"notes"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}
