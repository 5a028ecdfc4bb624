package importexport

type ImportJobResponse struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	FileName      string     `json:"file_name"`
	Status        string     `json:"status"`
	TotalRows     int        `json:"total_rows"`
	ProcessedRows int        `json:"processed_rows"`
	CreatedRows   int        `json:"created_rows"`
	SkippedRows   int        `json:"skipped_rows"`
	FailedRows    int        `json:"failed_rows"`
	Progress      int        `json:"progress"`
	Errors        []RowError `json:"errors"`
	FailureReason string     `json:"failure_reason,omitempty"`
	StartedAt     *string    `json:"started_at"`
	FinishedAt    *string    `json:"finished_at"`
	CreatedAt     string     `json:"created_at"`
}

// ImportProgress is broadcast on the requester's import channel.
type ImportProgress struct {
	JobID         string `json:"job_id"`
	Status        string `json:"status"`
	TotalRows     int    `json:"total_rows"`
	ProcessedRows int    `json:"processed_rows"`
	CreatedRows   int    `json:"created_rows"`
	SkippedRows   int    `json:"skipped_rows"`
	FailedRows    int    `json:"failed_rows"`
}

type ExportPayrollsRequest struct {
	// Month is YYYY-MM.
	Month        string `form:"month" binding:"required"`
	Organization string `form:"organization"`
	Status       string `form:"status" binding:"omitempty,oneof=draft approved paid"`
}

type ExportEmployeesRequest struct {
	Organization string `form:"organization"`
	Status       string `form:"status" binding:"omitempty,oneof='Expats' 'Local ID' 'Local non ID'"`
	Gender       string `form:"gender" binding:"omitempty,oneof=male female other"`
	Search       string `form:"search"`
}

type ExportGrantsRequest struct {
	Organization string `form:"organization"`
	IsOrgFunded  *bool  `form:"is_org_funded"`
	Search       string `form:"search"`
}
