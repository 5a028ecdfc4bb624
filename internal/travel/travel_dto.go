package travel

import "go-hrms/internal/shared/query"

type ListTravelRequestsRequest struct {
	query.Params
	EmployeeID   string `form:"employee_id"`
	DepartmentID string `form:"department_id"`
	GrantID      string `form:"grant_id"`
	Status       string `form:"status" binding:"omitempty,oneof=pending approved declined cancelled completed"`
}

type TravelRequestInput struct {
	EmployeeID          string  `json:"employee_id" binding:"required,uuid"`
	DepartmentID        *string `json:"department_id" binding:"omitempty,uuid"`
	PositionID          *string `json:"position_id" binding:"omitempty,uuid"`
	Destination         string  `json:"destination" binding:"required,max=255"`
	StartDate           string  `json:"start_date" binding:"required"`
	EndDate             string  `json:"end_date" binding:"required"`
	Purpose             string  `json:"purpose" binding:"required,max=2000"`
	GrantID             *string `json:"grant_id" binding:"omitempty,uuid"`
	Transportation      string  `json:"transportation" binding:"required,oneof=smru_vehicle public_transportation air other"`
	TransportationOther string  `json:"transportation_other" binding:"max=255"`
	Accommodation       string  `json:"accommodation" binding:"required,oneof=smru_arrangement self_arrangement other"`
	AccommodationOther  string  `json:"accommodation_other" binding:"max=255"`
	RequestByDate       *string `json:"request_by_date"`
	Remarks             string  `json:"remarks" binding:"max=2000"`
}

// DecisionRequest carries the optional date of an approval or
// acknowledgement and a remark. The date defaults to today.
type DecisionRequest struct {
	Date    *string `json:"date"`
	Remarks string  `json:"remarks" binding:"max=2000"`
}

type TravelResponse struct {
	ID                     string  `json:"id"`
	EmployeeID             string  `json:"employee_id"`
	StaffID                string  `json:"staff_id"`
	EmployeeName           string  `json:"employee_name"`
	DepartmentID           *string `json:"department_id"`
	DepartmentName         string  `json:"department_name"`
	PositionID             *string `json:"position_id"`
	PositionTitle          string  `json:"position_title"`
	Destination            string  `json:"destination"`
	StartDate              string  `json:"start_date"`
	EndDate                string  `json:"end_date"`
	Purpose                string  `json:"purpose"`
	GrantID                *string `json:"grant_id"`
	GrantCode              string  `json:"grant_code"`
	Transportation         string  `json:"transportation"`
	TransportationOther    string  `json:"transportation_other"`
	Accommodation          string  `json:"accommodation"`
	AccommodationOther     string  `json:"accommodation_other"`
	RequestByDate          *string `json:"request_by_date"`
	SupervisorApproved     bool    `json:"supervisor_approved"`
	SupervisorApprovedDate *string `json:"supervisor_approved_date"`
	HRAcknowledged         bool    `json:"hr_acknowledged"`
	HRAcknowledgementDate  *string `json:"hr_acknowledgement_date"`
	Remarks                string  `json:"remarks"`
	Status                 string  `json:"status"`
	CreatedAt              string  `json:"created_at"`
}
