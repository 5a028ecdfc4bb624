package employee

import "go-hrms/internal/shared/query"

type ListEmployeesRequest struct {
	query.Params
	Organization string `form:"organization"`
	Status       string `form:"status" binding:"omitempty,oneof='Expats' 'Local ID' 'Local non ID'"`
	Gender       string `form:"gender" binding:"omitempty,oneof=male female other"`
}

type CreateEmployeeRequest struct {
	StaffID               string  `json:"staff_id" binding:"omitempty,max=50"`
	Organization          string  `json:"organization" binding:"required,max=50"`
	Initial               string  `json:"initial_en" binding:"omitempty,max=20"`
	FirstNameEN           string  `json:"first_name_en" binding:"required,max=255"`
	LastNameEN            string  `json:"last_name_en" binding:"omitempty,max=255"`
	FirstNameTH           string  `json:"first_name_th" binding:"omitempty,max=255"`
	LastNameTH            string  `json:"last_name_th" binding:"omitempty,max=255"`
	Gender                string  `json:"gender" binding:"required,oneof=male female other"`
	DateOfBirth           *string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Status                string  `json:"status" binding:"required,oneof='Expats' 'Local ID' 'Local non ID'"`
	Nationality           string  `json:"nationality"`
	Religion              string  `json:"religion"`
	IdentificationType    string  `json:"identification_type"`
	IdentificationNumber  string  `json:"identification_number"`
	MaritalStatus         string  `json:"marital_status" binding:"omitempty,oneof=single married divorced widowed"`
	HasSpouse             bool    `json:"has_spouse"`
	SpouseHasIncome       bool    `json:"spouse_has_income"`
	NumberOfChildren      int     `json:"number_of_children" binding:"min=0,max=30"`
	MobilePhone           string  `json:"mobile_phone"`
	Email                 string  `json:"email" binding:"omitempty,email"`
	CurrentAddress        string  `json:"current_address"`
	PermanentAddress      string  `json:"permanent_address"`
	BankName              string  `json:"bank_name"`
	BankBranch            string  `json:"bank_branch"`
	BankAccountName       string  `json:"bank_account_name"`
	BankAccountNumber     string  `json:"bank_account_number"`
	EligibleForPVD        bool    `json:"eligible_for_pvd"`
	EligibleForSavingFund bool    `json:"eligible_for_saving_fund"`
}

type UpdateEmployeeRequest = CreateEmployeeRequest

type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,max=500,dive,uuid"`
}

type BulkDeleteResponse struct {
	Deleted int `json:"deleted"`
}

type EmployeeResponse struct {
	ID                    string  `json:"id"`
	StaffID               string  `json:"staff_id"`
	Organization          string  `json:"organization"`
	Initial               string  `json:"initial_en"`
	FirstNameEN           string  `json:"first_name_en"`
	LastNameEN            string  `json:"last_name_en"`
	FirstNameTH           string  `json:"first_name_th"`
	LastNameTH            string  `json:"last_name_th"`
	FullName              string  `json:"full_name"`
	Gender                string  `json:"gender"`
	DateOfBirth           *string `json:"date_of_birth"`
	Age                   *int    `json:"age"`
	Status                string  `json:"status"`
	Nationality           string  `json:"nationality"`
	Religion              string  `json:"religion"`
	IdentificationType    string  `json:"identification_type"`
	IdentificationNumber  string  `json:"identification_number"`
	MaritalStatus         string  `json:"marital_status"`
	HasSpouse             bool    `json:"has_spouse"`
	SpouseHasIncome       bool    `json:"spouse_has_income"`
	NumberOfChildren      int     `json:"number_of_children"`
	MobilePhone           string  `json:"mobile_phone"`
	Email                 string  `json:"email"`
	CurrentAddress        string  `json:"current_address"`
	PermanentAddress      string  `json:"permanent_address"`
	BankName              string  `json:"bank_name"`
	BankBranch            string  `json:"bank_branch"`
	BankAccountName       string  `json:"bank_account_name"`
	BankAccountNumber     string  `json:"bank_account_number"`
	EligibleForPVD        bool    `json:"eligible_for_pvd"`
	EligibleForSavingFund bool    `json:"eligible_for_saving_fund"`
	CreatedAt             string  `json:"created_at"`
	UpdatedAt             string  `json:"updated_at"`
}

type EmployeeOption struct {
	ID           string `json:"id"`
	StaffID      string `json:"staff_id"`
	FullName     string `json:"full_name"`
	Organization string `json:"organization"`
}
