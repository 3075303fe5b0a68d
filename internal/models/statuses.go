package models

type AccountType string
type ApplicationStatus string

const (
	AccountTypeStudent   AccountType = "student"
	AccountTypeTPOAdmin  AccountType = "tpo-admin"
	AccountTypeRecruiter AccountType = "recruiter"

	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusSelected    ApplicationStatus = "selected"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

func (a AccountType) IsValid() bool {
	switch a {
	case AccountTypeStudent, AccountTypeTPOAdmin, AccountTypeRecruiter:
		return true
	}
	return false
}

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusShortlisted, ApplicationStatusSelected, ApplicationStatusRejected:
		return true
	}
	return false
}
