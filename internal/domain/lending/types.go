package lending

// Status is derived from the existence of an active loan, except for
// maintenance/missing which are administratively set and override
// lending eligibility.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusBorrowed    Status = "borrowed"
	StatusMaintenance Status = "maintenance"
	StatusMissing     Status = "missing"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBorrowed, StatusMaintenance, StatusMissing:
		return true
	default:
		return false
	}
}

type ReturnMethod string

const (
	ReturnByUser   ReturnMethod = "user"
	ReturnBySystem ReturnMethod = "system"
	ReturnByAdmin  ReturnMethod = "admin"
)

func (m ReturnMethod) String() string {
	return string(m)
}

func (m ReturnMethod) IsValid() bool {
	switch m {
	case ReturnByUser, ReturnBySystem, ReturnByAdmin:
		return true
	default:
		return false
	}
}
