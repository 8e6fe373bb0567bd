package visit

type Method string

const (
	MethodKiosk  Method = "kiosk"
	MethodManual Method = "manual"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodKiosk, MethodManual:
		return true
	default:
		return false
	}
}

// ClosedBy records who drove the check-out, for the audit trail. The
// check-in method is never rewritten by a close.
type ClosedBy string

const (
	ClosedByMember ClosedBy = "member"
	ClosedByStaff  ClosedBy = "staff"
	ClosedBySystem ClosedBy = "system"
)

func (c ClosedBy) String() string {
	return string(c)
}

func (c ClosedBy) IsValid() bool {
	switch c {
	case ClosedByMember, ClosedByStaff, ClosedBySystem:
		return true
	default:
		return false
	}
}
