package user

// Public is the directory entry exposed to other users in rollups and
// listings. No credential fields.
type Public struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	EmployeeCode string `json:"employee_code"`
	Department   string `json:"department"`
}

func (u *User) Public() Public {
	return Public{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		EmployeeCode: u.EmployeeCode,
		Department:   u.Department,
	}
}
