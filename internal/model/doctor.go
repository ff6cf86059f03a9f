package model

type Doctor struct {
	ID        string `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
	Specialty string `db:"specialty" json:"specialty"`
	Avatar    string `db:"avatar" json:"avatar"`
	Email     string `db:"email" json:"email"`
	Phone     string `db:"phone" json:"phone"`
	Address   string `db:"address" json:"address"`
}

// DoctorFilter : empty fields mean "no filter"
type DoctorFilter struct {
	Specialty string
	Search    string
}
