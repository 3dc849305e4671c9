package courier

type CourierDB struct {
	ID         int64
	NationalID string
	FirstName  string
	LastName   string
	Phone      string
	Vehicle    string
	Zone       string
	Capacity   int
	Available  bool
	Active     bool
}

type CourierModifyDB struct {
	ID         *int64
	NationalID *string
	FirstName  *string
	LastName   *string
	Phone      *string
	Vehicle    *string
	Zone       *string
	Capacity   *int
	Available  *bool
	Active     *bool
}
