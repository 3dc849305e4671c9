package entities

type Courier struct {
	ID         int64
	NationalID string
	FirstName  string
	LastName   string
	Phone      string
	Vehicle    string
	Zone       ZoneType
	Capacity   int
	Available  bool
	Active     bool
}

// DefaultCourierCapacity is the number of concurrent deliveries a new
// courier can carry unless the caller says otherwise.
const DefaultCourierCapacity = 5

type CourierModify struct {
	ID         *int64
	NationalID *string
	FirstName  *string
	LastName   *string
	Phone      *string
	Vehicle    *string
	Zone       *ZoneType
	Capacity   *int
	Available  *bool
	Active     *bool
}
