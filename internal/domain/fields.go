package domain

// Constraint messages are shown to the user verbatim when a field fails
// validation, so they are phrased as instructions.
const (
	NameConstraints     = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints    = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	CuisineConstraints  = "Cuisines should only contain alphanumeric characters and spaces, and it should not be blank"
	LocationConstraints = "Locations can take any values, and it should not be blank"
)

const (
	nameRules     = "required,max=100,displayname"
	phoneRules    = "required,number,min=3,max=20"
	cuisineRules  = "required,max=50,displayname"
	locationRules = "required,max=200,leadingnonspace"
)

// Name is the display name of an eatery. It is also the eatery's identity:
// two eateries with exactly the same Name are considered the same eatery.
type Name struct {
	value string
}

// NewName validates value and returns a Name.
// The value is stored as given; trimming is the caller's job.
func NewName(value string) (Name, error) {
	if err := validateField(value, nameRules, NameConstraints); err != nil {
		return Name{}, err
	}
	return Name{value: value}, nil
}

// String returns the name exactly as it was constructed.
func (n Name) String() string { return n.value }

// IsZero reports whether n was never set.
func (n Name) IsZero() bool { return n.value == "" }

// Phone is an eatery's contact number, digits only.
type Phone struct {
	value string
}

// NewPhone validates value and returns a Phone.
func NewPhone(value string) (Phone, error) {
	if err := validateField(value, phoneRules, PhoneConstraints); err != nil {
		return Phone{}, err
	}
	return Phone{value: value}, nil
}

func (p Phone) String() string { return p.value }

// IsZero reports whether p was never set.
func (p Phone) IsZero() bool { return p.value == "" }

// Cuisine is the kind of food an eatery serves, e.g. "Chinese".
type Cuisine struct {
	value string
}

// NewCuisine validates value and returns a Cuisine.
func NewCuisine(value string) (Cuisine, error) {
	if err := validateField(value, cuisineRules, CuisineConstraints); err != nil {
		return Cuisine{}, err
	}
	return Cuisine{value: value}, nil
}

func (c Cuisine) String() string { return c.value }

// IsZero reports whether c was never set.
func (c Cuisine) IsZero() bool { return c.value == "" }

// Location is a free-form description of where an eatery is.
type Location struct {
	value string
}

// NewLocation validates value and returns a Location.
func NewLocation(value string) (Location, error) {
	if err := validateField(value, locationRules, LocationConstraints); err != nil {
		return Location{}, err
	}
	return Location{value: value}, nil
}

func (l Location) String() string { return l.value }

// IsZero reports whether l was never set.
func (l Location) IsZero() bool { return l.value == "" }
