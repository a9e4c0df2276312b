package model

import (
	"fmt"

	"gorm.io/gorm"
)

// Value sets the generator draws from. Order matters for Genders: it
// mirrors randomdata's male/female constants.
var (
	EyeColors = []string{"brown", "blue", "green", "hazel", "gray"}
	Genders   = []string{"male", "female"}
)

// Person is the domain model for one list row.
// Records are independent; they are created with random values and
// only ever deleted in bulk.
type Person struct {
	FirstName string `column:"first_name"`
	LastName  string `column:"last_name"`
	Age       int    `column:"age"`
	EyeColor  string `column:"eye_color"`
	Gender    string `column:"gender"`
	gorm.Model
}

func (Person) TableName() string {
	return "people"
}

// String renders the record for confirmation messages.
func (p Person) String() string {
	return fmt.Sprintf("%s %s (age %d, %s eyes, %s)",
		p.FirstName, p.LastName, p.Age, p.EyeColor, p.Gender)
}
