package generator

import (
	"github.com/Pallinder/go-randomdata"

	"github.com/makotogo/people/internal/model"
)

// NewPerson returns one person with randomized plausible field values,
// for demo seeding. The first name follows the rolled gender.
func NewPerson() *model.Person {
	g := randomdata.Number(0, len(model.Genders))
	return &model.Person{
		FirstName: randomdata.FirstName(g),
		LastName:  randomdata.LastName(),
		Age:       randomdata.Number(1, 100),
		EyeColor:  model.EyeColors[randomdata.Number(0, len(model.EyeColors))],
		Gender:    model.Genders[g],
	}
}

// NewPeople returns n freshly generated people.
func NewPeople(n int) []*model.Person {
	people := make([]*model.Person, 0, n)
	for i := 0; i < n; i++ {
		people = append(people, NewPerson())
	}
	return people
}
