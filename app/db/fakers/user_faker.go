package fakers

import (
	"log"

	"github.com/fitfinder/fitfinder/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func UserFaker() *models.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash faker password:", err)
	}

	return &models.User{
		ID:        uuid.New().String(),
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Email:     faker.Email(),
		Password:  string(hashed),
		Gender:    models.GenderUndisclosed,
		Role:      models.RoleCustomer,
	}
}
