package main

import (
	"flag"
	"fmt"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/config"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/database"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/auth"
)

// Seeds an instructor account. Intended for the first admin on a fresh
// database; everything after that goes through the API.
func main() {
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "initial password")
	role := flag.String("role", models.RoleAdmin, "role: admin, head_instructor or instructor")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_instructor -first NAME -last NAME -email EMAIL -password PASSWORD [-role ROLE]")
		return
	}

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		return
	}

	user := &models.User{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  hashed,
	}

	if err := database.CreateUser(db, user, *role); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
