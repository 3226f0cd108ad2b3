package main

import (
	"flag"
	"fmt"

	"github.com/zakiachsan/ELC-sub000/app/config"
	"github.com/zakiachsan/ELC-sub000/app/database"
	"github.com/zakiachsan/ELC-sub000/app/models"
)

func main() {
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	email := flag.String("email", "", "email address")
	password := flag.String("password", "", "initial password")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -first NAME -last NAME -email EMAIL -password PASSWORD")
		return
	}

	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}

	user := &models.User{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  *password,
	}

	if err := database.CreateTeacher(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
