package main

import (
	"fmt"
	"log"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/config"
)

// Smoke-tests the assessment query path against the configured database.
func main() {
	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	fmt.Println("Testing assessment query...")
	query := `SELECT a.id, a.student_id, s.first_name, s.last_name, a.target_belt_rank,
			  a.status, a.overall_score, a.assessment_date
			  FROM student_assessments a
			  LEFT JOIN students s ON a.student_id = s.id
			  ORDER BY a.assessment_date DESC
			  LIMIT 20`

	rows, err := db.Query(query)
	if err != nil {
		log.Fatalf("Query failed: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, studentID, status string
		var firstName, lastName, targetBelt interface{} // nullable
		var overallScore interface{} // nullable, inspect the driver type
		var assessmentDate interface{}

		err := rows.Scan(&id, &studentID, &firstName, &lastName, &targetBelt, &status, &overallScore, &assessmentDate)
		if err != nil {
			fmt.Printf("Scan failed: %v\n", err)
			continue
		}
		fmt.Printf("Found: %v %v -> %v [%s], Score: %v, Type: %T\n",
			firstName, lastName, targetBelt, status, overallScore, overallScore)
	}
	fmt.Println("Test complete.")
}
