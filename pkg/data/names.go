// Package data holds static content tables.
package data

// DriverNames seed the default highscore tables
var DriverNames = []string{
	"James", "Mary", "Robert", "Patricia", "Michael", "Jennifer", "William",
	"Linda", "David", "Elizabeth", "Richard", "Barbara", "Joseph", "Susan",
	"Thomas", "Jessica", "Charles", "Sarah", "Daniel", "Karen", "Matthew",
	"Nancy", "Anthony", "Lisa", "Mark", "Betty", "Paul", "Margaret", "Steven",
	"Sandra",
}
