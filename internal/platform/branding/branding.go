// Package branding holds the site owner's profile shown across pages.
package branding

// AppName is the site title used in page titles and the header.
const AppName = "Manish Yadav - DevOps Engineer"

// Profile describes the author whose portfolio the site presents.
type Profile struct {
	Name        string
	Role        string
	Description string
	Email       string
	Phone       string
	LinkedIn    string
	GitHub      string
	Location    string
}

// Owner is the portfolio owner.
var Owner = Profile{
	Name:        "Manish Yadav",
	Role:        "DevOps Engineer",
	Description: "Portfolio website showcasing DevOps and Cloud Engineering expertise",
	Email:       "manish25102@gmail.com",
	Phone:       "+91 7376356606",
	LinkedIn:    "https://linkedin.com/in/manishyadav12",
	GitHub:      "https://github.com/manishyadav",
	Location:    "Bangalore, India",
}
