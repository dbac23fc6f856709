package classification

// AuthorityContact identifies the responsible officer a citizen can call
// when intervening on a stalled complaint.
type AuthorityContact struct {
	Department  string `json:"department"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

var authorityContacts = map[string]AuthorityContact{
	"Sanitation Department": {
		Department:  "Sanitation Department",
		Name:        "Ramesh Kulkarni",
		Designation: "Sanitation Inspector",
		Phone:       "+91-1800-425-1001",
		Email:       "sanitation@jannivaran.gov.in",
	},
	"Public Works Department": {
		Department:  "Public Works Department",
		Name:        "Anita Deshmukh",
		Designation: "Executive Engineer",
		Phone:       "+91-1800-425-1002",
		Email:       "pwd@jannivaran.gov.in",
	},
	"Water Department": {
		Department:  "Water Department",
		Name:        "Suresh Iyer",
		Designation: "Assistant Engineer (Water Works)",
		Phone:       "+91-1800-425-1003",
		Email:       "water@jannivaran.gov.in",
	},
	"Electricity Board": {
		Department:  "Electricity Board",
		Name:        "Kavita Sharma",
		Designation: "Junior Engineer (Distribution)",
		Phone:       "+91-1800-425-1004",
		Email:       "electricity@jannivaran.gov.in",
	},
	"Transport Department": {
		Department:  "Transport Department",
		Name:        "Mohammed Ansari",
		Designation: "Depot Manager",
		Phone:       "+91-1800-425-1005",
		Email:       "transport@jannivaran.gov.in",
	},
	"General Administration": {
		Department:  "General Administration",
		Name:        "Priya Nair",
		Designation: "Grievance Officer",
		Phone:       "+91-1800-425-1000",
		Email:       "grievance@jannivaran.gov.in",
	},
}

// ContactFor returns the authority contact for a department. Departments
// without a dedicated contact fall back to General Administration.
func ContactFor(department string) AuthorityContact {
	if c, ok := authorityContacts[department]; ok {
		return c
	}
	return authorityContacts["General Administration"]
}
