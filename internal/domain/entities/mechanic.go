package entities

// Mechanic is the employee responsible for a work order.
//
// Same deletion guard as Customer.
type Mechanic struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}
