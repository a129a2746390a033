package entities

// Customer owns vehicles brought to the shop.
//
// Storage model (DynamoDB):
//   - PK: id
//
// A customer is referenced by work orders and cannot be deleted while any
// work order points to it.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}
