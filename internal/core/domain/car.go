package domain

// Owner owns one or more cars.
type Owner struct {
	OwnerID    string  `json:"ownerID"`
	OwnerName  string  `json:"ownerName"`
	OwnerEmail *string `json:"ownerEmail,omitempty"`
}

// Car is the aggregation root for policies and claims. Deleting a car
// cascades to its policies, claims and, through the policies, expiry logs.
type Car struct {
	CarID             string `json:"carID"`
	VIN               string `json:"vin"`
	Make              string `json:"make"`
	Model             string `json:"model"`
	YearOfManufacture *int   `json:"yearOfManufacture,omitempty"`
	OwnerID           string `json:"ownerID"`
}
