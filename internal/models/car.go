package models

// Owner is the owners table row.
type Owner struct {
	OwnerID    string  `json:"ownerID"`
	OwnerName  string  `json:"ownerName"`
	OwnerEmail *string `json:"ownerEmail"` // Nullable
}

// Car is the cars table row.
type Car struct {
	CarID             string `json:"carID"`
	VIN               string `json:"vin"`
	Make              string `json:"make"`
	Model             string `json:"model"`
	YearOfManufacture *int32 `json:"yearOfManufacture"` // Nullable
	OwnerID           string `json:"ownerID"`
}
